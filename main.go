package main

import "github.com/codepeek/codepeek/cmd"

func main() {
	cmd.Execute()
}
