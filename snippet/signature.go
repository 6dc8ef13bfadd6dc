package snippet

import (
	"encoding/json"
	"log"
	"regexp"
	"strings"

	"github.com/codepeek/codepeek/embed_data"
)

// signatureLookback caps how many lines above the target the backward scan
// may visit. Headers further away are not worth a heuristic match.
const signatureLookback = 15

// signaturePattern pairs a declaration kind with the regex that recognizes
// its header line. The table is ordered; earlier kinds win on the same line.
type signaturePattern struct {
	Kind    string `json:"kind"`
	Pattern string `json:"pattern"`

	re *regexp.Regexp
}

var signaturePatterns = loadSignaturePatterns()

func loadSignaturePatterns() []signaturePattern {
	var patterns []signaturePattern
	if err := json.Unmarshal(embed_data.SignaturePatterns, &patterns); err != nil {
		log.Fatalf("failed to parse signature patterns: %v", err)
	}

	for i := range patterns {
		patterns[i].re = regexp.MustCompile(patterns[i].Pattern)
	}

	return patterns
}

// locateSignature scans backward from just above targetLine for the nearest
// enclosing declaration header. lines holds the whole file, 0-indexed. It
// returns the 1-indexed header line, or false when no header is reachable.
// The scan never looks at targetLine itself or anything below it.
func locateSignature(lines []string, targetLine int) (int, bool) {
	floor := targetLine - signatureLookback
	if floor < 1 {
		floor = 1
	}

	for number := targetLine - 1; number >= floor; number-- {
		if number > len(lines) {
			continue
		}
		line := lines[number-1]

		// A bare closing brace ends a prior sibling declaration's body;
		// no enclosing header exists within reach.
		if isClosingBraceLine(line) {
			return 0, false
		}

		for _, pattern := range signaturePatterns {
			if pattern.re.MatchString(line) {
				return number, true
			}
		}
	}

	return 0, false
}

// isClosingBraceLine reports whether the line consists solely of a closing
// brace once comment markers are removed.
func isClosingBraceLine(line string) bool {
	return strings.TrimSpace(stripLineComment(line)) == "}"
}

func stripLineComment(line string) string {
	for _, marker := range []string{"//", "#", "/*"} {
		if idx := strings.Index(line, marker); idx >= 0 {
			line = line[:idx]
		}
	}
	return line
}
