package models

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
)

// Snippet holds a contiguous excerpt of source lines around a target line.
type Snippet struct {
	FilePath      string
	TargetLine    int
	ContextRadius int
	Lines         map[int]string
}

// StartLine returns the smallest line number in the excerpt.
func (s *Snippet) StartLine() int {
	first := true
	start := 0
	for n := range s.Lines {
		if first || n < start {
			start = n
			first = false
		}
	}
	return start
}

// EndLine returns the largest line number in the excerpt.
func (s *Snippet) EndLine() int {
	end := 0
	for n := range s.Lines {
		if n > end {
			end = n
		}
	}
	return end
}

// LineNumbers returns the excerpt's line numbers in ascending order.
func (s *Snippet) LineNumbers() []int {
	numbers := make([]int, 0, len(s.Lines))
	for n := range s.Lines {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)
	return numbers
}

// MarshalJSON serializes the snippet with the line mapping keyed in numeric
// order. Encoding the map directly would order keys lexically ("10" before "2").
func (s *Snippet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(`{"file_path":`)
	filePath, err := json.Marshal(s.FilePath)
	if err != nil {
		return nil, err
	}
	buf.Write(filePath)

	buf.WriteString(`,"target_line":`)
	buf.WriteString(strconv.Itoa(s.TargetLine))

	buf.WriteString(`,"context_radius":`)
	buf.WriteString(strconv.Itoa(s.ContextRadius))

	buf.WriteString(`,"lines":{`)
	for i, n := range s.LineNumbers() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(strconv.Itoa(n))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		text, err := json.Marshal(s.Lines[n])
		if err != nil {
			return nil, err
		}
		buf.Write(text)
	}
	buf.WriteString("}}")

	return buf.Bytes(), nil
}

// UnmarshalJSON restores a snippet from its serialized form.
func (s *Snippet) UnmarshalJSON(data []byte) error {
	var raw struct {
		FilePath      string            `json:"file_path"`
		TargetLine    int               `json:"target_line"`
		ContextRadius int               `json:"context_radius"`
		Lines         map[string]string `json:"lines"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	s.FilePath = raw.FilePath
	s.TargetLine = raw.TargetLine
	s.ContextRadius = raw.ContextRadius
	s.Lines = make(map[int]string, len(raw.Lines))
	for key, text := range raw.Lines {
		n, err := strconv.Atoi(key)
		if err != nil {
			return err
		}
		s.Lines[n] = text
	}

	return nil
}
