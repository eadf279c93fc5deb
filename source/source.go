// Package source defines definition-file sources used by langdef.
package source

import (
	"bytes"
	"sort"
	"unicode/utf8"
)

// Source is an immutable named text buffer with line/column lookup.
type Source struct {
	name       string
	content    []byte
	lineStarts []int
}

func New(name string, content []byte) *Source {
	s := &Source{name: name, content: content}
	lineCnt := bytes.Count(content, []byte("\n")) + 1
	s.lineStarts = make([]int, 1, lineCnt)
	for i, c := range content {
		if c == '\n' {
			s.lineStarts = append(s.lineStarts, i+1)
		}
	}
	return s
}

func (s *Source) Name() string {
	return s.name
}

func (s *Source) Content() []byte {
	return s.content
}

func (s *Source) Len() int {
	return len(s.content)
}

// LineCol maps a byte offset to 1-based line and column numbers.
// Offsets outside the content are clamped.
func (s *Source) LineCol(pos int) (line, col int) {
	if pos < 0 {
		pos = 0
	} else if pos > len(s.content) {
		pos = len(s.content)
	}

	lineIndex := sort.SearchInts(s.lineStarts, pos+1) - 1
	lineStart := s.lineStarts[lineIndex]
	return lineIndex + 1, utf8.RuneCount(s.content[lineStart:pos]) + 1
}

// Pos maps 1-based line and column numbers back to a byte offset.
func (s *Source) Pos(line, col int) int {
	if line <= 0 || col <= 0 {
		return 0
	}
	if line > len(s.lineStarts) {
		return len(s.content)
	}

	res := s.lineStarts[line-1] + col - 1
	if res > len(s.content) {
		return len(s.content)
	}
	return res
}
