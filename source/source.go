// Package source holds a parse session's input buffer and resolves
// byte offsets to line/column pairs for diagnostics.
package source

import (
	"bytes"
	"unicode/utf8"
)

// Source is an immutable, named byte buffer with precomputed
// line-start offsets for fast LineCol lookups.
type Source struct {
	name          string
	content       []byte
	lineStarts    []int
	prevLineIndex int
}

// New builds a Source over content, indexing line starts up front.
func New(name string, content []byte) *Source {
	s := &Source{name: name, content: content, prevLineIndex: -1}
	lineCnt := bytes.Count(content, []byte("\n")) + 1
	s.lineStarts = make([]int, lineCnt)
	j := 1
	for i := 0; i < len(content) && j < lineCnt; i++ {
		if content[i] == '\n' {
			s.lineStarts[j] = i + 1
			j++
		}
	}
	return s
}

// Name returns the source's file name (or whatever label it was given).
func (s *Source) Name() string { return s.name }

// Content returns the full input buffer.
func (s *Source) Content() []byte { return s.content }

// Len returns the number of bytes in Content.
func (s *Source) Len() int { return len(s.content) }

// LineCol resolves a byte offset to a 1-based (line, column) pair.
// Column counts runes, not bytes, so multi-byte UTF-8 sequences on a
// line do not misalign later columns on that same line.
func (s *Source) LineCol(pos int) (line, col int) {
	var lineIndex int
	switch {
	case pos < 0:
		pos = 0
		lineIndex = 0
	case pos >= len(s.content):
		pos = len(s.content)
		lineIndex = len(s.lineStarts) - 1
	default:
		lineIndex = s.findLineIndex(pos)
	}

	lineStart := s.lineStarts[lineIndex]
	return lineIndex + 1, utf8.RuneCount(s.content[lineStart:pos]) + 1
}

func (s *Source) findLineIndex(pos int) int {
	if s.prevLineIndex >= 0 && s.lineStarts[s.prevLineIndex] <= pos {
		lineIndex := s.prevLineIndex
		last := len(s.lineStarts) - 1
		for lineIndex <= last && s.lineStarts[lineIndex] <= pos {
			lineIndex++
		}
		lineIndex--
		s.prevLineIndex = lineIndex
		return lineIndex
	}

	leftIndex := 0
	rightIndex := len(s.lineStarts) - 1
	if s.prevLineIndex >= 0 {
		rightIndex = s.prevLineIndex
	}
	index := 0
	for leftIndex < rightIndex {
		index = (leftIndex + rightIndex + 1) >> 1
		lineStart := s.lineStarts[index]
		if lineStart == pos {
			s.prevLineIndex = index
			return index
		}
		if lineStart < pos {
			leftIndex = index
		} else {
			rightIndex = index - 1
			index = rightIndex
		}
	}
	s.prevLineIndex = index
	return index
}

// Pos is a resolved position within a Source, exposing the same
// SourceName/Line/Col shape as token.Token for diagnostic formatting.
type Pos struct {
	src       *Source
	offset    int
	line, col int
}

// NewPos resolves offset within src into a Pos.
func NewPos(src *Source, offset int) Pos {
	p := Pos{src: src, offset: offset}
	if src != nil {
		p.line, p.col = src.LineCol(offset)
	}
	return p
}

// Source returns the Pos's owning Source.
func (p Pos) Source() *Source { return p.src }

// Offset returns the byte offset the Pos was resolved from.
func (p Pos) Offset() int { return p.offset }

// SourceName returns the owning Source's name, or "" for a zero Pos.
func (p Pos) SourceName() string {
	if p.src == nil {
		return ""
	}
	return p.src.Name()
}

// Line returns the Pos's 1-based line number.
func (p Pos) Line() int { return p.line }

// Col returns the Pos's 1-based column number.
func (p Pos) Col() int { return p.col }
