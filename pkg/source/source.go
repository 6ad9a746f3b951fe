// Package source holds the immutable input text handed to the scanner and
// resolves byte offsets into human-readable positions.
package source

import (
	"unicode/utf8"
)

// Line terminators recognised by the position lookup. CR directly followed
// by LF counts as a single line break.
const (
	lineSeparator      = '\u2028'
	paragraphSeparator = '\u2029'
)

// Source is an immutable source file. The buffer outlives every token and
// AST node produced from it; both may hold slices into Contents.
type Source struct {
	// AbsolutePath is the absolute filepath to the source file.
	AbsolutePath string
	// PrettyPath is the path used in diagnostics, relative to the working
	// directory.
	PrettyPath string
	// Contents is the UTF-8 text of the file.
	Contents string

	// lineOffsets[i] is the byte offset of the first byte of line i.
	// Computed lazily on the first position lookup.
	lineOffsets []int
}

// New creates a source from in-memory text.
func New(path string, contents string) *Source {
	return &Source{AbsolutePath: path, PrettyPath: path, Contents: contents}
}

// Position is a resolved location inside a source file. Line and Column are
// zero-based; Column counts code points from the line start, not bytes.
type Position struct {
	Line     int
	Column   int
	LineText string
}

// PositionFor resolves a byte offset to a line, a column, and the text of
// the containing line. Offsets past the end of the buffer resolve to the
// end of the last line.
func (s *Source) PositionFor(offset int) Position {
	s.ensureLineOffsets()

	if offset > len(s.Contents) {
		offset = len(s.Contents)
	}

	// Binary search for the last line start <= offset.
	lo, hi := 0, len(s.lineOffsets)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if s.lineOffsets[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	line := lo
	lineStart := s.lineOffsets[line]
	lineEnd := s.lineEnd(line)

	column := utf8.RuneCountInString(s.Contents[lineStart:offset])
	return Position{
		Line:     line,
		Column:   column,
		LineText: s.Contents[lineStart:lineEnd],
	}
}

// lineEnd returns the byte offset just past the last content byte of the
// given line, excluding its terminator.
func (s *Source) lineEnd(line int) int {
	end := len(s.Contents)
	if line+1 < len(s.lineOffsets) {
		end = s.lineOffsets[line+1]
		// Walk back over the terminator that ended this line.
		if end >= 2 && s.Contents[end-2] == '\r' && s.Contents[end-1] == '\n' {
			return end - 2
		}
		if end >= 1 && (s.Contents[end-1] == '\n' || s.Contents[end-1] == '\r') {
			return end - 1
		}
		if r, size := utf8.DecodeLastRuneInString(s.Contents[:end]); r == lineSeparator || r == paragraphSeparator {
			return end - size
		}
	}
	return end
}

func (s *Source) ensureLineOffsets() {
	if s.lineOffsets != nil {
		return
	}
	offsets := []int{0}
	for i := 0; i < len(s.Contents); {
		r, size := utf8.DecodeRuneInString(s.Contents[i:])
		switch r {
		case '\r':
			if i+1 < len(s.Contents) && s.Contents[i+1] == '\n' {
				size = 2
			}
			offsets = append(offsets, i+size)
		case '\n', lineSeparator, paragraphSeparator:
			offsets = append(offsets, i+size)
		}
		i += size
	}
	s.lineOffsets = offsets
}
