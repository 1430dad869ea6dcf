package domain

import (
	"sort"
	"unicode/utf8"
)

// Lines indexes the line starts of a text. Line and column numbers are zero-based;
// "\n", "\r\n" and a lone "\r" all end a line.
type Lines struct {
	text   string
	starts []int
}

// NewLines indexes text.
func NewLines(text string) Lines {
	return Lines{text: text, starts: scanLineStarts(text, 0, []int{0})}
}

// LinesFromBytes indexes b, which must be valid UTF-8.
func LinesFromBytes(b []byte) (Lines, error) {
	if !utf8.Valid(b) {
		return Lines{}, NewFileError(KindInvalidEncoding, "", nil)
	}
	return NewLines(string(b)), nil
}

// scanLineStarts appends the start offset of every line beginning after from.
func scanLineStarts(text string, from int, starts []int) []int {
	for i := from; i < len(text); i++ {
		switch text[i] {
		case '\n':
			starts = append(starts, i+1)
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			starts = append(starts, i+1)
		}
	}
	return starts
}

// reindex builds the index for text, which shares its first prefix bytes with l's text,
// reusing every line start that lies strictly inside the shared prefix.
func (l Lines) reindex(text string, prefix int) Lines {
	keep := sort.SearchInts(l.starts, prefix)
	if keep == 0 {
		keep = 1
	}
	starts := make([]int, keep, len(l.starts)+1)
	copy(starts, l.starts[:keep])
	return Lines{text: text, starts: scanLineStarts(text, starts[keep-1], starts)}
}

// Text returns the indexed text.
func (l Lines) Text() string {
	return l.text
}

// Count returns the number of lines. An empty text has one line.
func (l Lines) Count() int {
	if len(l.starts) == 0 {
		return 1
	}
	return len(l.starts)
}

// ByteToLine returns the line containing the byte offset.
func (l Lines) ByteToLine(offset int) (int, bool) {
	if offset < 0 || offset > len(l.text) {
		return 0, false
	}
	return sort.SearchInts(l.starts, offset+1) - 1, true
}

// LineToByte returns the byte offset at which line starts.
func (l Lines) LineToByte(line int) (int, bool) {
	if line < 0 || line >= len(l.starts) {
		return 0, false
	}
	return l.starts[line], true
}

// ByteToColumn returns the column, counted in runes, of the byte offset within its line.
func (l Lines) ByteToColumn(offset int) (int, bool) {
	line, ok := l.ByteToLine(offset)
	if !ok {
		return 0, false
	}
	return utf8.RuneCountInString(l.text[l.starts[line]:offset]), true
}
