package domain

import (
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Edit describes the single contiguous replacement that turns one revision of a source into the next:
// bytes [Start, End) of the old text were replaced by Replacement.
type Edit struct {
	Start       int
	End         int
	Replacement string
}

// Source is the parsed-text view of a resource: its text, line index, and revision history marker.
// A Source is immutable; Replace produces the next revision.
type Source struct {
	id       ResourceID
	lines    Lines
	revision uint64
	edit     Edit
}

// NewSource creates the first revision of a source.
func NewSource(id ResourceID, text string) *Source {
	return &Source{
		id:    id,
		lines: NewLines(text),
		edit:  Edit{Start: 0, End: 0, Replacement: text},
	}
}

// ID returns the identifier the source was loaded for.
func (s *Source) ID() ResourceID {
	return s.id
}

// Text returns the full text.
func (s *Source) Text() string {
	return s.lines.Text()
}

// Lines returns the line index.
func (s *Source) Lines() Lines {
	return s.lines
}

// Revision counts how many times the source was replaced since it was first created.
func (s *Source) Revision() uint64 {
	return s.revision
}

// LastEdit returns the edit that produced this revision.
func (s *Source) LastEdit() Edit {
	return s.edit
}

// Replace returns the next revision holding text. The edit is the smallest single range covering
// every difference, and the line index before that range is reused. Replacing with identical text
// returns s itself.
func (s *Source) Replace(text string) *Source {
	old := s.Text()
	if old == text {
		return s
	}

	dmp := diffmatchpatch.New()
	prefix := byteOffset(old, dmp.DiffCommonPrefix(old, text))
	suffix := len(old) - byteOffset(old, utf8.RuneCountInString(old)-dmp.DiffCommonSuffix(old, text))

	// The common prefix and suffix may overlap when text repeats around the edit.
	if limit := min(len(old), len(text)) - prefix; suffix > limit {
		suffix = limit
	}

	return &Source{
		id:       s.id,
		lines:    s.lines.reindex(text, prefix),
		revision: s.revision + 1,
		edit: Edit{
			Start:       prefix,
			End:         len(old) - suffix,
			Replacement: text[prefix : len(text)-suffix],
		},
	}
}

// byteOffset converts a rune count from the start of s into a byte offset.
func byteOffset(s string, runes int) int {
	if runes <= 0 {
		return 0
	}
	n := 0
	for i := range s {
		if n == runes {
			return i
		}
		n++
	}
	return len(s)
}
