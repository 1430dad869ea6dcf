package compiler

import (
	"strconv"
	"strings"

	"go.trai.ch/quire/internal/core/domain"
	"go.trai.ch/zerr"
)

type directiveKind uint8

const (
	kindText directiveKind = iota
	kindImport
	kindRead
	kindToday
	kindInput
)

// directive is one parsed document line.
type directive struct {
	kind   directiveKind
	text   string
	path   string
	key    string
	offset *int64
}

// parseLine parses a document line. Lines that do not start with a known directive
// keyword are plain text.
func parseLine(line string) (directive, error) {
	trimmed := strings.TrimRight(line, "\r")
	keyword, arg, _ := strings.Cut(trimmed, " ")
	arg = strings.TrimSpace(arg)

	switch keyword {
	case "#import", "#read":
		path, err := strconv.Unquote(arg)
		if err != nil || path == "" {
			return directive{}, zerr.With(domain.ErrInvalidDirective, "line", trimmed)
		}
		if keyword == "#import" {
			return directive{kind: kindImport, path: path}, nil
		}
		return directive{kind: kindRead, path: path}, nil
	case "#today":
		if arg == "" {
			return directive{kind: kindToday}, nil
		}
		offset, err := strconv.ParseInt(arg, 10, 64)
		if err != nil || (arg[0] != '+' && arg[0] != '-') {
			return directive{}, zerr.With(domain.ErrInvalidDirective, "line", trimmed)
		}
		return directive{kind: kindToday, offset: &offset}, nil
	case "#input":
		if arg == "" || strings.ContainsAny(arg, " \t") {
			return directive{}, zerr.With(domain.ErrInvalidDirective, "line", trimmed)
		}
		return directive{kind: kindInput, key: arg}, nil
	default:
		return directive{kind: kindText, text: line}, nil
	}
}
