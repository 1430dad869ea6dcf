package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// DepsFormat selects the encoding of a dependency file.
type DepsFormat string

const (
	// DepsJSON encodes inputs and outputs as a JSON object, failing for non-Unicode paths.
	DepsJSON DepsFormat = "json"
	// DepsZero terminates every input path with a NUL byte and can express all paths.
	DepsZero DepsFormat = "zero"
	// DepsMake emits a Makefile rule, omitting inexpressible paths.
	DepsMake DepsFormat = "make"
)

// ParseDepsFormat parses a format name case-insensitively. The empty string selects DepsJSON.
func ParseDepsFormat(s string) (DepsFormat, error) {
	switch f := DepsFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return DepsJSON, nil
	case DepsJSON, DepsZero, DepsMake:
		return f, nil
	default:
		return "", zerr.With(ErrInvalidDepsFormat, "format", s)
	}
}
