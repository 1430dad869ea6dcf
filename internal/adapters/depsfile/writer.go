// Package depsfile writes the inputs and outputs of a compilation for build systems.
package depsfile

import (
	"bufio"
	"encoding/json"
	"io"
	"slices"
	"strings"
	"unicode/utf8"

	"go.trai.ch/quire/internal/core/domain"
	"go.trai.ch/quire/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DepsWriter = (*Writer)(nil)

// Writer implements ports.DepsWriter for every domain.DepsFormat.
type Writer struct{}

// NewWriter creates a new dependency file writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write encodes inputs and outputs in format. Inputs are written sorted.
func (w *Writer) Write(out io.Writer, format domain.DepsFormat, inputs, outputs []string) error {
	inputs = slices.Sorted(slices.Values(inputs))

	switch format {
	case domain.DepsJSON, "":
		return writeJSON(out, inputs, outputs)
	case domain.DepsZero:
		return writeZero(out, inputs)
	case domain.DepsMake:
		return writeMake(out, inputs, outputs)
	default:
		return zerr.With(domain.ErrInvalidDepsFormat, "format", string(format))
	}
}

type jsonDeps struct {
	Inputs  []string `json:"inputs"`
	Outputs []string `json:"outputs"`
}

func writeJSON(out io.Writer, inputs, outputs []string) error {
	for _, p := range slices.Concat(inputs, outputs) {
		if !utf8.ValidString(p) {
			return zerr.With(domain.ErrDepsNotUnicode, "path", p)
		}
	}

	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	return enc.Encode(jsonDeps{
		Inputs:  nonNil(inputs),
		Outputs: nonNil(outputs),
	})
}

func writeZero(out io.Writer, inputs []string) error {
	bw := bufio.NewWriter(out)
	for _, p := range inputs {
		_, _ = bw.WriteString(p)
		_ = bw.WriteByte(0)
	}
	return bw.Flush()
}

var makeEscaper = strings.NewReplacer("$", "$$", "#", `\#`, " ", `\ `)

func writeMake(out io.Writer, inputs, outputs []string) error {
	bw := bufio.NewWriter(out)
	writePaths(bw, outputs)
	_, _ = bw.WriteString(":")
	if len(inputs) > 0 {
		_, _ = bw.WriteString(" ")
	}
	writePaths(bw, inputs)
	_, _ = bw.WriteString("\n")
	return bw.Flush()
}

// writePaths writes the Make-escaped paths separated by spaces. Paths holding a
// newline cannot be expressed and are omitted.
func writePaths(bw *bufio.Writer, paths []string) {
	first := true
	for _, p := range paths {
		if strings.ContainsAny(p, "\n\r") {
			continue
		}
		if !first {
			_, _ = bw.WriteString(" ")
		}
		first = false
		_, _ = makeEscaper.WriteString(bw, p)
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
