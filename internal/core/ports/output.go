package ports

import (
	"io"

	"go.trai.ch/quire/internal/core/domain"
)

//go:generate mockgen -source=output.go -destination=mocks/mock_output.go -package=mocks

// OutputWriter writes compiled documents.
type OutputWriter interface {
	// Write stores data at path, or on standard output when path is "-".
	Write(path string, data []byte) error
}

// DepsWriter encodes dependency files for build systems.
type DepsWriter interface {
	// Write encodes inputs and outputs to w in the given format.
	Write(w io.Writer, format domain.DepsFormat, inputs, outputs []string) error
}
