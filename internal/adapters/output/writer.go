// Package output writes compiled documents to files or standard output.
package output

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/quire/internal/core/domain"
	"go.trai.ch/quire/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.OutputWriter = (*Writer)(nil)

// Writer implements ports.OutputWriter.
type Writer struct {
	mu     sync.Mutex
	stdout io.Writer
}

// NewWriter creates a writer sending "-" to stdout.
func NewWriter(stdout io.Writer) *Writer {
	return &Writer{stdout: stdout}
}

// Write stores data at path, creating missing parent directories, or writes it to
// stdout when path is "-".
func (w *Writer) Write(path string, data []byte) error {
	if path == domain.StdinArg {
		w.mu.Lock()
		defer w.mu.Unlock()
		if _, err := w.stdout.Write(data); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", "<stdout>")
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", path)
	}
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", path)
	}
	return nil
}
