package fs

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"syscall"

	"go.trai.ch/quire/internal/core/domain"
	"go.trai.ch/quire/internal/core/ports"
)

var (
	_ ports.Loader        = (*Loader)(nil)
	_ ports.LoaderFactory = (*LoaderFactory)(nil)
)

// Stdin captures standard input on first use and serves the same bytes afterwards.
type Stdin struct {
	once sync.Once
	r    io.Reader
	data []byte
	err  error
}

// NewStdin wraps r, which is read at most once.
func NewStdin(r io.Reader) *Stdin {
	return &Stdin{r: r}
}

// Read returns everything r produced. A broken pipe counts as end of input.
func (s *Stdin) Read() ([]byte, error) {
	s.once.Do(func() {
		data, err := io.ReadAll(s.r)
		if err != nil && !errors.Is(err, syscall.EPIPE) {
			s.err = domain.NewFileError(domain.KindIO, domain.StdinID.String(), err)
			return
		}
		s.data = data
	})
	return s.data, s.err
}

// Loader reads resources from disk below a project root, or from a package directory.
type Loader struct {
	root        string
	packagePath string
	stdin       *Stdin
}

// NewLoader creates a loader for root. Package resources live under packagePath, which may be empty.
func NewLoader(root, packagePath string, stdin *Stdin) *Loader {
	return &Loader{root: root, packagePath: packagePath, stdin: stdin}
}

// Resolve returns the system path of id.
func (l *Loader) Resolve(id domain.ResourceID) (string, error) {
	if id.Detached() {
		return "", domain.NewFileError(domain.KindNotFound, id.String(), nil)
	}

	base := l.root
	if pkg, ok := id.Package(); ok {
		if l.packagePath == "" {
			return "", domain.NewFileError(domain.KindNotFound, id.String(), nil)
		}
		base = filepath.Join(l.packagePath, pkg.Namespace, pkg.Name, pkg.Version)
	}

	path, err := id.VirtualPath().Resolve(base)
	if err != nil {
		return "", domain.NewFileError(domain.KindAccessDenied, id.String(), nil)
	}
	return path, nil
}

// Load reads id from standard input or from disk.
func (l *Loader) Load(id domain.ResourceID) ([]byte, error) {
	if id == domain.StdinID {
		if l.stdin == nil {
			return nil, domain.NewFileError(domain.KindNotFound, id.String(), nil)
		}
		return l.stdin.Read()
	}

	path, err := l.Resolve(id)
	if err != nil {
		return nil, err
	}
	return ReadFile(path)
}

// ReadFile reads a regular file, classifying failures as *domain.FileError.
func ReadFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, domain.FileErrorFromIO(err, path)
	}
	if info.IsDir() {
		return nil, domain.NewFileError(domain.KindIsDirectory, path, nil)
	}

	data, err := os.ReadFile(path) //nolint:gosec // Path is confined to the project root by Resolve
	if err != nil {
		return nil, domain.FileErrorFromIO(err, path)
	}
	return data, nil
}

// LoaderFactory creates loaders sharing one capture of standard input.
type LoaderFactory struct {
	stdin *Stdin
}

// NewLoaderFactory creates a factory whose loaders read standard input from r.
func NewLoaderFactory(r io.Reader) *LoaderFactory {
	return &LoaderFactory{stdin: NewStdin(r)}
}

// NewLoader returns a loader for root.
func (f *LoaderFactory) NewLoader(root, packagePath string) ports.Loader {
	return NewLoader(root, packagePath, f.stdin)
}
