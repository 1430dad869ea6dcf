package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/quire/internal/core/domain"
	"go.trai.ch/quire/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ProjectResolver = (*Resolver)(nil)

// Resolver locates projects on disk.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// ResolveProject canonicalizes root and input. The root defaults to the directory of the input,
// or the working directory when reading standard input.
func (r *Resolver) ResolveProject(input, root string) (domain.Project, error) {
	workdir, err := os.Getwd()
	if err != nil {
		workdir = "."
	}

	var inputPath string
	if input != domain.StdinArg {
		inputPath, err = canonicalize(input)
		if err != nil {
			return domain.Project{}, resolveError(err, domain.ErrInputNotFound, input)
		}
	}

	if root == "" {
		root = "."
		if inputPath != "" {
			root = filepath.Dir(inputPath)
		}
	}

	rootPath, err := canonicalize(root)
	if err != nil {
		return domain.Project{}, resolveError(err, domain.ErrRootNotFound, root)
	}

	main := domain.StdinID
	if inputPath != "" {
		vpath, err := domain.VirtualPathWithinRoot(inputPath, rootPath)
		if err != nil {
			return domain.Project{}, err
		}
		main = domain.NewResourceID(domain.PackageSpec{}, vpath)
	}

	return domain.Project{Root: rootPath, Workdir: workdir, Main: main}, nil
}

// resolveError reports a missing path as notFound and classifies any other failure.
func resolveError(err, notFound error, path string) error {
	if errors.Is(err, iofs.ErrNotExist) {
		return zerr.With(notFound, "path", path)
	}
	return domain.FileErrorFromIO(err, path)
}

func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
