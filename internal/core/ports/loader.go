package ports

import "go.trai.ch/quire/internal/core/domain"

//go:generate mockgen -source=loader.go -destination=mocks/mock_loader.go -package=mocks

// Loader reads the raw bytes behind resource identifiers.
type Loader interface {
	// Resolve returns the system path of a resource. Standard input and detached identifiers have none.
	Resolve(id domain.ResourceID) (string, error)
	// Load reads the raw bytes of a resource. Failures are *domain.FileError values.
	Load(id domain.ResourceID) ([]byte, error)
}

// LoaderFactory creates loaders bound to a project root.
type LoaderFactory interface {
	// NewLoader returns a loader resolving plain resources under root and package resources under packagePath.
	NewLoader(root, packagePath string) Loader
}
