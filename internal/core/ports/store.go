package ports

import "go.trai.ch/quire/internal/core/domain"

// BuildInfoStore defines the interface for storing and retrieving build information.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type BuildInfoStore interface {
	// Get retrieves the build info of a main document within root.
	// Returns nil, nil if not found.
	Get(root, main string) (*domain.BuildInfo, error)

	// Put stores the build info.
	Put(root string, info domain.BuildInfo) error
}
