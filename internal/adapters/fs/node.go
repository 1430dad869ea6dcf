package fs

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/quire/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the directory walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// ResolverNodeID is the unique identifier for the project resolver Graft node.
	ResolverNodeID graft.ID = "adapter.fs.resolver"
	// HasherNodeID is the unique identifier for the content hasher Graft node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
	// LoaderFactoryNodeID is the unique identifier for the loader factory Graft node.
	LoaderFactoryNodeID graft.ID = "adapter.fs.loader_factory"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.ProjectResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ProjectResolver, error) {
			return NewResolver(), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})

	graft.Register(graft.Node[ports.LoaderFactory]{
		ID:        LoaderFactoryNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LoaderFactory, error) {
			return NewLoaderFactory(os.Stdin), nil
		},
	})
}
