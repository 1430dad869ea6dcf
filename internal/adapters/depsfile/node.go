package depsfile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/quire/internal/core/ports"
)

// NodeID is the unique identifier for the dependency file writer Graft node.
const NodeID graft.ID = "adapter.depsfile"

func init() {
	graft.Register(graft.Node[ports.DepsWriter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DepsWriter, error) {
			return NewWriter(), nil
		},
	})
}
