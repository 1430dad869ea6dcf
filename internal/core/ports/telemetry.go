package ports

import (
	"context"
	"io"

	"go.trai.ch/quire/internal/core/domain"
)

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records the progress of compilation cycles.
type Telemetry interface {
	// Record starts a vertex for a unit of work.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes the recording.
	Close() error
}

// Vertex is a single recorded unit of work.
type Vertex interface {
	// Stdout returns a writer attached to the vertex output.
	Stdout() io.Writer
	// Log records a message on the vertex.
	Log(level domain.LogLevel, msg string)
	// Cached marks the vertex as a cache hit.
	Cached()
	// Complete marks the vertex as finished, failed when err is not nil.
	Complete(err error)
}
