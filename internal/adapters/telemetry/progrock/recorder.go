// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/quire/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements the ports.Telemetry interface using the progrock library.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
	seq atomic.Uint64
}

// New creates a Recorder rendering progress lines to w.
func New(w io.Writer) *Recorder {
	return NewRecorder(NewRenderer(w))
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Record starts recording a new vertex. Every call gets its own vertex, so recording
// the same name twice, as watch mode does for each cycle, shows up as separate entries.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	d := digest.FromString(fmt.Sprintf("%s#%d", name, r.seq.Add(1)))
	vertex := &Vertex{vertex: r.rec.Vertex(d, name)}
	return ctx, vertex
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	return r.w.Close()
}
