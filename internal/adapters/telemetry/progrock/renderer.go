package progrock

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/muesli/termenv"
	"github.com/vito/progrock"
	"go.trai.ch/quire/internal/ui/output"
	"go.trai.ch/quire/internal/ui/style"
)

var _ progrock.Writer = (*Renderer)(nil)

// Renderer is a progrock.Writer printing one line per finished vertex and the lines
// logged to each vertex, in the order the updates arrive.
type Renderer struct {
	mu      sync.Mutex
	out     *termenv.Output
	names   map[string]string
	done    map[string]bool
	partial map[string][]byte
}

// NewRenderer creates a Renderer writing to w, or to standard error when w is nil.
func NewRenderer(w io.Writer) *Renderer {
	if w == nil {
		w = os.Stderr
	}
	return &Renderer{
		out:     output.New(w),
		names:   make(map[string]string),
		done:    make(map[string]bool),
		partial: make(map[string][]byte),
	}
}

// WriteStatus renders an update.
func (r *Renderer) WriteStatus(update *progrock.StatusUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, v := range update.Vertexes {
		r.names[v.Id] = v.Name
	}

	for _, l := range update.Logs {
		if err := r.writeLog(l.Vertex, l.Data); err != nil {
			return err
		}
	}

	for _, v := range update.Vertexes {
		if v.Completed == nil || r.done[v.Id] {
			continue
		}
		r.done[v.Id] = true

		var line string
		switch {
		case v.Error != nil:
			line = output.Paint(r.out, style.Red, style.Cross) + " " + v.Name + " " +
				output.Paint(r.out, style.Slate, *v.Error)
		case v.Cached:
			line = output.Paint(r.out, style.Slate, style.Tilde) + " " + v.Name + " " +
				output.Paint(r.out, style.Slate, "(cached)")
		default:
			line = output.Paint(r.out, style.Green, style.Check) + " " + v.Name
		}
		if _, err := r.out.WriteString(line + "\n"); err != nil {
			return err
		}
	}

	return nil
}

// writeLog prints the complete lines of data, buffering a trailing partial line
// until the rest of it arrives.
func (r *Renderer) writeLog(vertex string, data []byte) error {
	buf := append(bytes.Clone(r.partial[vertex]), data...)
	for {
		i := bytes.IndexByte(buf, '\n')
		if i < 0 {
			break
		}
		prefix := output.Paint(r.out, style.Iris, r.names[vertex]+" |")
		if _, err := r.out.WriteString(prefix + " " + string(buf[:i]) + "\n"); err != nil {
			return err
		}
		buf = buf[i+1:]
	}
	if len(buf) == 0 {
		delete(r.partial, vertex)
	} else {
		r.partial[vertex] = buf
	}
	return nil
}

// Close flushes partial log lines.
func (r *Renderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for vertex := range r.partial {
		if err := r.writeLog(vertex, []byte{'\n'}); err != nil {
			return err
		}
	}
	return nil
}
