package progrock_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vito/progrock"
	quireprogrock "go.trai.ch/quire/internal/adapters/telemetry/progrock"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func newRenderer(t *testing.T) (*quireprogrock.Renderer, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	return quireprogrock.NewRenderer(&buf), &buf
}

func TestRenderer_CompletedVertex(t *testing.T) {
	r, buf := newRenderer(t)

	require.NoError(t, r.WriteStatus(&progrock.StatusUpdate{
		Vertexes: []*progrock.Vertex{{Id: "a", Name: "compile main.qd", Started: timestamppb.Now()}},
	}))
	assert.Empty(t, buf.String())

	done := &progrock.Vertex{Id: "a", Name: "compile main.qd", Completed: timestamppb.Now()}
	require.NoError(t, r.WriteStatus(&progrock.StatusUpdate{Vertexes: []*progrock.Vertex{done}}))
	require.NoError(t, r.WriteStatus(&progrock.StatusUpdate{Vertexes: []*progrock.Vertex{done}}))

	assert.Equal(t, "✓ compile main.qd\n", buf.String())
}

func TestRenderer_CachedAndFailed(t *testing.T) {
	r, buf := newRenderer(t)
	msg := "file not found"

	require.NoError(t, r.WriteStatus(&progrock.StatusUpdate{
		Vertexes: []*progrock.Vertex{
			{Id: "a", Name: "compile a.qd", Completed: timestamppb.Now(), Cached: true},
			{Id: "b", Name: "compile b.qd", Completed: timestamppb.Now(), Error: &msg},
		},
	}))

	assert.Equal(t, "~ compile a.qd (cached)\n✗ compile b.qd file not found\n", buf.String())
}

func TestRenderer_LogsSplitIntoLines(t *testing.T) {
	r, buf := newRenderer(t)

	require.NoError(t, r.WriteStatus(&progrock.StatusUpdate{
		Vertexes: []*progrock.Vertex{{Id: "a", Name: "compile"}},
		Logs: []*progrock.VertexLog{
			{Vertex: "a", Data: []byte("one\ntw")},
			{Vertex: "a", Data: []byte("o\nthr")},
		},
	}))
	assert.Equal(t, "compile | one\ncompile | two\n", buf.String())

	require.NoError(t, r.Close())
	assert.Equal(t, "compile | one\ncompile | two\ncompile | thr\n", buf.String())
}

func TestRenderer_CloseFlushesEachPartialLineOnce(t *testing.T) {
	r, buf := newRenderer(t)

	data := make([]byte, 0, 64)
	data = append(data, "first\nhalf"...)
	require.NoError(t, r.WriteStatus(&progrock.StatusUpdate{
		Vertexes: []*progrock.Vertex{{Id: "a", Name: "a"}, {Id: "b", Name: "b"}},
		Logs: []*progrock.VertexLog{
			{Vertex: "a", Data: data},
			{Vertex: "b", Data: []byte("only")},
		},
	}))

	// The caller reusing its buffer must not alter the buffered partial line.
	copy(data, "XXXXXXXXXX")

	require.NoError(t, r.Close())
	require.NoError(t, r.Close())

	out := buf.String()
	assert.Contains(t, out, "a | first\n")
	assert.Contains(t, out, "a | half\n")
	assert.Contains(t, out, "b | only\n")
	assert.Equal(t, 3, bytes.Count(buf.Bytes(), []byte("\n")))
}
