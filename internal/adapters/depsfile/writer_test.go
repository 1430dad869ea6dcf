package depsfile_test

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/quire/internal/adapters/depsfile"
	"go.trai.ch/quire/internal/core/domain"
)

var (
	inputs = []string{
		"/project/main.qd",
		"/project/chapters/a b.qd",
		"/project/data/$cost#1.csv",
	}
	outputs = []string{"/project/out/main.txt"}
)

func TestWriter_Golden(t *testing.T) {
	tests := []struct {
		name    string
		format  domain.DepsFormat
		inputs  []string
		outputs []string
	}{
		{name: "json", format: domain.DepsJSON, inputs: inputs, outputs: outputs},
		{name: "json_empty", format: domain.DepsJSON},
		{name: "zero", format: domain.DepsZero, inputs: inputs, outputs: outputs},
		{name: "make", format: domain.DepsMake, inputs: inputs, outputs: outputs},
		{
			name:    "make_inexpressible",
			format:  domain.DepsMake,
			inputs:  []string{"/project/line\nbreak.qd", "/project/main.qd"},
			outputs: outputs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, depsfile.NewWriter().Write(&buf, tt.format, tt.inputs, tt.outputs))

			g := goldie.New(t)
			g.Assert(t, tt.name, buf.Bytes())
		})
	}
}

func TestWriter_JSONRejectsNonUnicode(t *testing.T) {
	var buf bytes.Buffer

	err := depsfile.NewWriter().Write(&buf, domain.DepsJSON, []string{"/project/\xff.qd"}, nil)

	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrDepsNotUnicode.Error())
	assert.Empty(t, buf.String())
}

func TestWriter_ZeroExpressesAnyPath(t *testing.T) {
	var buf bytes.Buffer

	err := depsfile.NewWriter().Write(&buf, domain.DepsZero, []string{"/b/\xff", "/a/line\nbreak"}, nil)

	require.NoError(t, err)
	assert.Equal(t, "/a/line\nbreak\x00/b/\xff\x00", buf.String())
}

func TestWriter_DoesNotReorderCallerSlice(t *testing.T) {
	in := []string{"/b", "/a"}

	require.NoError(t, depsfile.NewWriter().Write(&bytes.Buffer{}, domain.DepsZero, in, nil))
	assert.Equal(t, []string{"/b", "/a"}, in)
}

func TestWriter_UnknownFormat(t *testing.T) {
	err := depsfile.NewWriter().Write(&bytes.Buffer{}, domain.DepsFormat("yaml"), nil, nil)

	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidDepsFormat.Error())
}
