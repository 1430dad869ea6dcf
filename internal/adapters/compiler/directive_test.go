package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	minusTwo := int64(-2)

	tests := []struct {
		line string
		want directive
	}{
		{line: "plain text", want: directive{kind: kindText, text: "plain text"}},
		{line: "#heading", want: directive{kind: kindText, text: "#heading"}},
		{line: "#import \"a b.qd\"\r", want: directive{kind: kindImport, path: "a b.qd"}},
		{line: "#read  \"img/logo.png\"", want: directive{kind: kindRead, path: "img/logo.png"}},
		{line: "#today", want: directive{kind: kindToday}},
		{line: "#today -2", want: directive{kind: kindToday, offset: &minusTwo}},
		{line: "#input author", want: directive{kind: kindInput, key: "author"}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := parseLine(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
