package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/quire/internal/core/domain"
	"go.trai.ch/quire/internal/engine/cache"
)

func TestDecodeUTF8(t *testing.T) {
	tests := []struct {
		name    string
		in      []byte
		want    string
		wantErr bool
	}{
		{name: "plain", in: []byte("héllo"), want: "héllo"},
		{name: "bom stripped", in: append([]byte{0xEF, 0xBB, 0xBF}, "text"...), want: "text"},
		{name: "only bom", in: []byte{0xEF, 0xBB, 0xBF}, want: ""},
		{name: "empty", in: nil, want: ""},
		{name: "lone 0xff", in: []byte{0xFF}, wantErr: true},
		{name: "truncated sequence", in: []byte{'a', 0xC3}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cache.DecodeUTF8(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidEncoding)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
