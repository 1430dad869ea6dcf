package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/quire/internal/core/domain"
)

func TestBuildInfo_Changed(t *testing.T) {
	info := domain.BuildInfo{Fingerprints: map[string]string{"/p/a.qd": "1", "/p/b.png": "2"}}

	assert.False(t, info.Changed(map[string]string{"/p/a.qd": "1", "/p/b.png": "2"}))
	assert.True(t, info.Changed(map[string]string{"/p/a.qd": "1", "/p/b.png": "3"}))
	assert.True(t, info.Changed(map[string]string{"/p/a.qd": "1"}))
	assert.True(t, info.Changed(map[string]string{"/p/a.qd": "1", "/p/c.qd": "2"}))
}

func TestParseDepsFormat(t *testing.T) {
	for in, want := range map[string]domain.DepsFormat{"": domain.DepsJSON, "JSON": domain.DepsJSON, "zero": domain.DepsZero, " make ": domain.DepsMake} {
		got, err := domain.ParseDepsFormat(in)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := domain.ParseDepsFormat("yaml")
	assert.Error(t, err)
}
