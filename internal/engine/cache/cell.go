// Package cache memoizes decoded resources across compilation cycles.
package cache

import (
	"go.trai.ch/quire/internal/core/domain"
	"go.trai.ch/quire/internal/core/ports"
)

// LoadFunc reads the raw bytes of a resource.
type LoadFunc func() ([]byte, error)

// Decoder turns raw bytes into a value. When hasPrev is true, prev is the value decoded from the
// previous content of the same resource and may be used to derive the new value incrementally.
type Decoder[T any] func(data []byte, prev T, hasPrev bool) (T, error)

// Cell memoizes one decoded view of a resource, keyed by the fingerprint of its raw bytes.
// Failures are cached like values. A Cell is not safe for concurrent use; Slot serializes access.
type Cell[T any] struct {
	value       T
	err         error
	filled      bool
	fingerprint domain.Fingerprint
	accessed    bool
}

// GetOrInit returns the decoded value, loading and decoding only when needed:
// a cell already accessed in this cycle returns its cached result without I/O, and a cell whose
// freshly loaded content has an unchanged fingerprint returns its cached result without decoding.
func (c *Cell[T]) GetOrInit(hasher ports.Hasher, load LoadFunc, decode Decoder[T]) (T, error) {
	wasAccessed := c.accessed
	c.accessed = true
	if wasAccessed && c.filled {
		return c.value, c.err
	}

	data, err := load()
	fingerprint := hasher.Fingerprint(data, err)

	if c.filled && fingerprint == c.fingerprint {
		return c.value, c.err
	}
	c.fingerprint = fingerprint

	prev, hasPrev := c.value, c.filled && c.err == nil

	var value T
	if err == nil {
		value, err = decode(data, prev, hasPrev)
		if err != nil {
			var zero T
			value = zero
		}
	}

	c.value, c.err, c.filled = value, err, true
	return value, err
}

// Get returns the cached result without loading. It is the zero value until the cell is filled.
func (c *Cell[T]) Get() (T, error) {
	return c.value, c.err
}

// Filled reports whether the cell holds a result.
func (c *Cell[T]) Filled() bool {
	return c.filled
}

// Fingerprint returns the fingerprint of the content the cached result was derived from.
func (c *Cell[T]) Fingerprint() (domain.Fingerprint, bool) {
	return c.fingerprint, c.filled
}

// Accessed reports whether the cell was requested since the last Reset.
func (c *Cell[T]) Accessed() bool {
	return c.accessed
}

// Reset marks the cell as not yet accessed. The cached result is kept.
func (c *Cell[T]) Reset() {
	c.accessed = false
}

// Seed fills the cell with a value derived from content with the given fingerprint and marks it accessed.
func (c *Cell[T]) Seed(value T, fingerprint domain.Fingerprint) {
	c.value, c.err, c.filled = value, nil, true
	c.fingerprint = fingerprint
	c.accessed = true
}
