package domain

import "bytes"

// Bytes is the raw content of a resource. Copies share the same backing array,
// which callers must treat as read-only.
type Bytes struct {
	data []byte
}

// NewBytes takes ownership of b.
func NewBytes(b []byte) Bytes {
	return Bytes{data: b}
}

// Data returns the content. It must not be modified.
func (b Bytes) Data() []byte {
	return b.data
}

// Len returns the number of bytes.
func (b Bytes) Len() int {
	return len(b.data)
}

// Equal reports whether both hold the same content.
func (b Bytes) Equal(other Bytes) bool {
	return bytes.Equal(b.data, other.data)
}
