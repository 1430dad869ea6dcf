package domain

import "fmt"

// Fingerprint is a 128-bit hash of a resource's raw bytes or of the error that prevented reading them.
// Equal fingerprints are taken to mean equal content.
type Fingerprint struct {
	Hi uint64
	Lo uint64
}

// IsZero reports whether the fingerprint was never computed.
func (f Fingerprint) IsZero() bool {
	return f == Fingerprint{}
}

func (f Fingerprint) String() string {
	return fmt.Sprintf("%016x%016x", f.Hi, f.Lo)
}
