package fs

import (
	"github.com/cespare/xxhash/v2"
	"go.trai.ch/quire/internal/core/domain"
	"go.trai.ch/quire/internal/core/ports"
)

var _ ports.Hasher = (*Hasher)(nil)

// Seeds of the two 64-bit lanes making up a fingerprint.
const (
	hiSeed uint64 = 0x9E3779B97F4A7C15
	loSeed uint64 = 0xC2B2AE3D27D4EB4F
)

// Hasher fingerprints load results with two independently seeded XXHash lanes.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Fingerprint hashes data, or err when the load failed. Errors hash their kind, path and message,
// so a resource that changes from missing to denied counts as changed.
func (h *Hasher) Fingerprint(data []byte, err error) domain.Fingerprint {
	hi := xxhash.NewWithSeed(hiSeed)
	lo := xxhash.NewWithSeed(loSeed)

	for _, d := range []*xxhash.Digest{hi, lo} {
		if err != nil {
			h.hashError(d, err)
			continue
		}
		_, _ = d.WriteString("ok")
		_, _ = d.Write([]byte{0})
		_, _ = d.Write(data)
	}

	return domain.Fingerprint{Hi: hi.Sum64(), Lo: lo.Sum64()}
}

// FingerprintFile reads path the way the loader does and fingerprints the outcome.
func (h *Hasher) FingerprintFile(path string) domain.Fingerprint {
	return h.Fingerprint(ReadFile(path))
}

func (h *Hasher) hashError(d *xxhash.Digest, err error) {
	_, _ = d.WriteString("err")
	_, _ = d.Write([]byte{0})
	if kind, ok := domain.FileErrorKindOf(err); ok {
		_, _ = d.WriteString(kind.String())
		_, _ = d.Write([]byte{0})
	}
	_, _ = d.WriteString(err.Error())
}
