package ports

import "go.trai.ch/quire/internal/core/domain"

// Hasher computes content fingerprints.
//
//go:generate mockgen -destination=mocks/mock_hasher.go -package=mocks -source=hasher.go
type Hasher interface {
	// Fingerprint hashes the outcome of a load: the bytes when err is nil, otherwise the error.
	Fingerprint(data []byte, err error) domain.Fingerprint
	// FingerprintFile reads a file from disk and fingerprints the outcome like Fingerprint.
	FingerprintFile(path string) domain.Fingerprint
}
