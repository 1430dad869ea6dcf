package ports

import "go.trai.ch/quire/internal/core/domain"

//go:generate mockgen -source=world.go -destination=mocks/mock_world.go -package=mocks

// World is the read-only view of a compilation that a compiler is handed.
// Implementations are safe for concurrent use.
type World interface {
	// MainID returns the identifier of the main document.
	MainID() domain.ResourceID
	// Text returns the resource decoded as UTF-8 text.
	Text(id domain.ResourceID) (*domain.Source, error)
	// Bytes returns the raw resource.
	Bytes(id domain.ResourceID) (domain.Bytes, error)
	// Today returns the current date. A nil offset selects the local time zone, otherwise the
	// offset is in hours from UTC. It reports false when the date cannot be represented.
	Today(offset *int64) (domain.Datetime, bool)
	// Input returns a user-supplied input value.
	Input(key string) (string, bool)
	// Lookup returns the line index of a resource already read in this compilation.
	Lookup(id domain.ResourceID) (domain.Lines, error)
}
