package cache

import (
	"sync"

	"go.trai.ch/quire/internal/core/domain"
	"go.trai.ch/quire/internal/core/ports"
)

// Slot holds the text and bytes views of one resource. Slots live as long as their table;
// only the content of their cells is refreshed.
type Slot struct {
	mu     sync.Mutex
	id     domain.ResourceID
	text   Cell[*domain.Source]
	bytes  Cell[domain.Bytes]
	pinned []byte
	pin    bool
}

// NewSlot creates an empty slot for id.
func NewSlot(id domain.ResourceID) *Slot {
	return &Slot{id: id}
}

// NewPinnedSlot creates a slot whose content is text instead of anything the loader returns.
// The text view is pre-populated and counts as accessed.
func NewPinnedSlot(id domain.ResourceID, text string, fingerprint domain.Fingerprint) *Slot {
	s := &Slot{id: id, pinned: []byte(text), pin: true}
	s.text.Seed(domain.NewSource(id, text), fingerprint)
	return s
}

// ID returns the identifier the slot belongs to.
func (s *Slot) ID() domain.ResourceID {
	return s.id
}

// Text returns the resource decoded as text.
func (s *Slot) Text(loader ports.Loader, hasher ports.Hasher) (*domain.Source, error) {
	return s.text.GetOrInit(hasher, s.loadFunc(loader), sourceDecoder(s.id))
}

// Bytes returns the raw resource.
func (s *Slot) Bytes(loader ports.Loader, hasher ports.Hasher) (domain.Bytes, error) {
	return s.bytes.GetOrInit(hasher, s.loadFunc(loader), bytesDecoder)
}

// Pin replaces the slot's content with text and forces both views to be re-evaluated on next access.
// A previously decoded text view is edited rather than rebuilt.
func (s *Slot) Pin(text string) {
	s.pinned, s.pin = []byte(text), true
	s.Reset()
}

// Lines returns the line index of the content loaded so far, without I/O.
func (s *Slot) Lines() (domain.Lines, error) {
	if s.text.Filled() {
		src, err := s.text.Get()
		if err != nil {
			return domain.Lines{}, err
		}
		return src.Lines(), nil
	}
	if s.bytes.Filled() {
		b, err := s.bytes.Get()
		if err != nil {
			return domain.Lines{}, err
		}
		return domain.LinesFromBytes(b.Data())
	}
	return domain.Lines{}, domain.ErrNotLoaded
}

// Fingerprint returns the fingerprint of the most recently loaded content.
func (s *Slot) Fingerprint() (domain.Fingerprint, bool) {
	if fp, ok := s.text.Fingerprint(); ok {
		return fp, true
	}
	return s.bytes.Fingerprint()
}

// Accessed reports whether either view was requested since the last Reset.
func (s *Slot) Accessed() bool {
	return s.text.Accessed() || s.bytes.Accessed()
}

// Reset marks both views as not yet accessed.
func (s *Slot) Reset() {
	s.text.Reset()
	s.bytes.Reset()
}

func (s *Slot) loadFunc(loader ports.Loader) LoadFunc {
	if s.pin {
		return func() ([]byte, error) { return s.pinned, nil }
	}
	return func() ([]byte, error) { return loader.Load(s.id) }
}
