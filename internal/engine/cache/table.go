package cache

import (
	"iter"
	"slices"
	"sync"

	"go.trai.ch/quire/internal/core/domain"
	"go.trai.ch/quire/internal/core/ports"
)

// Table maps resource identifiers to slots. The table lock covers only lookup and insertion;
// work on a slot is serialized by the slot's own lock, so distinct resources load in parallel
// while a single resource is loaded and decoded at most once per distinct content.
type Table struct {
	mu     sync.Mutex
	slots  map[domain.ResourceID]*Slot
	loader ports.Loader
	hasher ports.Hasher
}

// NewTable creates an empty table reading through loader.
func NewTable(loader ports.Loader, hasher ports.Hasher) *Table {
	return &Table{
		slots:  make(map[domain.ResourceID]*Slot),
		loader: loader,
		hasher: hasher,
	}
}

// WithSlot runs f on the slot for id, creating the slot on first use. f has exclusive access to the slot.
func WithSlot[T any](t *Table, id domain.ResourceID, f func(*Slot) T) T {
	s := t.slot(id)
	s.mu.Lock()
	defer s.mu.Unlock()
	return f(s)
}

func (t *Table) slot(id domain.ResourceID) *Slot {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.slots[id]
	if !ok {
		s = NewSlot(id)
		t.slots[id] = s
	}
	return s
}

// Text returns the resource decoded as text.
func (t *Table) Text(id domain.ResourceID) (*domain.Source, error) {
	var err error
	src := WithSlot(t, id, func(s *Slot) *domain.Source {
		var src *domain.Source
		src, err = s.Text(t.loader, t.hasher)
		return src
	})
	return src, err
}

// Bytes returns the raw resource.
func (t *Table) Bytes(id domain.ResourceID) (domain.Bytes, error) {
	var err error
	b := WithSlot(t, id, func(s *Slot) domain.Bytes {
		var b domain.Bytes
		b, err = s.Bytes(t.loader, t.hasher)
		return b
	})
	return b, err
}

// Insert stores s, replacing any slot with the same identifier.
func (t *Table) Insert(s *Slot) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.slots[s.ID()] = s
}

// Pin replaces the content of an existing slot with text. It reports false when there is no slot for id.
func (t *Table) Pin(id domain.ResourceID, text string) bool {
	t.mu.Lock()
	s, ok := t.slots[id]
	t.mu.Unlock()
	if !ok {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.Pin(text)
	return true
}

// Lookup returns the line index of a resource that was already loaded. It never creates a slot.
func (t *Table) Lookup(id domain.ResourceID) (domain.Lines, error) {
	t.mu.Lock()
	s, ok := t.slots[id]
	t.mu.Unlock()
	if !ok {
		return domain.Lines{}, domain.ErrNotLoaded
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Lines()
}

// ResetAll marks every slot as not yet accessed, starting a new cycle.
func (t *Table) ResetAll() {
	for _, s := range t.snapshot() {
		s.mu.Lock()
		s.Reset()
		s.mu.Unlock()
	}
}

// Dependencies yields the sorted system paths of every resource accessed in the current cycle.
// Resources without a system path, such as standard input, are skipped.
func (t *Table) Dependencies() iter.Seq[string] {
	paths := make([]string, 0)
	for s := range t.accessed() {
		if path, err := t.loader.Resolve(s.ID()); err == nil {
			paths = append(paths, path)
		}
	}
	slices.Sort(paths)
	return slices.Values(slices.Compact(paths))
}

// Fingerprints maps the system path of every resource accessed in the current cycle to the
// fingerprint of its content.
func (t *Table) Fingerprints() map[string]domain.Fingerprint {
	out := make(map[string]domain.Fingerprint)
	for s, fp := range t.accessed() {
		if path, err := t.loader.Resolve(s.ID()); err == nil {
			out[path] = fp
		}
	}
	return out
}

// Len returns the number of slots.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.slots)
}

func (t *Table) accessed() iter.Seq2[*Slot, domain.Fingerprint] {
	return func(yield func(*Slot, domain.Fingerprint) bool) {
		for _, s := range t.snapshot() {
			s.mu.Lock()
			ok := s.Accessed()
			fp, _ := s.Fingerprint()
			s.mu.Unlock()
			if ok && !yield(s, fp) {
				return
			}
		}
	}
}

func (t *Table) snapshot() []*Slot {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]*Slot, 0, len(t.slots))
	for _, s := range t.slots {
		out = append(out, s)
	}
	return out
}
