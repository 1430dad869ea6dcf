// Package session composes the resource table and clock into the world a compiler reads from.
package session

import (
	"iter"
	"maps"
	"sync"

	"go.trai.ch/quire/internal/core/domain"
	"go.trai.ch/quire/internal/core/ports"
	"go.trai.ch/quire/internal/engine/cache"
	"go.trai.ch/quire/internal/engine/clock"
)

var _ ports.World = (*Session)(nil)

// InjectedMainID identifies main documents handed to the session as in-memory text.
var InjectedMainID = domain.NewDetachedID("<input>")

// Options holds the optional parts of a session.
type Options struct {
	// Clock supplies the current date. Nil selects a lazy wall clock.
	Clock *clock.Clock
	// Inputs are the key/value pairs documents can read.
	Inputs map[string]string
}

// Session is the state shared by all compilation cycles of one project. Root and working directory
// are fixed; the main document may be swapped between cycles.
type Session struct {
	root    string
	workdir string
	table   *cache.Table
	clock   *clock.Clock
	hasher  ports.Hasher
	inputs  map[string]string

	mu   sync.RWMutex
	main domain.ResourceID
}

// New creates a session for project reading resources through loader.
func New(project domain.Project, loader ports.Loader, hasher ports.Hasher, opts Options) *Session {
	clk := opts.Clock
	if clk == nil {
		clk = clock.NewLazy(nil)
	}
	workdir := project.Workdir
	if workdir == "" {
		workdir = "."
	}
	return &Session{
		root:    project.Root,
		workdir: workdir,
		table:   cache.NewTable(loader, hasher),
		clock:   clk,
		hasher:  hasher,
		inputs:  maps.Clone(opts.Inputs),
		main:    project.Main,
	}
}

// MainID returns the identifier of the main document.
func (s *Session) MainID() domain.ResourceID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.main
}

// SetMain makes id the main document of the following cycles.
func (s *Session) SetMain(id domain.ResourceID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.main = id
}

// InjectMain makes text the main document, as if it had been read from a file.
// Injecting again edits the previously injected document instead of replacing it.
func (s *Session) InjectMain(text string) domain.ResourceID {
	if !s.table.Pin(InjectedMainID, text) {
		s.table.Insert(cache.NewPinnedSlot(InjectedMainID, text, s.hasher.Fingerprint([]byte(text), nil)))
	}
	s.SetMain(InjectedMainID)
	return InjectedMainID
}

// Text returns the resource decoded as text.
func (s *Session) Text(id domain.ResourceID) (*domain.Source, error) {
	return s.table.Text(id)
}

// Bytes returns the raw resource.
func (s *Session) Bytes(id domain.ResourceID) (domain.Bytes, error) {
	return s.table.Bytes(id)
}

// Today returns the current date, offset in hours from UTC or in the local time zone when offset is nil.
func (s *Session) Today(offset *int64) (domain.Datetime, bool) {
	return s.clock.Now(offset)
}

// Input returns a user-supplied input value.
func (s *Session) Input(key string) (string, bool) {
	v, ok := s.inputs[key]
	return v, ok
}

// Inputs returns a copy of all user-supplied inputs.
func (s *Session) Inputs() map[string]string {
	return maps.Clone(s.inputs)
}

// Lookup returns the line index of a resource loaded in this session without reading it again.
func (s *Session) Lookup(id domain.ResourceID) (domain.Lines, error) {
	return s.table.Lookup(id)
}

// Root returns the directory virtual paths resolve against.
func (s *Session) Root() string {
	return s.root
}

// Workdir returns the working directory captured when the session was created.
func (s *Session) Workdir() string {
	return s.workdir
}

// Reset starts a new cycle: every resource counts as not yet accessed and a lazy clock is re-read.
// Decoded content is kept.
func (s *Session) Reset() {
	s.table.ResetAll()
	s.clock.Reset()
}

// Dependencies yields the sorted system paths of the resources the current cycle read.
func (s *Session) Dependencies() iter.Seq[string] {
	return s.table.Dependencies()
}

// DependencyFingerprints maps each dependency of the current cycle to its content fingerprint.
func (s *Session) DependencyFingerprints() map[string]string {
	out := make(map[string]string)
	for path, fp := range s.table.Fingerprints() {
		out[path] = fp.String()
	}
	return out
}

// Resources returns the number of resources the session has seen.
func (s *Session) Resources() int {
	return s.table.Len()
}
