package cache_test

import (
	"errors"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/quire/internal/core/domain"
)

// testHasher fingerprints with a single xxhash lane, which is enough to tell test contents apart.
type testHasher struct{}

func (testHasher) Fingerprint(data []byte, err error) domain.Fingerprint {
	if err != nil {
		return domain.Fingerprint{Hi: 1, Lo: xxhash.Sum64String(err.Error())}
	}
	return domain.Fingerprint{Lo: xxhash.Sum64(data)}
}

func (testHasher) FingerprintFile(string) domain.Fingerprint {
	return domain.Fingerprint{}
}

// memLoader serves resources from memory and counts loads per identifier.
type memLoader struct {
	mu    sync.Mutex
	files map[domain.ResourceID][]byte
	loads map[domain.ResourceID]*atomic.Int64
}

func newMemLoader() *memLoader {
	return &memLoader{
		files: make(map[domain.ResourceID][]byte),
		loads: make(map[domain.ResourceID]*atomic.Int64),
	}
}

func (l *memLoader) set(id domain.ResourceID, content string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.files[id] = []byte(content)
}

func (l *memLoader) remove(id domain.ResourceID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.files, id)
}

func (l *memLoader) count(id domain.ResourceID) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if c, ok := l.loads[id]; ok {
		return c.Load()
	}
	return 0
}

func (l *memLoader) Resolve(id domain.ResourceID) (string, error) {
	if id.Detached() {
		return "", errors.New("detached")
	}
	return id.VirtualPath().Resolve("/project")
}

func (l *memLoader) Load(id domain.ResourceID) ([]byte, error) {
	l.mu.Lock()
	c, ok := l.loads[id]
	if !ok {
		c = &atomic.Int64{}
		l.loads[id] = c
	}
	data, found := l.files[id]
	l.mu.Unlock()

	c.Add(1)
	if !found {
		path, _ := l.Resolve(id)
		return nil, domain.NewFileError(domain.KindNotFound, filepath.ToSlash(path), nil)
	}
	return data, nil
}

func fileID(p string) domain.ResourceID {
	return domain.NewResourceID(domain.PackageSpec{}, domain.NewVirtualPath(p))
}
