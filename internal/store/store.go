package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go-salon-api/internal/model"
)

// DocumentStore gives serialized read-modify-write access to named JSON
// documents on disk. Every document lives in its own file under dir and is
// guarded by its own mutex, so concurrent mutations of the same document
// never interleave while different documents stay independent.
//
// Cross-process access to the backing files is not supported.
type DocumentStore struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New(dir string) (*DocumentStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("document store: dir is required")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("document store: %w", err)
	}

	return &DocumentStore{
		dir:   dir,
		locks: map[string]*sync.Mutex{},
	}, nil
}

// Read decodes the named document into out. A missing document is not an
// error: out keeps whatever default the caller initialized it with.
func (s *DocumentStore) Read(name string, out any) error {
	lock := s.lockFor(name)
	lock.Lock()
	defer lock.Unlock()

	return s.readLocked(name, out)
}

// Write replaces the named document as a whole.
func (s *DocumentStore) Write(name string, v any) error {
	lock := s.lockFor(name)
	lock.Lock()
	defer lock.Unlock()

	return s.writeLocked(name, v)
}

// Update runs a read-modify-write cycle as one critical section: the current
// document is decoded into doc, mutate adjusts it through that pointer, and
// the result is written back. If mutate returns an error the document is left
// untouched.
func (s *DocumentStore) Update(name string, doc any, mutate func() error) error {
	lock := s.lockFor(name)
	lock.Lock()
	defer lock.Unlock()

	if err := s.readLocked(name, doc); err != nil {
		return err
	}

	if err := mutate(); err != nil {
		return err
	}

	return s.writeLocked(name, doc)
}

// Ensure seeds the named document with def if no backing file exists yet.
func (s *DocumentStore) Ensure(name string, def any) error {
	lock := s.lockFor(name)
	lock.Lock()
	defer lock.Unlock()

	if _, err := os.Stat(s.path(name)); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("%w: stat %s: %v", model.ErrStorageIO, name, err)
	}

	return s.writeLocked(name, def)
}

func (s *DocumentStore) readLocked(name string, out any) error {
	data, err := os.ReadFile(s.path(name))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: read %s: %v", model.ErrStorageIO, name, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: decode %s: %v", model.ErrStorageIO, name, err)
	}

	return nil
}

// writeLocked replaces the document atomically: the new content lands in a
// temp file first and is renamed over the old one, so an aborted write never
// leaves a half-written document behind.
func (s *DocumentStore) writeLocked(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", model.ErrStorageIO, name, err)
	}

	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: write %s: %v", model.ErrStorageIO, name, err)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("%w: write %s: %v", model.ErrStorageIO, name, err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("%w: write %s: %v", model.ErrStorageIO, name, err)
	}

	if err := os.Rename(tmp.Name(), s.path(name)); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("%w: write %s: %v", model.ErrStorageIO, name, err)
	}

	return nil
}

func (s *DocumentStore) lockFor(name string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, exists := s.locks[name]
	if !exists {
		lock = &sync.Mutex{}
		s.locks[name] = lock
	}

	return lock
}

func (s *DocumentStore) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}
