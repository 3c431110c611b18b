package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps each collection in <dir>/<collection>.json. Individual reads
// and writes are serialized per collection within the process; read-modify-write
// cycles across requests still race, so concurrent writers can lose updates.
type FileStore struct {
	dir string

	mu    sync.Mutex // guards locks
	locks map[string]*sync.Mutex
}

// Ensure FileStore implements Store
var _ Store = (*FileStore)(nil)

// NewFileStore creates the data directory if needed and returns a store.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{
		dir:   dir,
		locks: make(map[string]*sync.Mutex),
	}, nil
}

func (s *FileStore) lock(collection string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[collection]
	if !ok {
		l = &sync.Mutex{}
		s.locks[collection] = l
	}
	return l
}

func (s *FileStore) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// Read decodes the collection file into out, reporting found=false when the
// file does not exist.
func (s *FileStore) Read(_ context.Context, collection string, out interface{}) (bool, error) {
	l := s.lock(collection)
	l.Lock()
	defer l.Unlock()

	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", collection, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("decode %s: %w", collection, err)
	}
	return true, nil
}

// Replace writes data as the new collection file.
func (s *FileStore) Replace(_ context.Context, collection string, data interface{}) error {
	l := s.lock(collection)
	l.Lock()
	defer l.Unlock()

	payload, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", collection, err)
	}
	if err := os.WriteFile(s.path(collection), payload, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", collection, err)
	}
	return nil
}
