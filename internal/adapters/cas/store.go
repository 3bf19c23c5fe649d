// Package cas implements index snapshot storage.
package cas

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/fxamacker/cbor/v2"
	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/lode/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultPath is where snapshots are kept relative to the working directory.
const DefaultPath = ".lode/snapshots.cbor"

var _ ports.SnapshotStore = (*Store)(nil)

// encMode uses core deterministic encoding: the same snapshots always produce
// the same bytes.
var encMode cbor.EncMode

func init() {
	opts := cbor.CoreDetEncOptions()
	opts.Time = cbor.TimeRFC3339Nano
	var err error
	encMode, err = opts.EncMode()
	if err != nil {
		panic("cas: CBOR encoder initialization failed: " + err.Error())
	}
}

// Store implements ports.SnapshotStore using a single CBOR file.
// The file is read on first use. An unreadable file fails Get; the next Put
// replaces it.
type Store struct {
	path   string
	mu     sync.Mutex
	loaded bool
	cache  map[string]domain.IndexSnapshot
}

// NewStore creates a store backed by DefaultPath.
func NewStore() *Store {
	return NewStoreWithPath(DefaultPath)
}

// NewStoreWithPath creates a store backed by the file at the given path.
// A missing file is an empty store.
func NewStoreWithPath(path string) *Store {
	return &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.IndexSnapshot),
	}
}

// load reads the file once it is known to decode. Callers hold the lock.
func (s *Store) load() error {
	if s.loaded {
		return nil
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(fmt.Errorf("%w: %w", domain.ErrStoreReadFailed, err), "path", s.path)
	}

	cache := make(map[string]domain.IndexSnapshot)
	if len(data) > 0 {
		if err := cbor.Unmarshal(data, &cache); err != nil {
			return zerr.With(fmt.Errorf("%w: %w", domain.ErrStoreDecodeFailed, err), "path", s.path)
		}
	}

	s.cache = cache
	s.loaded = true
	return nil
}

// Get retrieves the snapshot for a manifest path.
func (s *Store) Get(manifestPath string) (*domain.IndexSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return nil, err
	}

	snapshot, ok := s.cache[manifestPath]
	if !ok {
		return nil, nil
	}
	return &snapshot, nil
}

// Put stores the snapshot and persists the store.
func (s *Store) Put(snapshot domain.IndexSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		// Start over rather than keep a file nothing can read.
		s.cache = make(map[string]domain.IndexSnapshot)
		s.loaded = true
	}

	s.cache[snapshot.ManifestPath] = snapshot
	return s.save()
}

// save writes the whole store. Callers hold the lock.
func (s *Store) save() error {
	data, err := encMode.Marshal(s.cache)
	if err != nil {
		return zerr.With(fmt.Errorf("%w: %w", domain.ErrStoreEncodeFailed, err), "path", s.path)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return zerr.With(fmt.Errorf("%w: %w", domain.ErrStoreCreateFailed, err), "path", s.path)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.With(fmt.Errorf("%w: %w", domain.ErrStoreWriteFailed, err), "path", s.path)
	}

	return nil
}
