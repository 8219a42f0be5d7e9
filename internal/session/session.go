// Package session holds the single installation identifier a device is
// paired with. Storage is an injected capability so callers decide where
// the id lives.
package session

import (
	"encoding/json"
	"errors"
	"os"
	"sync"
)

// ErrNoSession is returned when no installation id has been saved yet.
var ErrNoSession = errors.New("no installation session")

// Store persists exactly one installation identifier.
type Store interface {
	Save(id string) error
	Load() (string, error)
	Clear() error
}

// Manager wraps a Store. It performs no validation of the id's shape; that
// is the caller's job.
type Manager struct {
	store Store
}

func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

func (m *Manager) SaveID(id string) error {
	return m.store.Save(id)
}

func (m *Manager) ID() (string, error) {
	return m.store.Load()
}

func (m *Manager) Clear() error {
	return m.store.Clear()
}

type fileState struct {
	InstallationID string `json:"installation_id"`
}

// FileStore keeps the id in a small JSON file, the durable-storage analog
// of the browser's localStorage.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Save(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(fileState{InstallationID: id}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0600)
}

func (s *FileStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoSession
		}
		return "", err
	}

	var state fileState
	if err := json.Unmarshal(data, &state); err != nil {
		return "", err
	}
	if state.InstallationID == "" {
		return "", ErrNoSession
	}
	return state.InstallationID, nil
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	mu sync.Mutex
	id string
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) Save(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.id = id
	return nil
}

func (s *MemStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.id == "" {
		return "", ErrNoSession
	}
	return s.id, nil
}

func (s *MemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.id = ""
	return nil
}
