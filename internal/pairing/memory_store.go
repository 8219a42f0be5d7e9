package pairing

import (
	"sync"
	"time"

	"home-inventory/internal/models"
)

// MemoryStore is an in-memory implementation of Store, used in tests and
// single-node setups without redis.
type MemoryStore struct {
	mu     sync.Mutex
	byCode map[string]models.PairingCode
	byInst map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byCode: map[string]models.PairingCode{},
		byInst: map[string]string{},
	}
}

func (s *MemoryStore) Save(code models.PairingCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	inst := code.InstallationID.String()
	if old, ok := s.byInst[inst]; ok {
		delete(s.byCode, old)
	}
	s.byCode[code.Code] = code
	s.byInst[inst] = code.Code
	return nil
}

func (s *MemoryStore) Find(code string) (models.PairingCode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pc, ok := s.byCode[code]
	if !ok {
		return models.PairingCode{}, ErrCodeNotFound
	}
	if time.Now().After(pc.ExpiresAt) {
		return models.PairingCode{}, ErrCodeExpired
	}
	return pc, nil
}
