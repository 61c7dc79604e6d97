package credstore

import (
	"context"
	"sync"
)

// MemoryStorage implements Storage with a mutex-guarded map. Records are
// deep-copied on the way in and out so callers never alias stored state.
type MemoryStorage struct {
	mu      sync.RWMutex
	records map[string]*Record
}

// NewMemoryStorage creates an empty in-memory credential storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{records: make(map[string]*Record)}
}

func (m *MemoryStorage) Get(ctx context.Context, key string) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.records[key]
	if !ok {
		return nil, ErrRecordNotFound
	}
	return copyRecord(record), nil
}

func (m *MemoryStorage) Put(ctx context.Context, key string, record *Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[key] = copyRecord(record)
	return nil
}

func (m *MemoryStorage) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[key]; !ok {
		return ErrRecordNotFound
	}
	delete(m.records, key)
	return nil
}

func (m *MemoryStorage) Fold(ctx context.Context, acc any, fn func(acc any, record *Record) any) (any, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, record := range m.records {
		acc = fn(acc, copyRecord(record))
	}
	return acc, nil
}

// copyRecord deep-copies a record including its slice-valued fields.
func copyRecord(r *Record) *Record {
	out := *r
	out.PassphraseHash = append([]byte(nil), r.PassphraseHash...)
	out.Salt = append([]byte(nil), r.Salt...)
	out.RecoverySalt = append([]byte(nil), r.RecoverySalt...)
	out.TOTPBackupCodes = append([]string(nil), r.TOTPBackupCodes...)
	out.TOTPBackupSalt = append([]byte(nil), r.TOTPBackupSalt...)
	out.TOTPPendingBackupCodes = append([]string(nil), r.TOTPPendingBackupCodes...)
	out.TOTPPendingBackupSalt = append([]byte(nil), r.TOTPPendingBackupSalt...)
	out.Profile = r.Profile.clone()
	return &out
}
