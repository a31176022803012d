package memory

import (
	"sync"

	"github.com/ProMBZ/Teacher-Project/internal/domain/models"
)

// Repository defines the interface for finalized record storage.
type Repository interface {
	Append(record models.FinalizedRecord)
	List() []models.FinalizedRecord
	Len() int
	HasDate(date string) bool
}

// RecordStore is the in-memory, append-only Repository implementation.
// Records keep their insertion order and are never mutated or removed; the
// store lives and dies with its session.
type RecordStore struct {
	mu      sync.RWMutex
	records []models.FinalizedRecord
}

// NewRecordStore creates an empty store.
func NewRecordStore() *RecordStore {
	return &RecordStore{}
}

// Append adds a finalized record at the end of the store.
func (s *RecordStore) Append(record models.FinalizedRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record)
}

// List returns a copy of the stored records in insertion order.
func (s *RecordStore) List() []models.FinalizedRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.FinalizedRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Len reports how many records have been finalized.
func (s *RecordStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// HasDate reports whether any stored record carries the given date string.
func (s *RecordStore) HasDate(date string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, record := range s.records {
		if record.Date == date {
			return true
		}
	}
	return false
}
