package fitness

import (
	"sync"
	"time"
)

// Store keeps daily records in memory, at most one per calendar day, in insertion order.
type Store struct {
	mutex   sync.RWMutex
	records []Record
	index   map[string]int
}

func NewStore() *Store {
	return &Store{
		index: make(map[string]int),
	}
}

// Upsert overwrites the record for date in place if one exists, otherwise appends a new one.
// Returns true when a new record was appended.
func (s *Store) Upsert(date time.Time, steps int, sleepHours float64, caloriesBurned int) (bool, error) {
	rec := Record{
		Date:           Day(date),
		Steps:          steps,
		SleepHours:     sleepHours,
		CaloriesBurned: caloriesBurned,
	}
	if err := rec.validate(); err != nil {
		return false, err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if i, ok := s.index[rec.DateString()]; ok {
		s.records[i] = rec
		return false, nil
	}

	s.index[rec.DateString()] = len(s.records)
	s.records = append(s.records, rec)
	return true, nil
}

// List returns a copy of all records in insertion order.
func (s *Store) List() []Record {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.records)
}
