package domain

import (
	"sort"
	"time"
)

// RecordStore keeps at most one entry per calendar day, sorted ascending by date.
type RecordStore struct {
	entries []StepEntry
}

func NewRecordStore(seed []StepEntry) *RecordStore {
	s := &RecordStore{}
	for _, e := range seed {
		s.put(StepEntry{Date: NormalizeDate(e.Date), Steps: e.Steps})
	}
	return s
}

// Upsert validates the entry against now and either replaces the entry for
// the same calendar day or inserts a new one. On error the store is unchanged.
func (s *RecordStore) Upsert(date time.Time, steps int, now time.Time) (StepEntry, error) {
	entry, err := NewStepEntry(date, steps, now)
	if err != nil {
		return StepEntry{}, err
	}
	s.put(entry)
	return entry, nil
}

func (s *RecordStore) put(entry StepEntry) {
	i := sort.Search(len(s.entries), func(i int) bool {
		return !s.entries[i].Date.Before(entry.Date)
	})

	if i < len(s.entries) && SameDay(s.entries[i].Date, entry.Date) {
		s.entries[i] = entry
		return
	}

	s.entries = append(s.entries, StepEntry{})
	copy(s.entries[i+1:], s.entries[i:])
	s.entries[i] = entry
}

// All returns a copy of the ordered entries.
func (s *RecordStore) All() []StepEntry {
	out := make([]StepEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *RecordStore) Len() int {
	return len(s.entries)
}
