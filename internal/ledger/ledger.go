// Package ledger holds the ordered collection of entries.
//
// New entries are inserted at the head, so store order is reverse creation order.
// The ledger is owned by a single logical actor and does no locking.
package ledger

import (
	"fjacquet/kakeibo/internal/entryerror"
	"fjacquet/kakeibo/internal/models"
)

// Ledger is the in-memory entry store
type Ledger struct {
	entries []models.Entry
	ids     *IDGenerator
}

// New creates a ledger holding entries in the given store order.
// The ID generator is seeded past the highest loaded ID.
func New(entries []models.Entry, ids *IDGenerator) *Ledger {
	if ids == nil {
		ids = NewIDGenerator(nil)
	}
	l := &Ledger{
		entries: make([]models.Entry, len(entries)),
		ids:     ids,
	}
	copy(l.entries, entries)
	for _, e := range entries {
		ids.Observe(e.ID)
	}
	return l
}

// Add inserts entry at the head. No deduplication is performed.
func (l *Ledger) Add(entry models.Entry) {
	l.entries = append(l.entries, models.Entry{})
	copy(l.entries[1:], l.entries)
	l.entries[0] = entry
	l.ids.Observe(entry.ID)
}

// Create validates input, assigns a fresh ID and adds the resulting entry.
// On error nothing is added.
func (l *Ledger) Create(input models.EntryInput) (models.Entry, error) {
	entry, err := models.NewEntry(l.ids.Peek(), input)
	if err != nil {
		return models.Entry{}, err
	}
	entry.ID = l.ids.Next()
	l.Add(entry)
	return entry, nil
}

// RemoveByID deletes the entry with id. It returns an error wrapping
// entryerror.ErrEntryNotFound when no entry has that id.
func (l *Ledger) RemoveByID(id int64) error {
	for i, e := range l.entries {
		if e.ID == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return nil
		}
	}
	return entryerror.NotFound(id)
}

// Find returns the entry with id
func (l *Ledger) Find(id int64) (models.Entry, bool) {
	for _, e := range l.entries {
		if e.ID == id {
			return e, true
		}
	}
	return models.Entry{}, false
}

// FilterByMonth returns the entries dated within the YYYY-MM month, in store order.
func (l *Ledger) FilterByMonth(monthKey string) []models.Entry {
	out := make([]models.Entry, 0)
	for _, e := range l.entries {
		if e.InMonth(monthKey) {
			out = append(out, e)
		}
	}
	return out
}

// Entries returns a copy of all entries in store order
func (l *Ledger) Entries() []models.Entry {
	out := make([]models.Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Reset replaces all entries, keeping the ID generator.
// Used to roll back a change that could not be persisted.
func (l *Ledger) Reset(entries []models.Entry) {
	l.entries = make([]models.Entry, len(entries))
	copy(l.entries, entries)
	for _, e := range entries {
		l.ids.Observe(e.ID)
	}
}

// Len returns the number of entries
func (l *Ledger) Len() int {
	return len(l.entries)
}
