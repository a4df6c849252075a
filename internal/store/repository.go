package store

import (
	"context"
	"encoding/json"
	"fmt"

	"fjacquet/kakeibo/internal/logging"
	"fjacquet/kakeibo/internal/models"
)

// Repository maps the entry list and the budget onto a KeyValueStore.
// Entries are a JSON array under "kakeibo_entries", the budget is the raw
// number string under "kakeibo_budget".
type Repository struct {
	kv     KeyValueStore
	logger logging.Logger
}

// NewRepository creates a Repository over kv
func NewRepository(kv KeyValueStore, logger logging.Logger) *Repository {
	return &Repository{kv: kv, logger: logger}
}

// Load returns the persisted entries in store order.
// Missing, unreadable or malformed data degrades to an empty list with a warning.
func (r *Repository) Load(ctx context.Context) []models.Entry {
	raw, ok, err := r.kv.Get(ctx, models.StorageKeyEntries)
	if err != nil {
		r.logger.WithError(err).WithField(logging.FieldKey, models.StorageKeyEntries).
			Warn("Failed to read entries, starting empty")
		return []models.Entry{}
	}
	if !ok || raw == "" {
		return []models.Entry{}
	}

	var entries []models.Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		r.logger.WithError(err).WithField(logging.FieldKey, models.StorageKeyEntries).
			Warn("Stored entries are malformed, starting empty")
		return []models.Entry{}
	}

	entries = r.sanitize(entries)
	r.logger.WithField(logging.FieldCount, len(entries)).Debug("Loaded entries")
	return entries
}

// sanitize drops stored rows without a positive amount and treats rows of
// unknown type as expense.
func (r *Repository) sanitize(entries []models.Entry) []models.Entry {
	valid := make([]models.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Amount <= 0 {
			r.logger.WithFields(
				logging.Field{Key: logging.FieldEntryID, Value: e.ID},
				logging.Field{Key: logging.FieldAmount, Value: e.Amount},
			).Warn("Dropping stored entry without a positive amount")
			continue
		}
		if !e.Type.IsValid() {
			r.logger.WithFields(
				logging.Field{Key: logging.FieldEntryID, Value: e.ID},
				logging.Field{Key: "type", Value: string(e.Type)},
			).Warn("Stored entry has unknown type, treating as expense")
			e.Type = models.EntryTypeExpense
		}
		valid = append(valid, e)
	}
	return valid
}

// LoadBudget returns the persisted budget.
// Missing or invalid values degrade to an unset budget with a warning.
func (r *Repository) LoadBudget(ctx context.Context) models.Budget {
	raw, ok, err := r.kv.Get(ctx, models.StorageKeyBudget)
	if err != nil {
		r.logger.WithError(err).WithField(logging.FieldKey, models.StorageKeyBudget).
			Warn("Failed to read budget, treating as unset")
		return models.NoBudget()
	}
	if !ok {
		return models.NoBudget()
	}

	b, err := models.ParseBudget(raw)
	if err != nil {
		r.logger.WithError(err).WithField(logging.FieldKey, models.StorageKeyBudget).
			Warn("Stored budget is invalid, treating as unset")
		return models.NoBudget()
	}
	return b
}

// Save replaces the persisted entry list
func (r *Repository) Save(ctx context.Context, entries []models.Entry) error {
	if entries == nil {
		entries = []models.Entry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode entries: %w", err)
	}
	if err := r.kv.Set(ctx, models.StorageKeyEntries, string(data)); err != nil {
		return fmt.Errorf("save entries: %w", err)
	}
	r.logger.WithField(logging.FieldCount, len(entries)).Debug("Saved entries")
	return nil
}

// SaveBudget replaces the persisted budget
func (r *Repository) SaveBudget(ctx context.Context, b models.Budget) error {
	if err := r.kv.Set(ctx, models.StorageKeyBudget, b.String()); err != nil {
		return fmt.Errorf("save budget: %w", err)
	}
	r.logger.WithField(logging.FieldBudget, b.String()).Debug("Saved budget")
	return nil
}

// Close releases the underlying store
func (r *Repository) Close() error {
	return r.kv.Close()
}
