// Package tracker implements the user-facing operations of the household ledger:
// loading the state, adding and deleting entries, setting the budget and importing.
// Every mutation is persisted immediately; callers recompute the view afterwards.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fjacquet/kakeibo/internal/categorizer"
	"fjacquet/kakeibo/internal/dashboard"
	"fjacquet/kakeibo/internal/dateutils"
	"fjacquet/kakeibo/internal/entryerror"
	"fjacquet/kakeibo/internal/ledger"
	"fjacquet/kakeibo/internal/logging"
	"fjacquet/kakeibo/internal/models"
	"fjacquet/kakeibo/internal/store"
	"fjacquet/kakeibo/internal/validation"
)

// Suggester suggests a category for a memo
type Suggester interface {
	Suggest(ctx context.Context, memo string) categorizer.Suggestion
}

// AddRequest is the raw input of the add operation, as typed by the user
type AddRequest struct {
	Date     string
	Amount   string
	Memo     string
	Type     string
	Category string
}

// ImportResult reports the outcome of an import
type ImportResult struct {
	Added   int `json:"added" yaml:"added"`
	Skipped int `json:"skipped" yaml:"skipped"`
}

// Service runs the ledger operations against the repository
type Service struct {
	repo      *store.Repository
	suggester Suggester
	dashboard *dashboard.Dashboard
	logger    logging.Logger
	now       func() time.Time
}

// NewService creates a Service. A nil suggester disables category suggestions.
func NewService(repo *store.Repository, suggester Suggester, dash *dashboard.Dashboard, logger logging.Logger) *Service {
	return &Service{
		repo:      repo,
		suggester: suggester,
		dashboard: dash,
		logger:    logger,
		now:       time.Now,
	}
}

// SetClock replaces the time source used for IDs and the default month
func (s *Service) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// Load reads the persisted entries and budget and selects month.
// An empty month selects the current calendar month.
func (s *Service) Load(ctx context.Context, month string) (*dashboard.State, error) {
	if month == "" {
		month = dateutils.CurrentMonthKey(s.now())
	}
	if _, err := dateutils.ParseMonthKey(month); err != nil {
		return nil, err
	}

	entries := s.repo.Load(ctx)
	state := &dashboard.State{
		Ledger: ledger.New(entries, ledger.NewIDGenerator(s.now)),
		Budget: s.repo.LoadBudget(ctx),
		Month:  month,
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldMonth, Value: month},
		logging.Field{Key: logging.FieldCount, Value: len(entries)},
	).Debug("Loaded state")
	return state, nil
}

// SelectMonth changes the selected month of state
func (s *Service) SelectMonth(state *dashboard.State, month string) error {
	if _, err := dateutils.ParseMonthKey(month); err != nil {
		return err
	}
	state.Month = month
	return nil
}

// AddEntry validates the request, fills in a suggested category when none was
// given, adds the entry and persists the ledger. Invalid input leaves the state untouched.
func (s *Service) AddEntry(ctx context.Context, state *dashboard.State, req AddRequest) (models.Entry, error) {
	amount, err := validation.ParseAmount(req.Amount)
	if err != nil {
		return models.Entry{}, err
	}
	entryType, err := models.ParseEntryType(req.Type)
	if err != nil {
		return models.Entry{}, err
	}

	category := strings.TrimSpace(req.Category)
	if category == "" && s.suggester != nil {
		if suggestion := s.suggester.Suggest(ctx, req.Memo); suggestion.Found {
			category = suggestion.Label
			s.logger.WithFields(
				logging.Field{Key: logging.FieldCategory, Value: category},
				logging.Field{Key: logging.FieldStrategy, Value: suggestion.Strategy},
			).Debug("Applied suggested category")
		}
	}

	entry, err := state.Ledger.Create(models.EntryInput{
		Date:     req.Date,
		Amount:   amount,
		Memo:     req.Memo,
		Type:     entryType,
		Category: category,
	})
	if err != nil {
		return models.Entry{}, err
	}

	if err := s.repo.Save(ctx, state.Ledger.Entries()); err != nil {
		_ = state.Ledger.RemoveByID(entry.ID)
		return models.Entry{}, err
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldEntryID, Value: entry.ID},
		logging.Field{Key: logging.FieldAmount, Value: entry.Amount},
		logging.Field{Key: logging.FieldCategory, Value: entry.Category},
	).Info("Entry added")
	return entry, nil
}

// DeleteEntry removes the entry with id and persists the ledger.
// Deleting an unknown id is a no-op that reports false.
func (s *Service) DeleteEntry(ctx context.Context, state *dashboard.State, id int64) (bool, error) {
	snapshot := state.Ledger.Entries()
	if err := state.Ledger.RemoveByID(id); err != nil {
		if errors.Is(err, entryerror.ErrEntryNotFound) {
			s.logger.WithField(logging.FieldEntryID, id).Warn("Entry not found, nothing deleted")
			return false, nil
		}
		return false, err
	}

	if err := s.repo.Save(ctx, state.Ledger.Entries()); err != nil {
		state.Ledger.Reset(snapshot)
		return false, err
	}

	s.logger.WithField(logging.FieldEntryID, id).Info("Entry deleted")
	return true, nil
}

// SetBudget parses raw and persists it as the budget. Empty and "0" clear the budget.
func (s *Service) SetBudget(ctx context.Context, state *dashboard.State, raw string) (models.Budget, error) {
	b, err := models.ParseBudget(raw)
	if err != nil {
		return models.Budget{}, err
	}
	if err := s.repo.SaveBudget(ctx, b); err != nil {
		return models.Budget{}, err
	}
	state.Budget = b

	s.logger.WithField(logging.FieldBudget, b.String()).Info("Budget updated")
	return b, nil
}

// Suggest returns the category suggestion for memo
func (s *Service) Suggest(ctx context.Context, memo string) categorizer.Suggestion {
	if s.suggester == nil {
		return categorizer.Suggestion{}
	}
	return s.suggester.Suggest(ctx, memo)
}

// View recomputes everything displayed for the selected month
func (s *Service) View(state *dashboard.State) dashboard.View {
	return s.dashboard.Compute(*state)
}

// Import adds entries read from an external source, oldest first so that the
// resulting store order matches a manual entry sequence. Every entry gets a fresh ID.
// Invalid entries are rejected as a whole before anything is added. Entries
// identical to an existing one (date, type, amount, memo, category) are skipped.
func (s *Service) Import(ctx context.Context, state *dashboard.State, entries []models.Entry) (ImportResult, error) {
	inputs := make([]models.EntryInput, 0, len(entries))
	for i, e := range entries {
		date, err := dateutils.NormalizeDate(e.Date)
		if err != nil {
			return ImportResult{}, fmt.Errorf("import row %d: %w", i+1, &entryerror.InvalidEntryInputError{
				Field: "date", Value: e.Date, Reason: "unrecognized date", Err: err,
			})
		}
		in := models.EntryInput{
			Date:     date,
			Amount:   e.Amount,
			Memo:     e.Memo,
			Type:     e.Type,
			Category: e.Category,
		}
		if _, err := models.NewEntry(0, in); err != nil {
			return ImportResult{}, fmt.Errorf("import row %d: %w", i+1, err)
		}
		inputs = append(inputs, in)
	}

	seen := make(map[string]bool, state.Ledger.Len())
	for _, e := range state.Ledger.Entries() {
		seen[fingerprint(e)] = true
	}

	snapshot := state.Ledger.Entries()
	var result ImportResult
	for i := len(inputs) - 1; i >= 0; i-- {
		candidate, _ := models.NewEntry(0, inputs[i])
		if seen[fingerprint(candidate)] {
			result.Skipped++
			s.logger.WithFields(
				logging.Field{Key: "date", Value: candidate.Date},
				logging.Field{Key: logging.FieldAmount, Value: candidate.Amount},
			).Debug("Skipping duplicate entry")
			continue
		}
		created, err := state.Ledger.Create(inputs[i])
		if err != nil {
			state.Ledger.Reset(snapshot)
			return ImportResult{}, err
		}
		seen[fingerprint(created)] = true
		result.Added++
	}

	if result.Added > 0 {
		if err := s.repo.Save(ctx, state.Ledger.Entries()); err != nil {
			state.Ledger.Reset(snapshot)
			return ImportResult{}, err
		}
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldCount, Value: result.Added},
		logging.Field{Key: "skipped", Value: result.Skipped},
	).Info("Import finished")
	return result, nil
}

func fingerprint(e models.Entry) string {
	return fmt.Sprintf("%s|%s|%d|%s|%s", e.Date, e.Type, e.Amount, e.Memo, e.Category)
}
