package storage

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"max.ks1230/expenses-ledger/internal/customerr"
	"max.ks1230/expenses-ledger/internal/entity/expense"
)

// InMemStorage keeps expenses in a map. It normalises records the same way
// PostgresStorage does so both backends answer identically.
type InMemStorage struct {
	mu      sync.RWMutex
	records map[string]expense.Record
	clock   func() time.Time
}

func NewInMemStorage() *InMemStorage {
	return &InMemStorage{
		records: make(map[string]expense.Record),
		clock:   time.Now,
	}
}

func (s *InMemStorage) ListExpenses(_ context.Context, user expense.User) ([]expense.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]expense.Record, 0, len(s.records))
	for _, rec := range s.records {
		if user == "" || rec.User == user {
			res = append(res, rec)
		}
	}
	expense.SortNewestFirst(res)
	return res, nil
}

func (s *InMemStorage) CreateExpense(_ context.Context, rec expense.Record) (expense.Record, error) {
	rec, err := normalize(rec)
	if err != nil {
		return expense.Record{}, errors.Wrap(err, "create expense")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec.ID = uuid.New().String()
	rec.CreatedAt = s.clock().UTC()
	rec.UpdatedAt = rec.CreatedAt
	s.records[rec.ID] = rec
	return rec, nil
}

func (s *InMemStorage) UpdateExpense(_ context.Context, id string, user expense.User, patch expense.Patch) (expense.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok || (user != "" && rec.User != user) {
		return expense.Record{}, customerr.NewNotFound(id)
	}

	rec, err := normalize(patch.Apply(rec))
	if err != nil {
		return expense.Record{}, errors.Wrap(err, "update expense")
	}
	rec.UpdatedAt = s.clock().UTC()
	s.records[id] = rec
	return rec, nil
}

func (s *InMemStorage) DeleteExpense(_ context.Context, id string, user expense.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok || (user != "" && rec.User != user) {
		return customerr.NewNotFound(id)
	}
	delete(s.records, id)
	return nil
}

// normalize rounds the amount to cents and reduces the date to a calendar day.
func normalize(rec expense.Record) (expense.Record, error) {
	amount, err := rec.Amount.Normalized()
	if err != nil {
		return expense.Record{}, customerr.NewValidation("amount: %s", err)
	}
	day, err := rec.Date.Day()
	if err != nil {
		return expense.Record{}, customerr.NewValidation("date: %s", err)
	}
	rec.Amount = amount
	rec.Date = expense.NewDate(day)
	return rec, nil
}
