package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/kasir/internal/errs"
	"github.com/MrJamesThe3rd/kasir/internal/transaction"
)

var (
	ErrNotFound    = errors.New("transaction not found")
	ErrDuplicateID = fmt.Errorf("%w: duplicate transaction id", errs.ErrInvalidState)
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger
type Repository interface {
	// Append stores tx. It must fail with ErrDuplicateID when the id is
	// already taken, atomically with the insert.
	Append(ctx context.Context, tx *transaction.Transaction) error
	Get(ctx context.Context, id string) (*transaction.Transaction, error)
	// List returns matching transactions in append order.
	List(ctx context.Context, filter ListFilter) ([]*transaction.Transaction, error)
}

// ListFilter narrows a listing. Nil fields match everything; date bounds are
// inclusive and the customer name is compared case-insensitively.
type ListFilter struct {
	Status    *transaction.Status
	Customer  *string
	StartDate *time.Time
	EndDate   *time.Time
}

// Matches reports whether tx passes every set field of f.
func (f ListFilter) Matches(tx *transaction.Transaction) bool {
	if f.Status != nil && tx.Status() != *f.Status {
		return false
	}

	if f.Customer != nil && !strings.EqualFold(tx.CustomerName(), strings.TrimSpace(*f.Customer)) {
		return false
	}

	if f.StartDate != nil && tx.CreatedAt().Before(*f.StartDate) {
		return false
	}

	if f.EndDate != nil && tx.CreatedAt().After(*f.EndDate) {
		return false
	}

	return true
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Append(ctx context.Context, tx *transaction.Transaction) error {
	if err := s.repo.Append(ctx, tx); err != nil {
		return fmt.Errorf("appending transaction %s: %w", tx.ID(), err)
	}

	return nil
}

func (s *Service) ByID(ctx context.Context, id string) (*transaction.Transaction, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) ByCustomer(ctx context.Context, name string) ([]*transaction.Transaction, error) {
	return s.repo.List(ctx, ListFilter{Customer: &name})
}

func (s *Service) ByStatus(ctx context.Context, status transaction.Status) ([]*transaction.Transaction, error) {
	return s.repo.List(ctx, ListFilter{Status: &status})
}

// ByDateRange returns transactions created within [start, end].
func (s *Service) ByDateRange(ctx context.Context, start, end time.Time) ([]*transaction.Transaction, error) {
	if end.Before(start) {
		return nil, errs.InvalidArgumentf("end %s is before start %s", end.Format(time.RFC3339), start.Format(time.RFC3339))
	}

	return s.repo.List(ctx, ListFilter{StartDate: &start, EndDate: &end})
}

// Daily returns the transactions created on the calendar day of date, in date's location.
func (s *Service) Daily(ctx context.Context, date time.Time) ([]*transaction.Transaction, error) {
	start, end := dayBounds(date)
	return s.repo.List(ctx, ListFilter{StartDate: &start, EndDate: &end})
}

func (s *Service) All(ctx context.Context) ([]*transaction.Transaction, error) {
	return s.repo.List(ctx, ListFilter{})
}

// List applies an arbitrary filter.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]*transaction.Transaction, error) {
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return nil, errs.InvalidArgument("end date is before start date")
	}

	return s.repo.List(ctx, filter)
}

func dayBounds(date time.Time) (time.Time, time.Time) {
	y, m, d := date.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, date.Location())

	return start, start.AddDate(0, 0, 1).Add(-time.Nanosecond)
}
