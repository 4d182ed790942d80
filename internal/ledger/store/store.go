package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/MrJamesThe3rd/kasir/internal/ledger"
	"github.com/MrJamesThe3rd/kasir/internal/transaction"
)

// Store is an in-memory, append-only ledger.Repository. Transactions are
// held by pointer so status transitions made through them stay visible.
type Store struct {
	mu      sync.RWMutex
	byID    map[string]*transaction.Transaction
	history []*transaction.Transaction
}

func New() *Store {
	return &Store{byID: make(map[string]*transaction.Transaction)}
}

func (s *Store) Append(ctx context.Context, tx *transaction.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[tx.ID()]; ok {
		return fmt.Errorf("%w: %s", ledger.ErrDuplicateID, tx.ID())
	}

	s.byID[tx.ID()] = tx
	s.history = append(s.history, tx)

	return nil
}

func (s *Store) Get(ctx context.Context, id string) (*transaction.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	tx, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ledger.ErrNotFound, id)
	}

	return tx, nil
}

func (s *Store) List(ctx context.Context, filter ledger.ListFilter) ([]*transaction.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var txs []*transaction.Transaction

	for _, tx := range s.history {
		if filter.Matches(tx) {
			txs = append(txs, tx)
		}
	}

	return txs, nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.history)
}
