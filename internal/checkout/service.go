package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/MrJamesThe3rd/kasir/internal/cart"
	"github.com/MrJamesThe3rd/kasir/internal/clock"
	"github.com/MrJamesThe3rd/kasir/internal/errs"
	"github.com/MrJamesThe3rd/kasir/internal/ledger"
	"github.com/MrJamesThe3rd/kasir/internal/payment"
	"github.com/MrJamesThe3rd/kasir/internal/transaction"
)

var ErrTransition = errors.New("transaction status transition not allowed")

// PaymentRequest is what the customer hands over. When Installments is set,
// Amount is ignored and the instalments are summed instead.
type PaymentRequest struct {
	Amount       int64          `json:"amount"`
	Method       payment.Method `json:"method"`
	Installments []int64        `json:"installments,omitempty"`
}

// Receipt is the outcome of a successful checkout.
type Receipt struct {
	Transaction *transaction.Transaction
	Breakdown   Breakdown
	Warnings    []string
}

type Service struct {
	orchestrator *Orchestrator
	ledger       *ledger.Service
	clock        clock.Clock
}

func NewService(orchestrator *Orchestrator, transactions *ledger.Service, clk clock.Clock) *Service {
	return &Service{
		orchestrator: orchestrator,
		ledger:       transactions,
		clock:        clk,
	}
}

func (s *Service) Orchestrator() *Orchestrator {
	return s.orchestrator
}

// Create checks out the cart and records a pending transaction. Underpayment
// is allowed and tracked as an outstanding balance. On success the cart is
// finalized.
func (s *Service) Create(ctx context.Context, c *cart.Cart, req PaymentRequest) (*Receipt, error) {
	tendered := req.Amount

	if len(req.Installments) > 0 {
		if err := s.orchestrator.Payments().ValidateInstallments(req.Installments); err != nil {
			return nil, err
		}

		tendered = 0
		for _, amt := range req.Installments {
			tendered += amt
		}
	}

	v := s.orchestrator.Validate(c, tendered, req.Method)
	if !v.Valid {
		return nil, errs.Precondition(strings.Join(v.Errors, "; "))
	}

	bd := v.Breakdown

	record, err := s.paymentRecord(bd.TotalAmount, req)
	if err != nil {
		return nil, err
	}

	tx, err := transaction.NewBuilder(s.clock).
		SetID(transaction.NewID(s.clock.Now())).
		SetCart(c).
		SetSubtotal(bd.Subtotal).
		SetDiscounts(bd.Discounts).
		SetTaxes(bd.Taxes).
		SetTotalAmount(bd.TotalAmount).
		SetPayment(record).
		Build()
	if err != nil {
		return nil, fmt.Errorf("building transaction: %w", err)
	}

	if err := s.ledger.Append(ctx, tx); err != nil {
		c.Unfinalize()
		return nil, err
	}

	slog.InfoContext(ctx, "transaction created",
		"transaction_id", tx.ID(),
		"terminal", TerminalFrom(ctx),
		"customer", tx.CustomerName(),
		"total", tx.TotalAmount(),
		"outstanding", tx.Outstanding(),
	)

	return &Receipt{
		Transaction: tx,
		Breakdown:   bd,
		Warnings:    v.Warnings,
	}, nil
}

func (s *Service) paymentRecord(total int64, req PaymentRequest) (payment.Record, error) {
	if len(req.Installments) > 0 {
		res := s.orchestrator.Payments().ProcessInstallments(total, req.Installments)
		return payment.NewRecord(res.TotalPaid, req.Method, res.Change, req.Installments)
	}

	return payment.NewRecord(req.Amount, req.Method, max(0, req.Amount-total), nil)
}

func (s *Service) Complete(ctx context.Context, id string) (*transaction.Transaction, error) {
	return s.transition(ctx, id, transaction.StatusCompleted, (*transaction.Transaction).Complete)
}

func (s *Service) Cancel(ctx context.Context, id string) (*transaction.Transaction, error) {
	return s.transition(ctx, id, transaction.StatusCancelled, (*transaction.Transaction).Cancel)
}

func (s *Service) Refund(ctx context.Context, id string) (*transaction.Transaction, error) {
	return s.transition(ctx, id, transaction.StatusRefunded, (*transaction.Transaction).Refund)
}

func (s *Service) transition(
	ctx context.Context,
	id string,
	to transaction.Status,
	apply func(*transaction.Transaction) bool,
) (*transaction.Transaction, error) {
	tx, err := s.ledger.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	from := tx.Status()
	if !apply(tx) {
		return nil, fmt.Errorf("%w: %w: %s cannot move from %s to %s", errs.ErrInvalidState, ErrTransition, id, from, to)
	}

	slog.InfoContext(ctx, "transaction status changed",
		"transaction_id", id,
		"terminal", TerminalFrom(ctx),
		"from", from,
		"status", to,
	)

	return tx, nil
}
