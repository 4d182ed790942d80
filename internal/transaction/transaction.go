package transaction

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/kasir/internal/cart"
	"github.com/MrJamesThe3rd/kasir/internal/clock"
	"github.com/MrJamesThe3rd/kasir/internal/customer"
	"github.com/MrJamesThe3rd/kasir/internal/discount"
	"github.com/MrJamesThe3rd/kasir/internal/payment"
	"github.com/MrJamesThe3rd/kasir/internal/tax"
)

// NewID returns an id of the form TXN_20261015_093000_1a2b3c4d.
func NewID(now time.Time) string {
	return fmt.Sprintf("TXN_%s_%s", now.Format("20060102_150405"), uuid.NewString()[:8])
}

// Transaction is a priced, paid cart. Every field except the status is fixed
// when the transaction is built; the status moves only through Complete,
// Cancel and Refund.
type Transaction struct {
	id          string
	cart        cart.Snapshot
	subtotal    int64
	discounts   []discount.Result
	taxes       []tax.Result
	taxAmount   int64
	totalAmount int64
	payment     payment.Record
	createdAt   time.Time
	clock       clock.Clock

	mu          sync.RWMutex
	status      Status
	completedAt time.Time
}

func (t *Transaction) ID() string { return t.id }

// Cart returns a copy of the cart as it was at checkout.
func (t *Transaction) Cart() cart.Snapshot {
	s := cart.Snapshot{Items: slices.Clone(t.cart.Items)}

	if t.cart.Customer != nil {
		c := *t.cart.Customer
		s.Customer = &c
	}

	return s
}

// Customer is nil when the cart had no customer.
func (t *Transaction) Customer() *customer.Snapshot {
	return t.Cart().Customer
}

func (t *Transaction) CustomerName() string {
	return t.cart.CustomerName()
}

func (t *Transaction) Subtotal() int64 { return t.subtotal }

func (t *Transaction) Discounts() []discount.Result {
	return slices.Clone(t.discounts)
}

func (t *Transaction) TotalDiscount() int64 {
	return discount.Sum(t.discounts)
}

// DiscountByName finds a discount line, ignoring case.
func (t *Transaction) DiscountByName(name string) (discount.Result, bool) {
	for _, d := range t.discounts {
		if strings.EqualFold(d.Name, name) {
			return d, true
		}
	}

	return discount.Result{}, false
}

func (t *Transaction) Taxes() []tax.Result {
	return slices.Clone(t.taxes)
}

func (t *Transaction) TaxAmount() int64   { return t.taxAmount }
func (t *Transaction) TotalAmount() int64 { return t.totalAmount }

func (t *Transaction) Payment() payment.Record {
	return t.payment.Clone()
}

func (t *Transaction) CreatedAt() time.Time { return t.createdAt }

func (t *Transaction) ItemsSold() int {
	return t.cart.TotalQuantity()
}

func (t *Transaction) IsPaidInFull() bool {
	return t.payment.AmountPaid >= t.totalAmount
}

// Outstanding is what the customer still owes, never negative.
func (t *Transaction) Outstanding() int64 {
	return max(0, t.totalAmount-t.payment.AmountPaid)
}

func (t *Transaction) Status() Status {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.status
}

// CompletedAt reports when Complete succeeded.
func (t *Transaction) CompletedAt() (time.Time, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.completedAt, !t.completedAt.IsZero()
}

// Complete moves a pending transaction to completed. It reports false, and
// changes nothing, from any other status.
func (t *Transaction) Complete() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.status.CanTransitionTo(StatusCompleted) {
		return false
	}

	t.status = StatusCompleted
	t.completedAt = t.clock.Now()

	return true
}

// Cancel succeeds only from pending.
func (t *Transaction) Cancel() bool {
	return t.transition(StatusCancelled)
}

// Refund succeeds only from completed.
func (t *Transaction) Refund() bool {
	return t.transition(StatusRefunded)
}

func (t *Transaction) transition(to Status) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.status.CanTransitionTo(to) {
		return false
	}

	t.status = to

	return true
}
