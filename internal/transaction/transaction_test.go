package transaction_test

import (
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/kasir/internal/cart"
	"github.com/MrJamesThe3rd/kasir/internal/catalog"
	"github.com/MrJamesThe3rd/kasir/internal/clock"
	"github.com/MrJamesThe3rd/kasir/internal/customer"
	"github.com/MrJamesThe3rd/kasir/internal/discount"
	"github.com/MrJamesThe3rd/kasir/internal/errs"
	"github.com/MrJamesThe3rd/kasir/internal/payment"
	"github.com/MrJamesThe3rd/kasir/internal/tax"
	"github.com/MrJamesThe3rd/kasir/internal/transaction"
)

var (
	createdAt = time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)
	fixed     = clock.Fixed(createdAt)

	beras = catalog.Product{Name: "beras", UnitPrice: 15000, Unit: "kg", Category: catalog.CategoryFood}
)

func newCart(t *testing.T, qty int) *cart.Cart {
	t.Helper()

	cust, err := customer.New("Budi", 30, customer.SegmentMember, 100)
	require.NoError(t, err)

	c := cart.New(cust)
	require.NoError(t, c.AddProduct(beras, qty))

	return c
}

func cashPayment(t *testing.T, amount int64, change int64) payment.Record {
	t.Helper()

	p, err := payment.NewRecord(amount, payment.MethodCash, change, nil)
	require.NoError(t, err)

	return p
}

// pending builds the 3 × beras transaction: 45,000 less 3,150 category discount.
func pending(t *testing.T) (*transaction.Transaction, *cart.Cart) {
	t.Helper()

	c := newCart(t, 3)

	tx, err := transaction.NewBuilder(fixed).
		SetID("TXN_1").
		SetCart(c).
		SetSubtotal(45000).
		SetDiscounts([]discount.Result{{Name: "Diskon Kategori Makanan", Amount: 3150, Percentage: 0.07}}).
		SetTaxAmount(0).
		SetTotalAmount(41850).
		SetPayment(cashPayment(t, 50000, 8150)).
		Build()
	require.NoError(t, err)

	return tx, c
}

func TestNewID(t *testing.T) {
	id := transaction.NewID(createdAt)
	assert.Regexp(t, regexp.MustCompile(`^TXN_20261014_093000_[0-9a-f]{8}$`), id)
	assert.NotEqual(t, id, transaction.NewID(createdAt))
}

func TestBuilder_Build(t *testing.T) {
	type testCase struct {
		name    string
		setup   func(t *testing.T, b *transaction.Builder)
		wantErr error
	}

	full := func(t *testing.T, b *transaction.Builder) {
		b.SetID("TXN_1").
			SetCart(newCart(t, 1)).
			SetTotalAmount(15000).
			SetPayment(cashPayment(t, 15000, 0))
	}

	tests := []testCase{
		{name: "Success", setup: full},
		{name: "MissingID", setup: func(t *testing.T, b *transaction.Builder) {
			full(t, b)
			b.SetID("")
		}, wantErr: errs.ErrInvalidState},
		{name: "MissingCart", setup: func(t *testing.T, b *transaction.Builder) {
			full(t, b)
			b.SetCart(nil)
		}, wantErr: errs.ErrInvalidState},
		{name: "MissingPayment", setup: func(t *testing.T, b *transaction.Builder) {
			b.SetID("TXN_1").SetCart(newCart(t, 1)).SetTotalAmount(15000)
		}, wantErr: errs.ErrInvalidState},
		{name: "EmptyCart", setup: func(t *testing.T, b *transaction.Builder) {
			full(t, b)
			b.SetCart(cart.New(nil)).SetTotalAmount(0)
		}, wantErr: errs.ErrInvalidState},
		{name: "FinalizedCart", setup: func(t *testing.T, b *transaction.Builder) {
			full(t, b)

			c := newCart(t, 1)
			c.Finalize()
			b.SetCart(c)
		}, wantErr: cart.ErrFinalized},
		{name: "SubtotalMismatch", setup: func(t *testing.T, b *transaction.Builder) {
			full(t, b)
			b.SetSubtotal(14000)
		}, wantErr: errs.ErrInvalidArgument},
		{name: "TotalMismatch", setup: func(t *testing.T, b *transaction.Builder) {
			full(t, b)
			b.SetTotalAmount(16000)
		}, wantErr: errs.ErrInvalidArgument},
		{name: "NegativeTax", setup: func(t *testing.T, b *transaction.Builder) {
			full(t, b)
			b.SetTaxAmount(-1).SetTotalAmount(14999)
		}, wantErr: errs.ErrInvalidArgument},
		{name: "TaxLinesDisagree", setup: func(t *testing.T, b *transaction.Builder) {
			full(t, b)
			b.SetTaxes([]tax.Result{{Name: "PPN", Rate: 0.1, Amount: 1500, TaxableAmount: 15000}}).
				SetTaxAmount(1000).
				SetTotalAmount(16000)
		}, wantErr: errs.ErrInvalidArgument},
		{name: "TaxLinesSetAmount", setup: func(t *testing.T, b *transaction.Builder) {
			full(t, b)
			b.SetTaxes([]tax.Result{{Name: "PPN", Rate: 0.1, Amount: 1500, TaxableAmount: 15000}}).
				SetTotalAmount(16500)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := transaction.NewBuilder(fixed)
			tt.setup(t, b)

			got, err := b.Build()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, transaction.StatusPending, got.Status())
			assert.Equal(t, createdAt, got.CreatedAt())
			assert.Equal(t, got.TotalAmount(), got.Subtotal()-got.TotalDiscount()+got.TaxAmount())
		})
	}
}

func TestBuilder_FinalizesCartOnlyOnSuccess(t *testing.T) {
	c := newCart(t, 1)

	_, err := transaction.NewBuilder(fixed).
		SetID("TXN_1").
		SetCart(c).
		SetTotalAmount(1).
		SetPayment(cashPayment(t, 1, 0)).
		Build()
	require.Error(t, err)
	assert.False(t, c.IsFinalized())

	_, c = pending(t)
	assert.True(t, c.IsFinalized())
	assert.ErrorIs(t, c.AddProduct(beras, 1), cart.ErrFinalized)
}

func TestBuilder_Reset(t *testing.T) {
	b := transaction.NewBuilder(fixed).
		SetID("TXN_1").
		SetCart(newCart(t, 1)).
		SetTotalAmount(15000).
		SetPayment(cashPayment(t, 15000, 0))

	b.Reset()

	_, err := b.Build()
	assert.ErrorIs(t, err, errs.ErrInvalidState)

	tx, err := b.SetID("TXN_2").
		SetCart(newCart(t, 2)).
		SetTotalAmount(30000).
		SetPayment(cashPayment(t, 30000, 0)).
		Build()
	require.NoError(t, err)
	assert.Equal(t, "TXN_2", tx.ID())
}

func TestTransaction_StateMachine(t *testing.T) {
	type testCase struct {
		name       string
		steps      func(tx *transaction.Transaction) []bool
		wantSteps  []bool
		wantStatus transaction.Status
	}

	tests := []testCase{
		{
			name:       "CompleteThenRefund",
			steps:      func(tx *transaction.Transaction) []bool { return []bool{tx.Complete(), tx.Refund()} },
			wantSteps:  []bool{true, true},
			wantStatus: transaction.StatusRefunded,
		},
		{
			name:       "CancelFromPending",
			steps:      func(tx *transaction.Transaction) []bool { return []bool{tx.Cancel()} },
			wantSteps:  []bool{true},
			wantStatus: transaction.StatusCancelled,
		},
		{
			name:       "RefundRequiresCompleted",
			steps:      func(tx *transaction.Transaction) []bool { return []bool{tx.Refund()} },
			wantSteps:  []bool{false},
			wantStatus: transaction.StatusPending,
		},
		{
			name:       "CancelledCannotComplete",
			steps:      func(tx *transaction.Transaction) []bool { return []bool{tx.Cancel(), tx.Complete(), tx.Refund()} },
			wantSteps:  []bool{true, false, false},
			wantStatus: transaction.StatusCancelled,
		},
		{
			name:       "CompletedCannotCancel",
			steps:      func(tx *transaction.Transaction) []bool { return []bool{tx.Complete(), tx.Cancel(), tx.Complete()} },
			wantSteps:  []bool{true, false, false},
			wantStatus: transaction.StatusCompleted,
		},
		{
			name:       "RefundedIsTerminal",
			steps:      func(tx *transaction.Transaction) []bool { return []bool{tx.Complete(), tx.Refund(), tx.Refund(), tx.Cancel()} },
			wantSteps:  []bool{true, true, false, false},
			wantStatus: transaction.StatusRefunded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx, _ := pending(t)

			assert.Equal(t, tt.wantSteps, tt.steps(tx))
			assert.Equal(t, tt.wantStatus, tx.Status())
		})
	}
}

func TestTransaction_CompletedAt(t *testing.T) {
	tx, _ := pending(t)

	_, ok := tx.CompletedAt()
	assert.False(t, ok)

	require.True(t, tx.Complete())

	at, ok := tx.CompletedAt()
	assert.True(t, ok)
	assert.Equal(t, createdAt, at)
}

func TestStatus(t *testing.T) {
	assert.False(t, transaction.StatusPending.IsTerminal())
	assert.False(t, transaction.StatusCompleted.IsTerminal())
	assert.True(t, transaction.StatusCancelled.IsTerminal())
	assert.True(t, transaction.StatusRefunded.IsTerminal())

	assert.True(t, transaction.StatusPending.CanTransitionTo(transaction.StatusCompleted))
	assert.False(t, transaction.StatusCancelled.CanTransitionTo(transaction.StatusCompleted))
	assert.False(t, transaction.StatusCompleted.CanTransitionTo(transaction.StatusCancelled))

	st, err := transaction.ParseStatus("Completed")
	require.NoError(t, err)
	assert.Equal(t, transaction.StatusCompleted, st)

	_, err = transaction.ParseStatus("void")
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestTransaction_Accessors(t *testing.T) {
	tx, _ := pending(t)

	assert.Equal(t, "TXN_1", tx.ID())
	assert.Equal(t, int64(3150), tx.TotalDiscount())
	assert.Equal(t, 3, tx.ItemsSold())
	assert.True(t, tx.IsPaidInFull())
	assert.Zero(t, tx.Outstanding())
	assert.Equal(t, "Budi", tx.CustomerName())

	d, ok := tx.DiscountByName("diskon kategori makanan")
	require.True(t, ok)
	assert.Equal(t, int64(3150), d.Amount)

	_, ok = tx.DiscountByName("Diskon Lansia")
	assert.False(t, ok)
}

func TestTransaction_PartialPayment(t *testing.T) {
	c := newCart(t, 1)
	c2 := cart.New(c.Customer())
	require.NoError(t, c2.AddProduct(catalog.Product{Name: "minyak", UnitPrice: 25000, Unit: "botol", Category: catalog.CategoryHousehold}, 2))

	tx, err := transaction.NewBuilder(fixed).
		SetID("TXN_D").
		SetCart(c2).
		SetTotalAmount(50000).
		SetPayment(cashPayment(t, 30000, 0)).
		Build()
	require.NoError(t, err)

	assert.Equal(t, transaction.StatusPending, tx.Status())
	assert.False(t, tx.IsPaidInFull())
	assert.Equal(t, int64(20000), tx.Outstanding())
	assert.Equal(t, int64(30000), tx.Payment().AmountPaid)
	assert.Zero(t, tx.Payment().Change)
}

func TestTransaction_IsDetachedFromInputs(t *testing.T) {
	cust, err := customer.New("Budi", 30, customer.SegmentPremium, 100)
	require.NoError(t, err)

	c := cart.New(cust)
	require.NoError(t, c.AddProduct(beras, 1))

	discounts := []discount.Result{{Name: "Diskon Member Bronze", Amount: 1050, Percentage: 0.07}}

	tx, err := transaction.NewBuilder(fixed).
		SetID("TXN_1").
		SetCart(c).
		SetDiscounts(discounts).
		SetTotalAmount(13950).
		SetPayment(cashPayment(t, 13950, 0)).
		Build()
	require.NoError(t, err)

	discounts[0].Amount = 1
	require.NoError(t, cust.AddPoints(10000))
	c.Unfinalize()
	require.NoError(t, c.UpdateQuantity("beras", 9))

	assert.Equal(t, int64(1050), tx.TotalDiscount())
	assert.Equal(t, 1, tx.ItemsSold())
	assert.Equal(t, 100, tx.Customer().Points)
	assert.Equal(t, customer.TierBronze, tx.Customer().Tier)

	got := tx.Discounts()
	got[0].Amount = 2
	assert.Equal(t, int64(1050), tx.TotalDiscount())
}

func TestTransaction_SnapshotJSON(t *testing.T) {
	tx, _ := pending(t)
	require.True(t, tx.Complete())

	raw, err := json.Marshal(tx.Snapshot())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, "TXN_1", decoded["id"])
	assert.Equal(t, "completed", decoded["status"])
	assert.EqualValues(t, 45000, decoded["subtotal"])
	assert.EqualValues(t, 3150, decoded["total_discount"])
	assert.EqualValues(t, 41850, decoded["total_amount"])
	assert.NotNil(t, decoded["completed_at"])

	pay, ok := decoded["payment"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "cash", pay["method"])
	assert.EqualValues(t, 8150, pay["change"])
}
