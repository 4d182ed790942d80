package transaction

import (
	"time"

	"github.com/MrJamesThe3rd/kasir/internal/cart"
	"github.com/MrJamesThe3rd/kasir/internal/discount"
	"github.com/MrJamesThe3rd/kasir/internal/payment"
	"github.com/MrJamesThe3rd/kasir/internal/tax"
)

// Snapshot is the serializable view of a transaction used by receipts and reports.
type Snapshot struct {
	ID            string            `json:"id"`
	Status        Status            `json:"status"`
	Cart          cart.Snapshot     `json:"cart"`
	Subtotal      int64             `json:"subtotal"`
	Discounts     []discount.Result `json:"discounts"`
	TotalDiscount int64             `json:"total_discount"`
	Taxes         []tax.Result      `json:"taxes"`
	TaxAmount     int64             `json:"tax_amount"`
	TotalAmount   int64             `json:"total_amount"`
	Payment       payment.Record    `json:"payment"`
	Outstanding   int64             `json:"outstanding"`
	CreatedAt     time.Time         `json:"created_at"`
	CompletedAt   *time.Time        `json:"completed_at,omitempty"`
}

func (t *Transaction) Snapshot() Snapshot {
	s := Snapshot{
		ID:            t.id,
		Status:        t.Status(),
		Cart:          t.Cart(),
		Subtotal:      t.subtotal,
		Discounts:     t.Discounts(),
		TotalDiscount: t.TotalDiscount(),
		Taxes:         t.Taxes(),
		TaxAmount:     t.taxAmount,
		TotalAmount:   t.totalAmount,
		Payment:       t.Payment(),
		Outstanding:   t.Outstanding(),
		CreatedAt:     t.createdAt,
	}

	if at, ok := t.CompletedAt(); ok {
		s.CompletedAt = &at
	}

	return s
}
