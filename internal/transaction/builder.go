package transaction

import (
	"slices"

	"github.com/MrJamesThe3rd/kasir/internal/cart"
	"github.com/MrJamesThe3rd/kasir/internal/clock"
	"github.com/MrJamesThe3rd/kasir/internal/discount"
	"github.com/MrJamesThe3rd/kasir/internal/errs"
	"github.com/MrJamesThe3rd/kasir/internal/payment"
	"github.com/MrJamesThe3rd/kasir/internal/tax"
)

// Builder assembles a Transaction. Id, cart and payment are required.
type Builder struct {
	clock clock.Clock

	id          string
	cart        *cart.Cart
	subtotal    *int64
	discounts   []discount.Result
	taxes       []tax.Result
	taxAmount   int64
	totalAmount int64
	payment     *payment.Record
}

func NewBuilder(clk clock.Clock) *Builder {
	return &Builder{clock: clk}
}

func (b *Builder) SetID(id string) *Builder {
	b.id = id
	return b
}

func (b *Builder) SetCart(c *cart.Cart) *Builder {
	b.cart = c
	return b
}

// SetSubtotal overrides the subtotal, which otherwise comes from the cart.
func (b *Builder) SetSubtotal(subtotal int64) *Builder {
	b.subtotal = &subtotal
	return b
}

func (b *Builder) SetDiscounts(discounts []discount.Result) *Builder {
	b.discounts = slices.Clone(discounts)
	return b
}

// SetTaxes records the tax lines and sets the tax amount to their sum.
func (b *Builder) SetTaxes(taxes []tax.Result) *Builder {
	b.taxes = slices.Clone(taxes)
	b.taxAmount = tax.Sum(taxes)

	return b
}

func (b *Builder) SetTaxAmount(amount int64) *Builder {
	b.taxAmount = amount
	return b
}

func (b *Builder) SetTotalAmount(amount int64) *Builder {
	b.totalAmount = amount
	return b
}

func (b *Builder) SetPayment(p payment.Record) *Builder {
	p = p.Clone()
	b.payment = &p

	return b
}

// Reset clears every field so the builder can be reused.
func (b *Builder) Reset() *Builder {
	*b = Builder{clock: b.clock}
	return b
}

// Build validates the accumulated fields, finalizes the cart and returns a
// pending transaction. The cart is left untouched when Build fails.
func (b *Builder) Build() (*Transaction, error) {
	if b.id == "" {
		return nil, errs.InvalidState("transaction id is required")
	}

	if b.cart == nil {
		return nil, errs.InvalidState("transaction cart is required")
	}

	if b.payment == nil {
		return nil, errs.InvalidState("transaction payment is required")
	}

	if b.cart.IsFinalized() {
		return nil, cart.ErrFinalized
	}

	if b.cart.IsEmpty() {
		return nil, errs.InvalidState("transaction cart is empty")
	}

	subtotal := b.cart.Subtotal()
	if b.subtotal != nil {
		if *b.subtotal != subtotal {
			return nil, errs.InvalidArgumentf("subtotal %d does not match cart subtotal %d", *b.subtotal, subtotal)
		}
	}

	if b.taxAmount < 0 {
		return nil, errs.InvalidArgumentf("tax amount must not be negative, got %d", b.taxAmount)
	}

	if b.totalAmount < 0 {
		return nil, errs.InvalidArgumentf("total amount must not be negative, got %d", b.totalAmount)
	}

	if b.taxes != nil && tax.Sum(b.taxes) != b.taxAmount {
		return nil, errs.InvalidArgumentf("tax amount %d does not match tax lines totalling %d", b.taxAmount, tax.Sum(b.taxes))
	}

	if want := subtotal - discount.Sum(b.discounts) + b.taxAmount; want != b.totalAmount {
		return nil, errs.InvalidArgumentf("total amount %d does not equal subtotal - discounts + tax = %d", b.totalAmount, want)
	}

	tx := &Transaction{
		id:          b.id,
		cart:        b.cart.Snapshot(),
		subtotal:    subtotal,
		discounts:   slices.Clone(b.discounts),
		taxes:       slices.Clone(b.taxes),
		taxAmount:   b.taxAmount,
		totalAmount: b.totalAmount,
		payment:     b.payment.Clone(),
		createdAt:   b.clock.Now(),
		clock:       b.clock,
		status:      StatusPending,
	}

	b.cart.Finalize()

	return tx, nil
}
