// Package checkout turns a cart into a priced, paid and recorded transaction.
package checkout

import (
	"fmt"

	"github.com/MrJamesThe3rd/kasir/internal/cart"
	"github.com/MrJamesThe3rd/kasir/internal/discount"
	"github.com/MrJamesThe3rd/kasir/internal/payment"
	"github.com/MrJamesThe3rd/kasir/internal/tax"
)

const (
	msgEmptyCart       = "Keranjang belanja kosong"
	msgInvalidCustomer = "Customer tidak valid"
)

// Breakdown is every intermediate value of a checkout, in the order the
// register prints them.
type Breakdown struct {
	Subtotal              int64             `json:"subtotal"`
	Discounts             []discount.Result `json:"discounts"`
	TotalDiscount         int64             `json:"total_discount"`
	SubtotalAfterDiscount int64             `json:"subtotal_after_discount"`
	Taxes                 []tax.Result      `json:"taxes"`
	TotalTax              int64             `json:"total_tax"`
	TotalAmount           int64             `json:"total_amount"`
}

// Validation collects the problems found before checkout. Errors block the
// transaction; warnings, such as an underpayment, do not.
type Validation struct {
	Valid     bool               `json:"valid"`
	Errors    []string           `json:"errors"`
	Warnings  []string           `json:"warnings"`
	Breakdown Breakdown          `json:"breakdown"`
	Payment   payment.Validation `json:"payment"`
}

type Orchestrator struct {
	discounts *discount.Engine
	taxes     *tax.Engine
	payments  *payment.Processor
}

func NewOrchestrator(discounts *discount.Engine, taxes *tax.Engine, payments *payment.Processor) *Orchestrator {
	return &Orchestrator{
		discounts: discounts,
		taxes:     taxes,
		payments:  payments,
	}
}

func (o *Orchestrator) Payments() *payment.Processor {
	return o.payments
}

// ComputeTotals prices the cart: discounts on the subtotal, then tax on what
// remains after discounts.
func (o *Orchestrator) ComputeTotals(c *cart.Cart) (Breakdown, error) {
	subtotal := c.Subtotal()
	discounts := o.discounts.CalculateAll(c, c.Customer())
	totalDiscount := discount.Sum(discounts)
	afterDiscount := subtotal - totalDiscount

	taxes, err := o.taxes.Calculate(afterDiscount, c, c.Customer())
	if err != nil {
		return Breakdown{}, fmt.Errorf("calculating tax: %w", err)
	}

	totalTax := tax.Sum(taxes)

	return Breakdown{
		Subtotal:              subtotal,
		Discounts:             discounts,
		TotalDiscount:         totalDiscount,
		SubtotalAfterDiscount: afterDiscount,
		Taxes:                 taxes,
		TotalTax:              totalTax,
		TotalAmount:           afterDiscount + totalTax,
	}, nil
}

// Validate checks that the cart can be checked out with amount paid by
// method. It never fails; problems are reported in the result.
func (o *Orchestrator) Validate(c *cart.Cart, amount int64, method payment.Method) Validation {
	v := Validation{Errors: []string{}, Warnings: []string{}}

	if c == nil {
		v.Errors = append(v.Errors, msgEmptyCart, msgInvalidCustomer)
		return v
	}

	if c.IsEmpty() {
		v.Errors = append(v.Errors, msgEmptyCart)
	}

	if c.Customer() == nil {
		v.Errors = append(v.Errors, msgInvalidCustomer)
	}

	bd, err := o.ComputeTotals(c)
	if err != nil {
		v.Errors = append(v.Errors, err.Error())
		return v
	}

	v.Breakdown = bd

	pv, err := o.payments.Validate(bd.TotalAmount, amount, method)
	if err != nil {
		v.Errors = append(v.Errors, err.Error())
	} else {
		v.Payment = pv
		if !pv.Sufficient {
			v.Warnings = append(v.Warnings, pv.Message)
		}
	}

	v.Valid = len(v.Errors) == 0

	return v
}
