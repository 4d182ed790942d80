package discount

import (
	"log/slog"

	"github.com/MrJamesThe3rd/kasir/internal/clock"
	"github.com/MrJamesThe3rd/kasir/internal/customer"
)

// Engine runs a fixed list of strategies followed by an optional category
// strategy whose results are appended last.
type Engine struct {
	strategies []Strategy
	category   Strategy
}

func New(strategies []Strategy, category Strategy) *Engine {
	return &Engine{
		strategies: append([]Strategy(nil), strategies...),
		category:   category,
	}
}

// WithDefaults returns the register's standard rule set: senior, member and
// day-of-week, then category bulk.
func WithDefaults(clk clock.Clock) *Engine {
	return New([]Strategy{Senior{}, Member{}, NewDayOfWeek(clk)}, CategoryBulk{})
}

// WithStrategies runs exactly the given strategies in order.
func WithStrategies(strategies ...Strategy) *Engine {
	return New(strategies, nil)
}

// Strategies lists the names of the configured rules in evaluation order.
func (e *Engine) Strategies() []string {
	names := make([]string, 0, len(e.strategies)+1)
	for _, s := range e.strategies {
		names = append(names, s.Name())
	}

	if e.category != nil {
		names = append(names, e.category.Name())
	}

	return names
}

// CalculateAll returns every non-zero discount for the basket. A strategy
// that fails is logged and skipped.
func (e *Engine) CalculateAll(b Basket, cust *customer.Customer) []Result {
	var out []Result

	for _, s := range e.strategies {
		out = append(out, run(s, b, cust)...)
	}

	if e.category != nil {
		out = append(out, run(e.category, b, cust)...)
	}

	return out
}

func run(s Strategy, b Basket, cust *customer.Customer) []Result {
	if !s.Applicable(b, cust) {
		return nil
	}

	results, err := s.Compute(b, cust)
	if err != nil {
		slog.Warn("discount strategy failed", "strategy", s.Name(), "error", err)
		return nil
	}

	var kept []Result

	for _, r := range results {
		if r.Amount > 0 {
			kept = append(kept, r)
		}
	}

	return kept
}

func (e *Engine) Total(b Basket, cust *customer.Customer) int64 {
	return Sum(e.CalculateAll(b, cust))
}

// Summary groups the discounts of a basket with the totals shown at checkout.
type Summary struct {
	Discounts             []Result `json:"discounts"`
	TotalDiscount         int64    `json:"total_discount"`
	Count                 int      `json:"count"`
	OriginalSubtotal      int64    `json:"original_subtotal"`
	SubtotalAfterDiscount int64    `json:"subtotal_after_discount"`
}

func (e *Engine) Summary(b Basket, cust *customer.Customer) Summary {
	discounts := e.CalculateAll(b, cust)
	total := Sum(discounts)
	subtotal := b.Subtotal()

	return Summary{
		Discounts:             discounts,
		TotalDiscount:         total,
		Count:                 len(discounts),
		OriginalSubtotal:      subtotal,
		SubtotalAfterDiscount: subtotal - total,
	}
}
