package tax

import "github.com/MrJamesThe3rd/kasir/internal/errs"

// Result is one tax line.
type Result struct {
	Name          string  `json:"name"`
	Rate          float64 `json:"rate"`
	Amount        int64   `json:"amount"`
	TaxableAmount int64   `json:"taxable_amount"`
	Description   string  `json:"description"`
}

func NewResult(name string, rate float64, amount, taxable int64, description string) (Result, error) {
	if rate < 0 || rate > 1 {
		return Result{}, errs.InvalidArgumentf("tax %q: rate must be within [0,1], got %v", name, rate)
	}

	if amount < 0 {
		return Result{}, errs.InvalidArgumentf("tax %q: amount must not be negative, got %d", name, amount)
	}

	if taxable < 0 {
		return Result{}, errs.InvalidArgumentf("tax %q: taxable amount must not be negative, got %d", name, taxable)
	}

	return Result{Name: name, Rate: rate, Amount: amount, TaxableAmount: taxable, Description: description}, nil
}

// Sum totals the amounts of results.
func Sum(results []Result) int64 {
	var total int64
	for _, r := range results {
		total += r.Amount
	}

	return total
}
