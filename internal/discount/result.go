package discount

import "github.com/MrJamesThe3rd/kasir/internal/errs"

// Result is one applied discount line.
type Result struct {
	Name        string  `json:"name"`
	Amount      int64   `json:"amount"`
	Percentage  float64 `json:"percentage"`
	Description string  `json:"description"`
}

func NewResult(name string, amount int64, percentage float64, description string) (Result, error) {
	if amount < 0 {
		return Result{}, errs.InvalidArgumentf("discount %q: amount must not be negative, got %d", name, amount)
	}

	if percentage < 0 || percentage > 1 {
		return Result{}, errs.InvalidArgumentf("discount %q: percentage must be within [0,1], got %v", name, percentage)
	}

	return Result{Name: name, Amount: amount, Percentage: percentage, Description: description}, nil
}

// Sum totals the amounts of results.
func Sum(results []Result) int64 {
	var total int64
	for _, r := range results {
		total += r.Amount
	}

	return total
}
