package tax

import (
	"fmt"

	"github.com/MrJamesThe3rd/kasir/internal/cart"
	"github.com/MrJamesThe3rd/kasir/internal/catalog"
	"github.com/MrJamesThe3rd/kasir/internal/customer"
	"github.com/MrJamesThe3rd/kasir/internal/errs"
	"github.com/MrJamesThe3rd/kasir/internal/money"
)

// Basket is the cart data a tax rule may inspect.
type Basket interface {
	Subtotal() int64
	CategoryTotals() map[catalog.Category]cart.CategoryTotal
}

// Strategy computes tax on the post-discount amount of a basket.
type Strategy interface {
	Name() string
	Compute(postDiscount int64, b Basket, cust *customer.Customer) ([]Result, error)
}

const (
	DefaultStandardRate      = 0.10
	DefaultStandardThreshold = 100000

	categoryThreshold = 50000
)

// Standard charges a flat rate on amounts strictly above a threshold.
type Standard struct {
	rate      float64
	threshold int64
}

func NewStandard(rate float64, threshold int64) (Standard, error) {
	if rate < 0 || rate > 1 {
		return Standard{}, errs.InvalidArgumentf("standard tax rate must be within [0,1], got %v", rate)
	}

	if threshold < 0 {
		return Standard{}, errs.InvalidArgumentf("standard tax threshold must not be negative, got %d", threshold)
	}

	return Standard{rate: rate, threshold: threshold}, nil
}

func DefaultStandard() Standard {
	return Standard{rate: DefaultStandardRate, threshold: DefaultStandardThreshold}
}

func (s Standard) Rate() float64    { return s.rate }
func (s Standard) Threshold() int64 { return s.threshold }

func (Standard) Name() string { return "standard" }

func (s Standard) Compute(postDiscount int64, _ Basket, _ *customer.Customer) ([]Result, error) {
	if postDiscount <= s.threshold {
		return nil, nil
	}

	r, err := NewResult(
		"PPN",
		s.rate,
		money.ApplyRate(postDiscount, s.rate),
		postDiscount,
		fmt.Sprintf("Pajak %s untuk pembelian di atas %s", money.Percent(s.rate), money.Format(s.threshold)),
	)
	if err != nil {
		return nil, err
	}

	return []Result{r}, nil
}

// CategoryRates is the per-category rate applied by CategoryBased.
var CategoryRates = map[catalog.Category]float64{
	catalog.CategoryFood:      0.05,
	catalog.CategoryDrink:     0.08,
	catalog.CategoryHousehold: 0.12,
}

// CategoryBased taxes each category's share of the post-discount amount at
// its own rate once the amount exceeds 50,000. The share is the category's
// fraction of the raw subtotal.
type CategoryBased struct{}

func (CategoryBased) Name() string { return "category" }

func (CategoryBased) Compute(postDiscount int64, b Basket, _ *customer.Customer) ([]Result, error) {
	if postDiscount <= categoryThreshold {
		return nil, nil
	}

	subtotal := b.Subtotal()
	totals := b.CategoryTotals()

	var results []Result

	for _, cat := range catalog.Categories {
		t, ok := totals[cat]
		if !ok {
			continue
		}

		rate := CategoryRates[cat]
		base := money.Prorate(postDiscount, t.Amount, subtotal)

		r, err := NewResult(
			"Pajak "+cat.Label(),
			rate,
			money.ApplyRate(base, rate),
			base,
			fmt.Sprintf("Pajak %s untuk kategori %s", money.Percent(rate), cat.Label()),
		)
		if err != nil {
			return nil, err
		}

		results = append(results, r)
	}

	return results, nil
}

// Bracket is one luxury tax step.
type Bracket struct {
	Name      string
	MinAmount int64
	Rate      float64
}

// LuxuryBrackets is ordered by ascending minimum.
var LuxuryBrackets = []Bracket{
	{Name: "Luxury Tier 1", MinAmount: 500000, Rate: 0.05},
	{Name: "Luxury Tier 2", MinAmount: 1000000, Rate: 0.08},
	{Name: "Luxury Tier 3", MinAmount: 2000000, Rate: 0.12},
}

// Luxury applies the rate of the highest bracket reached to the whole amount.
type Luxury struct{}

func (Luxury) Name() string { return "luxury" }

func (Luxury) Compute(postDiscount int64, _ Basket, _ *customer.Customer) ([]Result, error) {
	for i := len(LuxuryBrackets) - 1; i >= 0; i-- {
		br := LuxuryBrackets[i]
		if postDiscount < br.MinAmount {
			continue
		}

		r, err := NewResult(
			br.Name,
			br.Rate,
			money.ApplyRate(postDiscount, br.Rate),
			postDiscount,
			fmt.Sprintf("Luxury tax %s untuk pembelian di atas %s", money.Percent(br.Rate), money.Format(br.MinAmount)),
		)
		if err != nil {
			return nil, err
		}

		return []Result{r}, nil
	}

	return nil, nil
}
