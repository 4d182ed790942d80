package discount

import (
	"fmt"
	"time"

	"github.com/MrJamesThe3rd/kasir/internal/cart"
	"github.com/MrJamesThe3rd/kasir/internal/catalog"
	"github.com/MrJamesThe3rd/kasir/internal/clock"
	"github.com/MrJamesThe3rd/kasir/internal/customer"
	"github.com/MrJamesThe3rd/kasir/internal/money"
)

// Basket is the read side of a cart that pricing rules need. Both *cart.Cart
// and cart.Snapshot satisfy it.
type Basket interface {
	Subtotal() int64
	CategoryTotals() map[catalog.Category]cart.CategoryTotal
}

// Strategy is a single discount rule.
//
//go:generate mockgen -source=strategy.go -destination=strategy_mock.go -package=discount
type Strategy interface {
	Name() string
	Applicable(b Basket, cust *customer.Customer) bool
	Compute(b Basket, cust *customer.Customer) ([]Result, error)
}

const (
	seniorRate       = 0.10
	categoryBulkRate = 0.07
)

// Senior gives customers aged 60 and over 10% off the subtotal.
type Senior struct{}

func (Senior) Name() string { return "senior" }

func (Senior) Applicable(_ Basket, cust *customer.Customer) bool {
	return cust != nil && cust.IsSenior()
}

func (Senior) Compute(b Basket, _ *customer.Customer) ([]Result, error) {
	r, err := NewResult(
		"Diskon Lansia",
		money.ApplyRate(b.Subtotal(), seniorRate),
		seniorRate,
		fmt.Sprintf("Diskon %s untuk usia %d+ tahun", money.Percent(seniorRate), customer.SeniorAge),
	)
	if err != nil {
		return nil, err
	}

	return []Result{r}, nil
}

// Member applies the membership rate of the customer's segment.
type Member struct{}

func (Member) Name() string { return "member" }

func (Member) Applicable(_ Basket, cust *customer.Customer) bool {
	return cust != nil && cust.IsMember()
}

func (Member) Compute(b Basket, cust *customer.Customer) ([]Result, error) {
	rate := customer.DiscountRate(cust.Segment, cust.Points)

	label := "Regular"

	switch cust.Segment {
	case customer.SegmentPremium:
		label = string(customer.TierFor(cust.Points))
	case customer.SegmentVIP:
		label = "VIP"
	}

	r, err := NewResult(
		"Diskon Member "+label,
		money.ApplyRate(b.Subtotal(), rate),
		rate,
		fmt.Sprintf("Diskon %s untuk member %s", money.Percent(rate), label),
	)
	if err != nil {
		return nil, err
	}

	return []Result{r}, nil
}

// CategoryThresholds is the minimum quantity per category for a bulk discount.
var CategoryThresholds = map[catalog.Category]int{
	catalog.CategoryFood:      3,
	catalog.CategoryDrink:     3,
	catalog.CategoryHousehold: 2,
}

// CategoryBulk gives 7% off each category whose quantity meets its threshold.
// It yields one result per qualifying category.
type CategoryBulk struct{}

func (CategoryBulk) Name() string { return "category_bulk" }

func (CategoryBulk) Applicable(b Basket, _ *customer.Customer) bool {
	totals := b.CategoryTotals()

	for _, cat := range catalog.Categories {
		if t, ok := totals[cat]; ok && t.Quantity >= CategoryThresholds[cat] {
			return true
		}
	}

	return false
}

func (CategoryBulk) Compute(b Basket, _ *customer.Customer) ([]Result, error) {
	totals := b.CategoryTotals()

	var results []Result

	for _, cat := range catalog.Categories {
		t, ok := totals[cat]
		if !ok || t.Quantity < CategoryThresholds[cat] {
			continue
		}

		r, err := NewResult(
			"Diskon Kategori "+cat.Label(),
			money.ApplyRate(t.Amount, categoryBulkRate),
			categoryBulkRate,
			fmt.Sprintf("Diskon %s untuk %s ≥ %d item", money.Percent(categoryBulkRate), cat.Label(), CategoryThresholds[cat]),
		)
		if err != nil {
			return nil, err
		}

		results = append(results, r)
	}

	return results, nil
}

type dayRule struct {
	rate  float64
	label string
}

var dayRules = map[time.Weekday]dayRule{
	time.Monday:   {rate: 0.15, label: "Senin"},
	time.Saturday: {rate: 0.20, label: "Sabtu"},
}

// DayOfWeek discounts the whole subtotal on Mondays and Saturdays.
type DayOfWeek struct {
	Clock clock.Clock
}

func NewDayOfWeek(clk clock.Clock) DayOfWeek {
	return DayOfWeek{Clock: clk}
}

func (DayOfWeek) Name() string { return "day_of_week" }

func (d DayOfWeek) Applicable(_ Basket, _ *customer.Customer) bool {
	_, ok := dayRules[d.Clock.Now().Weekday()]
	return ok
}

func (d DayOfWeek) Compute(b Basket, _ *customer.Customer) ([]Result, error) {
	rule, ok := dayRules[d.Clock.Now().Weekday()]
	if !ok {
		return nil, nil
	}

	r, err := NewResult(
		"Diskon Hari "+rule.label,
		money.ApplyRate(b.Subtotal(), rule.rate),
		rule.rate,
		fmt.Sprintf("Diskon spesial hari %s %s", rule.label, money.Percent(rule.rate)),
	)
	if err != nil {
		return nil, err
	}

	return []Result{r}, nil
}
