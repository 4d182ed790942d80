package cart

import (
	"github.com/MrJamesThe3rd/kasir/internal/catalog"
	"github.com/MrJamesThe3rd/kasir/internal/customer"
)

// CategoryTotal aggregates the items of one category.
type CategoryTotal struct {
	Quantity int   `json:"quantity"`
	Amount   int64 `json:"amount"`
}

// Snapshot is a detached copy of a cart, owned by the transaction built from it.
type Snapshot struct {
	Items    []catalog.LineItem `json:"items"`
	Customer *customer.Snapshot `json:"customer,omitempty"`
}

func (s Snapshot) Subtotal() int64 {
	return subtotal(s.Items)
}

func (s Snapshot) TotalQuantity() int {
	return totalQuantity(s.Items)
}

func (s Snapshot) GroupByCategory() map[catalog.Category][]catalog.LineItem {
	return groupByCategory(s.Items)
}

func (s Snapshot) CategoryTotals() map[catalog.Category]CategoryTotal {
	return categoryTotals(s.Items)
}

// CustomerName is empty for a cart without a customer.
func (s Snapshot) CustomerName() string {
	if s.Customer == nil {
		return ""
	}

	return s.Customer.Name
}

func subtotal(items []catalog.LineItem) int64 {
	var sum int64
	for _, it := range items {
		sum += it.Total()
	}

	return sum
}

func totalQuantity(items []catalog.LineItem) int {
	var n int
	for _, it := range items {
		n += it.Quantity
	}

	return n
}

func groupByCategory(items []catalog.LineItem) map[catalog.Category][]catalog.LineItem {
	groups := make(map[catalog.Category][]catalog.LineItem)
	for _, it := range items {
		groups[it.Category] = append(groups[it.Category], it)
	}

	return groups
}

func categoryTotals(items []catalog.LineItem) map[catalog.Category]CategoryTotal {
	totals := make(map[catalog.Category]CategoryTotal)
	for _, it := range items {
		t := totals[it.Category]
		t.Quantity += it.Quantity
		t.Amount += it.Total()
		totals[it.Category] = t
	}

	return totals
}
