package ledger

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/MrJamesThe3rd/kasir/internal/catalog"
	"github.com/MrJamesThe3rd/kasir/internal/errs"
	"github.com/MrJamesThe3rd/kasir/internal/transaction"
)

// DefaultTopCustomers is how many customers a report ranks by default.
const DefaultTopCustomers = 5

// Period bounds a report. A zero Start or End leaves that side open.
type Period struct {
	Start time.Time `json:"start,omitzero"`
	End   time.Time `json:"end,omitzero"`
}

func (p Period) filter() ListFilter {
	var f ListFilter

	if !p.Start.IsZero() {
		f.StartDate = &p.Start
	}

	if !p.End.IsZero() {
		f.EndDate = &p.End
	}

	return f
}

type CustomerSpend struct {
	Name             string `json:"name"`
	TotalSpent       int64  `json:"total_spent"`
	TransactionCount int    `json:"transaction_count"`
}

type CategoryPerformance struct {
	Revenue          int64 `json:"revenue"`
	ItemsSold        int   `json:"items_sold"`
	TransactionCount int   `json:"transaction_count"`
}

// Analytics summarizes sales over a period. Revenue, counts, customers and
// categories only consider completed transactions; the status breakdown
// covers every transaction in the period.
type Analytics struct {
	Period                  Period                                   `json:"period"`
	TotalRevenue            int64                                    `json:"total_revenue"`
	TotalTransactions       int                                      `json:"total_transactions"`
	TotalItemsSold          int                                      `json:"total_items_sold"`
	AverageTransactionValue int64                                    `json:"average_transaction_value"`
	StatusBreakdown         map[transaction.Status]int               `json:"status_breakdown"`
	TopCustomers            []CustomerSpend                          `json:"top_customers"`
	CategoryPerformance     map[catalog.Category]CategoryPerformance `json:"category_performance"`
}

// Analytics aggregates the period. topN <= 0 means DefaultTopCustomers.
func (s *Service) Analytics(ctx context.Context, period Period, topN int) (Analytics, error) {
	if !period.Start.IsZero() && !period.End.IsZero() && period.End.Before(period.Start) {
		return Analytics{}, errs.InvalidArgument("period end is before start")
	}

	if topN <= 0 {
		topN = DefaultTopCustomers
	}

	txs, err := s.repo.List(ctx, period.filter())
	if err != nil {
		return Analytics{}, fmt.Errorf("listing transactions: %w", err)
	}

	a := Analytics{
		Period:              period,
		StatusBreakdown:     make(map[transaction.Status]int),
		CategoryPerformance: make(map[catalog.Category]CategoryPerformance),
	}

	var (
		customers []*CustomerSpend
		byName    = make(map[string]*CustomerSpend)
	)

	for _, tx := range txs {
		status := tx.Status()
		a.StatusBreakdown[status]++

		if status != transaction.StatusCompleted {
			continue
		}

		a.TotalRevenue += tx.TotalAmount()
		a.TotalTransactions++
		a.TotalItemsSold += tx.ItemsSold()

		if name := tx.CustomerName(); name != "" {
			cs, ok := byName[name]
			if !ok {
				cs = &CustomerSpend{Name: name}
				byName[name] = cs
				customers = append(customers, cs)
			}

			cs.TotalSpent += tx.TotalAmount()
			cs.TransactionCount++
		}

		for cat, total := range tx.Cart().CategoryTotals() {
			perf := a.CategoryPerformance[cat]
			perf.Revenue += total.Amount
			perf.ItemsSold += total.Quantity
			perf.TransactionCount++
			a.CategoryPerformance[cat] = perf
		}
	}

	if a.TotalTransactions > 0 {
		a.AverageTransactionValue = a.TotalRevenue / int64(a.TotalTransactions)
	}

	slices.SortStableFunc(customers, func(x, y *CustomerSpend) int {
		switch {
		case x.TotalSpent > y.TotalSpent:
			return -1
		case x.TotalSpent < y.TotalSpent:
			return 1
		default:
			return 0
		}
	})

	a.TopCustomers = make([]CustomerSpend, 0, min(topN, len(customers)))
	for _, cs := range customers[:min(topN, len(customers))] {
		a.TopCustomers = append(a.TopCustomers, *cs)
	}

	return a, nil
}
