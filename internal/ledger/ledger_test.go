package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/kasir/internal/cart"
	"github.com/MrJamesThe3rd/kasir/internal/catalog"
	"github.com/MrJamesThe3rd/kasir/internal/clock"
	"github.com/MrJamesThe3rd/kasir/internal/customer"
	"github.com/MrJamesThe3rd/kasir/internal/errs"
	"github.com/MrJamesThe3rd/kasir/internal/ledger"
	"github.com/MrJamesThe3rd/kasir/internal/ledger/store"
	"github.com/MrJamesThe3rd/kasir/internal/payment"
	"github.com/MrJamesThe3rd/kasir/internal/transaction"
)

var (
	beras  = catalog.Product{Name: "beras", UnitPrice: 15000, Unit: "kg", Category: catalog.CategoryFood}
	kopi   = catalog.Product{Name: "kopi", UnitPrice: 5000, Unit: "buah", Category: catalog.CategoryDrink}
	minyak = catalog.Product{Name: "minyak", UnitPrice: 25000, Unit: "botol", Category: catalog.CategoryHousehold}
	sabun  = catalog.Product{Name: "sabun", UnitPrice: 5000, Unit: "batang", Category: catalog.CategoryHousehold}
)

func at(day, hour int) time.Time {
	return time.Date(2026, 10, day, hour, 0, 0, 0, time.UTC)
}

type line struct {
	product catalog.Product
	qty     int
}

// build creates an undiscounted, untaxed, fully paid transaction.
func build(t *testing.T, id, name string, created time.Time, lines ...line) *transaction.Transaction {
	t.Helper()

	cust, err := customer.New(name, 30, customer.SegmentRegular, 0)
	require.NoError(t, err)

	c := cart.New(cust)
	for _, l := range lines {
		require.NoError(t, c.AddProduct(l.product, l.qty))
	}

	pay, err := payment.NewRecord(c.Subtotal(), payment.MethodCash, 0, nil)
	require.NoError(t, err)

	tx, err := transaction.NewBuilder(clock.Fixed(created)).
		SetID(id).
		SetCart(c).
		SetTotalAmount(c.Subtotal()).
		SetPayment(pay).
		Build()
	require.NoError(t, err)

	return tx
}

// seed fills a store with five transactions over two days.
func seed(t *testing.T) (*ledger.Service, *store.Store) {
	t.Helper()

	tx1 := build(t, "TXN_1", "Budi", at(14, 9), line{beras, 3})
	tx2 := build(t, "TXN_2", "Ani", at(14, 12), line{minyak, 2}, line{sabun, 1})
	tx3 := build(t, "TXN_3", "Budi", at(15, 8), line{kopi, 1})
	tx4 := build(t, "TXN_4", "Sari", at(15, 10), line{beras, 10})
	tx5 := build(t, "TXN_5", "Ani", at(15, 11), line{kopi, 2})

	require.True(t, tx1.Complete())
	require.True(t, tx2.Complete())
	require.True(t, tx3.Complete())
	require.True(t, tx5.Cancel())

	st := store.New()
	svc := ledger.NewService(st)

	for _, tx := range []*transaction.Transaction{tx1, tx2, tx3, tx4, tx5} {
		require.NoError(t, svc.Append(context.Background(), tx))
	}

	return svc, st
}

func ids(txs []*transaction.Transaction) []string {
	out := make([]string, 0, len(txs))
	for _, tx := range txs {
		out = append(out, tx.ID())
	}

	return out
}

func TestService_Queries(t *testing.T) {
	svc, _ := seed(t)
	ctx := context.Background()

	type testCase struct {
		name    string
		query   func() ([]*transaction.Transaction, error)
		want    []string
		wantErr error
	}

	tests := []testCase{
		{
			name:  "All",
			query: func() ([]*transaction.Transaction, error) { return svc.All(ctx) },
			want:  []string{"TXN_1", "TXN_2", "TXN_3", "TXN_4", "TXN_5"},
		},
		{
			name:  "ByCustomer",
			query: func() ([]*transaction.Transaction, error) { return svc.ByCustomer(ctx, "Ani") },
			want:  []string{"TXN_2", "TXN_5"},
		},
		{
			name:  "ByCustomerIgnoresCase",
			query: func() ([]*transaction.Transaction, error) { return svc.ByCustomer(ctx, " budi ") },
			want:  []string{"TXN_1", "TXN_3"},
		},
		{
			name:  "ByStatusCompleted",
			query: func() ([]*transaction.Transaction, error) { return svc.ByStatus(ctx, transaction.StatusCompleted) },
			want:  []string{"TXN_1", "TXN_2", "TXN_3"},
		},
		{
			name:  "ByStatusRefundedEmpty",
			query: func() ([]*transaction.Transaction, error) { return svc.ByStatus(ctx, transaction.StatusRefunded) },
			want:  []string{},
		},
		{
			name:  "ByDateRangeInclusive",
			query: func() ([]*transaction.Transaction, error) { return svc.ByDateRange(ctx, at(14, 12), at(15, 10)) },
			want:  []string{"TXN_2", "TXN_3", "TXN_4"},
		},
		{
			name:    "ByDateRangeInverted",
			query:   func() ([]*transaction.Transaction, error) { return svc.ByDateRange(ctx, at(15, 0), at(14, 0)) },
			wantErr: errs.ErrInvalidArgument,
		},
		{
			name:  "Daily",
			query: func() ([]*transaction.Transaction, error) { return svc.Daily(ctx, at(15, 23)) },
			want:  []string{"TXN_3", "TXN_4", "TXN_5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.query()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestService_ByIDSeesStatusChanges(t *testing.T) {
	svc, _ := seed(t)
	ctx := context.Background()

	tx, err := svc.ByID(ctx, "TXN_4")
	require.NoError(t, err)
	require.True(t, tx.Complete())

	again, err := svc.ByID(ctx, "TXN_4")
	require.NoError(t, err)
	assert.Equal(t, transaction.StatusCompleted, again.Status())

	_, err = svc.ByID(ctx, "TXN_404")
	assert.ErrorIs(t, err, ledger.ErrNotFound)
}

func TestService_AppendDuplicate(t *testing.T) {
	svc, st := seed(t)

	dup := build(t, "TXN_1", "Budi", at(16, 9), line{kopi, 1})

	err := svc.Append(context.Background(), dup)
	assert.ErrorIs(t, err, ledger.ErrDuplicateID)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, 5, st.Len())
}

func TestService_AppendRepoError(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := ledger.NewMockRepository(ctrl)
	repo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	svc := ledger.NewService(repo)
	err := svc.Append(context.Background(), build(t, "TXN_1", "Budi", at(14, 9), line{kopi, 1}))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "TXN_1")
}

func TestService_DailyBounds(t *testing.T) {
	ctrl := gomock.NewController(t)

	wib := time.FixedZone("WIB", 7*60*60)

	repo := ledger.NewMockRepository(ctrl)
	repo.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f ledger.ListFilter) ([]*transaction.Transaction, error) {
			require.NotNil(t, f.StartDate)
			require.NotNil(t, f.EndDate)
			assert.Equal(t, time.Date(2026, 10, 15, 0, 0, 0, 0, wib), *f.StartDate)
			assert.Equal(t, time.Date(2026, 10, 15, 23, 59, 59, 999999999, wib), *f.EndDate)
			assert.Nil(t, f.Status)

			return nil, nil
		})

	svc := ledger.NewService(repo)
	_, err := svc.Daily(context.Background(), time.Date(2026, 10, 15, 18, 45, 0, 0, wib))
	require.NoError(t, err)
}

func TestService_Analytics(t *testing.T) {
	svc, _ := seed(t)

	a, err := svc.Analytics(context.Background(), ledger.Period{}, 0)
	require.NoError(t, err)

	assert.Equal(t, int64(105000), a.TotalRevenue)
	assert.Equal(t, 3, a.TotalTransactions)
	assert.Equal(t, 7, a.TotalItemsSold)
	assert.Equal(t, int64(35000), a.AverageTransactionValue)

	assert.Equal(t, map[transaction.Status]int{
		transaction.StatusCompleted: 3,
		transaction.StatusPending:   1,
		transaction.StatusCancelled: 1,
	}, a.StatusBreakdown)

	assert.Equal(t, []ledger.CustomerSpend{
		{Name: "Ani", TotalSpent: 55000, TransactionCount: 1},
		{Name: "Budi", TotalSpent: 50000, TransactionCount: 2},
	}, a.TopCustomers)

	assert.Equal(t, map[catalog.Category]ledger.CategoryPerformance{
		catalog.CategoryFood:      {Revenue: 45000, ItemsSold: 3, TransactionCount: 1},
		catalog.CategoryHousehold: {Revenue: 55000, ItemsSold: 3, TransactionCount: 1},
		catalog.CategoryDrink:     {Revenue: 5000, ItemsSold: 1, TransactionCount: 1},
	}, a.CategoryPerformance)
}

func TestService_AnalyticsPeriodAndTopN(t *testing.T) {
	svc, _ := seed(t)
	ctx := context.Background()

	a, err := svc.Analytics(ctx, ledger.Period{Start: at(14, 0), End: at(14, 23)}, 1)
	require.NoError(t, err)

	assert.Equal(t, int64(100000), a.TotalRevenue)
	assert.Equal(t, 2, a.TotalTransactions)
	assert.Equal(t, map[transaction.Status]int{transaction.StatusCompleted: 2}, a.StatusBreakdown)
	require.Len(t, a.TopCustomers, 1)
	assert.Equal(t, "Ani", a.TopCustomers[0].Name)

	_, err = svc.Analytics(ctx, ledger.Period{Start: at(15, 0), End: at(14, 0)}, 0)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestService_AnalyticsEmpty(t *testing.T) {
	svc := ledger.NewService(store.New())

	a, err := svc.Analytics(context.Background(), ledger.Period{}, 5)
	require.NoError(t, err)

	assert.Zero(t, a.TotalRevenue)
	assert.Zero(t, a.AverageTransactionValue)
	assert.Empty(t, a.TopCustomers)
	assert.Empty(t, a.StatusBreakdown)
}
