package report

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/kasir/internal/clock"
	"github.com/MrJamesThe3rd/kasir/internal/http/respond"
	"github.com/MrJamesThe3rd/kasir/internal/ledger"
	"github.com/MrJamesThe3rd/kasir/internal/transaction"
)

type Handler struct {
	ledger       *ledger.Service
	clock        clock.Clock
	topCustomers int
}

// NewHandler reports over l. topCustomers is the default ranking size when a
// request does not ask for one.
func NewHandler(l *ledger.Service, clk clock.Clock, topCustomers int) *Handler {
	return &Handler{ledger: l, clock: clk, topCustomers: topCustomers}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/analytics", h.analytics)
	r.Get("/daily", h.daily)
}

func (h *Handler) analytics(w http.ResponseWriter, r *http.Request) {
	var period ledger.Period

	q := r.URL.Query()

	if s := q.Get("start_date"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			respond.BadRequest(w, "invalid start_date")
			return
		}

		period.Start = t
	}

	if s := q.Get("end_date"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			respond.BadRequest(w, "invalid end_date")
			return
		}

		period.End = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	top := h.topCustomers

	if s := q.Get("top"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			respond.BadRequest(w, "top must be a positive integer")
			return
		}

		top = n
	}

	a, err := h.ledger.Analytics(r.Context(), period, top)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, a)
}

type dailyResponse struct {
	Date         string                 `json:"date"`
	Transactions []transaction.Snapshot `json:"transactions"`
	Revenue      int64                  `json:"revenue"`
}

func (h *Handler) daily(w http.ResponseWriter, r *http.Request) {
	date := h.clock.Now()

	if s := r.URL.Query().Get("date"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			respond.BadRequest(w, "invalid date")
			return
		}

		date = t
	}

	txs, err := h.ledger.Daily(r.Context(), date)
	if err != nil {
		respond.Error(w, err)
		return
	}

	resp := dailyResponse{
		Date:         date.Format(time.DateOnly),
		Transactions: make([]transaction.Snapshot, 0, len(txs)),
	}

	for _, tx := range txs {
		resp.Transactions = append(resp.Transactions, tx.Snapshot())
		if tx.Status() == transaction.StatusCompleted {
			resp.Revenue += tx.TotalAmount()
		}
	}

	respond.JSON(w, http.StatusOK, resp)
}
