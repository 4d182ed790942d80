package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/kasir/internal/checkout"
	"github.com/MrJamesThe3rd/kasir/internal/http/respond"
	"github.com/MrJamesThe3rd/kasir/internal/ledger"
	"github.com/MrJamesThe3rd/kasir/internal/transaction"
)

type Handler struct {
	ledger   *ledger.Service
	checkout *checkout.Service
}

func NewHandler(l *ledger.Service, svc *checkout.Service) *Handler {
	return &Handler{ledger: l, checkout: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Post("/{id}/complete", h.transition(h.checkout.Complete))
	r.Post("/{id}/cancel", h.transition(h.checkout.Cancel))
	r.Post("/{id}/refund", h.transition(h.checkout.Refund))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := ledger.ListFilter{}
	q := r.URL.Query()

	if s := q.Get("status"); s != "" {
		status, err := transaction.ParseStatus(s)
		if err != nil {
			respond.Error(w, err)
			return
		}

		filter.Status = new(status)
	}

	if s := q.Get("customer"); s != "" {
		filter.Customer = new(s)
	}

	if s := q.Get("start_date"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			respond.BadRequest(w, "invalid start_date")
			return
		}

		filter.StartDate = new(t)
	}

	if s := q.Get("end_date"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			respond.BadRequest(w, "invalid end_date")
			return
		}

		// end_date covers the whole day
		filter.EndDate = new(t.AddDate(0, 0, 1).Add(-time.Nanosecond))
	}

	txs, err := h.ledger.List(r.Context(), filter)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(txs))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	tx, err := h.ledger.ByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, tx.Snapshot())
}

func (h *Handler) transition(
	apply func(ctx context.Context, id string) (*transaction.Transaction, error),
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tx, err := apply(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respond.Error(w, err)
			return
		}

		respond.JSON(w, http.StatusOK, tx.Snapshot())
	}
}
