package cart

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/kasir/internal/cart"
	"github.com/MrJamesThe3rd/kasir/internal/catalog"
	"github.com/MrJamesThe3rd/kasir/internal/checkout"
	"github.com/MrJamesThe3rd/kasir/internal/customer"
	"github.com/MrJamesThe3rd/kasir/internal/http/respond"
	"github.com/MrJamesThe3rd/kasir/internal/payment"
	"github.com/MrJamesThe3rd/kasir/internal/transaction"
)

type Handler struct {
	carts    *cart.Registry
	products catalog.Lookup
	checkout *checkout.Service
}

func NewHandler(carts *cart.Registry, products catalog.Lookup, svc *checkout.Service) *Handler {
	return &Handler{carts: carts, products: products, checkout: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/items", h.addItem)
	r.Delete("/{id}/items", h.clear)
	r.Patch("/{id}/items/{name}", h.updateItem)
	r.Delete("/{id}/items/{name}", h.removeItem)
	r.Get("/{id}/totals", h.totals)
	r.Post("/{id}/validate", h.validate)
	r.Post("/{id}/checkout", h.checkoutCart)
}

type createCartRequest struct {
	Customer struct {
		Name    string           `json:"name"`
		Age     int              `json:"age"`
		Segment customer.Segment `json:"segment"`
		Points  int              `json:"points"`
	} `json:"customer"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	cust, err := customer.New(req.Customer.Name, req.Customer.Age, req.Customer.Segment, req.Customer.Points)
	if err != nil {
		respond.Error(w, err)
		return
	}

	s := h.carts.Create(cust)

	h.respondCart(w, s, http.StatusCreated)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	s, err := h.carts.Get(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, err)
		return
	}

	h.respondCart(w, s, http.StatusOK)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.carts.Remove(chi.URLParam(r, "id")); err != nil {
		respond.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type addItemRequest struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	p, err := h.products.Product(req.Product)
	if err != nil {
		respond.Error(w, err)
		return
	}

	h.mutate(w, r, func(c *cart.Cart) error {
		return c.AddProduct(p, req.Quantity)
	})
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	name := chi.URLParam(r, "name")

	h.mutate(w, r, func(c *cart.Cart) error {
		return c.UpdateQuantity(name, req.Quantity)
	})
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	h.mutate(w, r, func(c *cart.Cart) error {
		return c.Remove(name)
	})
}

func (h *Handler) clear(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, (*cart.Cart).Clear)
}

func (h *Handler) totals(w http.ResponseWriter, r *http.Request) {
	s, err := h.carts.Get(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, err)
		return
	}

	var bd checkout.Breakdown

	err = s.Do(func(c *cart.Cart) error {
		var err error
		bd, err = h.checkout.Orchestrator().ComputeTotals(c)

		return err
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, bd)
}

type validateRequest struct {
	Amount int64          `json:"amount"`
	Method payment.Method `json:"method"`
}

func (h *Handler) validate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	s, err := h.carts.Get(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, err)
		return
	}

	var v checkout.Validation

	_ = s.Do(func(c *cart.Cart) error {
		v = h.checkout.Orchestrator().Validate(c, req.Amount, req.Method)
		return nil
	})

	respond.JSON(w, http.StatusOK, v)
}

type checkoutResponse struct {
	Transaction transaction.Snapshot `json:"transaction"`
	Breakdown   checkout.Breakdown   `json:"breakdown"`
	Warnings    []string             `json:"warnings"`
}

func (h *Handler) checkoutCart(w http.ResponseWriter, r *http.Request) {
	var req checkout.PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	s, err := h.carts.Get(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, err)
		return
	}

	var receipt *checkout.Receipt

	err = s.Do(func(c *cart.Cart) error {
		var err error
		receipt, err = h.checkout.Create(r.Context(), c, req)

		return err
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, checkoutResponse{
		Transaction: receipt.Transaction.Snapshot(),
		Breakdown:   receipt.Breakdown,
		Warnings:    receipt.Warnings,
	})
}

// mutate applies fn to the cart named in the URL and responds with the
// updated cart.
func (h *Handler) mutate(w http.ResponseWriter, r *http.Request, fn func(c *cart.Cart) error) {
	s, err := h.carts.Get(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, err)
		return
	}

	var resp cartResponse

	err = s.Do(func(c *cart.Cart) error {
		if err := fn(c); err != nil {
			return err
		}

		resp = toResponse(s, c)

		return nil
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) respondCart(w http.ResponseWriter, s *cart.Session, status int) {
	var resp cartResponse

	_ = s.Do(func(c *cart.Cart) error {
		resp = toResponse(s, c)
		return nil
	})

	respond.JSON(w, status, resp)
}
