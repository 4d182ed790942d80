package product

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/kasir/internal/catalog"
	"github.com/MrJamesThe3rd/kasir/internal/http/respond"
)

// Catalog is the read side of the product catalog.
type Catalog interface {
	catalog.Lookup
	All() []catalog.Product
}

type Handler struct {
	products Catalog
}

func NewHandler(products Catalog) *Handler {
	return &Handler{products: products}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{name}", h.get)
}

type productResponse struct {
	catalog.Product
	DisplayName   string `json:"display_name"`
	CategoryLabel string `json:"category_label"`
}

func toResponse(p catalog.Product) productResponse {
	return productResponse{
		Product:       p,
		DisplayName:   p.DisplayName(),
		CategoryLabel: p.Category.Label(),
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	products := h.products.All()

	category := r.URL.Query().Get("category")

	var want catalog.Category

	if category != "" {
		c, err := catalog.ParseCategory(category)
		if err != nil {
			respond.Error(w, err)
			return
		}

		want = c
	}

	resp := make([]productResponse, 0, len(products))

	for _, p := range products {
		if want != "" && p.Category != want {
			continue
		}

		resp = append(resp, toResponse(p))
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	p, err := h.products.Product(chi.URLParam(r, "name"))
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(p))
}
