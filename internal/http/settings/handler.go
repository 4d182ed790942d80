package settings

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/kasir/internal/checkout"
	"github.com/MrJamesThe3rd/kasir/internal/http/respond"
	"github.com/MrJamesThe3rd/kasir/internal/tax"
)

// TaxModes is the part of the tax engine the register may switch at runtime.
type TaxModes interface {
	Mode() tax.Mode
	SetMode(mode tax.Mode) error
}

type Handler struct {
	taxes TaxModes
}

func NewHandler(taxes TaxModes) *Handler {
	return &Handler{taxes: taxes}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/tax-mode", h.getTaxMode)
	r.Put("/tax-mode", h.putTaxMode)
}

type taxModeBody struct {
	Mode tax.Mode `json:"mode"`
}

func (h *Handler) getTaxMode(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, taxModeBody{Mode: h.taxes.Mode()})
}

func (h *Handler) putTaxMode(w http.ResponseWriter, r *http.Request) {
	var req taxModeBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	from := h.taxes.Mode()

	if err := h.taxes.SetMode(req.Mode); err != nil {
		respond.Error(w, err)
		return
	}

	to := h.taxes.Mode()

	slog.InfoContext(r.Context(), "tax mode changed",
		"terminal", checkout.TerminalFrom(r.Context()),
		"from", from,
		"to", to,
	)

	respond.JSON(w, http.StatusOK, taxModeBody{Mode: to})
}
