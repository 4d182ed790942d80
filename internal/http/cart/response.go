package cart

import (
	"time"

	"github.com/MrJamesThe3rd/kasir/internal/cart"
	"github.com/MrJamesThe3rd/kasir/internal/catalog"
	"github.com/MrJamesThe3rd/kasir/internal/customer"
)

type cartResponse struct {
	ID            string                                  `json:"id"`
	Customer      *customer.Snapshot                      `json:"customer,omitempty"`
	Items         []itemResponse                          `json:"items"`
	Categories    map[catalog.Category]cart.CategoryTotal `json:"categories"`
	TotalQuantity int                                     `json:"total_quantity"`
	Subtotal      int64                                   `json:"subtotal"`
	Finalized     bool                                    `json:"finalized"`
	CreatedAt     time.Time                               `json:"created_at"`
}

type itemResponse struct {
	Name        string           `json:"name"`
	DisplayName string           `json:"display_name"`
	UnitPrice   int64            `json:"unit_price"`
	Unit        string           `json:"unit"`
	Category    catalog.Category `json:"category"`
	Quantity    int              `json:"quantity"`
	Total       int64            `json:"total"`
}

// toResponse must be called while holding the session.
func toResponse(s *cart.Session, c *cart.Cart) cartResponse {
	resp := cartResponse{
		ID:            s.ID,
		Items:         make([]itemResponse, 0, c.Len()),
		Categories:    c.CategoryTotals(),
		TotalQuantity: c.TotalQuantity(),
		Subtotal:      c.Subtotal(),
		Finalized:     c.IsFinalized(),
		CreatedAt:     s.CreatedAt,
	}

	if cust := c.Customer(); cust != nil {
		snap := cust.Snapshot()
		resp.Customer = &snap
	}

	for _, li := range c.Items() {
		resp.Items = append(resp.Items, itemResponse{
			Name:        li.Name,
			DisplayName: li.DisplayName(),
			UnitPrice:   li.UnitPrice,
			Unit:        li.Unit,
			Category:    li.Category,
			Quantity:    li.Quantity,
			Total:       li.Total(),
		})
	}

	return resp
}
