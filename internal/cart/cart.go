package cart

import (
	"fmt"

	"github.com/MrJamesThe3rd/kasir/internal/catalog"
	"github.com/MrJamesThe3rd/kasir/internal/customer"
	"github.com/MrJamesThe3rd/kasir/internal/errs"
)

var (
	ErrFinalized    = fmt.Errorf("%w: cart is finalized", errs.ErrInvalidState)
	ErrItemNotFound = fmt.Errorf("%w: item not in cart", errs.ErrInvalidArgument)
)

// Cart holds the line items of one customer until checkout. It is not safe
// for concurrent use; see Registry for per-cart serialization.
type Cart struct {
	customer  *customer.Customer
	items     map[string]catalog.LineItem
	order     []string
	finalized bool
}

func New(cust *customer.Customer) *Cart {
	return &Cart{
		customer: cust,
		items:    make(map[string]catalog.LineItem),
	}
}

// Customer may be nil for a cart that was never assigned one.
func (c *Cart) Customer() *customer.Customer {
	return c.customer
}

// Add inserts item, or merges its quantity into an existing entry with the
// same name. A merged entry keeps the price it was first added at.
func (c *Cart) Add(item catalog.LineItem) error {
	if c.finalized {
		return ErrFinalized
	}

	if err := item.Validate(); err != nil {
		return err
	}

	key := catalog.NormalizeName(item.Name)
	item.Category, _ = catalog.ParseCategory(string(item.Category))

	if existing, ok := c.items[key]; ok {
		existing.Quantity += item.Quantity
		c.items[key] = existing

		return nil
	}

	item.Name = key
	c.items[key] = item
	c.order = append(c.order, key)

	return nil
}

// AddProduct snapshots p with quantity and adds it.
func (c *Cart) AddProduct(p catalog.Product, quantity int) error {
	if c.finalized {
		return ErrFinalized
	}

	item, err := catalog.NewLineItem(p, quantity)
	if err != nil {
		return err
	}

	return c.Add(item)
}

func (c *Cart) Remove(name string) error {
	if c.finalized {
		return ErrFinalized
	}

	key := catalog.NormalizeName(name)
	if _, ok := c.items[key]; !ok {
		return fmt.Errorf("%w: %s", ErrItemNotFound, name)
	}

	delete(c.items, key)

	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}

	return nil
}

func (c *Cart) UpdateQuantity(name string, quantity int) error {
	if c.finalized {
		return ErrFinalized
	}

	if quantity <= 0 {
		return errs.InvalidArgumentf("quantity must be positive, got %d", quantity)
	}

	key := catalog.NormalizeName(name)

	item, ok := c.items[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrItemNotFound, name)
	}

	item.Quantity = quantity
	c.items[key] = item

	return nil
}

func (c *Cart) Clear() error {
	if c.finalized {
		return ErrFinalized
	}

	clear(c.items)
	c.order = c.order[:0]

	return nil
}

func (c *Cart) Get(name string) (catalog.LineItem, bool) {
	item, ok := c.items[catalog.NormalizeName(name)]
	return item, ok
}

func (c *Cart) Contains(name string) bool {
	_, ok := c.items[catalog.NormalizeName(name)]
	return ok
}

// Items returns a copy of the line items in the order they were first added.
func (c *Cart) Items() []catalog.LineItem {
	out := make([]catalog.LineItem, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, c.items[k])
	}

	return out
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) TotalQuantity() int {
	return totalQuantity(c.Items())
}

func (c *Cart) Subtotal() int64 {
	return subtotal(c.Items())
}

func (c *Cart) GroupByCategory() map[catalog.Category][]catalog.LineItem {
	return groupByCategory(c.Items())
}

func (c *Cart) CategoryTotals() map[catalog.Category]CategoryTotal {
	return categoryTotals(c.Items())
}

func (c *Cart) IsFinalized() bool {
	return c.finalized
}

// Finalize freezes the cart. Every later mutation fails with ErrFinalized.
func (c *Cart) Finalize() {
	c.finalized = true
}

// Unfinalize reopens a finalized cart for editing. Checkout never calls it.
func (c *Cart) Unfinalize() {
	c.finalized = false
}

// Snapshot copies the current items and customer fields.
func (c *Cart) Snapshot() Snapshot {
	s := Snapshot{Items: c.Items()}

	if c.customer != nil {
		cs := c.customer.Snapshot()
		s.Customer = &cs
	}

	return s
}
