package catalog

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

var ErrNotFound = errors.New("product not found")

// Lookup resolves a product name to its current catalog entry.
//
//go:generate mockgen -source=catalog.go -destination=lookup_mock.go -package=catalog
type Lookup interface {
	Product(name string) (Product, error)
}

// Catalog is an in-memory Lookup.
type Catalog struct {
	mu       sync.RWMutex
	products map[string]Product
}

// New validates every product and returns a catalog holding them.
func New(products ...Product) (*Catalog, error) {
	c := &Catalog{products: make(map[string]Product, len(products))}
	for _, p := range products {
		if err := c.Put(p); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// NewDefault returns the catalog a fresh register starts with.
func NewDefault() (*Catalog, error) {
	return New(defaultProducts...)
}

func (c *Catalog) Product(name string) (Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.products[NormalizeName(name)]
	if !ok {
		return Product{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	return p, nil
}

// Put validates p and inserts or replaces it. Items already in carts keep
// their price.
func (c *Catalog) Put(p Product) error {
	p, err := NewProduct(p.Name, p.UnitPrice, p.Unit, p.Category)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.products[p.Name] = p

	return nil
}

// All returns every product sorted by name.
func (c *Catalog) All() []Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Product, 0, len(c.products))
	for _, p := range c.products {
		out = append(out, p)
	}

	slices.SortFunc(out, func(a, b Product) int {
		if a.Name < b.Name {
			return -1
		}

		if a.Name > b.Name {
			return 1
		}

		return 0
	})

	return out
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.products)
}

var defaultProducts = []Product{
	{Name: "beras", UnitPrice: 15000, Unit: "kg", Category: CategoryFood},
	{Name: "telur", UnitPrice: 20000, Unit: "kg", Category: CategoryFood},
	{Name: "roti", UnitPrice: 8000, Unit: "buah", Category: CategoryFood},
	{Name: "sayur", UnitPrice: 5000, Unit: "kg", Category: CategoryFood},
	{Name: "buah", UnitPrice: 10000, Unit: "kg", Category: CategoryFood},
	{Name: "gula", UnitPrice: 12000, Unit: "kg", Category: CategoryFood},
	{Name: "kerupuk", UnitPrice: 2000, Unit: "kg", Category: CategoryFood},
	{Name: "mie_instan", UnitPrice: 1500, Unit: "buah", Category: CategoryFood},
	{Name: "susu", UnitPrice: 12000, Unit: "botol", Category: CategoryDrink},
	{Name: "kopi", UnitPrice: 5000, Unit: "buah", Category: CategoryDrink},
	{Name: "teh", UnitPrice: 3000, Unit: "kantong", Category: CategoryDrink},
	{Name: "minyak", UnitPrice: 25000, Unit: "botol", Category: CategoryHousehold},
	{Name: "sabun", UnitPrice: 5000, Unit: "batang", Category: CategoryHousehold},
	{Name: "sampo", UnitPrice: 10000, Unit: "batang", Category: CategoryHousehold},
}
