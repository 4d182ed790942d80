package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/MrJamesThe3rd/kasir/internal/errs"
)

// Category tags a product for category discounts and category tax.
type Category string

const (
	CategoryFood      Category = "food"
	CategoryDrink     Category = "drink"
	CategoryHousehold Category = "household"
)

// Categories lists every category in rule-evaluation order.
var Categories = []Category{CategoryFood, CategoryDrink, CategoryHousehold}

var categoryAliases = map[string]Category{
	"food":      CategoryFood,
	"makanan":   CategoryFood,
	"drink":     CategoryDrink,
	"minuman":   CategoryDrink,
	"household": CategoryHousehold,
	"kebutuhan": CategoryHousehold,
}

// ParseCategory accepts English or Indonesian labels.
func ParseCategory(s string) (Category, error) {
	c, ok := categoryAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", errs.InvalidArgumentf("unknown category %q", s)
	}

	return c, nil
}

var categoryLabels = map[Category]string{
	CategoryFood:      "Makanan",
	CategoryDrink:     "Minuman",
	CategoryHousehold: "Kebutuhan",
}

// Label is the name printed on receipts.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}

	return cases.Title(language.Indonesian).String(string(c))
}

// NormalizeName turns a product name into its catalog and cart key.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Product is a catalog entry.
type Product struct {
	Name      string   `json:"name"`
	UnitPrice int64    `json:"unit_price"`
	Unit      string   `json:"unit"`
	Category  Category `json:"category"`
}

// NewProduct validates and normalizes a product.
func NewProduct(name string, unitPrice int64, unit string, category Category) (Product, error) {
	name = NormalizeName(name)
	if name == "" {
		return Product{}, errs.InvalidArgument("product name must not be empty")
	}

	if unitPrice <= 0 {
		return Product{}, errs.InvalidArgumentf("product %q: unit price must be positive, got %d", name, unitPrice)
	}

	unit = strings.ToLower(strings.TrimSpace(unit))
	if unit == "" {
		return Product{}, errs.InvalidArgumentf("product %q: unit must not be empty", name)
	}

	cat, err := ParseCategory(string(category))
	if err != nil {
		return Product{}, err
	}

	return Product{Name: name, UnitPrice: unitPrice, Unit: unit, Category: cat}, nil
}

// DisplayName renders "mie_instan" as "Mie Instan".
func (p Product) DisplayName() string {
	return displayName(p.Name)
}

func displayName(name string) string {
	return cases.Title(language.Indonesian).String(strings.ReplaceAll(name, "_", " "))
}

// LineItem is a product snapshot plus a quantity. Later catalog price changes
// never reach an item that has already been created.
type LineItem struct {
	Name      string   `json:"name"`
	UnitPrice int64    `json:"unit_price"`
	Unit      string   `json:"unit"`
	Category  Category `json:"category"`
	Quantity  int      `json:"quantity"`
}

// NewLineItem snapshots product with a positive quantity.
func NewLineItem(p Product, quantity int) (LineItem, error) {
	li := LineItem{
		Name:      NormalizeName(p.Name),
		UnitPrice: p.UnitPrice,
		Unit:      p.Unit,
		Category:  p.Category,
		Quantity:  quantity,
	}

	if err := li.Validate(); err != nil {
		return LineItem{}, err
	}

	return li, nil
}

// Validate reports whether li is a usable product snapshot: a name, a
// positive price and quantity, and a known category.
func (li LineItem) Validate() error {
	if li.Quantity <= 0 {
		return errs.InvalidArgumentf("quantity must be positive, got %d", li.Quantity)
	}

	name := NormalizeName(li.Name)
	if name == "" {
		return errs.InvalidArgument("item name must not be empty")
	}

	if li.UnitPrice <= 0 {
		return errs.InvalidArgumentf("item %q: unit price must be positive, got %d", name, li.UnitPrice)
	}

	if _, err := ParseCategory(string(li.Category)); err != nil {
		return fmt.Errorf("item %q: %w", name, err)
	}

	return nil
}

// Total is unit price × quantity.
func (li LineItem) Total() int64 {
	return li.UnitPrice * int64(li.Quantity)
}

func (li LineItem) DisplayName() string {
	return displayName(li.Name)
}
