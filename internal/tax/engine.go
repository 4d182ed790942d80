package tax

import (
	"fmt"
	"strings"
	"sync"

	"github.com/MrJamesThe3rd/kasir/internal/customer"
	"github.com/MrJamesThe3rd/kasir/internal/errs"
)

// Mode selects which strategies the engine runs.
type Mode string

const (
	ModeStandard Mode = "standard"
	ModeCategory Mode = "category"
	ModeLuxury   Mode = "luxury"
	ModeCombined Mode = "combined"
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeStandard, ModeCategory, ModeLuxury, ModeCombined:
		return m, nil
	default:
		return "", errs.InvalidArgumentf("unknown tax mode %q: want standard, category, luxury or combined", s)
	}
}

// Engine computes tax for the configured mode. The mode may be switched at
// runtime; the strategies themselves are fixed.
type Engine struct {
	standard Standard
	category CategoryBased
	luxury   Luxury

	mu   sync.RWMutex
	mode Mode
}

func New(mode Mode, standard Standard) (*Engine, error) {
	if _, err := ParseMode(string(mode)); err != nil {
		return nil, err
	}

	return &Engine{standard: standard, mode: mode}, nil
}

// Default is standard mode at 10% above 100,000.
func Default() *Engine {
	return &Engine{standard: DefaultStandard(), mode: ModeStandard}
}

func (e *Engine) Mode() Mode {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.mode
}

func (e *Engine) SetMode(mode Mode) error {
	m, err := ParseMode(string(mode))
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.mode = m
	e.mu.Unlock()

	return nil
}

// Calculate returns the tax lines for postDiscount. Standard and luxury lines
// with a zero amount are omitted; category mode reports every category present.
func (e *Engine) Calculate(postDiscount int64, b Basket, cust *customer.Customer) ([]Result, error) {
	if postDiscount < 0 {
		return nil, errs.InvalidArgumentf("taxable amount must not be negative, got %d", postDiscount)
	}

	switch mode := e.Mode(); mode {
	case ModeStandard:
		return e.nonZero(e.standard, postDiscount, b, cust)
	case ModeCategory:
		return e.run(e.category, postDiscount, b, cust)
	case ModeLuxury:
		return e.nonZero(e.luxury, postDiscount, b, cust)
	case ModeCombined:
		return e.combined(postDiscount, b, cust)
	default:
		return nil, errs.InvalidArgumentf("unknown tax mode %q", mode)
	}
}

// combined keeps whichever of standard and luxury is larger. Ties go to standard.
func (e *Engine) combined(postDiscount int64, b Basket, cust *customer.Customer) ([]Result, error) {
	std, err := e.run(e.standard, postDiscount, b, cust)
	if err != nil {
		return nil, err
	}

	lux, err := e.run(e.luxury, postDiscount, b, cust)
	if err != nil {
		return nil, err
	}

	stdAmount, luxAmount := Sum(std), Sum(lux)

	switch {
	case luxAmount > stdAmount:
		return lux, nil
	case stdAmount > 0:
		return std, nil
	default:
		return nil, nil
	}
}

func (e *Engine) run(s Strategy, postDiscount int64, b Basket, cust *customer.Customer) ([]Result, error) {
	results, err := s.Compute(postDiscount, b, cust)
	if err != nil {
		return nil, fmt.Errorf("%s tax: %w", s.Name(), err)
	}

	return results, nil
}

func (e *Engine) nonZero(s Strategy, postDiscount int64, b Basket, cust *customer.Customer) ([]Result, error) {
	results, err := e.run(s, postDiscount, b, cust)
	if err != nil {
		return nil, err
	}

	var kept []Result

	for _, r := range results {
		if r.Amount > 0 {
			kept = append(kept, r)
		}
	}

	return kept, nil
}

func (e *Engine) Total(postDiscount int64, b Basket, cust *customer.Customer) (int64, error) {
	results, err := e.Calculate(postDiscount, b, cust)
	if err != nil {
		return 0, err
	}

	return Sum(results), nil
}

// Summary groups the tax lines of a basket with the totals shown at checkout.
type Summary struct {
	Taxes             []Result `json:"taxes"`
	TotalTax          int64    `json:"total_tax"`
	Count             int      `json:"count"`
	Mode              Mode     `json:"mode"`
	SubtotalBeforeTax int64    `json:"subtotal_before_tax"`
	TotalAfterTax     int64    `json:"total_after_tax"`
}

func (e *Engine) Summary(postDiscount int64, b Basket, cust *customer.Customer) (Summary, error) {
	taxes, err := e.Calculate(postDiscount, b, cust)
	if err != nil {
		return Summary{}, err
	}

	total := Sum(taxes)

	return Summary{
		Taxes:             taxes,
		TotalTax:          total,
		Count:             len(taxes),
		Mode:              e.Mode(),
		SubtotalBeforeTax: postDiscount,
		TotalAfterTax:     postDiscount + total,
	}, nil
}
