package payment

import (
	"slices"
	"strings"

	"github.com/MrJamesThe3rd/kasir/internal/errs"
	"github.com/MrJamesThe3rd/kasir/internal/money"
)

// Method is how a customer pays.
type Method string

const (
	MethodCash     Method = "cash"
	MethodCard     Method = "card"
	MethodDigital  Method = "digital"
	MethodTransfer Method = "transfer"
)

// Methods lists every accepted method.
var Methods = []Method{MethodCash, MethodCard, MethodDigital, MethodTransfer}

func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Methods, m) {
		return "", errs.InvalidArgumentf("unsupported payment method %q", s)
	}

	return m, nil
}

// DefaultMinInstallment is the smallest accepted instalment in rupiah.
const DefaultMinInstallment = 1000

// Validation reports how a tendered amount compares with the amount due.
// Insufficient payment is not an error.
type Validation struct {
	Sufficient  bool   `json:"sufficient"`
	Change      int64  `json:"change"`
	Outstanding int64  `json:"outstanding"`
	Message     string `json:"message"`
}

// InstallmentResult summarizes a series of partial payments.
type InstallmentResult struct {
	TotalPaid   int64 `json:"total_paid"`
	Complete    bool  `json:"complete"`
	Change      int64 `json:"change"`
	Outstanding int64 `json:"outstanding"`
	Count       int   `json:"count"`
}

type Processor struct {
	minInstallment int64
}

func NewProcessor(minInstallment int64) (*Processor, error) {
	if minInstallment < 0 {
		return nil, errs.InvalidArgumentf("minimum instalment must not be negative, got %d", minInstallment)
	}

	return &Processor{minInstallment: minInstallment}, nil
}

func (p *Processor) MinInstallment() int64 {
	return p.minInstallment
}

// Validate checks a single payment of amount against total.
func (p *Processor) Validate(total, amount int64, method Method) (Validation, error) {
	if _, err := ParseMethod(string(method)); err != nil {
		return Validation{}, err
	}

	if amount < 0 {
		return Validation{}, errs.InvalidArgumentf("payment amount must not be negative, got %d", amount)
	}

	if amount >= total {
		return Validation{
			Sufficient: true,
			Change:     amount - total,
			Message:    "Pembayaran berhasil",
		}, nil
	}

	outstanding := total - amount

	return Validation{
		Outstanding: outstanding,
		Message:     "Kurang bayar " + money.Format(outstanding),
	}, nil
}

// ValidateInstallments rejects an empty series or any instalment below the
// configured minimum. It runs before ProcessInstallments.
func (p *Processor) ValidateInstallments(installments []int64) error {
	if len(installments) == 0 {
		return errs.InvalidArgument("at least one instalment is required")
	}

	for i, amt := range installments {
		if amt < p.minInstallment {
			return errs.InvalidArgumentf("instalment %d: %s is below the minimum of %s", i+1, money.Format(amt), money.Format(p.minInstallment))
		}
	}

	return nil
}

// ProcessInstallments sums already validated instalments against total.
func (p *Processor) ProcessInstallments(total int64, installments []int64) InstallmentResult {
	var paid int64
	for _, amt := range installments {
		paid += amt
	}

	return InstallmentResult{
		TotalPaid:   paid,
		Complete:    paid >= total,
		Change:      max(0, paid-total),
		Outstanding: max(0, total-paid),
		Count:       len(installments),
	}
}
