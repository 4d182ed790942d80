package payment

import (
	"slices"

	"github.com/MrJamesThe3rd/kasir/internal/errs"
)

// Record is the payment stored on a transaction.
type Record struct {
	AmountPaid   int64   `json:"amount_paid"`
	Method       Method  `json:"method"`
	Change       int64   `json:"change"`
	Installments []int64 `json:"installments,omitempty"`
}

func NewRecord(amountPaid int64, method Method, change int64, installments []int64) (Record, error) {
	if amountPaid < 0 {
		return Record{}, errs.InvalidArgumentf("amount paid must not be negative, got %d", amountPaid)
	}

	if change < 0 {
		return Record{}, errs.InvalidArgumentf("change must not be negative, got %d", change)
	}

	if _, err := ParseMethod(string(method)); err != nil {
		return Record{}, err
	}

	for i, amt := range installments {
		if amt < 0 {
			return Record{}, errs.InvalidArgumentf("instalment %d must not be negative, got %d", i+1, amt)
		}
	}

	return Record{
		AmountPaid:   amountPaid,
		Method:       method,
		Change:       change,
		Installments: slices.Clone(installments),
	}, nil
}

// Clone returns a copy that shares no memory with r.
func (r Record) Clone() Record {
	r.Installments = slices.Clone(r.Installments)
	return r
}

func (r Record) IsInstallment() bool {
	return len(r.Installments) > 0
}
