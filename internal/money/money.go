// Package money holds the integer-rupiah arithmetic used by discounts and taxes.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// ApplyRate returns floor(base × rate). Rates go through their shortest
// decimal representation so 0.07 is exactly seven hundredths.
func ApplyRate(base int64, rate float64) int64 {
	return decimal.NewFromInt(base).
		Mul(decimal.NewFromFloat(rate)).
		Floor().
		IntPart()
}

// Prorate returns floor(amount × part / whole), the share of amount that part
// represents within whole. A zero whole yields zero.
func Prorate(amount, part, whole int64) int64 {
	if whole == 0 {
		return 0
	}

	return decimal.NewFromInt(amount).
		Mul(decimal.NewFromInt(part)).
		Div(decimal.NewFromInt(whole)).
		Floor().
		IntPart()
}

// Format renders an amount as "Rp1,234,567".
func Format(amount int64) string {
	if amount < 0 {
		return printer.Sprintf("-Rp%d", -amount)
	}

	return printer.Sprintf("Rp%d", amount)
}

// Percent renders a rate in [0,1] as a whole percentage, e.g. 0.07 -> "7%".
func Percent(rate float64) string {
	return decimal.NewFromFloat(rate).Shift(2).Round(0).String() + "%"
}

// ParseRupiah parses an Indonesian-formatted amount into whole rupiah.
// Format examples: "15.000" -> 15000, "Rp 1.250.000" -> 1250000, "2.500,50" -> 2501.
func ParseRupiah(s string) (int64, error) {
	clean := strings.TrimSpace(s)
	clean = strings.TrimPrefix(clean, "Rp")
	clean = strings.TrimSpace(clean)
	clean = strings.ReplaceAll(clean, ".", "")
	clean = strings.ReplaceAll(clean, ",", ".")

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, fmt.Errorf("parsing amount %q: %w", s, err)
	}

	return d.Round(0).IntPart(), nil
}
