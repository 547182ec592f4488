// Package numeric provides rational parsing and rendering helpers shared by
// the CLI and batch layers.
package numeric

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fjhenigman/padic/errs"
)

// ParseRat converts a string in "a/b", integer, or decimal form into a
// rational. A zero denominator is reported as division_by_zero so callers can
// distinguish it from plain syntax errors.
func ParseRat(s string) (*big.Rat, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, errs.New(errs.CodeInvalidInput, errs.WithMessage("empty rational"))
	}
	if num, den, ok := strings.Cut(trimmed, "/"); ok {
		d, valid := new(big.Int).SetString(strings.TrimSpace(den), 10)
		if valid && d.Sign() == 0 {
			n := strings.TrimSpace(num)
			return nil, errs.New(errs.CodeDivisionByZero,
				errs.WithValue(n+"/0"),
				errs.WithMessage("rational has zero denominator"))
		}
	}
	r, ok := new(big.Rat).SetString(trimmed)
	if !ok {
		return nil, errs.New(errs.CodeInvalidInput,
			errs.WithValue(trimmed),
			errs.WithMessage("not a rational number"))
	}
	return r, nil
}

// FormatRat renders r as "a/b", or just "a" for integers. Nil renders empty.
func FormatRat(r *big.Rat) string {
	if r == nil {
		return ""
	}
	return r.RatString()
}

// ApproxDecimal renders a fixed-scale decimal approximation of r, rounded to
// scale fractional digits. Nil renders empty.
func ApproxDecimal(r *big.Rat, scale int32) string {
	if r == nil {
		return ""
	}
	return decimal.NewFromBigRat(r, scale).String()
}
