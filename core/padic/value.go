// Package padic implements exact conversion between rational numbers and
// finite-precision p-adic digit expansions for a fixed prime modulus.
//
// A Value approximates a rational modulo prime^(valuation+precision) under the
// p-adic metric. Conversion back to a rational is exact whenever the original
// numerator and denominator fit within the precision's representable bound;
// otherwise it fails loudly rather than returning an aliased rational.
package padic

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/fjhenigman/padic/errs"
)

// DefaultPrecision is the digit-count budget applied when the caller passes a
// non-positive precision.
const DefaultPrecision = 20

// stringSeriesTerms caps how many series terms String renders.
const stringSeriesTerms = 8

// Value is an immutable p-adic number: a prime modulus, a digit-count budget,
// a valuation, and exactly precision digits in [0, prime), least significant
// first. Zero values carry valuation 0 and all-zero digits; nonzero values are
// canonical, with a nonzero leading digit. A Value is never mutated after
// construction and is safe for concurrent use.
type Value struct {
	prime     *big.Int
	precision int
	valuation int
	zero      bool
	digits    []*big.Int
}

// FromRational converts r into its p-adic representation with the given digit
// budget. A non-positive precision selects DefaultPrecision. Construction is
// atomic: it returns either a fully formed value or an error, never a partial
// one.
func FromRational(r *big.Rat, prime *big.Int, precision int) (*Value, error) {
	if r == nil {
		return nil, errs.New(errs.CodeInvalidInput, errs.WithMessage("rational input is missing"))
	}
	if err := ValidatePrime(prime); err != nil {
		return nil, err
	}
	if precision <= 0 {
		precision = DefaultPrecision
	}

	v := &Value{
		prime:     new(big.Int).Set(prime),
		precision: precision,
		valuation: 0,
		zero:      false,
		digits:    nil,
	}
	if r.Sign() == 0 {
		v.zero = true
		v.digits = zeroDigits(precision)
		return v, nil
	}

	valuation, unitNum, unitDen := splitValuation(r.Num(), r.Denom(), v.prime)
	v.valuation = valuation
	v.digits = expandDigits(unitNum, unitDen, v.prime, precision)
	return v, nil
}

// FromFraction converts num/den, rejecting a zero denominator before any digit
// work begins.
func FromFraction(num, den *big.Int, prime *big.Int, precision int) (*Value, error) {
	if num == nil || den == nil {
		return nil, errs.New(errs.CodeInvalidInput, errs.WithMessage("fraction input is missing"))
	}
	if den.Sign() == 0 {
		return nil, errs.New(errs.CodeDivisionByZero,
			errs.WithValue(num.String()+"/0"),
			errs.WithMessage("rational has zero denominator"))
	}
	return FromRational(new(big.Rat).SetFrac(num, den), prime, precision)
}

// FromInt converts the integer k, equivalent to FromRational(k/1, ...).
func FromInt(k *big.Int, prime *big.Int, precision int) (*Value, error) {
	if k == nil {
		return nil, errs.New(errs.CodeInvalidInput, errs.WithMessage("integer input is missing"))
	}
	return FromRational(new(big.Rat).SetInt(k), prime, precision)
}

// FromInt64 converts k over the int64-valued prime p.
func FromInt64(k, p int64, precision int) (*Value, error) {
	return FromInt(big.NewInt(k), big.NewInt(p), precision)
}

// Copy returns an independent duplicate sharing no mutable state with v.
func (v *Value) Copy() *Value {
	dup := &Value{
		prime:     new(big.Int).Set(v.prime),
		precision: v.precision,
		valuation: v.valuation,
		zero:      v.zero,
		digits:    make([]*big.Int, len(v.digits)),
	}
	for i, d := range v.digits {
		dup.digits[i] = new(big.Int).Set(d)
	}
	return dup
}

// Prime returns the modulus.
func (v *Value) Prime() *big.Int { return new(big.Int).Set(v.prime) }

// Precision returns the digit-count budget.
func (v *Value) Precision() int { return v.precision }

// Valuation returns the p-adic valuation; zero values report 0.
func (v *Value) Valuation() int { return v.valuation }

// IsZero reports whether the value represents exactly zero.
func (v *Value) IsZero() bool { return v.zero }

// Digits returns a copy of the digit window, least significant first.
func (v *Value) Digits() []*big.Int {
	out := make([]*big.Int, len(v.digits))
	for i, d := range v.digits {
		out[i] = new(big.Int).Set(d)
	}
	return out
}

// Rational reconstructs the exact rational the value encodes. It fails with
// precision_insufficient when the originating rational lies outside the
// representable range for this precision.
func (v *Value) Rational() (*big.Rat, error) {
	if v.zero {
		return new(big.Rat), nil
	}
	return reconstructRational(v.digits, v.valuation, v.prime, noDenomCap)
}

// RationalCapped reconstructs like Rational but additionally rejects results
// whose denominator carries more than maxDenomPower factors of the prime.
func (v *Value) RationalCapped(maxDenomPower int) (*big.Rat, error) {
	if maxDenomPower < 0 {
		return nil, errs.New(errs.CodeInvalidInput, errs.WithMessage("denominator power cap must be non-negative"))
	}
	if v.zero {
		return new(big.Rat), nil
	}
	return reconstructRational(v.digits, v.valuation, v.prime, maxDenomPower)
}

// Int reconstructs the value as an integer, failing with non_integer_result
// when the recovered rational has a denominator other than 1.
func (v *Value) Int() (*big.Int, error) {
	r, err := v.Rational()
	if err != nil {
		return nil, err
	}
	if !r.IsInt() {
		return nil, errs.New(errs.CodeNonIntegerResult,
			errs.WithPrime(v.prime.String()),
			errs.WithValue(r.RatString()),
			errs.WithMessage("reconstructed rational is not an integer"))
	}
	return new(big.Int).Set(r.Num()), nil
}

// Equal reports whether v and o represent the same rational. Values over
// different primes are never equal. When both operands share the same
// precision the digit windows decide directly; otherwise both sides
// reconstruct and the rationals are compared, surfacing any reconstruction
// failure.
func (v *Value) Equal(o *Value) (bool, error) {
	if o == nil {
		return false, nil
	}
	if v.prime.Cmp(o.prime) != 0 {
		return false, nil
	}
	if v.zero || o.zero {
		return v.zero == o.zero, nil
	}
	if v.precision == o.precision {
		if v.valuation != o.valuation {
			return false, nil
		}
		for i := range v.digits {
			if v.digits[i].Cmp(o.digits[i]) != 0 {
				return false, nil
			}
		}
		return true, nil
	}
	a, err := v.Rational()
	if err != nil {
		return false, err
	}
	b, err := o.Rational()
	if err != nil {
		return false, err
	}
	return a.Cmp(b) == 0, nil
}

// Series renders the leading terms of the expansion in the form
// "2 + 1*5 + 3*5^2 + O(5^3)". Zero digits are omitted. terms is clamped to
// the precision; a non-positive terms renders only the O() tail.
func (v *Value) Series(terms int) string {
	if terms < 0 {
		terms = 0
	}
	if terms > v.precision {
		terms = v.precision
	}

	var parts []string
	if !v.zero {
		for i := 0; i < terms; i++ {
			d := v.digits[i]
			if d.Sign() == 0 {
				continue
			}
			parts = append(parts, seriesTerm(d, v.prime, v.valuation+i))
		}
	}
	if len(parts) == 0 {
		parts = append(parts, "0")
	}
	parts = append(parts, fmt.Sprintf("O(%s^%d)", v.prime, v.valuation+terms))
	return strings.Join(parts, " + ")
}

func seriesTerm(digit, prime *big.Int, exp int) string {
	switch exp {
	case 0:
		return digit.String()
	case 1:
		return fmt.Sprintf("%s*%s", digit, prime)
	default:
		return fmt.Sprintf("%s*%s^%d", digit, prime, exp)
	}
}

// String renders a short debugging form of the value.
func (v *Value) String() string {
	if v.zero {
		return fmt.Sprintf("0 (%s-adic, precision %d)", v.prime, v.precision)
	}
	terms := stringSeriesTerms
	if v.precision < terms {
		terms = v.precision
	}
	return v.Series(terms)
}

func zeroDigits(n int) []*big.Int {
	digits := make([]*big.Int, n)
	for i := range digits {
		digits[i] = new(big.Int)
	}
	return digits
}
