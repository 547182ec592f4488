package padic

import (
	"math/big"

	"github.com/fjhenigman/padic/errs"
)

// noDenomCap disables the optional cap on the prime power allowed in the
// reconstructed denominator.
const noDenomCap = -1

// reconstructRational recovers the exact rational encoded by the digit window
// and valuation, or fails with precision_insufficient when no candidate fits
// the representable range.
//
// The digits rebuild the representative t = Σ digits[i]*prime^i in
// [0, prime^N). Running the extended Euclidean remainder sequence on
// (prime^N, t) until the remainder drops to B = ⌊√(prime^N / 2)⌋ or below
// yields the unique coprime pair (a, b) with |a| ≤ B, 0 < b ≤ B and
// a ≡ t*b (mod prime^N), when one exists. The result is (a/b) * prime^v in
// lowest terms. Any rational whose numerator and denominator both fit under B
// is pinned down uniquely by its residue; beyond that, aliasing makes recovery
// unreliable and the search fails instead of guessing.
func reconstructRational(digits []*big.Int, valuation int, prime *big.Int, maxDenomPower int) (*big.Rat, error) {
	n := len(digits)
	if n == 0 {
		return nil, errs.New(errs.CodePrecisionInsufficient,
			errs.WithPrime(prime.String()),
			errs.WithMessage("no digits to reconstruct from"))
	}

	// Horner, most significant digit first. The valuation never re-enters t;
	// the bound check below runs purely on the unit-scale digits.
	t := new(big.Int)
	for i := n - 1; i >= 0; i-- {
		t.Mul(t, prime)
		t.Add(t, digits[i])
	}

	modulus := new(big.Int).Exp(prime, big.NewInt(int64(n)), nil)
	bound := new(big.Int).Rsh(modulus, 1)
	bound.Sqrt(bound)

	if t.Sign() == 0 {
		return new(big.Rat), nil
	}

	r0, r1 := new(big.Int).Set(modulus), new(big.Int).Set(t)
	c0, c1 := big.NewInt(0), big.NewInt(1)
	for r1.Sign() != 0 && r1.Cmp(bound) > 0 {
		q := new(big.Int).Quo(r0, r1)
		r2 := new(big.Int).Sub(r0, new(big.Int).Mul(q, r1))
		c2 := new(big.Int).Sub(c0, new(big.Int).Mul(q, c1))
		r0, r1 = r1, r2
		c0, c1 = c1, c2
	}

	a := new(big.Int).Set(r1)
	b := new(big.Int).Set(c1)
	if b.Sign() == 0 {
		return nil, insufficient(prime, bound)
	}
	if b.Sign() < 0 {
		a.Neg(a)
		b.Neg(b)
	}
	if b.Cmp(bound) > 0 {
		return nil, insufficient(prime, bound)
	}
	gcd := new(big.Int).GCD(nil, nil, new(big.Int).Abs(a), b)
	if gcd.Cmp(intOne) != 0 {
		return nil, insufficient(prime, bound)
	}

	result := new(big.Rat).SetFrac(a, b)
	result.Mul(result, primePowerRat(prime, valuation))

	if maxDenomPower != noDenomCap {
		denomPower, _ := stripFactor(result.Denom(), prime)
		if denomPower > maxDenomPower {
			return nil, errs.New(errs.CodePrecisionInsufficient,
				errs.WithPrime(prime.String()),
				errs.WithValue(result.RatString()),
				errs.WithMessage("denominator exceeds the allowed prime power"))
		}
	}
	return result, nil
}

// primePowerRat returns prime^exp as a rational, with negative exponents
// landing in the denominator.
func primePowerRat(prime *big.Int, exp int) *big.Rat {
	abs := exp
	if abs < 0 {
		abs = -abs
	}
	power := new(big.Int).Exp(prime, big.NewInt(int64(abs)), nil)
	if exp < 0 {
		return new(big.Rat).SetFrac(intOne, power)
	}
	return new(big.Rat).SetInt(power)
}

func insufficient(prime, bound *big.Int) error {
	return errs.New(errs.CodePrecisionInsufficient,
		errs.WithPrime(prime.String()),
		errs.WithMessage("no coprime pair within bound "+bound.String()))
}
