package padic

import (
	"math/big"

	"github.com/fjhenigman/padic/errs"
)

var (
	intOne = big.NewInt(1)
	intTwo = big.NewInt(2)
)

// ValidatePrime confirms p is a usable modulus: an integer >= 2 with no
// proper divisor. Validation runs once per value construction, before any
// digit work begins.
func ValidatePrime(p *big.Int) error {
	if p == nil {
		return errs.New(errs.CodeInvalidPrime, errs.WithMessage("modulus is missing"))
	}
	if p.Cmp(intTwo) < 0 {
		return errs.New(errs.CodeInvalidPrime,
			errs.WithPrime(p.String()),
			errs.WithMessage("modulus must be at least 2"))
	}
	// ProbablyPrime(0) runs Baillie-PSW, which is exact for all inputs below 2^64
	// and has no known counterexamples above it.
	if !p.ProbablyPrime(0) {
		return errs.New(errs.CodeInvalidPrime,
			errs.WithPrime(p.String()),
			errs.WithMessage("modulus is composite"))
	}
	return nil
}
