package padic

import "math/big"

// splitValuation strips every factor of prime from num and den and returns the
// valuation together with the remaining unit fraction. The caller guarantees a
// nonzero numerator and a validated prime; since num/den is in lowest terms at
// most one side actually carries prime factors. The sign stays on the numerator
// and the returned denominator is positive.
func splitValuation(num, den, prime *big.Int) (valuation int, unitNum, unitDen *big.Int) {
	cn, un := stripFactor(num, prime)
	cd, ud := stripFactor(den, prime)
	return cn - cd, un, ud
}

// stripFactor returns the multiplicity of prime in x alongside x with those
// factors divided out. x must be nonzero.
func stripFactor(x, prime *big.Int) (int, *big.Int) {
	count := 0
	rest := new(big.Int).Set(x)
	q := new(big.Int)
	r := new(big.Int)
	for {
		q.QuoRem(rest, prime, r)
		if r.Sign() != 0 {
			return count, rest
		}
		rest.Set(q)
		count++
	}
}
