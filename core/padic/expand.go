package padic

import "math/big"

// expandDigits computes the first precision base-prime digits of the unit
// fraction unitNum/unitDen, least significant first. The digits are the base-p
// representation of t = unitNum * unitDen^-1 mod prime^precision, so
// t * unitDen ≡ unitNum (mod prime^precision) holds exactly. Both unit parts
// must be coprime to prime, which guarantees the modular inverse exists.
func expandDigits(unitNum, unitDen, prime *big.Int, precision int) []*big.Int {
	digits := make([]*big.Int, 0, precision)
	if precision <= 0 {
		return digits
	}

	pN := new(big.Int).Exp(prime, big.NewInt(int64(precision)), nil)
	inv := new(big.Int).ModInverse(unitDen, pN)

	// Mod reduces negative numerators into [0, pN) rather than truncating.
	t := new(big.Int).Mul(unitNum, inv)
	t.Mod(t, pN)

	for i := 0; i < precision; i++ {
		d := new(big.Int)
		t.QuoRem(t, prime, d)
		digits = append(digits, d)
	}
	return digits
}
