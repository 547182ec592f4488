package padic

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fjhenigman/padic/errs"
)

func TestRoundTripWithinBound(t *testing.T) {
	// prime=5, precision=6: modulus 15625, bound ⌊√7812⌋ = 88. Every reduced
	// fraction with numerator and denominator inside the bound must survive the
	// round trip exactly.
	prime := big.NewInt(5)
	for a := int64(-20); a <= 20; a++ {
		for b := int64(1); b <= 20; b++ {
			want := big.NewRat(a, b)
			v, err := FromRational(want, prime, 6)
			require.NoError(t, err)

			got, err := v.Rational()
			require.NoError(t, err, "a=%d b=%d", a, b)
			require.Zero(t, want.Cmp(got), "a=%d b=%d got %s", a, b, got.RatString())
		}
	}
}

func TestInsufficientPrecisionSignalled(t *testing.T) {
	// prime=5, precision=2: bound ⌊√12⌋ = 3, so 1/7 is outside the
	// representable range and reconstruction must refuse to answer.
	v, err := FromRational(mustRat(t, "1/7"), big.NewInt(5), 2)
	require.NoError(t, err)

	_, err = v.Rational()
	require.Error(t, err)
	require.Equal(t, errs.CodePrecisionInsufficient, errs.CodeOf(err))

	// The same rational recovers once the budget grows.
	v, err = FromRational(mustRat(t, "1/7"), big.NewInt(5), 8)
	require.NoError(t, err)
	got, err := v.Rational()
	require.NoError(t, err)
	require.Zero(t, mustRat(t, "1/7").Cmp(got))
}

func TestLargeNumeratorNeedsMorePrecision(t *testing.T) {
	big7 := mustRat(t, "1000000007")
	v, err := FromRational(big7, big.NewInt(5), 2)
	require.NoError(t, err)

	_, err = v.Rational()
	require.Error(t, err)
	require.Equal(t, errs.CodePrecisionInsufficient, errs.CodeOf(err))

	v, err = FromRational(big7, big.NewInt(5), 30)
	require.NoError(t, err)
	got, err := v.Rational()
	require.NoError(t, err)
	require.Zero(t, big7.Cmp(got))
}

func TestRationalCapped(t *testing.T) {
	prime := big.NewInt(5)

	fifth, err := FromRational(mustRat(t, "1/5"), prime, DefaultPrecision)
	require.NoError(t, err)

	_, err = fifth.RationalCapped(0)
	require.Error(t, err)
	require.Equal(t, errs.CodePrecisionInsufficient, errs.CodeOf(err))

	got, err := fifth.RationalCapped(1)
	require.NoError(t, err)
	require.Zero(t, mustRat(t, "1/5").Cmp(got))

	three, err := FromInt64(3, 5, DefaultPrecision)
	require.NoError(t, err)
	got, err = three.RationalCapped(0)
	require.NoError(t, err)
	require.Zero(t, mustRat(t, "3").Cmp(got))

	_, err = three.RationalCapped(-1)
	require.Error(t, err)
	require.Equal(t, errs.CodeInvalidInput, errs.CodeOf(err))
}

func TestExpandDigitsEdgeCases(t *testing.T) {
	prime := big.NewInt(5)

	require.Empty(t, expandDigits(big.NewInt(1), big.NewInt(3), prime, 0))

	// Negative numerators reduce modularly: -1 mod 25 = 24 = 4 + 4*5.
	digits := expandDigits(big.NewInt(-1), big.NewInt(1), prime, 2)
	require.Len(t, digits, 2)
	require.Equal(t, int64(4), digits[0].Int64())
	require.Equal(t, int64(4), digits[1].Int64())
}

func TestReconstructEmptyDigits(t *testing.T) {
	_, err := reconstructRational(nil, 0, big.NewInt(5), noDenomCap)
	require.Error(t, err)
	require.Equal(t, errs.CodePrecisionInsufficient, errs.CodeOf(err))
}

func TestDeterministicDigits(t *testing.T) {
	prime := big.NewInt(7)
	a, err := FromRational(mustRat(t, "5/7"), prime, 12)
	require.NoError(t, err)
	b, err := FromRational(mustRat(t, "5/7"), prime, 12)
	require.NoError(t, err)

	require.Equal(t, a.Digits(), b.Digits())
	require.Equal(t, a.Valuation(), b.Valuation())
}
