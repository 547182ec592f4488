package numeric

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fjhenigman/padic/errs"
)

func TestParseRatForms(t *testing.T) {
	cases := []struct {
		in   string
		want *big.Rat
	}{
		{"3/7", big.NewRat(3, 7)},
		{"-3/7", big.NewRat(-3, 7)},
		{"42", big.NewRat(42, 1)},
		{" 1/2 ", big.NewRat(1, 2)},
		{"1.25", big.NewRat(5, 4)},
		{"6/8", big.NewRat(3, 4)},
	}
	for _, tc := range cases {
		got, err := ParseRat(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		require.Zero(t, tc.want.Cmp(got), "input %q got %s", tc.in, got.RatString())
	}
}

func TestParseRatErrors(t *testing.T) {
	_, err := ParseRat("1/0")
	require.Equal(t, errs.CodeDivisionByZero, errs.CodeOf(err))

	for _, in := range []string{"", "  ", "abc", "1/2/3", "1//2"} {
		_, err := ParseRat(in)
		require.Error(t, err, "input %q", in)
		require.Equal(t, errs.CodeInvalidInput, errs.CodeOf(err), "input %q", in)
	}
}

func TestFormatRat(t *testing.T) {
	require.Equal(t, "3/7", FormatRat(big.NewRat(3, 7)))
	require.Equal(t, "42", FormatRat(big.NewRat(42, 1)))
	require.Equal(t, "", FormatRat(nil))
}

func TestApproxDecimal(t *testing.T) {
	require.Equal(t, "0.3333", ApproxDecimal(big.NewRat(1, 3), 4))
	require.Equal(t, "-1.5", ApproxDecimal(big.NewRat(-3, 2), 4))
	require.Equal(t, "", ApproxDecimal(nil, 2))
}
