package cmd

import (
	"fmt"
	"math/big"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/fjhenigman/padic/core/padic"
	"github.com/fjhenigman/padic/internal/numeric"
)

var (
	convertJSON  bool
	convertScale int32
)

type conversion struct {
	Value     string   `json:"value"`
	Prime     string   `json:"prime"`
	Precision int      `json:"precision"`
	Valuation int      `json:"valuation"`
	Digits    []string `json:"digits"`
	Series    string   `json:"series"`
	Rational  string   `json:"rational"`
	Decimal   string   `json:"decimal"`
}

var convertCmd = &cobra.Command{
	Use:   "convert <rational>",
	Short: "Convert a rational to its p-adic expansion and round-trip it back",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := numeric.ParseRat(args[0])
		if err != nil {
			return err
		}
		v, err := padic.FromRational(r, big.NewInt(settings.DefaultPrime), settings.DefaultPrecision)
		if err != nil {
			return err
		}
		back, err := v.Rational()
		if err != nil {
			return err
		}

		digits := v.Digits()
		out := conversion{
			Value:     numeric.FormatRat(r),
			Prime:     v.Prime().String(),
			Precision: v.Precision(),
			Valuation: v.Valuation(),
			Digits:    make([]string, len(digits)),
			Series:    v.Series(seriesPreviewTerms(v)),
			Rational:  numeric.FormatRat(back),
			Decimal:   numeric.ApproxDecimal(back, convertScale),
		}
		for i, d := range digits {
			out.Digits[i] = d.String()
		}

		if convertJSON {
			raw, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(raw))
			return nil
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "value:     %s\n", out.Value)
		fmt.Fprintf(w, "prime:     %s\n", out.Prime)
		fmt.Fprintf(w, "precision: %d\n", out.Precision)
		fmt.Fprintf(w, "valuation: %d\n", out.Valuation)
		fmt.Fprintf(w, "digits:    %v\n", out.Digits)
		fmt.Fprintf(w, "series:    %s\n", out.Series)
		fmt.Fprintf(w, "rational:  %s\n", out.Rational)
		fmt.Fprintf(w, "decimal:   %s\n", out.Decimal)
		return nil
	},
}

func seriesPreviewTerms(v *padic.Value) int {
	if v.Precision() < 6 {
		return v.Precision()
	}
	return 6
}

func init() {
	convertCmd.Flags().BoolVar(&convertJSON, "json", false, "emit JSON")
	convertCmd.Flags().Int32Var(&convertScale, "scale", 10, "decimal approximation scale")
	rootCmd.AddCommand(convertCmd)
}
