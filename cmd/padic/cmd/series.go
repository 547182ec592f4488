package cmd

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/fjhenigman/padic/core/padic"
	"github.com/fjhenigman/padic/internal/numeric"
)

var seriesTerms int

var seriesCmd = &cobra.Command{
	Use:   "series <rational>",
	Short: "Print the O(p^k) series form of a rational",
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
		fmt.Fprintln(cmd.OutOrStdout(), v.Series(seriesTerms))
		return nil
	},
}

func init() {
	seriesCmd.Flags().IntVarP(&seriesTerms, "terms", "t", 6, "number of terms to render")
	rootCmd.AddCommand(seriesCmd)
}
