package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fjhenigman/padic/internal/batch"
)

var batchJSON bool

var batchCmd = &cobra.Command{
	Use:   "batch <scenario.yaml>",
	Short: "Run a yaml scenario file of conversion checks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := batch.LoadScenario(args[0])
		if err != nil {
			return err
		}
		report := batch.NewRunner(settings).Run(cmd.Context(), sc)
		return printReport(cmd, report, batchJSON)
	},
}

func printReport(cmd *cobra.Command, report *batch.Report, asJSON bool) error {
	w := cmd.OutOrStdout()
	if asJSON {
		raw, err := report.JSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(raw))
	} else {
		for _, res := range report.Results {
			if res.Passed {
				fmt.Fprintf(w, "PASS %s\n", res.Name)
				continue
			}
			fmt.Fprintf(w, "FAIL %s: %s\n", res.Name, res.Reason)
		}
		fmt.Fprintf(w, "%d/%d cases passed\n", report.Passed, report.Total)
	}
	if report.Failed > 0 {
		return fmt.Errorf("%d of %d cases failed", report.Failed, report.Total)
	}
	return nil
}

func init() {
	batchCmd.Flags().BoolVar(&batchJSON, "json", false, "emit JSON report")
	rootCmd.AddCommand(batchCmd)
}
