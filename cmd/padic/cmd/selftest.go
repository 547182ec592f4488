package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fjhenigman/padic/internal/batch"
)

var (
	selftestJSON bool
	selftestList bool
)

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Run the built-in conversion table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		sc := batch.SelfTest()
		if selftestList {
			for _, name := range sc.CaseNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		}
		report := batch.NewRunner(settings).Run(cmd.Context(), sc)
		return printReport(cmd, report, selftestJSON)
	},
}

func init() {
	selftestCmd.Flags().BoolVar(&selftestJSON, "json", false, "emit JSON report")
	selftestCmd.Flags().BoolVar(&selftestList, "list", false, "list case names without running")
	rootCmd.AddCommand(selftestCmd)
}
