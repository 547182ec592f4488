package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fjhenigman/padic/config"
	"github.com/fjhenigman/padic/internal/observability"
)

var (
	cfgFile   string
	prime     int64
	precision int
	verbose   bool

	settings config.Settings
)

var rootCmd = &cobra.Command{
	Use:   "padic",
	Short: "Exact rational <-> p-adic conversion",
	Long: `padic converts exact rational numbers to finite-precision p-adic digit
expansions and reconstructs the originating rational whenever it lies within
the precision's representable range.

Commands:
  convert   - convert a rational and round-trip it back
  series    - print the O(p^k) series form of a rational
  batch     - run a yaml scenario file of conversion checks
  selftest  - run the built-in conversion table`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		cfg, _, err := config.LoadOrDefault(cfgFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("prime") {
			cfg.DefaultPrime = prime
		}
		if cmd.Flags().Changed("precision") {
			cfg.DefaultPrecision = precision
		}
		if cmd.Flags().Changed("verbose") {
			cfg.Verbose = verbose
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		settings = cfg
		observability.SetLogger(observability.NewTextLogger(os.Stderr, cfg.Verbose))
		return nil
	},
}

// Execute runs the command tree, printing any failure to stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "padic: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml)")
	rootCmd.PersistentFlags().Int64VarP(&prime, "prime", "p", 5, "prime modulus")
	rootCmd.PersistentFlags().IntVarP(&precision, "precision", "n", 20, "digit-count budget")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
