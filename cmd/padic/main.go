// Command padic converts exact rationals to p-adic digit expansions and back.
package main

import (
	"os"

	"github.com/fjhenigman/padic/cmd/padic/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
