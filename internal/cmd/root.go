// Package cmd implements the finsearch command-line interface.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "finsearch",
	Short: "instant search over banking records",
	Long: `finsearch - instant search over accounts, customers, and transactions
  - debounced type-ahead with tab-scoped filters
  - keyboard navigation and light/dark themes`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
