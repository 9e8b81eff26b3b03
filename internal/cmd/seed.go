package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runger/finsearch/internal/config"
	"github.com/runger/finsearch/internal/storage"
)

var seedForce bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the demo dataset into the local database",
	Long: `Load the demo dataset into the local database.

A populated database is left untouched unless --force is given,
in which case the existing records are replaced.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().BoolVar(&seedForce, "force", false, "replace existing records")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	paths := config.DefaultPaths()
	store, err := storage.Open(paths.DatabaseFile())
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer store.Close()

	n, err := store.Seed(context.Background(), seedForce)
	if err != nil {
		return fmt.Errorf("failed to seed: %w", err)
	}

	if n == 0 {
		fmt.Printf("%sDatabase already populated; use --force to replace%s\n", colorDim, colorReset)
		return nil
	}
	fmt.Printf("%sSeeded %d records%s into %s\n", colorGreen, n, colorReset, paths.DatabaseFile())
	return nil
}
