package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/runger/finsearch/internal/cache"
	"github.com/runger/finsearch/internal/config"
	"github.com/runger/finsearch/internal/engine"
	"github.com/runger/finsearch/internal/records"
	"github.com/runger/finsearch/internal/storage"
)

var queryTab string

var queryCmd = &cobra.Command{
	Use:   "query <text>",
	Short: "Run a one-shot search and print the results",
	Long: `Run a one-shot search and print the results.

Examples:
  finsearch query checking
  finsearch query 1001 --tab account
  finsearch query grocery --tab transaction`,
	Args: cobra.MinimumNArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().StringVar(&queryTab, "tab", "all", "category filter: all, account, customer, or transaction")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	tab := records.Tab(queryTab)
	if !records.ValidTab(tab) {
		return fmt.Errorf("invalid tab: %s (must be all, account, customer, or transaction)", queryTab)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	var store *storage.Store
	if cfg.Widget.DataSource == "sqlite" {
		paths := config.DefaultPaths()
		store, err = storage.Open(paths.DatabaseFile())
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		defer store.Close()
	}

	ds, err := loadDataset(ctx, cfg, store)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	eng := engine.New(ds, engine.Config{
		MinQueryLength: cfg.Widget.MinQueryLength,
		MaxResults:     cfg.Widget.MaxResults,
		Cache: cache.Config{
			TTL:      time.Duration(cfg.Cache.TTLMs) * time.Millisecond,
			Capacity: cfg.Cache.Capacity,
		},
		Logger: logger,
	})

	query := strings.Join(args, " ")
	rs := eng.Query(query, tab)
	if len(rs) == 0 {
		fmt.Printf("%sNo results for %q%s\n", colorDim, query, colorReset)
		return nil
	}

	for _, r := range rs {
		fmt.Printf("%s[%s]%s %s%s%s · %s", colorCyan, r.Category, colorReset, colorBold, r.Title, colorReset, r.Subtitle)
		if r.Metadata != "" {
			fmt.Printf(" %s(%s)%s", colorDim, r.Metadata, colorReset)
		}
		fmt.Println()
	}
	fmt.Printf("\n%d result(s)\n", len(rs))
	return nil
}
