package cmd

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/runger/finsearch/internal/cache"
	"github.com/runger/finsearch/internal/config"
	"github.com/runger/finsearch/internal/event"
	"github.com/runger/finsearch/internal/storage"
	"github.com/runger/finsearch/internal/theme"
	"github.com/runger/finsearch/internal/tui"
	"github.com/runger/finsearch/internal/widget"
)

var browseTheme string

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive search screen",
	Long: `Open the interactive search screen.

Type to search across accounts, customers, and transactions.
Tab cycles category filters, arrow keys navigate results,
Enter selects, Ctrl+T toggles the theme, Esc exits.`,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().StringVar(&browseTheme, "theme", "", "theme override: light, dark, or auto")
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if browseTheme != "" {
		if !theme.ValidName(theme.Name(browseTheme)) {
			return fmt.Errorf("invalid theme: %s (must be light, dark, or auto)", browseTheme)
		}
		cfg.Theme.Default = browseTheme
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	paths := config.DefaultPaths()
	store, err := storage.Open(paths.DatabaseFile())
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer store.Close()

	ds, err := loadDataset(ctx, cfg, store)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	ctrl := widget.New(ds, widget.Options{
		Placeholder:    cfg.Widget.Placeholder,
		MinQueryLength: cfg.Widget.MinQueryLength,
		DebounceDelay:  time.Duration(cfg.Widget.DebounceMs) * time.Millisecond,
		MaxResults:     cfg.Widget.MaxResults,
		Cache: cache.Config{
			TTL:      time.Duration(cfg.Cache.TTLMs) * time.Millisecond,
			Capacity: cfg.Cache.Capacity,
		},
		Logger: logger,
		Sink:   event.LogSink{Logger: logger},
	})
	defer ctrl.Close()

	themes := theme.NewManager(theme.Name(cfg.Theme.Default), store, cfg.Theme.Persist, logger)

	model := tui.NewModel(ctrl, themes, time.Duration(cfg.Widget.DebounceMs)*time.Millisecond)
	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui error: %w", err)
	}

	if m, ok := final.(tui.Model); ok {
		if chosen, ok := m.Selected(); ok {
			fmt.Printf("%s%s%s\n", colorBold, chosen.Title, colorReset)
			fmt.Printf("  %s\n", chosen.Subtitle)
			if chosen.Metadata != "" {
				fmt.Printf("  %s%s%s\n", colorDim, chosen.Metadata, colorReset)
			}
		}
	}
	return nil
}
