// Package main is the entry point for the finsearch CLI.
package main

import (
	"os"

	"github.com/runger/finsearch/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
