package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/flexscan/cli/internal/cli"
	"github.com/flexscan/cli/internal/config"
	clierrors "github.com/flexscan/cli/internal/errors"
)

func main() {
	// Ensure config directory exists
	home, err := os.UserHomeDir()
	if err == nil {
		if err := os.MkdirAll(filepath.Join(home, ".flexscan"), 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating config directory: %v\n", err)
			os.Exit(clierrors.ExitCodeRuntime)
		}
	}

	// Load the configuration
	cfg, err := config.Load()
	if err != nil {
		exitWith(err)
	}

	// Execute with config
	if err := cli.Execute(cfg); err != nil {
		exitWith(err)
	}
}

func exitWith(err error) {
	fmt.Fprintln(os.Stderr, clierrors.FormatSimple(err))

	var cliErr *clierrors.CLIError
	if errors.As(err, &cliErr) {
		os.Exit(clierrors.ExitCodeFor(cliErr.Type))
	}
	os.Exit(clierrors.ExitCodeRuntime)
}
