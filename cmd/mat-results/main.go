package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sweissman/mat-results/internal/cli"
	"github.com/sweissman/mat-results/internal/config"
	"github.com/sweissman/mat-results/internal/logger"
)

func main() {
	// Best-effort .env load; a missing file is the normal case in CI.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitError)
	}

	logger.SetDefault(logger.New(logger.ParseLevel(cfg.LogLevel), os.Stderr))

	cli.Execute(cfg)
}
