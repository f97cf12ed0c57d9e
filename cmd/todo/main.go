// Package main is the entry point for the todo CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"todo/internal/backend"
	"todo/internal/backend/sqlitedb"
	"todo/internal/backend/todotxt"
	"todo/internal/backend/yamlfile"
	"todo/internal/cli"
	"todo/internal/commands"
	"todo/internal/config"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create backend factory: the configured storage kind decides which
	// persistence backend holds the document.
	factory := func(ctx context.Context, cfg *config.Config) (backend.Backend, error) {
		switch cfg.Storage {
		case config.StorageYAML:
			return yamlfile.New(cfg.StatePath()), nil
		case config.StorageSQLite:
			return sqlitedb.New(cfg.StatePath()), nil
		case config.StorageText:
			return todotxt.New(cfg.StatePath()), nil
		default:
			return nil, fmt.Errorf("unknown storage kind %q", cfg.Storage)
		}
	}

	// Create dispatcher
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	// Run and exit with code
	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
