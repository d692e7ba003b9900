// Package main is the entry point for Zombie Cruise.
package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/zombiecruise/internal/config"
	"github.com/samdwyer/zombiecruise/internal/game"
	"github.com/samdwyer/zombiecruise/internal/gamedata"
	"github.com/samdwyer/zombiecruise/internal/telemetry"
	"github.com/samdwyer/zombiecruise/internal/ui"
)

func main() {
	log.SetPrefix("[zombiecruise] ")

	// Load .env file for local development
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx := context.Background()

	if cfg.Telemetry {
		shutdown, err := telemetry.Setup(ctx, telemetry.Options{
			Endpoint: cfg.TelemetryEndpoint(),
			Headers:  cfg.TelemetryHeaders(),
		})
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Game will run without observability")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	balance, err := gamedata.LoadBalance(cfg.BalanceFile)
	if err != nil {
		log.Fatalf("Failed to load balance: %v", err)
	}
	tables, err := gamedata.LoadTables()
	if err != nil {
		log.Fatalf("Failed to load game data: %v", err)
	}

	front, err := newFrontend(cfg.UI)
	if err != nil {
		log.Fatalf("Failed to initialize %s frontend: %v", cfg.UI, err)
	}

	g := game.New(game.Config{
		Seed:          cfg.Seed,
		DebugCommands: cfg.DebugCommands,
		WrapWidth:     cfg.WrapWidth,
		Balance:       balance,
		Tables:        tables,
	}, front)

	_, runErr := g.Run(ctx)
	if err := g.Close(); err != nil {
		log.Printf("Error closing frontend: %v", err)
	}
	if runErr != nil {
		log.Fatalf("Game error: %v", runErr)
	}
}

func newFrontend(kind string) (game.Frontend, error) {
	if kind == config.UIScreen {
		return ui.NewScreen()
	}
	return ui.NewConsole(os.Stdin, os.Stdout), nil
}
