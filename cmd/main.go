package main

import (
	"context"
	"errors"
	"os"

	"github.com/desertthunder/mixtape/internal/services"
	"github.com/desertthunder/mixtape/internal/shared"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
)

// newApp assembles the root command from the Runner's command tree.
func newApp(r *Runner) *cli.Command {
	return &cli.Command{
		Name:     "mixtape",
		Usage:    "Manage local playlists backed by the Spotify catalog",
		Version:  "0.1.0",
		Commands: r.register(),
	}
}

func main() {
	logger := shared.NewLogger(nil)

	// A .env next to the binary is the low-friction way to supply
	// SPOTIFY_ID / SPOTIFY_SECRET without editing config.toml.
	_ = godotenv.Load()

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}
	config.ApplyEnv()

	var catalog services.Catalog
	if config.Credentials.Spotify.ClientID != "" && config.Credentials.Spotify.ClientSecret != "" {
		if svc, err := services.NewSpotifyService(config.Credentials.Spotify.Map()); err == nil {
			catalog = svc
		}
	}

	runner := NewRunner(RunnerOpts{
		Config:  config,
		Catalog: catalog,
		Logger:  logger,
	})

	app := newApp(runner)

	if err := app.Run(context.Background(), os.Args); err != nil {
		err_ := errors.Unwrap(err)
		if errors.Is(err_, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}
