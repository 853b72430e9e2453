/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jfmyers9/discog/internal/catalog"
	"github.com/jfmyers9/discog/internal/config"
	"github.com/jfmyers9/discog/internal/music"
	"github.com/jfmyers9/discog/internal/session"
	"github.com/jfmyers9/discog/pkg/spotify"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

var (
	rootLogLevel string
	rootLogFile  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "discog",
	Short: "Browse an artist's Spotify discography",
	Long: `discog is an interactive client for the Spotify Web API.

It asks for an artist name, resolves it against the Spotify catalog and
then shows the artist's top tracks, their albums, or a single track
looked up by name.

Credentials are read from SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET,
either from the environment or from a .env file in the working directory.
Other settings can be placed in ~/.config/discog/config.yaml or set with
DISCOG_* environment variables.`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	finished := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			// Prompts block on stdin and never observe the cancellation
			fmt.Fprintln(os.Stderr)
			os.Exit(130)
		case <-finished:
		}
	}()

	err := rootCmd.ExecuteContext(ctx)
	close(finished)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&rootLogFile, "log-file", "", "Write logs to this file instead of stderr (overrides config)")
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Credentials are checked before anything touches the network
	if err := cfg.Validate(); err != nil {
		if errors.Is(err, config.ErrMissingCredentials) {
			return fmt.Errorf("%w (set them in the environment or a .env file)", err)
		}
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, closer := setupLogger(resolveLogFile(cmd, cfg.LogFile), resolveLogLevel(cmd, cfg.LogLevel))
	defer closer.Close()

	logger.Debug().
		Str("version", version).
		Str("market", cfg.Market).
		Msg("Starting discog")

	client, err := newSpotifyClient(cfg, logger)
	if err != nil {
		return err
	}

	resolver, queries := catalog.New(client, cfg.Market, logger)

	opts := session.Options{
		OutputWidth: cfg.OutputWidth,
		DoneSound:   cfg.DoneSound,
		Logger:      logger,
	}
	if cfg.DoneSound != "" {
		opts.Player = music.NewCommandPlayer()
	}

	s := session.New(cmd.InOrStdin(), cmd.OutOrStdout(), client.Auth(), resolver, queries, opts)
	if err := s.Run(cmd.Context()); err != nil {
		if errors.Is(err, session.ErrInputClosed) {
			logger.Debug().Msg("Input closed")
		}
		return err
	}

	return nil
}

// newSpotifyClient builds the API client from configuration
func newSpotifyClient(cfg *config.Config, logger zerolog.Logger) (*spotify.Client, error) {
	client, err := spotify.NewClient(spotify.Config{
		ClientID:     cfg.Credentials.ClientID,
		ClientSecret: cfg.Credentials.ClientSecret,
		HTTPClient:   &http.Client{Timeout: cfg.HTTPTimeout},
		BaseURL:      cfg.APIURL,
		TokenURL:     cfg.TokenURL,
		UserAgent:    "discog/" + version,
		Logger:       zerologAdapter{logger: logger.With().Str("component", "spotify").Logger()},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Spotify client: %w", err)
	}
	return client, nil
}

// resolveLogLevel prefers the --log-level flag over configuration
func resolveLogLevel(cmd *cobra.Command, configured string) string {
	if cmd.Flags().Changed("log-level") {
		return rootLogLevel
	}
	return configured
}

func resolveLogFile(cmd *cobra.Command, configured string) string {
	if cmd.Flags().Changed("log-file") {
		return rootLogFile
	}
	return configured
}
