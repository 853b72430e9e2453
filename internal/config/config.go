package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingCredentials is returned when the Spotify client ID or secret
// is not configured
var ErrMissingCredentials = errors.New("missing Spotify credentials")

// Config holds application configuration
type Config struct {
	// Spotify application credentials
	Credentials Credentials

	// Web API and token endpoints (overridable for testing)
	APIURL   string
	TokenURL string

	// Market used for top tracks
	// Default: "US"
	Market string

	// Display width for listed names, 0 disables truncation
	OutputWidth int

	// Timeout for each HTTP request, 0 means none
	HTTPTimeout time.Duration

	// Diagnostics
	LogLevel string
	LogFile  string

	// Optional sound played after results are shown
	DoneSound string
}

// Credentials holds the Spotify client-credentials pair
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// Load reads configuration from a .env file, the config file and the environment.
// The .env file in the working directory is optional.
func Load() (*Config, error) {
	return LoadWithEnvFile(".env")
}

// LoadWithEnvFile is Load with an explicit .env path
func LoadWithEnvFile(envFile string) (*Config, error) {
	// Values already present in the environment win over the .env file
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(getConfigDir())

	// Set defaults
	v.SetDefault("api_url", "https://api.spotify.com/v1")
	v.SetDefault("token_url", "https://accounts.spotify.com/api/token")
	v.SetDefault("market", "US")
	v.SetDefault("output_width", 0)
	v.SetDefault("http_timeout", "0s")
	v.SetDefault("log_level", "warn")

	// Read config file (optional - don't fail if missing)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Read from environment variables
	v.SetEnvPrefix("DISCOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Credentials use the conventional Spotify variable names
	_ = v.BindEnv("spotify.client_id", "SPOTIFY_CLIENT_ID")
	_ = v.BindEnv("spotify.client_secret", "SPOTIFY_CLIENT_SECRET")

	// Map config to struct
	cfg := &Config{
		Credentials: Credentials{
			ClientID:     strings.TrimSpace(v.GetString("spotify.client_id")),
			ClientSecret: strings.TrimSpace(v.GetString("spotify.client_secret")),
		},
		APIURL:      v.GetString("api_url"),
		TokenURL:    v.GetString("token_url"),
		Market:      strings.ToUpper(v.GetString("market")),
		OutputWidth: v.GetInt("output_width"),
		HTTPTimeout: v.GetDuration("http_timeout"),
		LogLevel:    v.GetString("log_level"),
		LogFile:     v.GetString("log_file"),
		DoneSound:   v.GetString("done_sound"),
	}

	return cfg, nil
}

// Validate checks that the values needed before any network call are present
func (c *Config) Validate() error {
	var missing []string
	if c.Credentials.ClientID == "" {
		missing = append(missing, "SPOTIFY_CLIENT_ID")
	}
	if c.Credentials.ClientSecret == "" {
		missing = append(missing, "SPOTIFY_CLIENT_SECRET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s not set", ErrMissingCredentials, strings.Join(missing, " and "))
	}

	if c.OutputWidth < 0 {
		return fmt.Errorf("output_width must not be negative, got %d", c.OutputWidth)
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("http_timeout must not be negative, got %s", c.HTTPTimeout)
	}

	return nil
}

// getConfigDir returns the configuration directory path
func getConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	return filepath.Join(homeDir, ".config", "discog")
}

// GetConfigDir returns the configuration directory path (public helper)
func GetConfigDir() string {
	return getConfigDir()
}
