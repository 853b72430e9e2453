package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/jfmyers9/discog/internal/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// envFile is the dotenv file credentials are read from and saved to
const envFile = ".env"

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Check and save Spotify credentials",
	Long: `Check Spotify application credentials and save them for later runs.

This command will guide you through setting up credentials:
1. You'll be prompted for a client ID and secret if none are configured
2. The credentials are checked with a single token request
3. Working credentials are saved to .env in the current directory

You can create an application at: https://developer.spotify.com/dashboard`,
	Args: cobra.NoArgs,
	RunE: runAuth,
}

func init() {
	rootCmd.AddCommand(authCmd)
}

func runAuth(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	reader := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Fprintln(out, "Spotify Authentication")
	fmt.Fprintln(out, "======================")
	fmt.Fprintln(out)

	creds := &cfg.Credentials
	if creds.ClientID != "" && creds.ClientSecret != "" {
		fmt.Fprintf(out, "Found existing credentials.\n")
		fmt.Fprintf(out, "Client ID: %s\n", creds.ClientID)
		fmt.Fprint(out, "\nUse existing credentials? [Y/n]: ")
		response, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to read response: %w", err)
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "" && response != "y" && response != "yes" {
			creds.ClientID = ""
			creds.ClientSecret = ""
		}
	}

	if creds.ClientID == "" {
		if creds.ClientID, err = readValue(reader, out, "Enter your Spotify Client ID: "); err != nil {
			return fmt.Errorf("failed to read client ID: %w", err)
		}
	}
	if creds.ClientSecret == "" {
		if creds.ClientSecret, err = readValue(reader, out, "Enter your Spotify Client Secret: "); err != nil {
			return fmt.Errorf("failed to read client secret: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closer := setupLogger(resolveLogFile(cmd, cfg.LogFile), resolveLogLevel(cmd, cfg.LogLevel))
	defer closer.Close()

	client, err := newSpotifyClient(cfg, logger)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "\nRequesting a token...")
	token, err := client.Auth().AcquireToken(ctx)
	if err != nil {
		return fmt.Errorf("credentials were rejected: %w", err)
	}

	if err := saveCredentials(envFile, cfg.Credentials); err != nil {
		return fmt.Errorf("failed to save credentials: %w", err)
	}

	fmt.Fprintf(out, "\n✓ Authentication successful (token valid until %s)\n", token.Expiry.Format("15:04:05"))
	fmt.Fprintf(out, "✓ Credentials saved to %s\n", envFile)
	fmt.Fprintf(out, "\nOther settings can go in %s/config.yaml\n", config.GetConfigDir())
	fmt.Fprintln(out, "You can now run 'discog' to browse an artist.")

	return nil
}

// readValue prompts for a single non-empty value
func readValue(reader *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	value, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && value != "") {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

// saveCredentials writes the credentials into a dotenv file, keeping any
// other entries already present
func saveCredentials(path string, creds config.Credentials) error {
	env, err := godotenv.Read(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		env = map[string]string{}
	}

	env["SPOTIFY_CLIENT_ID"] = creds.ClientID
	env["SPOTIFY_CLIENT_SECRET"] = creds.ClientSecret

	return godotenv.Write(env, path)
}
