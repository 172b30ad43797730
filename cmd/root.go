// Package cmd provides the CLI entry point for the PowerDNS terminal UI.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kreigan/powerdns-tui/internal/config"
	"github.com/kreigan/powerdns-tui/internal/gateway"
	"github.com/kreigan/powerdns-tui/internal/logger"
	"github.com/kreigan/powerdns-tui/internal/tui"
	"github.com/kreigan/powerdns-tui/internal/view"
)

// debugLogFile receives all log output while the UI owns the terminal.
const debugLogFile = "pdns-tui.log"

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var debugEnabled bool

var rootCmd = &cobra.Command{
	Use:   "pdns-tui",
	Short: "Terminal UI for managing PowerDNS zones and records",
	Long: `An interactive terminal UI for PowerDNS Authoritative servers.

Browse zones across one or more servers, drill down into their resource
records, and create, edit or delete zones and records through the
PowerDNS HTTP API.

Connection details come from exactly one source: either a YAML config
file listing one or more servers (--config), or a single server given
via --url/--api-key or the PDNS_API_URL/PDNS_API_KEY environment
variables.`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runRoot,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// Debug reports whether --debug was given, for the panic handler in main.
func Debug() bool {
	return debugEnabled
}

func init() {
	rootCmd.Flags().String("url", "", "PowerDNS API base URL (e.g., http://localhost:8081)")
	rootCmd.Flags().String("api-key", "", "PowerDNS API key")
	rootCmd.Flags().StringP("config", "c", "", "Path to YAML config file with server definitions")
	rootCmd.Flags().BoolP("debug", "d", false, fmt.Sprintf("Write debug logs to %s", debugLogFile))
	rootCmd.Flags().Bool("no-color", false, "Disable colored log output")
}

func runRoot(cmd *cobra.Command, _ []string) error {
	apiURL, err := cmd.Flags().GetString("url")
	if err != nil {
		return fmt.Errorf("failed to get url flag: %w", err)
	}
	apiKey, err := cmd.Flags().GetString("api-key")
	if err != nil {
		return fmt.Errorf("failed to get api-key flag: %w", err)
	}
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	debugEnabled, err = cmd.Flags().GetBool("debug")
	if err != nil {
		return fmt.Errorf("failed to get debug flag: %w", err)
	}
	noColor, err := cmd.Flags().GetBool("no-color")
	if err != nil {
		return fmt.Errorf("failed to get no-color flag: %w", err)
	}

	if apiURL == "" {
		apiURL = os.Getenv("PDNS_API_URL")
	}
	if apiKey == "" {
		apiKey = os.Getenv("PDNS_API_KEY")
	}

	profiles, err := resolveProfiles(configPath, apiURL, apiKey)
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{Verbose: debugEnabled, NoColor: noColor})
	if debugEnabled {
		f, err := os.OpenFile(debugLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open debug log file: %w", err)
		}
		defer func() { _ = f.Close() }()
		log.SetOutput(f)
		log.Debug("Starting pdns-tui with %d server(s)", len(profiles))
	} else {
		// The UI owns the terminal; silence logs entirely without --debug.
		log.SetOutput(io.Discard)
	}

	gateways := make([]view.ServerGateway, len(profiles))
	for i, p := range profiles {
		gateways[i] = gateway.New(p, log)
	}

	app := tui.New(&tui.Session{Gateways: gateways, Log: log})
	return app.Run()
}

// resolveProfiles turns the CLI inputs into server profiles. A config file
// and direct connection flags are mutually exclusive, and one of the two
// must be present.
func resolveProfiles(configPath, apiURL, apiKey string) ([]config.Profile, error) {
	direct := apiURL != "" || apiKey != ""

	switch {
	case configPath != "" && direct:
		return nil, fmt.Errorf("--config cannot be combined with --url/--api-key")
	case configPath != "":
		profiles, err := config.LoadFromFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		return profiles, nil
	case apiURL != "" && apiKey != "":
		return config.FromFlags(apiURL, apiKey), nil
	case direct:
		return nil, fmt.Errorf("both --url and --api-key are required (or PDNS_API_URL/PDNS_API_KEY)")
	default:
		return nil, fmt.Errorf("no connection details: use --config, or --url and --api-key")
	}
}
