// ABOUTME: Root command for the petradar CLI
// ABOUTME: Handles global flags, shared wiring, and launches the TUI when run bare

package cmd

import (
	"github.com/spf13/cobra"

	"petradar/internal/api"
	"petradar/internal/config"
	"petradar/internal/logger"
	"petradar/internal/session"
	"petradar/internal/store"
	"petradar/internal/tui"
)

var (
	apiURL     string
	jsonOutput bool
)

// rootCmd is the base command; running it without a subcommand opens the TUI
var rootCmd = &cobra.Command{
	Use:   "petradar",
	Short: "Terminal client for the PetRadar API",
	Long: `petradar is a terminal client for the PetRadar pet and veterinary
appointment service. Subcommands drive the API directly; running petradar
with no arguments opens the interactive interface.

Environment Variables:
  PETRADAR_API_URL       API base URL (default: https://api-qa.petradar-qa.org)
  PETRADAR_HTTP_TIMEOUT  Request timeout in seconds (default: 30)
  PETRADAR_CONFIG_DIR    Credential/photo storage dir (default: ~/.config/petradar)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		return tui.Run(a.api, a.session, a.photos)
	},
}

// Execute runs the root command
func Execute() error {
	logger.Init()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "API base URL (overrides PETRADAR_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

// app bundles the wired client-side collaborators. Everything hangs off the
// credential store so token writes are visible to requests built afterwards.
type app struct {
	cfg     *config.Config
	creds   *store.Credentials
	photos  *store.Photos
	api     *api.Client
	session *session.Orchestrator
}

// newApp wires config, stores, gateway and orchestrator.
// Flag overrides env overrides default for the API URL.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if apiURL != "" {
		cfg.APIURL = apiURL
	}

	creds := store.NewCredentials(cfg.ConfigDir)
	client := api.New(cfg.APIURL, cfg.HTTPTimeout, creds)

	return &app{
		cfg:     cfg,
		creds:   creds,
		photos:  store.NewPhotos(cfg.ConfigDir),
		api:     client,
		session: session.New(client, creds),
	}, nil
}
