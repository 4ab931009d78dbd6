// ABOUTME: Root command for the agenus-admin CLI
// ABOUTME: Handles global flags, configuration, and wiring of the API client

package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/juliomonteiiro/agenus-admin/internal/catalog"
	"github.com/juliomonteiiro/agenus-admin/internal/client"
	"github.com/juliomonteiiro/agenus-admin/internal/config"
	"github.com/juliomonteiiro/agenus-admin/internal/logger"
	"github.com/juliomonteiiro/agenus-admin/internal/session"
	"github.com/juliomonteiiro/agenus-admin/internal/storage"
	"github.com/juliomonteiiro/agenus-admin/internal/tui"
	"github.com/spf13/cobra"
)

var (
	apiURL     string
	jsonOutput bool
)

// rootCmd is the base command; running it without a subcommand opens the TUI
var rootCmd = &cobra.Command{
	Use:   "agenus-admin",
	Short: "Terminal admin panel for the Agenus product catalog",
	Long: `agenus-admin manages a product catalog through its HTTP API.

Run without arguments to open the interactive TUI, or use the subcommands
for scripted access from CI.

Environment Variables:
  AGENUS_API_URL  Catalog API URL (default: production endpoint)`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := storage.New(storage.DefaultConfigDir())
		// Route debug logs to a file so slog output never corrupts the TUI
		logger.InitFile(store.Dir())

		api, mgr := newSession(store)
		mgr.Initialize()

		return tui.Run(mgr, newController(api), store)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Catalog API URL (overrides AGENUS_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

// loadConfig returns the environment configuration; an invalid environment
// falls back to the defaults so the CLI stays usable
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Invalid configuration, using defaults", "error", err)
		return config.Defaults()
	}
	return cfg
}

// GetAPIURL returns the API URL from flag, env, or config default
func GetAPIURL() string {
	if apiURL != "" {
		return apiURL
	}
	if envURL := os.Getenv("AGENUS_API_URL"); envURL != "" {
		return envURL
	}
	return loadConfig().APIURL
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

// newSession builds the API client and session manager backed by the store
func newSession(store *storage.Store) (*client.Client, *session.Manager) {
	cfg := loadConfig()
	api := client.NewWithTimeout(GetAPIURL(), time.Duration(cfg.RequestTimeout)*time.Second)
	mgr := session.NewManager(api, store)
	return api, mgr
}

// newController builds a catalog controller honoring the configured page
// size, working-set cap, and cache TTL
func newController(api *client.Client) *catalog.Controller {
	cfg := loadConfig()
	c := catalog.NewController(api,
		catalog.WithWorkingSetLimit(cfg.WorkingSetLimit),
		catalog.WithCacheTTL(time.Duration(cfg.CacheTTL)*time.Second),
	)
	c.SetPageSize(cfg.PageSize)
	return c
}

// requireSession loads the stored session and fails when none exists.
// Subcommands call this before touching authenticated endpoints.
func requireSession(store *storage.Store) (*client.Client, *session.Manager, error) {
	api, mgr := newSession(store)
	if mgr.Initialize() != session.StateAuthenticated {
		return nil, nil, fmt.Errorf("not logged in, run: agenus-admin login")
	}
	return api, mgr, nil
}
