// Package cli implements the riskctl dashboard: the terminal counterpart of
// the Risk Banking advisor pages. Every command talks to the scoring API
// where one is reachable and falls back to the local pipeline otherwise.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	appservice "github.com/JulienRip/riskbanking/internal/application/service"
	"github.com/JulienRip/riskbanking/internal/config"
	domainservice "github.com/JulienRip/riskbanking/internal/domain/service"
	"github.com/JulienRip/riskbanking/internal/infrastructure/dataset"
	"github.com/JulienRip/riskbanking/pkg/logger"
	"github.com/JulienRip/riskbanking/sdk/go/riskclient"
)

var (
	flagAPIBaseURL  string
	flagDatasetPath string
)

// rootCmd is the base command of the riskctl binary.
var rootCmd = &cobra.Command{
	Use:   "riskctl",
	Short: "A terminal dashboard for the Risk Banking scoring service.",
	Long: `riskctl is the advisor-facing dashboard of Risk Banking. It evaluates a
client's default risk through the scoring API, falling back to an identical
local computation when the API is unreachable, and renders the client
profile, influence factors and recommendation.`,
	SilenceUsage: true,
}

// Execute is the main entry point for the CLI application.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAPIBaseURL, "api", "", "scoring API base URL (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagDatasetPath, "dataset", "", "dataset CSV path (default from config)")
}

// runtime bundles everything a command needs: config, the API client, and
// the local pipeline used for fallbacks and offline commands.
type runtime struct {
	cfg        *config.Config
	path       string
	client     *riskclient.Client
	prediction appservice.PredictionAppService
	analysis   appservice.AnalysisAppService
	log        logger.Logger
}

func newRuntime() (*runtime, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	baseURL := cfg.Client.BaseURL
	if flagAPIBaseURL != "" {
		baseURL = flagAPIBaseURL
	}
	path := cfg.Dataset.DefaultPath
	if flagDatasetPath != "" {
		path = flagDatasetPath
	}

	// The dashboard logs nothing of its own; warnings are rendered instead.
	log := logger.NewNoopLogger()

	store, err := dataset.NewStore(cfg.Dataset.CacheCapacity, log)
	if err != nil {
		return nil, err
	}

	return &runtime{
		cfg:  cfg,
		path: path,
		client: riskclient.NewClient(baseURL, cfg.Client.TimeoutDuration()),
		prediction: appservice.NewPredictionAppService(
			store,
			domainservice.NewScoringService(),
			domainservice.NewSnapshotService(),
			log,
		),
		analysis: appservice.NewAnalysisAppService(store, log),
		log:      log,
	}, nil
}
