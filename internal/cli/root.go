// Package cli implements the cosmosq command line client.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/vladislavprovich/cosmos-rest/internal/service"
	"github.com/vladislavprovich/cosmos-rest/pkg/client/cosmosrest"
	"github.com/vladislavprovich/cosmos-rest/pkg/logger"
)

var (
	flagEndpoint  string
	flagTransport string
	flagTimeout   time.Duration
	flagStrict    bool
	flagLogLevel  string
)

var rootCmd = &cobra.Command{
	Use:           "cosmosq",
	Short:         "Query a cosmos node over its REST API",
	Long:          "cosmosq issues one GET per query against a cosmos-sdk node's LCD endpoint and prints the JSON response.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagEndpoint, "endpoint", "e", "", "node REST endpoint (overrides COSMOS_REST_ENDPOINT)")
	rootCmd.PersistentFlags().StringVar(&flagTransport, "transport", "", "http or resty (overrides COSMOS_REST_TRANSPORT)")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 0, "request timeout (overrides COSMOS_REST_TIMEOUT)")
	rootCmd.PersistentFlags().BoolVar(&flagStrict, "strict", false, "fail on unresolved url placeholders")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", logger.LevelWarn, "log level written to stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the client config from the environment and applies flag
// overrides on top.
func loadConfig(ctx context.Context, log *slog.Logger) (*cosmosrest.Config, error) {
	if err := godotenv.Load(); err != nil {
		log.DebugContext(ctx, ".env file not found or failed to load", slog.Any("error", err))
	}

	var cfg cosmosrest.Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load client config: %w", err)
	}

	if flagEndpoint != "" {
		cfg.Endpoint = flagEndpoint
	}
	if flagTransport != "" {
		cfg.Transport = flagTransport
	}
	if flagTimeout > 0 {
		cfg.Timeout = flagTimeout
	}
	if flagStrict {
		cfg.StrictPlaceholders = true
	}

	if err := cfg.ValidateWithContext(ctx); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}

	return &cfg, nil
}

func newService(ctx context.Context) (*service.Service, error) {
	log, err := logger.NewWithWriter(ctx, &logger.Config{
		Level:       flagLogLevel,
		Format:      logger.FormatText,
		ServiceName: "cosmosq",
	}, os.Stderr)
	if err != nil {
		return nil, err
	}

	cfg, err := loadConfig(ctx, log.Logger)
	if err != nil {
		return nil, err
	}

	httpClient := &http.Client{Timeout: cfg.Timeout}
	fetcher := cosmosrest.NewFetcher(cfg, httpClient, log.Logger)
	client := cosmosrest.NewBasicClient(cfg.Endpoint, cosmosrest.DefaultRegistry(), fetcher, cfg, log.Logger)

	log.DebugContext(ctx, "cosmosq client ready", slog.String("endpoint", cfg.Endpoint))

	return service.NewCosmosService(ctx, log.Logger, client), nil
}
