package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awskendra "github.com/aws/aws-sdk-go-v2/service/kendra"
	awsssm "github.com/aws/aws-sdk-go-v2/service/ssm"

	"hr-assistant/handler"
	"hr-assistant/internal/config"
	"hr-assistant/internal/integrations/kendra"
	"hr-assistant/internal/integrations/paramstore"
	"hr-assistant/internal/usecase"
)

func main() {
	ctx := context.Background()

	// ---- Configuration (read only here) ----
	cfg := config.FromEnv()
	log := config.NewLogger(cfg.LogLevel)
	slog.SetDefault(log)

	// ---- AWS SDK config ----
	var loadOpts []func(*awsconfig.LoadOptions) error
	if cfg.SearchRegion != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.SearchRegion))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)

	// ---- Clients ----
	// A failed client is recorded, not fatal: the relay answers 500 until redeployed.
	var searcher usecase.Searcher
	initErr := err
	if initErr == nil {
		var client *kendra.Client
		client, initErr = newSearchClient(ctx, awsCfg, &cfg)
		if initErr == nil {
			log.Info("search client initialized", "indexId", client.IndexID())
			searcher = client
		}
	}
	if initErr != nil {
		log.Error("search client not initialized", "err", initErr)
	}
	searchService := usecase.NewSearchService(searcher, initErr)

	// ---- Handler ----
	h, err := handler.NewSearchHandler(searchService, log)
	if err != nil {
		log.Error("failed to create search handler", "err", err)
		os.Exit(1)
	}

	if os.Getenv("AWS_LAMBDA_RUNTIME_API") != "" {
		lambda.Start(h.Handle)
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/search", h)
	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Info("search relay listening", "addr", cfg.ListenAddr, "available", searchService.Available())
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server error", "err", err)
		os.Exit(1)
	}
}

func newSearchClient(ctx context.Context, awsCfg aws.Config, cfg *config.Config) (*kendra.Client, error) {
	if cfg.IndexID == "" && cfg.IndexParameterName() != "" {
		params, err := paramstore.New(awsssm.NewFromConfig(awsCfg))
		if err != nil {
			return nil, err
		}
		if err := cfg.ResolveIndexID(ctx, params); err != nil {
			return nil, err
		}
	}
	return kendra.New(awskendra.NewFromConfig(awsCfg), cfg.IndexID)
}
