package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awskendra "github.com/aws/aws-sdk-go-v2/service/kendra"
	awsssm "github.com/aws/aws-sdk-go-v2/service/ssm"

	"hr-assistant/handler"
	"hr-assistant/internal/config"
	"hr-assistant/internal/integrations/kendra"
	"hr-assistant/internal/integrations/paramstore"
	"hr-assistant/internal/repository"
	"hr-assistant/internal/usecase"
)

func main() {
	ctx := context.Background()

	// ---- Configuration (read only here) ----
	cfg := config.FromEnv()
	log := config.NewLogger(cfg.LogLevel)
	slog.SetDefault(log)

	// ---- AWS SDK config ----
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		log.Error("failed to load AWS config", "err", err)
		os.Exit(1)
	}

	if cfg.IndexID == "" && cfg.IndexParameterName() != "" {
		params, err := paramstore.New(awsssm.NewFromConfig(awsCfg))
		if err != nil {
			log.Error("failed to create SSM client", "err", err)
			os.Exit(1)
		}
		if err := cfg.ResolveIndexID(ctx, params); err != nil {
			log.Warn("index ID lookup failed, policy search disabled", "err", err)
		}
	}

	// ---- Clients ----
	employees, err := repository.New(awsdynamodb.NewFromConfig(awsCfg), cfg.EmployeeTable)
	if err != nil {
		log.Error("failed to create employee repository", "err", err)
		os.Exit(1)
	}

	var searcher usecase.Searcher
	kendraClient, initErr := kendra.New(awskendra.NewFromConfig(awsCfg), cfg.IndexID)
	if initErr != nil {
		log.Warn("policy search disabled", "err", initErr)
	} else {
		log.Info("policy search enabled", "indexId", kendraClient.IndexID())
		searcher = kendraClient
	}

	// ---- Handler ----
	router, err := usecase.NewRouter(employees, usecase.NewSearchService(searcher, initErr), log)
	if err != nil {
		log.Error("failed to create router", "err", err)
		os.Exit(1)
	}
	h, err := handler.NewDialogHandler(router, log)
	if err != nil {
		log.Error("failed to create dialog handler", "err", err)
		os.Exit(1)
	}

	lambda.Start(h.Handle)
}
