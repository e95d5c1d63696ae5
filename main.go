package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"github.com/dealscope/dealscope-engine/pkg/classify"
	"github.com/dealscope/dealscope-engine/pkg/config"
	"github.com/dealscope/dealscope-engine/pkg/database"
	"github.com/dealscope/dealscope-engine/pkg/handlers"
	"github.com/dealscope/dealscope-engine/pkg/llm"
	"github.com/dealscope/dealscope-engine/pkg/logging"
	"github.com/dealscope/dealscope-engine/pkg/repositories"
	"github.com/dealscope/dealscope-engine/pkg/retry"
	"github.com/dealscope/dealscope-engine/pkg/services"
	"github.com/dealscope/dealscope-engine/pkg/storage"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("configuration loaded",
		zap.String("environment", cfg.Env),
		zap.String("base_url", cfg.BaseURL),
		zap.String("database", fmt.Sprintf("%s@%s:%d/%s",
			cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.Database)),
		zap.String("storage_bucket", cfg.Storage.Bucket),
		zap.String("llm_provider", cfg.LLM.Provider),
		zap.String("llm_model", cfg.LLM.Model))

	ctx := context.Background()

	db, err := retry.DoWithResult(ctx, nil, func() (*database.DB, error) {
		return database.NewConnection(ctx, &database.Config{
			URL:            cfg.Database.ConnectionString(),
			MaxConnections: cfg.Database.MaxConnections,
		})
	})
	if err != nil {
		logger.Fatal("failed to connect to database",
			zap.String("error", logging.SanitizeError(err)))
	}
	defer db.Close()

	migrationDB, err := sql.Open("pgx", cfg.Database.ConnectionString())
	if err != nil {
		logger.Fatal("failed to open migration connection",
			zap.String("error", logging.SanitizeError(err)))
	}
	if err := database.RunMigrations(migrationDB, "migrations", logger); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}
	migrationDB.Close()

	store, err := storage.NewGCSStore(ctx, cfg.Storage.Bucket, cfg.Storage.CredentialsJSON, logger)
	if err != nil {
		logger.Fatal("failed to connect to storage",
			zap.String("error", logging.SanitizeError(err)))
	}
	defer store.Close()

	completion, err := buildCompletionClient(cfg, logger)
	if err != nil {
		logger.Fatal("failed to build completion client", zap.Error(err))
	}

	docRepo := repositories.NewDocumentRepository(db)
	stmtRepo := repositories.NewStatementRepository(db)

	classifier := classify.NewClassifier(completion, logger)
	documentService := services.NewDocumentService(docRepo, store, cfg.Storage.Prefix, logger)
	analysisService := services.NewAnalysisService(
		docRepo, stmtRepo, store, completion, classifier,
		cfg.Storage.Prefix, cfg.LLM.MaxTokens, logger)

	mux := http.NewServeMux()
	handlers.NewHealthHandler(cfg, logger).RegisterRoutes(mux)
	handlers.NewDocumentsHandler(documentService, analysisService, logger).RegisterRoutes(mux)
	handlers.NewClassifyHandler(classifier, analysisService, logger).RegisterRoutes(mux)

	addr := cfg.BindAddr + ":" + cfg.Port
	logger.Info("starting dealscope-engine",
		zap.String("addr", addr),
		zap.String("version", cfg.Version))
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

func buildCompletionClient(cfg *config.Config, logger *zap.Logger) (llm.CompletionClient, error) {
	switch cfg.LLM.Provider {
	case "openai":
		return llm.NewClient(&llm.Config{
			Endpoint:  cfg.LLM.Endpoint,
			Model:     cfg.LLM.Model,
			APIKey:    cfg.LLM.OpenAIKey,
			MaxTokens: cfg.LLM.MaxTokens,
			Timeout:   time.Duration(cfg.LLM.TimeoutSeconds) * time.Second,
		}, logger)
	case "anthropic":
		return llm.NewAnthropicClient(&llm.Config{
			Model:     cfg.LLM.Model,
			APIKey:    cfg.LLM.AnthropicKey,
			MaxTokens: cfg.LLM.MaxTokens,
			Timeout:   time.Duration(cfg.LLM.TimeoutSeconds) * time.Second,
		}, logger)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.LLM.Provider)
	}
}
