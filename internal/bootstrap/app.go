// Package bootstrap assembles configuration, storage, the LLM provider
// chain, and the HTTP router into a runnable application.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"hr-backend/internal/chat"
	"hr-backend/internal/jobs"
	"hr-backend/internal/llm"
	"hr-backend/internal/llm/gemini"
	"hr-backend/internal/llm/openai"
	"hr-backend/internal/matching"
	"hr-backend/internal/parsing"
	"hr-backend/internal/screening"
	"hr-backend/internal/shared/auth"
	"hr-backend/internal/shared/config"
	"hr-backend/internal/shared/server"
	"hr-backend/internal/shared/storage/db"
	"hr-backend/internal/shared/storage/object"
	localstore "hr-backend/internal/shared/storage/object/local"
	s3store "hr-backend/internal/shared/storage/object/s3"
	"hr-backend/internal/shared/telemetry"
)

// App holds shared dependencies.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	DB               *sql.DB
	Store            object.ObjectStore
	Signer           *auth.Signer
	LLM              llm.Client
	Parser           *parsing.Parser
	JobsService      *jobs.Service
	ScreeningService *screening.Service
	ChatService      *chat.Service
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	chain := buildLLM(ctx, cfg)
	signer := auth.NewSigner(cfg.JWTSecret, 24*time.Hour)
	parser := parsing.NewParser(nil)

	var jobRepo jobs.Repo
	var screeningRepo screening.Repo
	if sqlDB != nil {
		jobRepo = &jobs.PGRepo{DB: sqlDB}
		screeningRepo = &screening.PGRepo{DB: sqlDB}
	} else {
		jobRepo = jobs.NewMemoryRepo()
		screeningRepo = screening.NewMemoryRepo()
	}

	jobsSvc := &jobs.Service{Repo: jobRepo, LLM: chain, Store: store}
	screeningSvc := &screening.Service{
		Parser:   parser,
		Jobs:     jobsSvc,
		Repo:     screeningRepo,
		Store:    store,
		Matcher:  matching.NewAIStrategy(chain),
		Enricher: &screening.LLMEnricher{Client: chain},
	}
	chatSvc := chat.NewService(chat.NewSessionManager(), chat.LoadHRMS(cfg.DataDir), chain)

	app := &App{
		Config:           cfg,
		DB:               sqlDB,
		Store:            store,
		Signer:           signer,
		LLM:              chain,
		Parser:           parser,
		JobsService:      jobsSvc,
		ScreeningService: screeningSvc,
		ChatService:      chatSvc,
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           cfg,
		Signer:           signer,
		ChatHandler:      chat.NewHandler(chatSvc),
		JobsHandler:      jobs.NewHandler(jobsSvc),
		ScreeningHandler: screening.NewHandler(screeningSvc),
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

// buildLLM assembles the provider chain. Providers without credentials are
// skipped; the canned fallback always terminates the chain so chat and
// screening never hard-fail on provider outages.
func buildLLM(ctx context.Context, cfg config.Config) llm.Client {
	onError := func(name string, err error) {
		telemetry.Error("llm.provider_failed", map[string]any{"provider": name, "err": err.Error()})
	}

	var clients []llm.Client
	addGemini := func() {
		if cfg.GeminiAPIKey == "" {
			return
		}
		client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.LLMModel)
		if err != nil {
			telemetry.Error("llm.init_failed", map[string]any{"provider": "gemini", "err": err.Error()})
			return
		}
		clients = append(clients, client)
	}
	addOpenAI := func() {
		if cfg.OpenAIAPIKey == "" {
			return
		}
		client, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel)
		if err != nil {
			telemetry.Error("llm.init_failed", map[string]any{"provider": "openai", "err": err.Error()})
			return
		}
		clients = append(clients, client)
	}

	if cfg.LLMProvider == "openai" {
		addOpenAI()
		addGemini()
	} else {
		addGemini()
		addOpenAI()
	}
	clients = append(clients, llm.Fallback{})

	return llm.NewChain(onError, clients...)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
