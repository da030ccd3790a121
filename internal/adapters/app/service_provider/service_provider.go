package service_provider

import (
	"PocketFormsBot/internal/adapters/config"
	tgcontroller "PocketFormsBot/internal/adapters/controller/telegram"
	"PocketFormsBot/internal/adapters/repository/backendapi"
	"PocketFormsBot/internal/adapters/repository/memstate"
	"PocketFormsBot/internal/adapters/repository/postgres"
	"PocketFormsBot/internal/adapters/repository/redisstate"
	"PocketFormsBot/internal/domain/repository"
	"PocketFormsBot/internal/domain/service/builder"
	"PocketFormsBot/internal/domain/service/forms"
	"PocketFormsBot/internal/domain/service/session"
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"PocketFormsBot/internal/logz"
)

type ServiceProvider struct {
	config config.Config

	pgPool      *pgxpool.Pool
	redisClient *redis.Client

	builderService *builder.Service
	sessionService *session.Service
	formsService   *forms.Service

	botRunner *tgcontroller.Runner
}

func New() (*ServiceProvider, error) {
	sp := &ServiceProvider{}
	if err := sp.init(); err != nil {
		return nil, err
	}
	return sp, nil
}

func (sp *ServiceProvider) BotRunner() *tgcontroller.Runner {
	return sp.botRunner
}

func (sp *ServiceProvider) Close() {
	if sp.pgPool != nil {
		sp.pgPool.Close()
	}
	if sp.redisClient != nil {
		_ = sp.redisClient.Close()
	}
}

func (sp *ServiceProvider) init() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	sp.config = cfg

	ctx := context.Background()

	pgPool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	if err := pgPool.Ping(ctx); err != nil {
		return fmt.Errorf("ping postgres: %w", err)
	}
	sp.pgPool = pgPool

	receiptRepo := postgres.NewReceiptRepo(sp.pgPool)
	if err := receiptRepo.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	// Drafts live in Redis when configured, otherwise in process memory and
	// die with the bot.
	var flowRepo repository.FlowStateRepository
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("ping redis: %w", err)
		}
		sp.redisClient = redisClient
		flowRepo = redisstate.NewFlowStateRepo(redisClient, cfg.DraftTTL)
	} else {
		flowRepo = memstate.NewFlowStateRepo()
	}

	backend := backendapi.New(cfg.BackendURL)

	sp.builderService = builder.New(flowRepo)
	sp.sessionService = session.New(backend)
	sp.formsService = forms.New(backend, receiptRepo)

	botRunner, err := tgcontroller.New(cfg.BotToken, sp.builderService, sp.sessionService, sp.formsService)
	if err != nil {
		return fmt.Errorf("create telegram controller: %w", err)
	}
	sp.botRunner = botRunner

	logz.Log.Info("service provider initialized")
	return nil
}
