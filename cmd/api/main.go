package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/adtrackr/profit-sync-api/infrastructure/database/postgres"
	"github.com/adtrackr/profit-sync-api/infrastructure/integrator/meta"
	"github.com/adtrackr/profit-sync-api/infrastructure/integrator/meta/metaclient"
	"github.com/adtrackr/profit-sync-api/infrastructure/integrator/posthog"
	"github.com/adtrackr/profit-sync-api/infrastructure/integrator/posthog/posthogclient"
	"github.com/adtrackr/profit-sync-api/infrastructure/integrator/tiktok"
	"github.com/adtrackr/profit-sync-api/infrastructure/integrator/tiktok/tiktokclient"
	"github.com/adtrackr/profit-sync-api/infrastructure/ratelimit"
	"github.com/adtrackr/profit-sync-api/infrastructure/repository"
	"github.com/adtrackr/profit-sync-api/internal/api"
	"github.com/adtrackr/profit-sync-api/internal/config"
	"github.com/adtrackr/profit-sync-api/internal/scheduler"
	"github.com/adtrackr/profit-sync-api/internal/usecases/aggregating"
	"github.com/adtrackr/profit-sync-api/internal/usecases/authenticating"
	"github.com/adtrackr/profit-sync-api/internal/usecases/authorizing"
	"github.com/adtrackr/profit-sync-api/internal/usecases/syncing"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	tenantRepo := repository.NewTenantRepository(pgConn)
	connectionRepo := repository.NewConnectionRepository(pgConn)
	cacheRepo := repository.NewMetricCacheRepository(pgConn)
	statusRepo := repository.NewSyncStatusRepository(pgConn)
	costRepo := repository.NewCustomCostRepository(pgConn)
	teamRepo := repository.NewTeamRepository(pgConn)
	subscriptionRepo := repository.NewSubscriptionRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	resolver := authorizing.NewService(teamRepo, subscriptionRepo)

	tiktokIntegrator := tiktok.New(cfg, tiktokclient.NewClient(cfg))
	metaIntegrator := meta.New(cfg, metaclient.NewClient(cfg))
	posthogIntegrator := posthog.New(cfg, posthogclient.NewClient(cfg))

	limiter := newLimiter(cfg)

	syncer := syncing.NewService(
		cfg,
		tenantRepo,
		connectionRepo,
		cacheRepo,
		statusRepo,
		limiter,
		tiktokIntegrator,
		metaIntegrator,
		posthogIntegrator,
	)

	aggregator := aggregating.NewService(cacheRepo, costRepo, subscriptionRepo, syncer)

	metricsSyncService := scheduler.NewMetricsSyncService(syncer, cfg)
	if err := metricsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de métricas")
	} else {
		logrus.Info("Agendador de sincronização de métricas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		aggregator,
		syncer,
		resolver,
		authenticator,
		metricsSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// newLimiter monta o rate limiter compartilhado; sem Redis habilitado as
// chamadas às plataformas não são limitadas
func newLimiter(cfg *config.Config) ratelimit.Limiter {
	if !cfg.Redis.Enabled {
		logrus.Info("Redis desabilitado, sincronização sem rate limit compartilhado")
		return ratelimit.NoopLimiter{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	logrus.WithField("addr", cfg.Redis.Addr).Info("Rate limiter compartilhado via Redis habilitado")

	return ratelimit.NewRedisLimiter(client, cfg.RateLimit.RequestsPerMinute)
}
