package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-insights-engine/infrastructure/database/postgres"
	"github.com/vfg2006/ads-insights-engine/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-insights-engine/infrastructure/repository"
	"github.com/vfg2006/ads-insights-engine/internal/api"
	"github.com/vfg2006/ads-insights-engine/internal/config"
	"github.com/vfg2006/ads-insights-engine/internal/syncer"
	"github.com/vfg2006/ads-insights-engine/internal/usecases/aggregating"
	"github.com/vfg2006/ads-insights-engine/internal/usecases/insighting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
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

	dailyRepo := repository.NewDailyMetricRepository(pgConn)
	weeklyRepo := repository.NewWeeklyMetricRepository(pgConn)
	monthlyRepo := repository.NewMonthlyMetricRepository(pgConn)
	attemptRepo := repository.NewSyncAttemptRepository(pgConn)

	metaClient := metaclient.NewClient(cfg)

	aggregationService := aggregating.NewService(dailyRepo, weeklyRepo, monthlyRepo, attemptRepo)
	insightService := insighting.NewService(dailyRepo, weeklyRepo, monthlyRepo, aggregationService)

	syncService := syncer.NewDailySyncService(metaClient, dailyRepo, attemptRepo, cfg)
	backfillOrchestrator := syncer.NewBackfillOrchestrator(syncService, dailyRepo, attemptRepo, aggregationService, cfg)

	// Inicializa o agendador da sincronização diária
	syncScheduler := syncer.NewDailySyncScheduler(syncService, cfg)
	if err := syncScheduler.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização diária")
	} else {
		logrus.Info("Agendador de sincronização diária iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		insightService,
		aggregationService,
		syncService,
		backfillOrchestrator,
		syncScheduler,
		attemptRepo,
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

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
