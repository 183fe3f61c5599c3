package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/roi-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/roi-analytics-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/roi-analytics-api/infrastructure/integrator/googleads/googleclient"
	"github.com/vfg2006/roi-analytics-api/infrastructure/integrator/metaads"
	"github.com/vfg2006/roi-analytics-api/infrastructure/integrator/metaads/metaclient"
	"github.com/vfg2006/roi-analytics-api/infrastructure/repository"
	"github.com/vfg2006/roi-analytics-api/internal/api"
	"github.com/vfg2006/roi-analytics-api/internal/config"
	"github.com/vfg2006/roi-analytics-api/internal/scheduler"
	"github.com/vfg2006/roi-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/roi-analytics-api/internal/usecases/ingesting"
	"github.com/vfg2006/roi-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/roi-analytics-api/internal/usecases/syncing"
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

	userRepo := repository.NewUserRepository(pgConn)
	accountRepo := repository.NewAccountRepository(pgConn)
	spendRepo := repository.NewSpendRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	googleClient := googleclient.NewClient(cfg)
	googleIntegrator := googleads.New(cfg, googleClient, spendRepo, accountRepo)

	metaClient := metaclient.NewClient(cfg)
	metaIntegrator := metaads.New(cfg, metaClient, spendRepo, accountRepo)

	reportService := reporting.NewService(spendRepo, saleRepo)
	ingestService := ingesting.NewService(spendRepo, saleRepo)
	syncService := syncing.NewService(accountRepo, cfg, googleIntegrator, metaIntegrator)

	// Inicializa o agendador de sincronização de gastos
	spendSyncService := scheduler.NewSpendSyncService(syncService, cfg)

	if err := spendSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de gastos")
	} else {
		logrus.Info("Agendador de sincronização de gastos iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reportService,
		ingestService,
		syncService,
		authenticator,
		spendSyncService,
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
