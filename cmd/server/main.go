package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/chronoplane/chronoplane-backend/internal/adapters/repository/postgres"
	"github.com/chronoplane/chronoplane-backend/internal/core/hierarchy"
	"github.com/chronoplane/chronoplane-backend/internal/core/timesheet"
	"github.com/chronoplane/chronoplane-backend/internal/platform/config"
	pg "github.com/chronoplane/chronoplane-backend/internal/platform/db/postgres"
	"github.com/chronoplane/chronoplane-backend/internal/platform/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	dbPool, err := pg.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to initialize database pool: %v", err)
	}
	defer dbPool.Close()

	txManager := pg.NewTransactionManager(dbPool)
	userRepo := postgres.NewUserRepository(dbPool)
	ledgerRepo := postgres.NewLedgerRepository(dbPool)

	orgSvc := hierarchy.NewService(userRepo, txManager)
	tsSvc := timesheet.NewService(userRepo, ledgerRepo, nil, txManager, timesheet.TargetDefaults{
		DailyTarget: cfg.Reporting.DefaultDailyTarget,
		WorkDays:    cfg.Reporting.DefaultWorkDays,
	})

	grpcServer := server.New(cfg.Server.ListenAddr, orgSvc, tsSvc)

	log.Printf("gRPC server listening on %s", cfg.Server.ListenAddr)

	if err := grpcServer.Run(ctx); err != nil {
		log.Fatalf("server stopped with error: %v", err)
	}
}
