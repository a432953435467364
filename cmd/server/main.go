package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/subosito/gotenv"
	"go.uber.org/zap"

	"github.com/devmajed/hr-admin/internal/config"
	"github.com/devmajed/hr-admin/internal/repository"
	"github.com/devmajed/hr-admin/internal/server"
	"github.com/devmajed/hr-admin/migrations"
	"github.com/devmajed/hr-admin/pkg/database"
	"github.com/devmajed/hr-admin/pkg/utils"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to configuration file")
	flag.Parse()

	gotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := utils.NewLogger(utils.LoggerConfig{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting HR record store",
		zap.Int("port", cfg.Server.Port),
		zap.String("db", cfg.Database.Path))

	db, err := database.New(database.Config{
		Path:            cfg.Database.Path,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	migrator := database.NewMigrator(db, logger)
	if err := migrator.Run(migrations.FS); err != nil {
		logger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	stores := server.Stores{
		Employees:     repository.NewEmployeeRepository(db.DB, logger),
		Vehicles:      repository.NewVehicleRepository(db.DB, logger),
		MedicalClaims: repository.NewMedicalClaimRepository(db.DB, logger),
		VehicleClaims: repository.NewVehicleClaimRepository(db.DB, logger),
		Providers:     repository.NewProviderRepository(db.DB, logger),
		Flights:       repository.NewFlightRepository(db.DB, logger),
		Dashboard:     repository.NewDashboardRepository(db.DB, logger),
	}

	srv := server.New(server.Config{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}, stores, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Start(ctx); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}

	logger.Info("Server exited successfully")
}
