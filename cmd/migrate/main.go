package main

import (
	"errors"
	"flag"
	"log"

	"github.com/golang-migrate/migrate/v4"
	"github.com/piresc/ridepay/internal/pkg/config"
	"github.com/piresc/ridepay/internal/pkg/database"
	"github.com/piresc/ridepay/internal/pkg/logger"
)

func main() {
	configPath := flag.String("config", "config/ridepay.env", "path to the env file")
	steps := flag.Int("steps", 0, "number of migrations to apply (negative rolls back)")
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		command = "up"
	}

	configs := config.InitConfig(*configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nil)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	m, err := database.NewMigrator(postgresClient.GetDB().DB)
	if err != nil {
		zapLogger.Fatal("Failed to create migrator", logger.Err(err))
	}

	switch command {
	case "up":
		if *steps != 0 {
			err = m.Steps(*steps)
		} else {
			err = m.Up()
		}
	case "down":
		if *steps != 0 {
			err = m.Steps(-abs(*steps))
		} else {
			err = m.Down()
		}
	case "version":
		version, dirty, verr := m.Version()
		if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
			zapLogger.Fatal("Failed to read schema version", logger.Err(verr))
		}
		zapLogger.Info("Schema version", logger.Int("version", int(version)), logger.Bool("dirty", dirty))
		return
	default:
		zapLogger.Fatal("Unknown command, expected up, down or version", logger.String("command", command))
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		zapLogger.Fatal("Migration failed", logger.String("command", command), logger.Err(err))
	}
	zapLogger.Info("Migration finished", logger.String("command", command))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
