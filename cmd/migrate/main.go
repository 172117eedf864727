package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/infrastructure/config"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/infrastructure/logger"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/infrastructure/migration"
)

func main() {
	configPath := flag.String("config", "", "directory containing config.toml")
	dir := flag.String("dir", "migrations", "migrations directory")
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		command = "up"
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{Level: cfg.Log.Level, Format: "console", Output: "stderr"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	runner := migration.NewRunner(*dir, cfg.Database.MigrateDSN(), log)

	switch command {
	case "up":
		err = runner.Up()
	case "down":
		err = runner.Down()
	case "version":
		var version uint
		var dirty bool
		version, dirty, err = runner.Version()
		if err == nil {
			log.Info("migration status", zap.Uint("version", version), zap.Bool("dirty", dirty))
		}
	default:
		err = fmt.Errorf("unknown command %q (want up, down or version)", command)
	}

	if err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}
}
