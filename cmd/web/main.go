package main

import (
	"fmt"
	"net"
	"os"

	"github.com/fin-tools/calc-atlas/pkg/config"
	"github.com/fin-tools/calc-atlas/pkg/server"
	"github.com/fin-tools/calc-atlas/pkg/services/calc"
	"github.com/fin-tools/calc-atlas/pkg/store/cache"
	"github.com/fin-tools/calc-atlas/pkg/store/history"
	"github.com/fin-tools/calc-atlas/pkg/store/sqlite"
	sqlitehistory "github.com/fin-tools/calc-atlas/pkg/store/sqlite/history"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Calc Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the configuration file (defaults apply when omitted)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("No .env file loaded: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg.Engine.Apply()

	var historyStore history.Store
	if cfg.History.Enabled {
		db, err := sqlite.NewDB(sqlite.Settings{DbPath: cfg.History.Path})
		if err != nil {
			return fmt.Errorf("failed to open history database: %w", err)
		}
		historyStore, err = sqlitehistory.NewStore(db)
		if err != nil {
			return fmt.Errorf("failed to create history store: %w", err)
		}
		logger.Info().Str("path", cfg.History.Path).Msg("calculation history enabled")
	}

	var cacheRepo cache.Repository
	if cfg.Cache.RedisAddr != "" {
		cacheRepo = cache.NewRedis(cfg.Cache.RedisAddr)
		logger.Info().Str("addr", cfg.Cache.RedisAddr).Msg("redis result cache enabled")
	} else {
		cacheRepo = cache.NewMemory()
	}

	registry := calc.Default()
	logger.Info().Strs("calculators", registry.ListCalculators()).Msg("registered calculators")

	if _, _, err := net.SplitHostPort(cfg.Addr); err != nil {
		return fmt.Errorf("invalid server address %q: %w", cfg.Addr, err)
	}

	webAPI := server.NewWebAPI(logger, server.Config{
		Addr:            cfg.Addr,
		ShutdownTimeout: cfg.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Registry: registry,
			History:  historyStore,
			Cache:    cacheRepo,
		},
	})

	return webAPI.Start()
}
