package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/AlexanderZaramenskikh/morskoi-boi/api"
	"github.com/AlexanderZaramenskikh/morskoi-boi/db"
	"github.com/AlexanderZaramenskikh/morskoi-boi/db/sqlc"
	"github.com/AlexanderZaramenskikh/morskoi-boi/internal/config"
	"github.com/AlexanderZaramenskikh/morskoi-boi/internal/logger"
	mb "github.com/AlexanderZaramenskikh/morskoi-boi/models/battleship"
	mc "github.com/AlexanderZaramenskikh/morskoi-boi/models/connection"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	opts := []api.Option{
		api.WithPort(cfg.Port),
		api.WithStage(cfg.Stage),
		api.WithLogger(log),
	}

	if cfg.PsqlUrl != "" {
		conn := db.MustConnectToDb(cfg.PsqlUrl, cfg.MigrationsDir, log)
		defer conn.Close()
		dbManager := sqlc.NewDbManager(sqlc.New(conn))
		opts = append(opts, api.WithAnalytics(dbManager.Analytics))
	} else {
		log.Info("PSQL_URL not set; analytics disabled")
	}

	gameManager := mb.NewBattleshipGameManager(cfg.Seed, log)
	sessionManager := mc.NewBattleshipSessionManager(log)
	server := api.NewServer(gameManager, sessionManager, opts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Errorw("server failed", "err", err)
		os.Exit(1)
	}
}
