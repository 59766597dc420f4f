package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/AlexanderZaramenskikh/morskoi-boi/internal/config"
	"github.com/AlexanderZaramenskikh/morskoi-boi/internal/console"
	"github.com/AlexanderZaramenskikh/morskoi-boi/internal/logger"
	mb "github.com/AlexanderZaramenskikh/morskoi-boi/models/battleship"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// the terminal belongs to the board, so logs only go to a file
	log := zap.NewNop().Sugar()
	if cfg.LogFile != "" {
		log, err = logger.New(cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	defer log.Sync()

	printer := console.NewPrinter(os.Stdout)
	printer.Greet()

	rng := mb.NewRandomizer(cfg.Seed)
	gen := mb.NewBoardGenerator(rng, mb.WithGeneratorLogger(log))
	game := mb.NewComputerGame(gen, rng, console.NewReader(os.Stdin, os.Stdout),
		mb.WithObserver(printer),
		mb.WithGameLogger(log),
	)

	if _, err := game.Run(context.Background()); err != nil {
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(os.Stdout)
			return
		}
		log.Errorw("game stopped", "err", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
