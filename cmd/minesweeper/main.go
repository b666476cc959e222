package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-cli/internal/config"
	"github.com/vancomm/minesweeper-cli/internal/console"
	"github.com/vancomm/minesweeper-cli/internal/mines"
)

var log = logrus.New()

func createRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(
			new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
		))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

func run(ctx context.Context, cfg *config.Config) error {
	if err := setupLogging(cfg); err != nil {
		return err
	}
	mines.Log = log

	log.WithFields(cfg.Fields()).Debug("config")

	session := console.NewSession(os.Stdin, os.Stdout, console.Options{
		Width:  cfg.Width,
		Height: cfg.Height,
		Mines:  cfg.Mines,
		Rand:   createRand(cfg.Seed),
		Logger: log,
	})
	return session.Run(ctx)
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Parse(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	err = run(mainCtx, cfg)
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		log.Info("interrupted")
	default:
		log.WithError(err).Error("exit reason")
		stop()
		os.Exit(1)
	}
}
