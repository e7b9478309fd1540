package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/sweeper/internal/mines"
	"github.com/vancomm/sweeper/internal/tui"
)

func main() {
	opts, err := parseOptions(os.Args[1:], os.Stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(2)
	}

	logger, closer := setupLogging()
	defer closer.Close()
	mines.Log = logger

	if err := run(logger, opts); err != nil {
		logger.Error("sweeper exited", slog.Any("error", err))
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		closer.Close()
		os.Exit(1)
	}
}

func run(logger *slog.Logger, opts *options) error {
	params, err := opts.params()
	if err != nil {
		return err
	}

	board, err := mines.NewBoard(params, mines.NewRand())
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("unable to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("unable to init screen: %w", err)
	}
	screen.HideCursor()

	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	logger.Info("starting game", slog.String("params", params.Seed()))

	game := tui.New(logger, board, screen)
	events := make(chan tcell.Event)
	quit := make(chan struct{})

	g, gCtx := errgroup.WithContext(mainCtx)
	g.Go(func() error {
		screen.ChannelEvents(events, quit)
		return nil
	})
	g.Go(func() error {
		defer close(quit)
		return game.Run(gCtx, events)
	})
	err = g.Wait()
	screen.Fini()

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	fmt.Println(game.Result())
	fmt.Print(board)
	return nil
}
