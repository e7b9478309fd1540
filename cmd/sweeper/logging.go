package main

import (
	"io"
	"log/slog"

	"github.com/lmittmann/tint"
	"github.com/vancomm/sweeper/internal/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

func setupLogging() (*slog.Logger, io.Closer) {
	var (
		w      io.Writer = io.Discard
		closer io.Closer = io.NopCloser(nil)
	)
	if path := config.LogFile(); path != "" {
		file := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    config.LogMaxSize(),
			MaxBackups: 3,
		}
		w, closer = file, file
	}

	var handler slog.Handler = slog.NewJSONHandler(w, nil)
	if config.Development() {
		handler = tint.NewHandler(w, &tint.Options{Level: slog.LevelDebug})
	}
	return slog.New(handler), closer
}
