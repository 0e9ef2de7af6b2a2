package config

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// SetupLogger builds the process logger for env and installs it as the slog default.
// When logFile is set, output is duplicated into a size-rotated file.
func SetupLogger(env, logFile string) *slog.Logger {
	var out io.Writer = os.Stdout
	if logFile != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    20, // megabytes
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		})
	}

	var lgr *slog.Logger
	switch env {
	case EnvDev:
		lgr = slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case EnvProd:
		lgr = slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		lgr = slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	slog.SetDefault(lgr)
	return lgr
}
