package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/polkiloo/clientportal/internal/config"
	"go.uber.org/fx"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Module wires slog logger for dependency injection.
var Module = fx.Provide(newLogger)

type loggerParams struct {
	fx.In

	Config    *config.Config
	Lifecycle fx.Lifecycle
}

func newLogger(p loggerParams) *slog.Logger {
	var out io.Writer = os.Stdout
	if p.Config.LogFile != "" {
		rotator := &lumberjack.Logger{
			Filename:   p.Config.LogFile,
			MaxSize:    100,
			MaxBackups: 5,
			MaxAge:     30,
			Compress:   true,
		}
		out = io.MultiWriter(os.Stdout, rotator)
		p.Lifecycle.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return rotator.Close()
			},
		})
	}
	return New(p.Config.LogLevel, out)
}
