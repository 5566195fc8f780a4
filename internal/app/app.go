package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/vk/rainflow/internal/config"
	"github.com/vk/rainflow/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	inR     io.Reader
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	loaders map[string]config.Loader
}

// NewApp is the constructor for the main application. Results go to outW and
// logs to logW, each App owning its own logger.
func NewApp(inR io.Reader, outW, logW io.Writer, appConfig *Config) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		inR:     inR,
		outW:    outW,
		logger:  logger,
		config:  appConfig,
		loaders: defaultLoaders(),
	}
}

// Logger returns the application's logger. This is primarily for testing.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

func (a *App) context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
