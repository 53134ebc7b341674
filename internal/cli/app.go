// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/keymaster/internal/cli/styles"
	"github.com/bnema/keymaster/internal/domain/build"
	"github.com/bnema/keymaster/internal/infrastructure/config"
	"github.com/bnema/keymaster/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp loads the configuration at configPath (the XDG location when empty)
// and sets up logging. Logs go to the state directory so that interactive
// commands keep the terminal to themselves.
func NewApp(configPath string) (*App, error) {
	mgr, err := config.NewManager(context.Background(), configPath)
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logger, logCleanup := newLogger(cfg)
	ctx := logging.WithContext(context.Background(), logger)

	mgr.SetContext(ctx)

	logger.Debug().Str("config", mgr.GetConfigFile()).Int("bindings", len(cfg.Bindings)).Msg("config loaded")

	return &App{
		Config:     cfg,
		Manager:    mgr,
		Theme:      styles.NewTheme(),
		ctx:        ctx,
		logCleanup: logCleanup,
	}, nil
}

func newLogger(cfg *config.Config) (zerolog.Logger, func()) {
	logCfg := logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	}

	stateDir, err := config.GetStateDir()
	if err == nil {
		logger, cleanup, fileErr := logging.NewWithFile(logCfg, stateDir)
		if fileErr == nil {
			return logger, cleanup
		}
	}

	// No writable state dir: keep stderr quiet unless something is wrong.
	logCfg.Level = zerolog.WarnLevel
	logCfg.TimeFormat = time.Kitchen
	return logging.New(logCfg), func() {}
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
