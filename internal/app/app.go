package app

import (
	"fmt"

	"github.com/andy/contactbook/internal/assistant"
	"github.com/andy/contactbook/internal/config"
	"github.com/andy/contactbook/internal/logging"
	"github.com/andy/contactbook/internal/repository"
	"github.com/andy/contactbook/internal/service"
	"go.uber.org/zap"
)

// App is the dependency injection container for all application components
type App struct {
	Config *config.Config
	Logger *zap.Logger

	// In-memory contact store, owned by this App for the life of the process
	Directory *repository.Directory

	Contacts  service.ContactService
	Assistant *assistant.Assistant
}

// Options controls how New locates config and sets up logging
type Options struct {
	ConfigPath string // Defaults to config.DefaultConfigPath()
	Verbose    bool   // Force debug logging
}

// New loads config, builds the logger and wires the rest of the app
func New(opts Options) (*App, error) {
	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultConfigPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(cfg.Log, opts.Verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	logger.Debug("config loaded",
		zap.String("path", path),
		zap.Int("window_days", cfg.Birthdays.WindowDays))

	return NewWithConfig(cfg, logger), nil
}

// NewWithConfig creates an App with a provided config and logger (useful for testing)
func NewWithConfig(cfg *config.Config, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}

	directory := repository.NewDirectory(repository.WithWindow(cfg.Birthdays.WindowDays))
	contacts := service.NewContactService(directory, nil)

	return &App{
		Config:    cfg,
		Logger:    logger,
		Directory: directory,
		Contacts:  contacts,
		Assistant: assistant.New(contacts, cfg.Assistant, logger.Named("assistant")),
	}
}

// Close flushes buffered logs
func (a *App) Close() error {
	if a.Logger != nil {
		// Sync on a terminal stderr returns EINVAL on some platforms
		_ = a.Logger.Sync()
	}
	return nil
}
