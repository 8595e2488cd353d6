package app

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pachcadev/pachca-client/internal/config"
	"github.com/pachcadev/pachca-client/internal/logger"
	"github.com/pachcadev/pachca-client/pkg/pachca"
)

// ErrNotConfigured is returned when no access token has been saved yet.
var ErrNotConfigured = errors.New("no access token configured, run 'pachca-client configure' first")

type App struct {
	Config  *config.Configuration
	Manager *config.Manager
	Logger  logger.Logger
	SDK     SDK
}

// NewApp loads the configuration and builds an authenticated API client.
// Commands that only touch local state (such as configure) use
// NewAppWithoutSDK instead.
func NewApp(cmd *cobra.Command) (*App, error) {
	app, err := NewAppWithoutSDK(cmd)
	if err != nil {
		return nil, err
	}
	if !app.Config.IsConfigured() {
		return nil, ErrNotConfigured
	}

	client, err := pachca.NewClient(pachca.ClientConfig{
		AccessToken: app.Config.AccessToken,
		APIDelay:    app.Config.APIDelay(),
		Timeout:     app.Config.Timeout(),
		Logger:      app.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing pachca client: %w", err)
	}
	app.SDK = client

	return app, nil
}

// NewAppWithoutSDK loads configuration and logging but does not require
// an access token.
func NewAppWithoutSDK(cmd *cobra.Command) (*App, error) {
	manager, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("locating configuration: %w", err)
	}
	cfg, err := manager.LoadOrCreate()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	// The flag overrides the persisted setting for this invocation.
	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		cfg.Debug = true
	}

	return &App{
		Config:  cfg,
		Manager: manager,
		Logger:  logger.NewDefaultLogger(cfg.Debug),
	}, nil
}
