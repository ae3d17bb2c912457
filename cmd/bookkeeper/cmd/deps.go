package cmd

import (
	"context"
	"fmt"

	portssvc "github.com/SscSPs/bookkeeper/internal/core/ports/services"
	"github.com/SscSPs/bookkeeper/internal/core/services"
	"github.com/SscSPs/bookkeeper/internal/platform/config"
	"github.com/SscSPs/bookkeeper/internal/repositories"
)

// app bundles what a command needs after configuration is loaded.
type app struct {
	cfg      *config.Config
	services *portssvc.ServiceContainer
	close    func()
}

func (o *globalOptions) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.cfgFile != "" {
		cfg, err = config.LoadConfig(o.cfgFile)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		return nil, fmt.Errorf("設定の読み込みに失敗しました: %w", err)
	}
	return cfg, nil
}

// buildApp loads configuration, opens storage and wires the services.
// The caller must invoke app.close.
func (o *globalOptions) buildApp(ctx context.Context) (*app, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	setCLILogger(o.cliLogLevel(cfg))

	repos, cleanup, err := repositories.NewRepositoryProvider(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("ストレージを開けませんでした: %w", err)
	}

	return &app{
		cfg:      cfg,
		services: services.NewServiceContainer(repos),
		close:    cleanup,
	}, nil
}
