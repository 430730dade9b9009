package cmd

import (
	"fmt"
	"os"

	"github.com/bnema/iterrsa/internal/adapters/render/view"
	"github.com/bnema/iterrsa/internal/adapters/repo/builtin"
	"github.com/bnema/iterrsa/internal/adapters/repo/chain"
	tomlrepo "github.com/bnema/iterrsa/internal/adapters/repo/toml"
	"github.com/bnema/iterrsa/internal/application"
	"github.com/bnema/iterrsa/internal/ports"
	"github.com/spf13/viper"
)

const (
	defaultAlphaKey   = "defaults.alpha"
	defaultEpsilonKey = "defaults.epsilon"
	defaultPrecision  = 4
)

type app struct {
	repo       ports.ModelRepository
	service    *application.Service
	defaults   application.ParamOverrides
	modelsPath string
	render     view.RenderOptions
}

func wireApp() (*app, error) {
	cfg := viper.New()
	if path := envOrDefault("RSA_MODELS_PATH", ""); path != "" {
		cfg.Set(tomlrepo.ModelsPathKey, path)
	}

	store, err := tomlrepo.NewRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire model repository: %w", err)
	}

	repo, err := chain.NewRepository(store, builtin.NewRepository())
	if err != nil {
		return nil, fmt.Errorf("wire model repository chain: %w", err)
	}

	return &app{
		repo:    repo,
		service: application.NewService(repo, nil),
		defaults: application.ParamOverrides{
			Alpha:   cfg.GetFloat64(defaultAlphaKey),
			Epsilon: cfg.GetFloat64(defaultEpsilonKey),
		},
		modelsPath: store.Path(),
		render:     view.RenderOptions{Format: view.FormatText, Precision: defaultPrecision},
	}, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
