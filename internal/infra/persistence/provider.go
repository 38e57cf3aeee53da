// Package persistence selects the device-local state store.
package persistence

import (
	"context"
	"log/slog"

	"streetbite/config"
	"streetbite/internal/domain/repository"
	"streetbite/internal/infra/persistence/memory"
	"streetbite/internal/infra/persistence/redis"

	"go.uber.org/fx"
)

// Params holds dependencies for the local state store, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewLocalStateRepository uses Redis when configured and memory otherwise.
func NewLocalStateRepository(params Params) (repository.LocalStateRepository, error) {
	cfg := params.Config.Redis
	if cfg == nil || (cfg.URL == "" && cfg.Address == "") {
		params.Logger.Info("Redis not configured, keeping local state in memory")

		return memory.NewLocalStateRepository(), nil
	}

	client, err := redis.NewClient(params.Ctx, cfg, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return redis.NewLocalStateRepository(client, params.Logger), nil
}

// Module provides the local state FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewLocalStateRepository),
)
