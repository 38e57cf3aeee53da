package live

import (
	"context"
	"log/slog"

	"streetbite/config"
	"streetbite/internal/domain/service"
	"streetbite/internal/errors"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Params holds dependencies for the live source, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// Result exposes one source as both listener and writer.
type Result struct {
	fx.Out

	Source    service.LiveFieldSource
	Publisher service.LivePublisher
}

// NewSource builds the configured live source. Without configuration the
// in-memory source is used.
func NewSource(params Params) (Result, error) {
	provider := config.LiveProviderMemory
	if params.Config.Live != nil && params.Config.Live.Provider != "" {
		provider = params.Config.Live.Provider
	}

	if provider != config.LiveProviderFirestore {
		params.Logger.Info("Using in-memory live source")
		src := NewMemorySource()

		return Result{Source: src, Publisher: src}, nil
	}

	fb := params.Config.Firebase
	var opts []option.ClientOption
	if fb.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(fb.CredentialsPath))
	}

	app, err := firebase.NewApp(params.Ctx, &firebase.Config{ProjectID: fb.ProjectID}, opts...)
	if err != nil {
		return Result{}, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Firestore(params.Ctx)
	if err != nil {
		return Result{}, errors.Wrap(err, "failed to open Firestore client")
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	params.Logger.Info("Using Firestore live source", slog.String("project_id", fb.ProjectID))
	src := NewFirestoreSource(client)

	return Result{Source: src, Publisher: src}, nil
}

// Module provides the live source FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewSource),
)
