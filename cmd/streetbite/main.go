package main

import (
	"context"
	"log/slog"
	"os"

	"streetbite/config"
	"streetbite/internal/delivery"
	"streetbite/internal/delivery/http"
	"streetbite/internal/delivery/http/middleware"
	"streetbite/internal/delivery/http/router/handler"
	"streetbite/internal/domain/entity"
	"streetbite/internal/infra/api"
	"streetbite/internal/infra/auth"
	"streetbite/internal/infra/live"
	logs "streetbite/internal/infra/log"
	"streetbite/internal/infra/persistence"
	"streetbite/internal/infra/pubsub"
	"streetbite/internal/infra/qrcode"
	"streetbite/internal/session"
	"streetbite/internal/usecase"
	"streetbite/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Store      *session.Store
	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectSession(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		api.Module,
		persistence.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTInspector,
			qrcode.NewQRCodeService,
		),
		live.Module,
		pubsub.Module,
	)
}

// injectSession exposes the one session store under the interfaces of its
// consumers.
func injectSession() fx.Option {
	return fx.Options(
		fx.Provide(
			session.NewStore,
			func(s *session.Store) usecase.SessionCell { return s },
			func(s *session.Store) api.Credentials { return s },
		),
	)
}

func injectUsecase() fx.Option {
	return impl.Module
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewExploreHandler,
			handler.NewOfferHandler,
			handler.NewFavoriteHandler,
			handler.NewContentHandler,
			handler.NewEngagementHandler,
			handler.NewVendorHandler,
			handler.NewAdminHandler,
			handler.NewLiveHandler,
			handler.NewPageHandler,
			handler.NewTestHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	unsubscribe := params.Store.Subscribe(func(sess entity.Session) {
		if sess.IsZero() {
			params.Logger.Info("Signed out")

			return
		}
		params.Logger.Info("Signed in",
			slog.String("user_id", sess.User.ID.String()),
			slog.String("role", string(sess.User.Role)),
		)
	})

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// A stored session that cannot be read is dropped, never fatal.
			if err := params.Store.Restore(ctx); err != nil {
				params.Logger.Warn("Failed to restore session", slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(context.Context) error {
			unsubscribe()

			return nil
		},
	})

	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				params.Logger.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
