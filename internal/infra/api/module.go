package api

import "go.uber.org/fx"

// Module provides the backend client and every remote repository.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewClient,
		NewVendorRepository,
		NewFavoriteRepository,
		NewMenuRepository,
		NewPromotionRepository,
		NewHotTopicRepository,
		NewReportRepository,
		NewAnalyticsRepository,
		NewGamificationRepository,
		NewNotificationRepository,
		NewAuthRepository,
		NewUserRepository,
	),
)
