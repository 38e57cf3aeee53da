package impl

import "go.uber.org/fx"

// Module provides every use case implementation.
var Module = fx.Options(
	fx.Provide(
		NewSessionService,
		NewExploreService,
		NewOfferService,
		NewFavoriteService,
		NewHotTopicService,
		NewVendorDashboardService,
		NewAdminService,
		NewGamificationService,
		NewDailyService,
		NewQuizService,
		NewReportService,
		NewDeviceService,
		NewLiveService,
		NewPageService,
	),
)
