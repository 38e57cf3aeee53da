package repository

import (
	"context"

	"streetbite/internal/domain/entity"
)

// PromotionRepository reads published offers.
type PromotionRepository interface {
	ListActivePromotions(ctx context.Context) ([]entity.Promotion, error)
}

// HotTopicRepository manages community announcements.
type HotTopicRepository interface {
	ListHotTopics(ctx context.Context) ([]entity.HotTopic, error)
	CreateHotTopic(ctx context.Context, topic *entity.HotTopic) (*entity.HotTopic, error)
	DeleteHotTopic(ctx context.Context, id entity.ID) error
}

// ReportRepository files user reports.
type ReportRepository interface {
	// CreateReport returns the id assigned by the backend.
	CreateReport(ctx context.Context, report *entity.Report) (entity.ID, error)
}

// AnalyticsRepository reads platform totals and records UI events.
type AnalyticsRepository interface {
	PlatformAnalytics(ctx context.Context) (*entity.PlatformAnalytics, error)
	LogEvent(ctx context.Context, event *entity.UIEvent) error
}

// GamificationRepository reads XP standings.
type GamificationRepository interface {
	Leaderboard(ctx context.Context) ([]entity.LeaderboardEntry, error)
	Stats(ctx context.Context) (*entity.GamificationStats, error)
}

// NotificationRepository registers the device for push delivery.
type NotificationRepository interface {
	RegisterDeviceToken(ctx context.Context, token, platform string) error
}
