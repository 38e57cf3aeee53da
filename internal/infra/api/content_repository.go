package api

import (
	"context"
	"net/http"
	"net/url"

	"streetbite/internal/domain/entity"
	"streetbite/internal/domain/repository"
)

// promotionRepository implements the repository.PromotionRepository interface.
type promotionRepository struct {
	client *Client
}

// NewPromotionRepository is the constructor for promotionRepository.
func NewPromotionRepository(client *Client) repository.PromotionRepository {
	return &promotionRepository{client: client}
}

// ListActivePromotions returns the currently published offers.
func (repo *promotionRepository) ListActivePromotions(ctx context.Context) ([]entity.Promotion, error) {
	const path = "/promotions/active"

	raw, err := repo.client.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	dtos, err := decodeList[promotionDTO](raw, "promotions")
	if err != nil {
		return nil, undecodable(path, err)
	}

	out := make([]entity.Promotion, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, d.toEntity())
	}

	return out, nil
}

// hotTopicRepository implements the repository.HotTopicRepository interface.
type hotTopicRepository struct {
	client *Client
}

// NewHotTopicRepository is the constructor for hotTopicRepository.
func NewHotTopicRepository(client *Client) repository.HotTopicRepository {
	return &hotTopicRepository{client: client}
}

// ListHotTopics returns all announcements.
func (repo *hotTopicRepository) ListHotTopics(ctx context.Context) ([]entity.HotTopic, error) {
	const path = "/hot-topics"

	raw, err := repo.client.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	dtos, err := decodeList[hotTopicDTO](raw, "hotTopics")
	if err != nil {
		return nil, undecodable(path, err)
	}

	out := make([]entity.HotTopic, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, d.toEntity())
	}

	return out, nil
}

// CreateHotTopic publishes an announcement.
func (repo *hotTopicRepository) CreateHotTopic(ctx context.Context, topic *entity.HotTopic) (*entity.HotTopic, error) {
	const path = "/hot-topics"

	req := hotTopicRequest{
		Title:    topic.Title,
		Content:  topic.Content,
		ImageURL: topic.ImageURL,
		IsActive: topic.IsActive,
	}

	raw, err := repo.client.do(ctx, http.MethodPost, path, nil, req)
	if err != nil {
		return nil, err
	}

	dto, err := decodeItem[hotTopicDTO](raw, "hotTopic")
	if err != nil {
		return nil, undecodable(path, err)
	}
	created := dto.toEntity()

	return &created, nil
}

// DeleteHotTopic removes an announcement.
func (repo *hotTopicRepository) DeleteHotTopic(ctx context.Context, id entity.ID) error {
	_, err := repo.client.do(ctx, http.MethodDelete, "/hot-topics/"+url.PathEscape(id.String()), nil, nil)

	return err
}

// reportRepository implements the repository.ReportRepository interface.
type reportRepository struct {
	client *Client
}

// NewReportRepository is the constructor for reportRepository.
func NewReportRepository(client *Client) repository.ReportRepository {
	return &reportRepository{client: client}
}

// CreateReport files a report. An empty success body yields an empty id.
func (repo *reportRepository) CreateReport(ctx context.Context, report *entity.Report) (entity.ID, error) {
	const path = "/reports"

	raw, err := repo.client.do(ctx, http.MethodPost, path, nil, report)
	if err != nil {
		return "", err
	}
	if len(raw) == 0 {
		return "", nil
	}

	dto, err := decodeItem[reportDTO](raw, "report")
	if err != nil {
		return "", undecodable(path, err)
	}

	return dto.ID, nil
}

// analyticsRepository implements the repository.AnalyticsRepository interface.
type analyticsRepository struct {
	client *Client
}

// NewAnalyticsRepository is the constructor for analyticsRepository.
func NewAnalyticsRepository(client *Client) repository.AnalyticsRepository {
	return &analyticsRepository{client: client}
}

// PlatformAnalytics returns the admin dashboard totals.
func (repo *analyticsRepository) PlatformAnalytics(ctx context.Context) (*entity.PlatformAnalytics, error) {
	const path = "/analytics/platform"

	raw, err := repo.client.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	out, err := decodeItem[entity.PlatformAnalytics](raw, "analytics")
	if err != nil {
		return nil, undecodable(path, err)
	}

	return out, nil
}

// LogEvent records one UI interaction.
func (repo *analyticsRepository) LogEvent(ctx context.Context, event *entity.UIEvent) error {
	_, err := repo.client.do(ctx, http.MethodPost, "/analytics/event", nil, event)

	return err
}

// gamificationRepository implements the repository.GamificationRepository interface.
type gamificationRepository struct {
	client *Client
}

// NewGamificationRepository is the constructor for gamificationRepository.
func NewGamificationRepository(client *Client) repository.GamificationRepository {
	return &gamificationRepository{client: client}
}

// Leaderboard returns the raw standings; ranking happens locally.
func (repo *gamificationRepository) Leaderboard(ctx context.Context) ([]entity.LeaderboardEntry, error) {
	const path = "/gamification/leaderboard"

	raw, err := repo.client.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	dtos, err := decodeList[leaderboardDTO](raw, "leaderboard")
	if err != nil {
		return nil, undecodable(path, err)
	}

	out := make([]entity.LeaderboardEntry, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, d.toEntity())
	}

	return out, nil
}

// Stats returns the signed-in user's raw progress.
func (repo *gamificationRepository) Stats(ctx context.Context) (*entity.GamificationStats, error) {
	const path = "/gamification/stats"

	raw, err := repo.client.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	dto, err := decodeItem[statsDTO](raw, "stats")
	if err != nil {
		return nil, undecodable(path, err)
	}
	stats := dto.toEntity()

	return &stats, nil
}

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	client *Client
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(client *Client) repository.NotificationRepository {
	return &notificationRepository{client: client}
}

// RegisterDeviceToken registers the push token of this device.
func (repo *notificationRepository) RegisterDeviceToken(ctx context.Context, token, platform string) error {
	_, err := repo.client.do(ctx, http.MethodPost, "/notifications/token", nil,
		map[string]string{"token": token, "platform": platform})

	return err
}
