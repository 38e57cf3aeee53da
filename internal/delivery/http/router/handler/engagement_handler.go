package handler

import (
	"net/http"

	"streetbite/internal/delivery/http/response"
	"streetbite/internal/domain/entity"
	"streetbite/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EngagementHandlerParams holds dependencies for EngagementHandler, injected by Fx.
type EngagementHandlerParams struct {
	fx.In

	DailyUC        usecase.DailyUsecase
	QuizUC         usecase.QuizUsecase
	GamificationUC usecase.GamificationUsecase
}

// EngagementHandler serves the daily widgets, the quiz and the XP pages.
type EngagementHandler struct {
	dailyUC        usecase.DailyUsecase
	quizUC         usecase.QuizUsecase
	gamificationUC usecase.GamificationUsecase
}

// NewEngagementHandler is the constructor for EngagementHandler
func NewEngagementHandler(params EngagementHandlerParams) *EngagementHandler {
	return &EngagementHandler{
		dailyUC:        params.DailyUC,
		quizUC:         params.QuizUC,
		gamificationUC: params.GamificationUC,
	}
}

// VoteRequest carries the 0-based option index.
type VoteRequest struct {
	Option *int `json:"option" validate:"required,gte=0"`
}

// ZodiacRequest carries a birth day and month.
type ZodiacRequest struct {
	Day   int `query:"day" validate:"required,gte=1,lte=31"`
	Month int `query:"month" validate:"required,gte=1,lte=12"`
}

// QuizRequest carries one archetype per answered question.
type QuizRequest struct {
	Answers []entity.Archetype `json:"answers" validate:"required,dive,oneof=spicy sweet cheesy"`
}

// TodaysPoll handles GET /daily/poll.
func (h *EngagementHandler) TodaysPoll(c echo.Context) error {
	poll, err := h.dailyUC.TodaysPoll(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, poll)
}

// Vote handles POST /daily/poll/vote.
func (h *EngagementHandler) Vote(c echo.Context) error {
	var req VoteRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	poll, err := h.dailyUC.Vote(c.Request().Context(), *req.Option)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, poll, "Vote recorded")
}

// Zodiac handles GET /daily/zodiac?day=&month=.
func (h *EngagementHandler) Zodiac(c echo.Context) error {
	var req ZodiacRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	sign, err := h.dailyUC.Zodiac(c.Request().Context(), req.Day, req.Month)
	if err != nil {
		return err
	}

	return response.OK(c, sign)
}

// QuizResult handles GET /quiz/archetype.
func (h *EngagementHandler) QuizResult(c echo.Context) error {
	result, err := h.quizUC.Result(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, result)
}

// SubmitQuiz handles POST /quiz/archetype.
func (h *EngagementHandler) SubmitQuiz(c echo.Context) error {
	var req QuizRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	result, err := h.quizUC.Submit(c.Request().Context(), req.Answers)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, result, "Quiz scored")
}

// ResetQuiz handles DELETE /quiz/archetype.
func (h *EngagementHandler) ResetQuiz(c echo.Context) error {
	if err := h.quizUC.Reset(c.Request().Context()); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Quiz reset")
}

// Leaderboard handles GET /gamification/leaderboard.
func (h *EngagementHandler) Leaderboard(c echo.Context) error {
	entries, err := h.gamificationUC.Leaderboard(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, entries)
}

// Profile handles GET /gamification/me.
func (h *EngagementHandler) Profile(c echo.Context) error {
	profile, err := h.gamificationUC.Profile(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, profile)
}
