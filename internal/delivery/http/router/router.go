// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"streetbite/config"
	"streetbite/internal/delivery/http/middleware"
	"streetbite/internal/delivery/http/router/handler"
	"streetbite/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler    *handler.SessionHandler
	ExploreHandler    *handler.ExploreHandler
	OfferHandler      *handler.OfferHandler
	FavoriteHandler   *handler.FavoriteHandler
	ContentHandler    *handler.ContentHandler
	EngagementHandler *handler.EngagementHandler
	VendorHandler     *handler.VendorHandler
	AdminHandler      *handler.AdminHandler
	LiveHandler       *handler.LiveHandler
	PageHandler       *handler.PageHandler
	TestHandler       *handler.TestHandler
	AuthMiddleware    *middleware.AuthMiddleware
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	session    *handler.SessionHandler
	explore    *handler.ExploreHandler
	offer      *handler.OfferHandler
	favorite   *handler.FavoriteHandler
	content    *handler.ContentHandler
	engagement *handler.EngagementHandler
	vendor     *handler.VendorHandler
	admin      *handler.AdminHandler
	live       *handler.LiveHandler
	page       *handler.PageHandler
	test       *handler.TestHandler
	auth       *middleware.AuthMiddleware
	config     *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		session:    params.SessionHandler,
		explore:    params.ExploreHandler,
		offer:      params.OfferHandler,
		favorite:   params.FavoriteHandler,
		content:    params.ContentHandler,
		engagement: params.EngagementHandler,
		vendor:     params.VendorHandler,
		admin:      params.AdminHandler,
		live:       params.LiveHandler,
		page:       params.PageHandler,
		test:       params.TestHandler,
		auth:       params.AuthMiddleware,
		config:     params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	sessionGroup := e.Group("/session")
	{
		sessionGroup.GET("", r.session.Current)
		sessionGroup.POST("/login", r.session.Login)
		sessionGroup.POST("/logout", r.session.Logout)
		sessionGroup.POST("/forgot-password", r.session.ForgotPassword)
		sessionGroup.POST("/reset-password", r.session.ResetPassword)
		sessionGroup.PATCH("/profile", r.session.UpdateProfile, r.auth.Authenticate)
	}

	// Public pages
	e.GET("/explore", r.explore.Explore)
	e.GET("/vendors/:id", r.explore.GetVendor)
	e.GET("/offers", r.offer.ListOffers)
	e.GET("/offers/:id/qrcode", r.offer.PromoQRCode)
	e.GET("/hot-topics", r.content.HotTopics)
	e.POST("/reports", r.content.CreateReport)

	dailyGroup := e.Group("/daily")
	{
		dailyGroup.GET("/poll", r.engagement.TodaysPoll)
		dailyGroup.POST("/poll/vote", r.engagement.Vote)
		dailyGroup.GET("/zodiac", r.engagement.Zodiac)
	}

	quizGroup := e.Group("/quiz")
	{
		quizGroup.GET("/archetype", r.engagement.QuizResult)
		quizGroup.POST("/archetype", r.engagement.SubmitQuiz)
		quizGroup.DELETE("/archetype", r.engagement.ResetQuiz)
	}

	e.GET("/gamification/leaderboard", r.engagement.Leaderboard)

	// Pages of any signed-in user. Middleware is attached per route so that
	// unknown paths still answer 404.
	signedIn := r.auth.Authenticate
	e.GET("/favorites", r.favorite.ListFavorites, signedIn)
	e.POST("/favorites/:vendorId", r.favorite.AddFavorite, signedIn)
	e.DELETE("/favorites/:vendorId", r.favorite.RemoveFavorite, signedIn)
	e.GET("/gamification/me", r.engagement.Profile, signedIn)
	e.POST("/devices", r.content.RegisterDevice, signedIn)

	vendorGroup := e.Group("/vendor")
	vendorGroup.Use(r.auth.Authenticate)
	vendorGroup.Use(r.auth.RequireRole(entity.RoleVendor))
	{
		vendorGroup.GET("/menu", r.vendor.Menu)
		vendorGroup.POST("/menu", r.vendor.CreateMenuItem)
		vendorGroup.PATCH("/menu/:id", r.vendor.UpdateMenuItem)
		vendorGroup.DELETE("/menu/:id", r.vendor.DeleteMenuItem)
		vendorGroup.PATCH("/status", r.vendor.UpdateStatus)
		vendorGroup.PATCH("/location", r.vendor.UpdateLocation)
	}

	adminGroup := e.Group("/admin")
	adminGroup.Use(r.auth.Authenticate)
	adminGroup.Use(r.auth.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/vendors", r.admin.ListVendors)
		adminGroup.PATCH("/vendors/:id/status", r.admin.ChangeVendorStatus)
		adminGroup.DELETE("/vendors/:id", r.admin.DeleteVendor)
		adminGroup.GET("/analytics", r.admin.PlatformAnalytics)
		adminGroup.GET("/hot-topics", r.admin.ListHotTopics)
		adminGroup.POST("/hot-topics", r.admin.CreateHotTopic)
		adminGroup.DELETE("/hot-topics/:id", r.admin.DeleteHotTopic)
	}

	wsGroup := e.Group("/ws")
	{
		wsGroup.GET("/live/menu-items/:id", r.live.MenuItem)
		wsGroup.GET("/live/vendors/:id", r.live.Vendor)
		wsGroup.GET("/pages/:page", r.page.Serve)
	}
}

// RegisterTestRoutes sets up development endpoints when enabled in config.
func (r *router) RegisterTestRoutes(e *echo.Echo) {
	if r.config.TestRoutes == nil || !r.config.TestRoutes.Enabled {
		return
	}

	testGroup := e.Group("/test")
	{
		testGroup.POST("/live/:collection/:id", r.test.PublishLive)
		testGroup.GET("/whoami", r.test.WhoAmI, r.auth.Authenticate)
	}
}
