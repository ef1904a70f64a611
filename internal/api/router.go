package api

import (
	"github.com/gin-gonic/gin"

	"github.com/qs3c/soultria_server/config"
	"github.com/qs3c/soultria_server/internal/api/handler"
	"github.com/qs3c/soultria_server/internal/api/middleware"
	"github.com/qs3c/soultria_server/internal/entitlement"
	"github.com/qs3c/soultria_server/internal/service"
)

type Router struct {
	authHandler         *handler.AuthHandler
	userHandler         *handler.UserHandler
	onboardingHandler   *handler.OnboardingHandler
	readingHandler      *handler.ReadingHandler
	meditationHandler   *handler.MeditationHandler
	journalHandler      *handler.JournalHandler
	wisdomHandler       *handler.WisdomHandler
	companionHandler    *handler.CompanionHandler
	subscriptionHandler *handler.SubscriptionHandler
	websocketHandler    *handler.WebSocketHandler
	ents                *service.EntitlementService
	cfg                 *config.Config
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	onboardingHandler *handler.OnboardingHandler,
	readingHandler *handler.ReadingHandler,
	meditationHandler *handler.MeditationHandler,
	journalHandler *handler.JournalHandler,
	wisdomHandler *handler.WisdomHandler,
	companionHandler *handler.CompanionHandler,
	subscriptionHandler *handler.SubscriptionHandler,
	websocketHandler *handler.WebSocketHandler,
	ents *service.EntitlementService,
	cfg *config.Config,
) *Router {
	return &Router{
		authHandler:         authHandler,
		userHandler:         userHandler,
		onboardingHandler:   onboardingHandler,
		readingHandler:      readingHandler,
		meditationHandler:   meditationHandler,
		journalHandler:      journalHandler,
		wisdomHandler:       wisdomHandler,
		companionHandler:    companionHandler,
		subscriptionHandler: subscriptionHandler,
		websocketHandler:    websocketHandler,
		ents:                ents,
		cfg:                 cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	if r.cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())
	engine.Use(middleware.CORS(r.cfg.CORS))

	api := engine.Group("/api/v1")
	{
		// WebSocket
		api.GET("/ws", r.websocketHandler.Handle)

		// 公开接口 - 认证
		auth := api.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
		}

		// 公开接口 - 目录
		api.GET("/onboarding/questions", r.onboardingHandler.Questions)
		api.GET("/readings/catalog", r.readingHandler.Catalog)

		// 套餐列表（可选认证）
		plans := api.Group("/subscription")
		plans.Use(middleware.OptionalAuth(r.cfg.JWT.Secret))
		{
			plans.GET("/plans", r.subscriptionHandler.Plans)
		}

		// 需要认证的接口
		authenticated := api.Group("")
		authenticated.Use(middleware.Auth(r.cfg.JWT.Secret))
		{
			// 用户
			user := authenticated.Group("/user")
			{
				user.GET("/profile", r.userHandler.GetProfile)
				user.PUT("/profile", r.userHandler.UpdateProfile)
			}

			// 引导问卷
			onboarding := authenticated.Group("/onboarding")
			{
				onboarding.POST("", r.onboardingHandler.Complete)
				onboarding.GET("", r.onboardingHandler.Get)
				onboarding.POST("/welcomed", r.onboardingHandler.MarkWelcomed)
			}

			// 套餐
			subscription := authenticated.Group("/subscription")
			{
				subscription.GET("", r.subscriptionHandler.Get)
				subscription.POST("/upgrade", r.subscriptionHandler.Upgrade)
			}

			// 占卜
			readings := authenticated.Group("/readings")
			{
				readings.POST("/session", r.readingHandler.Session)
				readings.POST("/:kind", r.readingHandler.Generate)
			}

			// 冥想
			meditation := authenticated.Group("/meditation")
			{
				meditation.GET("", r.meditationHandler.Overview)
				meditation.POST("/start", r.meditationHandler.Start)
				meditation.POST("/complete", r.meditationHandler.Complete)
				meditation.GET("/stats", r.meditationHandler.Stats)
				meditation.GET("/settings", r.meditationHandler.GetSettings)
				meditation.PUT("/settings", r.meditationHandler.UpdateSettings)
			}

			// 日记
			journal := authenticated.Group("/journal")
			{
				journal.POST("", r.journalHandler.Create)
				journal.GET("", r.journalHandler.List)
				journal.GET("/patterns",
					middleware.RequireFeature(r.ents, entitlement.GateJournalInsights),
					r.journalHandler.Patterns)
			}

			// 智慧库
			wisdom := authenticated.Group("/wisdom")
			{
				wisdom.GET("", r.wisdomHandler.List)
				wisdom.GET("/saved", r.wisdomHandler.Saved)
				wisdom.GET("/:id", r.wisdomHandler.Get)
				wisdom.POST("/:id/save", r.wisdomHandler.ToggleSaved)
			}

			// 灵性伙伴
			authenticated.POST("/companion/messages", r.companionHandler.Send)
		}
	}

	return engine
}
