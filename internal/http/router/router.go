package router

import (
	"github.com/gin-gonic/gin"

	"github.com/lamsatk/lamsat-backend/internal/config"
	"github.com/lamsatk/lamsat-backend/internal/http/handlers"
	"github.com/lamsatk/lamsat-backend/internal/http/middleware"
	"github.com/lamsatk/lamsat-backend/internal/service"
)

func SetupRouter(
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	requestHandler *handlers.RequestHandler,
	statusHandler *handlers.StatusHandler,
	listingHandler *handlers.ListingHandler,
	healthHandler *handlers.HealthHandler,
	wsHandler *handlers.WSHandler,
	tokenManager *service.TokenManager,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", healthHandler.Health)

	api := r.Group("/api")

	// Публичные формы под общим rate limit.
	publicRateLimit := middleware.RateLimitMiddleware(cfg.RateLimitLimit, cfg.RateLimitPeriod)

	submissions := api.Group("/requests")
	submissions.Use(publicRateLimit)
	{
		submissions.POST("/provider", requestHandler.SubmitProvider)
		submissions.POST("/customer", requestHandler.SubmitCustomer)
	}

	api.GET("/status", publicRateLimit, statusHandler.Lookup)

	haraj := api.Group("/haraj")
	{
		haraj.GET("", listingHandler.List)
		haraj.GET("/:id", listingHandler.Get)
		haraj.POST("", publicRateLimit, listingHandler.Create)
	}

	// Логин ограничиваем жёстче остальных публичных форм.
	loginRateLimit := middleware.RateLimitMiddleware(5, cfg.RateLimitPeriod)
	api.POST("/admin/login", loginRateLimit, authHandler.Login)
	api.POST("/admin/logout", authHandler.Logout)

	// Все привилегированные маршруты проходят проверку токена до lifecycle.
	admin := api.Group("/admin")
	admin.Use(middleware.AdminAuthMiddleware(tokenManager))
	{
		admin.GET("/requests", requestHandler.ListRequests)
		admin.GET("/requests/:id", requestHandler.GetRequest)
		admin.PUT("/requests/:id/status", requestHandler.UpdateStatus)
		admin.DELETE("/haraj/:id", listingHandler.Delete)
		admin.GET("/ws", wsHandler.Handle)
	}

	return r
}
