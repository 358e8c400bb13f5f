package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/polkiloo/clientportal/internal/server/http/handlers"
	"github.com/polkiloo/clientportal/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.PortalFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.Metrics())
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	accountHandler := handlers.NewAccountHandler(facade)
	locationHandler := handlers.NewLocationHandler(facade)
	ratesHandler := handlers.NewRatesHandler(facade)
	emailHandler := handlers.NewEmailHandler(facade)
	webhookHandler := handlers.NewWebhookHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	engine.GET("/healthz", healthHandler.Check)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := engine.Group("/api")
	api.GET("/detect-location", locationHandler.Detect)
	api.GET("/exchange-rates", ratesHandler.Rates)
	api.POST("/send-email", emailHandler.Send)
	api.POST("/zoho-webhook", webhookHandler.Handle)

	client := api.Group("/client")
	client.POST("/register", accountHandler.Register)
	client.POST("/login", accountHandler.Login)

	clientAuth := client.Group("")
	clientAuth.Use(middleware.AuthRequired(facade))
	clientAuth.GET("/profile", accountHandler.Profile)
	clientAuth.PUT("/profile", accountHandler.UpdateProfile)
	clientAuth.PUT("/password", accountHandler.ChangePassword)
	clientAuth.GET("/notification-preferences", accountHandler.Preferences)
	clientAuth.PUT("/notification-preferences", accountHandler.UpdatePreferences)
	clientAuth.GET("/notifications", accountHandler.Notifications)
	clientAuth.POST("/notifications/:id/read", accountHandler.MarkNotificationRead)

	for _, path := range []string{
		"/detect-location",
		"/exchange-rates",
		"/send-email",
		"/zoho-webhook",
		"/client/register",
		"/client/login",
		"/client/profile",
		"/client/password",
		"/client/notification-preferences",
		"/client/notifications",
		"/client/notifications/:id/read",
	} {
		api.OPTIONS(path, handlers.Preflight)
	}

	return engine
}
