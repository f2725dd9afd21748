package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/polkiloo/gymkeeper/internal/server/http/handlers"
	"github.com/polkiloo/gymkeeper/internal/server/http/middleware"
)

// maxInflatedBody caps gzip encoded request bodies after decompression.
const maxInflatedBody = 32 << 20

// Module registers HTTP router construction for fx runtime.
var Module = fx.Provide(Setup)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.GymFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.RequestMetrics())
	engine.Use(middleware.DecompressRequest(maxInflatedBody))
	// Photos are stored compressed and promhttp compresses on its own.
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/api/photos/", "/metrics"})))

	authHandler := handlers.NewAuthHandler(facade)
	gymHandler := handlers.NewGymHandler(facade)
	memberHandler := handlers.NewMemberHandler(facade)
	trainerHandler := handlers.NewTrainerHandler(facade)
	paymentHandler := handlers.NewPaymentHandler(facade)
	photoHandler := handlers.NewPhotoHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	engine.GET("/healthz", healthHandler.Check)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := engine.Group("/api")
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)

	private := api.Group("")
	private.Use(middleware.AuthRequired(facade))

	private.POST("/gym", gymHandler.Create)
	private.GET("/gym", gymHandler.Get)
	private.PUT("/gym", gymHandler.Update)
	private.PUT("/gym/photo", gymHandler.UploadPhoto)

	private.GET("/members", memberHandler.List)
	private.POST("/members", memberHandler.Create)
	private.GET("/members/:id", memberHandler.Get)
	private.PUT("/members/:id", memberHandler.Update)
	private.DELETE("/members/:id", memberHandler.Delete)
	private.PUT("/members/:id/photo", memberHandler.UploadPhoto)
	private.POST("/members/:id/payment/toggle", memberHandler.TogglePayment)

	private.GET("/trainers", trainerHandler.List)
	private.POST("/trainers", trainerHandler.Create)
	private.GET("/trainers/:id", trainerHandler.Get)
	private.PUT("/trainers/:id", trainerHandler.Update)
	private.DELETE("/trainers/:id", trainerHandler.Delete)
	private.PUT("/trainers/:id/photo", trainerHandler.UploadPhoto)

	private.GET("/payments/cycle", paymentHandler.Cycle)
	private.POST("/payments/cycle/check", paymentHandler.Check)

	private.GET("/photos/:name", photoHandler.Serve)

	return engine
}
