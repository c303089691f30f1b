package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appHTTP "stylefeed/internal/controller/http"
	"stylefeed/internal/identity"
	"stylefeed/internal/repo/persistent"
	"stylefeed/internal/usecase"
	"stylefeed/pkg/bus"
	"stylefeed/pkg/config"
	"stylefeed/pkg/jwt"
	"stylefeed/pkg/logger"
	"stylefeed/pkg/middleware"
	"stylefeed/pkg/queue"
	"stylefeed/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "stylefeed/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, s3Client *s3.Client, queueClient *queue.Client, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)
	eventBus := bus.New()

	// In-process observer: mirrors recorded analytics events into the service
	// log. Slow consumption drops notifications, never blocks ingestion.
	eventCh, subID := eventBus.Subscribe(64)
	defer eventBus.Unsubscribe(subID)
	go func() {
		for env := range eventCh {
			log.Info("Event recorded: topic=%s payload=%v", env.Topic, env.Payload)
		}
	}()

	// Initialize repositories
	userRepo := persistent.NewUserRepository(db)
	creatorRepo := persistent.NewCreatorRepository(db)
	membershipRepo := persistent.NewMembershipRepository(db)
	postRepo := persistent.NewPostRepository(db)
	eventRepo := persistent.NewEventRepository(db)

	// Initialize use cases
	aclUseCase := usecase.NewACLUseCase(membershipRepo, log)
	authUseCase := usecase.NewAuthUseCase(userRepo, jwtService, log)
	contentUseCase := usecase.NewContentUseCase(creatorRepo, postRepo, membershipRepo, aclUseCase, log)
	analyticsUseCase := usecase.NewAnalyticsUseCase(eventRepo, postRepo, creatorRepo, queueClient, eventBus, log)

	// Real provider integration is not wired yet; the static stub keeps the
	// verification flow exercisable in development.
	identityProvider := &identity.StaticProvider{}

	// Initialize HTTP handlers
	authHandler := appHTTP.NewAuthHandler(authUseCase, log)
	creatorHandler := appHTTP.NewCreatorHandler(contentUseCase, aclUseCase, identityProvider, log)
	postHandler := appHTTP.NewPostHandler(contentUseCase, log)
	analyticsHandler := appHTTP.NewAnalyticsHandler(analyticsUseCase, contentUseCase, aclUseCase, log)
	uploadHandler := appHTTP.NewUploadHandler(s3Client, log)
	adminHandler := appHTTP.NewAdminHandler(contentUseCase, log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes: profile pages and event ingestion work for anonymous
	// visitors; events still pick up the user when a token is present.
	public := r.Group("/api/v1")
	public.Use(middleware.OptionalAuthMiddleware(jwtService))
	{
		public.GET("/creators/:slug", creatorHandler.Get)
		public.GET("/creators/:slug/posts", postHandler.ListByCreator)
		public.GET("/posts/:id", postHandler.Get)

		events := public.Group("/events")
		if redisClient != nil {
			events.Use(middleware.RateLimitMiddleware(redisClient, 300, time.Minute))
		}
		events.POST("", analyticsHandler.Ingest)
	}

	r.POST("/api/v1/auth/register", authHandler.Register)
	r.POST("/api/v1/auth/login", authHandler.Login)

	// Authenticated routes
	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(jwtService))
	if redisClient != nil {
		api.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))
	}
	{
		api.GET("/me", authHandler.Me)
		api.GET("/me/memberships", creatorHandler.Memberships)

		api.POST("/creators", creatorHandler.Onboard)
		api.PUT("/creators/:slug", creatorHandler.Update)
		api.POST("/creators/:slug/verify", creatorHandler.Verify)

		api.POST("/posts", postHandler.Create)
		api.PUT("/posts/:id", postHandler.Update)
		api.DELETE("/posts/:id", postHandler.Delete)

		api.POST("/uploads", uploadHandler.Upload)

		api.GET("/analytics/:slug/daily", analyticsHandler.Daily)
		api.GET("/analytics/:slug/products", analyticsHandler.ProductClicks)
	}

	// Back office, protected by the static Basic-Auth gate
	admin := r.Group("/admin")
	admin.Use(middleware.AdminGateMiddleware(cfg))
	{
		admin.GET("/creators", adminHandler.ListCreators)
		admin.POST("/creators", adminHandler.CreateCreator)
		admin.POST("/posts", adminHandler.CreatePost)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("stylefeed API starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down stylefeed API...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	// Close RabbitMQ connection
	if queueClient != nil {
		queueClient.Close()
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("stylefeed API exited")
}
