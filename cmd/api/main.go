package main

import (
	"stylefeed/internal/app"
	"stylefeed/pkg/cache"
	"stylefeed/pkg/config"
	"stylefeed/pkg/database"
	"stylefeed/pkg/logger"
	"stylefeed/pkg/queue"
	"stylefeed/pkg/s3"
)

// @title           stylefeed API
// @version         1.0
// @description     Creator content publishing and product analytics API

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @securityDefinitions.basic BasicAuth

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if cfg.JWTSecret == "your-secret-key-change-in-production" || cfg.JWTSecret == "" {
		panic("JWT_SECRET must be set in environment variables")
	}

	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	// Redis, S3 and RabbitMQ are optional at boot: rate limiting, uploads and
	// queue fanout degrade gracefully when the backing service is down.
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Warn("Redis unavailable, rate limiting disabled: %v", err)
		redisClient = nil
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Warn("S3 unavailable, uploads disabled: %v", err)
		s3Client = nil
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Warn("RabbitMQ unavailable, event fanout disabled: %v", err)
		queueClient = nil
	}

	app.Run(cfg, log, db, s3Client, queueClient, redisClient)
}
