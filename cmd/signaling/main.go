package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/hirehub/interview-signaling/config"
	"github.com/hirehub/interview-signaling/internal/handlers"
	"github.com/hirehub/interview-signaling/internal/logger"
	"github.com/hirehub/interview-signaling/internal/matchmaking"
	"github.com/hirehub/interview-signaling/internal/middleware"
	"github.com/hirehub/interview-signaling/internal/presence"
	redisclient "github.com/hirehub/interview-signaling/internal/redis"
	"github.com/hirehub/interview-signaling/internal/relay"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	zlog, err := logger.New(cfg.Logger.JSON, cfg.Logger.Debug)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	// Presence mirror is optional: without Redis the service still runs,
	// the job-board backend just cannot poll the online set from Redis.
	var mirror presence.StatusMirror
	if cfg.Redis.Enabled {
		rdb, err := redisclient.NewClient(context.Background(), cfg.Redis)
		if err != nil {
			zlog.Fatal("redis connection failed", zap.Error(err))
		}
		defer rdb.Close()
		mirror = redisclient.NewPresenceMirror(rdb, zlog)
		zlog.Info("redis connection established")
	}

	dir := presence.NewDirectory(mirror, zlog)
	rly := relay.New(dir, zlog)
	queue := matchmaking.NewQueue(dir, matchmaking.FirstFit{}, zlog)
	wsHandler := handlers.NewWSHandler(dir, rly, queue, cfg.JWTSecret, zlog)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Global CORS middleware (runs before routing)
	router.Use(handlers.OriginFilter(cfg.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api")
	{
		// Login endpoint (public)
		apiGroup.POST("/auth/login", handlers.Login(cfg.JWTSecret))

		// Presence snapshot (requires JWT)
		apiGroup.GET("/presence", middleware.JWTAuth(cfg.JWTSecret), handlers.GetPresence(dir, queue))
	}

	// WebSocket signaling endpoint
	wsGroup := router.Group("/ws")
	{
		wsGroup.GET("/signal", wsHandler.Handle)
	}

	zlog.Info("starting interview signaling server", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		zlog.Fatal("failed to start server", zap.Error(err))
	}
}
