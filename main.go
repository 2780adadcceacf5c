package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ahmedkhaled2030/bedir-group/handlers"
	"github.com/ahmedkhaled2030/bedir-group/internal/blog"
	"github.com/ahmedkhaled2030/bedir-group/internal/careers"
	"github.com/ahmedkhaled2030/bedir-group/internal/config"
	"github.com/ahmedkhaled2030/bedir-group/internal/contact"
	"github.com/ahmedkhaled2030/bedir-group/internal/database"
	"github.com/ahmedkhaled2030/bedir-group/internal/images"
	"github.com/ahmedkhaled2030/bedir-group/internal/users"
	"github.com/ahmedkhaled2030/bedir-group/pkg/logger"
	"github.com/ahmedkhaled2030/bedir-group/pkg/metrics"
	"github.com/ahmedkhaled2030/bedir-group/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// logging is controlled with LOG_LEVEL env: debug|info|warn|error
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: db=%s jwt_secret_set=%v", cfg.MongoDB.Database, cfg.JWT.Secret != "")

	ctx := context.Background()

	// Retry/backoff when connecting to MongoDB to tolerate startup races
	const maxAttempts = 5
	backoff := time.Second
	client, errConn := database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
	for attempt := 2; errConn != nil && attempt <= maxAttempts; attempt++ {
		logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt-1, maxAttempts, errConn)
		time.Sleep(backoff)
		backoff *= 2
		client, errConn = database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
	}
	if errConn != nil {
		logger.Fatalf("could not connect to MongoDB after %d attempts: %v", maxAttempts, errConn)
	}
	defer func() { _ = client.Disconnect(ctx) }()
	logger.Infof("connected to MongoDB: %s", cfg.MongoDB.Database)

	db := client.Database(cfg.MongoDB.Database)
	if err := database.EnsureIndexes(ctx, db); err != nil {
		logger.Fatalf("failed to create indexes: %v", err)
	}

	userRepo := users.NewMongoRepository(db.Collection(database.ColUsers))
	userSvc := users.NewService(userRepo)
	blogSvc := blog.NewService(blog.NewMongoRepository(db.Collection(database.ColBlogPosts)))
	careerRepo := careers.NewMongoRepository(db.Collection(database.ColCareers))
	inquiryRepo := contact.NewMongoRepository(db.Collection(database.ColInquiries))
	imageRepo := images.NewMongoRepository(db.Collection(database.ColImages))

	if cfg.Server.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.CORS(cfg.CORS.FrontendURL))
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(metrics.GinMiddleware())

	authn := middleware.RequireAuth(cfg.JWT.Secret, userRepo)
	admin := middleware.RequireAdmin()

	api := r.Group("/api")
	handlers.NewAuthHandler(cfg, userSvc).Register(api, authn)
	handlers.NewBlogHandler(cfg, blogSvc, imageRepo).Register(api, authn, admin)
	handlers.NewCareersHandler(careerRepo).Register(api, authn, admin)
	handlers.NewContactHandler(inquiryRepo).Register(api, authn, admin)

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "Bedir Group API"})
	})

	// readiness: 200 only while the store answers pings
	r.GET("/ready", func(c *gin.Context) {
		pctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := client.Ping(pctx, nil); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "uptime": time.Since(startTime).String()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "uptime": time.Since(startTime).String()})
	})

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("starting API server on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
