package main

import (
	"log"

	"dealer_dashboard/internal/config"
	"dealer_dashboard/internal/database"
	"dealer_dashboard/internal/handlers"
	"dealer_dashboard/internal/middleware"
	"dealer_dashboard/internal/migrations"
	"dealer_dashboard/internal/redis"
	"dealer_dashboard/internal/repository"
	"dealer_dashboard/internal/scoring"
	"dealer_dashboard/internal/search"
	"dealer_dashboard/internal/services"
	"dealer_dashboard/internal/tracking"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger := logrus.New()
	if cfg.Environment == "production" {
		logger.SetFormatter(&logrus.JSONFormatter{})
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Initialize Redis (search-history store)
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer redisClient.Close()

	// Initialize repositories
	orderRepo := repository.NewOrderRepository(db)
	dealerRepo := repository.NewDealerRepository(db)
	productionRepo := repository.NewProductionRepository(db)
	scoringRepo := repository.NewScoringRepository(db)

	// Initialize engines
	searchEngine := search.NewEngine()
	searchHistory := search.NewHistory(redisClient, cfg.HistoryLimit)
	scoringEngine := scoring.NewEngine()
	trackingEngine := tracking.NewEngine(cfg.WeeklyDepartmentCapacity)

	// Initialize services
	searchService := services.NewSearchService(orderRepo, dealerRepo, searchEngine, searchHistory, logger)
	scoringService := services.NewScoringService(dealerRepo, scoringRepo, scoringEngine, logger)
	trackingService := services.NewTrackingService(productionRepo, trackingEngine)
	reportService := services.NewReportService(orderRepo, dealerRepo)

	// Initialize handlers
	searchHandler := handlers.NewSearchHandler(searchService)
	dealerHandler := handlers.NewDealerHandler(scoringService)
	trackingHandler := handlers.NewTrackingHandler(trackingService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Setup routes
	router := gin.New()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Session-Key"}

	router.Use(cors.New(corsConfig))
	router.Use(middleware.LoggerMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.MetricsMiddleware())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/search/orders", searchHandler.SearchOrders)
		api.GET("/search/orders/suggestions", searchHandler.AutoCompleteSuggestions)
		api.GET("/search/dealers", searchHandler.SearchDealers)
		api.POST("/search/filters", searchHandler.FilterOrders)
		api.GET("/search/history", searchHandler.GetHistory)
		api.DELETE("/search/history", searchHandler.ClearHistory)

		api.GET("/dealers", dealerHandler.GetDealers)
		api.GET("/dealers/hierarchy", dealerHandler.GetHierarchy)
		api.GET("/dealers/:id", dealerHandler.GetDealer)
		api.POST("/dealers/recalculate", dealerHandler.RecalculateScores)
		api.GET("/scoring/settings", dealerHandler.GetScoringConfig)
		api.PUT("/scoring/settings", dealerHandler.UpdateScoringConfig)

		api.GET("/production/orders/:id/progress", trackingHandler.GetOrderProgress)
		api.GET("/production/orders/:id/customer-update", trackingHandler.GetCustomerUpdate)
		api.GET("/production/products/:id/progress", trackingHandler.GetProductProgress)
		api.GET("/production/products/:id/quality", trackingHandler.GetQualityScore)
		api.GET("/production/capacity", trackingHandler.GetCapacityAnalysis)

		api.GET("/reports/:kind", reportHandler.GenerateReport)
	}

	// Start server
	logger.Infof("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
