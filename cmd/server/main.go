// @title InboxZero Analytics API
// @version 1.0
// @description Backend API for the InboxZero email activity dashboard
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"log"

	"inboxzero-be/config"
	"inboxzero-be/internal/handlers"
	"inboxzero-be/internal/middleware"
	"inboxzero-be/internal/services"
	"inboxzero-be/internal/store"

	"github.com/gin-gonic/gin"

	_ "inboxzero-be/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Application state: empty record set with its empty snapshot
	st := store.New()

	// Initialize services
	gmailService := services.NewGmailService(cfg)

	// Initialize handlers
	configHandler := handlers.NewConfigHandler(cfg, gmailService)
	recordsHandler := handlers.NewRecordsHandler(st)
	analyticsHandler := handlers.NewAnalyticsHandler(st)
	exportHandler := handlers.NewExportHandler(st)
	syncHandler := handlers.NewSyncHandler(gmailService, st)

	// Initialize Gin
	r := gin.Default()

	// Apply CORS middleware
	r.Use(middleware.CORS(cfg))

	api := r.Group("/api")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "ok",
				"message": "InboxZero Analytics API is running",
			})
		})

		api.GET("/config", configHandler.GetConfig)

		// Record ingestion
		api.POST("/records/csv", recordsHandler.UploadCSV)
		api.POST("/records/sample", recordsHandler.LoadSample)
		api.DELETE("/records", recordsHandler.Clear)

		// Inbox sync
		api.POST("/sync/google", syncHandler.SyncGoogle)

		// Derived views
		api.GET("/analytics", analyticsHandler.GetAnalytics)
		api.GET("/senders", analyticsHandler.SearchSenders)
		api.GET("/charts/types", exportHandler.TypesChart)

		// Export pipeline
		api.GET("/export/:chart", exportHandler.ExportPNG)
		api.GET("/export/:chart/print", exportHandler.ExportPrint)
	}

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if !gmailService.Enabled() {
		log.Println("Google sync disabled: missing GOOGLE_CLIENT_ID / GOOGLE_API_KEY")
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
