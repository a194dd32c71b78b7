package main

import (
	"log"
	"net/http"
	"time"

	"github.com/sorteo-loteria/sorteo-backend/config"
	"github.com/sorteo-loteria/sorteo-backend/controllers"
	"github.com/sorteo-loteria/sorteo-backend/repository"
	"github.com/sorteo-loteria/sorteo-backend/routes"
	"github.com/sorteo-loteria/sorteo-backend/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// setupRouter wires repositories, services and controllers into a Gin engine.
func setupRouter(cfg config.Config, db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}))

	historicalRepo := repository.NewHistoricalRepository(db)
	sorteoRepo := repository.NewSorteoRepository(db)
	userRepo := repository.NewUserRepository(db)

	frequencyService := services.NewFrequencyService(historicalRepo)
	drawService := services.NewDrawService(frequencyService)
	ingestService := services.NewIngestService(historicalRepo)

	routes.SetupRoutes(r,
		controllers.NewAuthController(userRepo),
		controllers.NewLotteryController(drawService, frequencyService, sorteoRepo),
		controllers.NewUploadController(ingestService, cfg.MaxUploadSize),
	)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"message":   "Sorteo Lotería API is running",
			"timestamp": time.Now(),
		})
	})

	// Root endpoint with API information
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    "Sorteo Lotería API",
			"version": "1.0.0",
			"endpoints": gin.H{
				"auth":    []string{"POST /api/register", "POST /api/login"},
				"lottery": []string{"GET /api/sorteo", "POST /api/save_sorteo", "GET /api/history/:user_id", "PUT /api/sorteo/:id", "DELETE /api/sorteo/:id", "GET /api/statistics"},
				"upload":  []string{"POST /api/upload"},
			},
		})
	})

	return r
}

func main() {
	cfg := config.Load()
	db := config.SetupDatabase(cfg)

	r := setupRouter(cfg, db)

	log.Printf("🚀 Starting Sorteo Lotería API on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("[FATAL] Server failed: %v", err)
	}
}
