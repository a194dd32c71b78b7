package routes

import (
	"github.com/sorteo-loteria/sorteo-backend/controllers"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers the API route table.
func SetupRoutes(
	r *gin.Engine,
	auth *controllers.AuthController,
	lottery *controllers.LotteryController,
	upload *controllers.UploadController,
) {
	api := r.Group("/api")

	// ----------------------
	// Auth routes
	// ----------------------
	api.POST("/register", auth.Register)
	api.POST("/login", auth.Login)

	// ----------------------
	// Lottery routes
	// ----------------------
	api.GET("/sorteo", lottery.GenerateSorteo)           // Generate a new draw
	api.POST("/save_sorteo", lottery.SaveSorteo)         // Save a draw to history
	api.GET("/history/:user_id", lottery.GetHistory)     // List saved draws
	api.PUT("/sorteo/:id", lottery.UpdateSorteo)         // Overwrite saved numbers
	api.DELETE("/sorteo/:id", lottery.DeleteSorteo)      // Remove a saved draw
	api.GET("/statistics", lottery.GetStatistics)        // Top-3 frequent numbers

	// ----------------------
	// Upload routes
	// ----------------------
	api.POST("/upload", upload.UploadHistoricalData) // Replace historical data
}
