package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/sorteo-loteria/sorteo-backend/lottery"
	"github.com/sorteo-loteria/sorteo-backend/models"
	"github.com/sorteo-loteria/sorteo-backend/repository"
	"github.com/sorteo-loteria/sorteo-backend/services"
	"github.com/sorteo-loteria/sorteo-backend/utils/logger"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

// LotteryController serves draw generation, saved-draw CRUD and statistics.
type LotteryController struct {
	draws     *services.DrawService
	frequency *services.FrequencyService
	sorteos   repository.SorteoRepository
}

func NewLotteryController(
	draws *services.DrawService,
	frequency *services.FrequencyService,
	sorteos repository.SorteoRepository,
) *LotteryController {
	return &LotteryController{draws: draws, frequency: frequency, sorteos: sorteos}
}

// GenerateSorteo returns a freshly generated draw without persisting it.
func (ctl *LotteryController) GenerateSorteo(c *gin.Context) {
	balotas := ctl.draws.Generate()
	c.JSON(http.StatusOK, gin.H{"balotas": balotas})
}

// SaveSorteo stores a generated draw in the user's history.
func (ctl *LotteryController) SaveSorteo(c *gin.Context) {
	var req struct {
		UserID  uint  `json:"user_id"`
		Numbers []int `json:"numbers"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.UserID == 0 || len(req.Numbers) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing data"})
		return
	}
	if err := lottery.ValidateDraw(req.Numbers); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sorteo := models.Sorteo{
		UserID:  req.UserID,
		Numbers: datatypes.NewJSONSlice(req.Numbers),
	}
	if err := ctl.sorteos.Create(&sorteo); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save sorteo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetHistory lists a user's saved sorteos, newest first.
func (ctl *LotteryController) GetHistory(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	sorteos, err := ctl.sorteos.ListByUser(uint(userID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch history"})
		return
	}

	history := make([]gin.H, 0, len(sorteos))
	for _, s := range sorteos {
		history = append(history, gin.H{
			"id":      s.ID,
			"numbers": []int(s.Numbers),
			"date":    s.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"history": history})
}

// UpdateSorteo overwrites the numbers of a saved sorteo.
func (ctl *LotteryController) UpdateSorteo(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sorteo id"})
		return
	}

	var req struct {
		Numbers []int `json:"numbers"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := lottery.ValidateDraw(req.Numbers); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ctl.sorteos.UpdateNumbers(uint(id), req.Numbers); err != nil {
		if errors.Is(err, lottery.ErrSorteoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sorteo not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update sorteo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Sorteo updated"})
}

// DeleteSorteo removes a saved sorteo by id.
func (ctl *LotteryController) DeleteSorteo(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sorteo id"})
		return
	}

	if err := ctl.sorteos.Delete(uint(id)); err != nil {
		if errors.Is(err, lottery.ErrSorteoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sorteo not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete sorteo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Sorteo deleted"})
}

// GetStatistics returns the top-3 most frequent primary numbers with their
// counts. Statistics are advisory: internal failures degrade to an empty
// list with 200 instead of an error response.
func (ctl *LotteryController) GetStatistics(c *gin.Context) {
	results, err := ctl.frequency.TopFrequent(3)
	if err != nil {
		logger.Errorf("Failed to compute statistics: %v", err)
		c.JSON(http.StatusOK, gin.H{"top_three_numbers": []services.FrequencyResult{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"top_three_numbers": results})
}
