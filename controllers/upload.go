package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/sorteo-loteria/sorteo-backend/lottery"
	"github.com/sorteo-loteria/sorteo-backend/services"
	"github.com/sorteo-loteria/sorteo-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

// UploadController receives historical-data spreadsheets and feeds them to
// the ingestion pipeline.
type UploadController struct {
	ingest        *services.IngestService
	maxUploadSize int64
}

func NewUploadController(ingest *services.IngestService, maxUploadSize int64) *UploadController {
	return &UploadController{ingest: ingest, maxUploadSize: maxUploadSize}
}

// UploadHistoricalData handles POST /api/upload. The whole upload either
// replaces the historical dataset or leaves it untouched.
func (ctl *UploadController) UploadHistoricalData(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file part"})
		return
	}
	if header.Filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No selected file"})
		return
	}
	if !strings.HasSuffix(strings.ToLower(header.Filename), ".xlsx") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file format. Only .xlsx files are allowed"})
		return
	}
	if header.Size > ctl.maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File too large"})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	records, err := ctl.ingest.Ingest(file)
	if err != nil {
		var formatErr *lottery.FormatError
		switch {
		case errors.Is(err, lottery.ErrEmptyDataset):
			c.JSON(http.StatusBadRequest, gin.H{"error": "No valid data found in Excel file"})
		case errors.As(err, &formatErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Error processing file: " + formatErr.Error()})
		default:
			logger.Errorf("Upload failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error processing file: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "File uploaded successfully",
		"records": records,
	})
}
