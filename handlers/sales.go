package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/salespulse/backend/ingest"
	"github.com/salespulse/backend/models"
)

// UploadSales handles POST /api/upload-sales - bulk CSV ingestion (admin only).
// The batch is all-or-nothing: any parse failure leaves the store untouched.
func (h *Handler) UploadSales(c *gin.Context) {
	user := CurrentUser(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "CSV file is required"})
		return
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".csv") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File must be a CSV"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	rows, err := ingest.ParseSales(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	records := make([]models.SalesRecord, len(rows))
	for i, row := range rows {
		records[i] = models.SalesRecord{
			CustomerName: row.CustomerName,
			Amount:       row.Amount,
			Date:         row.Date,
			UploadedBy:   user.ID,
		}
	}

	count, err := h.store.InsertSalesRecords(c.Request.Context(), records)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save sales records"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       fmt.Sprintf("Successfully uploaded %d sales records", count),
		"records_count": count,
	})
}
