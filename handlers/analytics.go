package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/salespulse/backend/store"
)

const (
	defaultTopCustomers = 3
	minTopCustomers     = 1
	maxTopCustomers     = 100
)

type salesData struct {
	CustomerName string    `json:"customer_name"`
	Amount       float64   `json:"amount"`
	Date         time.Time `json:"date"`
}

// AnalyticsSummary handles GET /api/analytics/summary (admin only)
func (h *Handler) AnalyticsSummary(c *gin.Context) {
	summary, err := h.store.SalesSummary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_sales":         round2(summary.TotalSales),
		"total_transactions":  summary.TotalTransactions,
		"average_order_value": round2(summary.AverageOrderValue),
	})
}

// TopCustomers handles GET /api/analytics/top-customers?limit=N (admin only).
// Out-of-range limits are clamped to [1,100], never rejected.
func (h *Handler) TopCustomers(c *gin.Context) {
	limit := defaultTopCustomers
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil {
			limit = parsed
		}
	}
	if limit < minTopCustomers {
		limit = minTopCustomers
	}
	if limit > maxTopCustomers {
		limit = maxTopCustomers
	}

	customers, err := h.store.TopCustomers(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch top customers"})
		return
	}

	for i := range customers {
		customers[i].TotalSales = round2(customers[i].TotalSales)
	}
	if customers == nil {
		customers = []store.TopCustomer{}
	}
	c.JSON(http.StatusOK, customers)
}

// SalesByDate handles GET /api/analytics/by-date?from=YYYY-MM-DD&to=YYYY-MM-DD
// (admin only). The end date is inclusive.
func (h *Handler) SalesByDate(c *gin.Context) {
	from, errFrom := time.Parse("2006-01-02", c.Query("from"))
	to, errTo := time.Parse("2006-01-02", c.Query("to"))
	if errFrom != nil || errTo != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}

	records, err := h.store.SalesByDateRange(c.Request.Context(), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sales records"})
		return
	}

	result := make([]salesData, len(records))
	for i, record := range records {
		result[i] = salesData{
			CustomerName: record.CustomerName,
			Amount:       record.Amount,
			Date:         record.Date,
		}
	}
	c.JSON(http.StatusOK, result)
}
