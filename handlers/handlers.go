// Package handlers contains the gin handlers and middleware for the sales
// analytics API.
package handlers

import (
	"math"

	"github.com/gin-gonic/gin"
	"github.com/salespulse/backend/store"
)

// Handler bundles the record store and signing key behind the HTTP API.
type Handler struct {
	store     store.Store
	jwtSecret []byte
}

func New(s store.Store, jwtSecret []byte) *Handler {
	return &Handler{store: s, jwtSecret: jwtSecret}
}

// RegisterRoutes wires every endpoint onto the /api group. Auth is layered
// as route-group middleware: public, then bearer-token, then admin-only.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/register", h.Register)
	api.POST("/login", h.Login)
	api.POST("/compress-string", h.CompressString)
	api.POST("/decompress-string", h.DecompressString)

	authed := api.Group("", h.AuthMiddleware())
	{
		authed.GET("/profile", h.Profile)

		admin := authed.Group("", h.RequireAdmin())
		{
			admin.POST("/upload-sales", h.UploadSales)
			admin.GET("/analytics/summary", h.AnalyticsSummary)
			admin.GET("/analytics/top-customers", h.TopCustomers)
			admin.GET("/analytics/by-date", h.SalesByDate)
		}
	}
}

// round2 rounds monetary figures to 2 decimal places for output.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
