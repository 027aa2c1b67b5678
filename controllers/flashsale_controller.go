package controllers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"fabric-store/services"
)

type FlashSaleController struct {
	svc *services.FlashSaleService
}

func NewFlashSaleController(svc *services.FlashSaleService) *FlashSaleController {
	return &FlashSaleController{svc: svc}
}

// @Summary List flash sales
// @Description Get flash-sale items with urgency tiers and countdowns
// @Tags Flash Sales
// @Produce json
// @Param category query string false "Filter by category"
// @Param min_discount query int false "Minimum discount percent"
// @Param expiring_in query string false "Expiry bucket" Enums(1h, 6h, 24h, 3d, 7d)
// @Param include_sold_out query bool false "Show sold out items" default(false)
// @Param sort query string false "Sort key" Enums(ending-soon, discount-high, discount-low, price-low, price-high, stock-low, popular)
// @Param page query int false "Page number" default(1)
// @Success 200 {object} models.PaginatedResponse
// @Router /flash-sales [get]
func (ctrl *FlashSaleController) GetFlashSales(c *gin.Context) {
	filter, sortKey, page, limit := bindDealQuery(c, "false")

	items, meta, err := ctrl.svc.ListFlashSales(context.Background(), filter, sortKey, page, limit)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get flash sales"})
		return
	}

	lastRefreshed := ""
	if t := ctrl.svc.LastRefreshed(); !t.IsZero() {
		lastRefreshed = t.Format(time.RFC3339)
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Flash sales retrieved",
		"data":    items,
		"meta": gin.H{
			"page":           meta.Page,
			"limit":          meta.Limit,
			"total_items":    meta.TotalItems,
			"total_pages":    meta.TotalPages,
			"last_refreshed": lastRefreshed,
			"refreshing":     ctrl.svc.Refreshing(),
		},
	})
}

// @Summary Refresh flash sales
// @Description Re-read authoritative stock and drop cached pages
// @Tags Flash Sales
// @Produce json
// @Success 200 {object} models.Response
// @Router /flash-sales/refresh [post]
func (ctrl *FlashSaleController) Refresh(c *gin.Context) {
	if err := ctrl.svc.Refresh(context.Background()); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Refresh failed"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Flash sales refreshed",
		"data": gin.H{
			"last_refreshed": ctrl.svc.LastRefreshed().Format(time.RFC3339),
		},
	})
}
