package controllers

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"fabric-store/config"
	"fabric-store/models"
	"fabric-store/services"
)

type DealController struct {
	svc *services.DealService
}

func NewDealController(svc *services.DealService) *DealController {
	return &DealController{svc: svc}
}

func bindDealQuery(c *gin.Context, soldOutDefault string) (models.DealFilter, string, int, int) {
	includeSoldOut, _ := strconv.ParseBool(c.DefaultQuery("include_sold_out", soldOutDefault))
	filter := models.DealFilter{
		Category:       strings.TrimSpace(c.Query("category")),
		ExpiringIn:     strings.TrimSpace(c.Query("expiring_in")),
		IncludeSoldOut: includeSoldOut,
	}
	filter.MinDiscount, _ = strconv.Atoi(c.Query("min_discount"))

	sortKey := c.DefaultQuery("sort", models.SortEndingSoon)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(config.AppConfig.ItemsPerPage)))
	return filter, sortKey, page, limit
}

// @Summary List deals
// @Description Get filtered, sorted, paginated deals
// @Tags Deals
// @Produce json
// @Param category query string false "Filter by category"
// @Param min_discount query int false "Minimum discount percent"
// @Param expiring_in query string false "Expiry bucket" Enums(1h, 6h, 24h, 3d, 7d)
// @Param sort query string false "Sort key" Enums(ending-soon, discount-high, discount-low, price-low, price-high, stock-low, popular)
// @Param page query int false "Page number" default(1)
// @Success 200 {object} models.PaginatedResponse
// @Router /deals [get]
func (ctrl *DealController) GetDeals(c *gin.Context) {
	filter, sortKey, page, limit := bindDealQuery(c, "true")

	deals, meta, err := ctrl.svc.ListDeals(context.Background(), filter, sortKey, page, limit)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get deals"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Deals retrieved",
		"data":    deals,
		"meta":    meta,
	})
}

// @Summary Get deal by ID
// @Description Get deal details with countdown and urgency
// @Tags Deals
// @Produce json
// @Param id path int true "Deal ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /deals/{id} [get]
func (ctrl *DealController) GetDealByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	deal, err := ctrl.svc.GetDeal(context.Background(), id)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Deal not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Deal retrieved", "data": deal})
}

// @Summary Create deal
// @Description Create a deal for a product (Admin)
// @Tags Admin - Deals
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateDealRequest true "Deal"
// @Success 201 {object} models.Response
// @Router /admin/deals [post]
func (ctrl *DealController) CreateDeal(c *gin.Context) {
	var req models.CreateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	if !req.EndDate.After(time.Now()) {
		c.JSON(400, gin.H{"success": false, "message": "End date must be in the future"})
		return
	}
	if req.IsFlashSale && req.OriginalStock <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Flash sale deals need an original stock"})
		return
	}

	var originalPrice int
	err := models.DB.QueryRow(context.Background(),
		"SELECT price FROM products WHERE id=$1 AND is_active=true", req.ProductID).Scan(&originalPrice)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Product not found"})
		return
	}

	if req.DealPrice <= 0 || req.DealPrice >= originalPrice {
		c.JSON(400, gin.H{"success": false, "message": "Deal price must be below the original price"})
		return
	}

	deal := &models.Deal{
		ProductID:       req.ProductID,
		OriginalPrice:   originalPrice,
		DealPrice:       req.DealPrice,
		DiscountPercent: (originalPrice - req.DealPrice) * 100 / originalPrice,
		EndDate:         req.EndDate,
		IsFlashSale:     req.IsFlashSale,
		OriginalStock:   req.OriginalStock,
		RemainingStock:  req.OriginalStock,
	}

	if err := ctrl.svc.CreateDeal(context.Background(), deal); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create deal: " + err.Error()})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Deal created successfully", "data": deal})
}

// @Summary Update deal
// @Description Update a deal (Admin)
// @Tags Admin - Deals
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Deal ID"
// @Param request body models.UpdateDealRequest true "Fields to update"
// @Success 200 {object} models.Response
// @Router /admin/deals/{id} [patch]
func (ctrl *DealController) UpdateDeal(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	deal, err := ctrl.svc.GetDeal(context.Background(), id)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Deal not found"})
		return
	}

	var req models.UpdateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	updated := deal.Deal
	if req.DealPrice != nil {
		if *req.DealPrice <= 0 || *req.DealPrice >= updated.OriginalPrice {
			c.JSON(400, gin.H{"success": false, "message": "Deal price must be below the original price"})
			return
		}
		updated.DealPrice = *req.DealPrice
		updated.DiscountPercent = (updated.OriginalPrice - updated.DealPrice) * 100 / updated.OriginalPrice
	}
	if req.EndDate != nil {
		updated.EndDate = *req.EndDate
	}
	if req.IsFlashSale != nil {
		updated.IsFlashSale = *req.IsFlashSale
	}
	if req.OriginalStock != nil {
		updated.OriginalStock = *req.OriginalStock
		if updated.RemainingStock > updated.OriginalStock {
			updated.RemainingStock = updated.OriginalStock
		}
	}
	if req.IsActive != nil {
		updated.IsActive = *req.IsActive
	}

	if err := ctrl.svc.UpdateDeal(context.Background(), &updated); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update deal"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Deal updated successfully", "data": updated})
}

// @Summary Delete deal
// @Description Deactivate a deal (Admin)
// @Tags Admin - Deals
// @Security BearerAuth
// @Produce json
// @Param id path int true "Deal ID"
// @Success 200 {object} models.Response
// @Router /admin/deals/{id} [delete]
func (ctrl *DealController) DeleteDeal(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid deal ID"})
		return
	}

	if err := ctrl.svc.DeleteDeal(context.Background(), id); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete deal"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Deal deactivated"})
}
