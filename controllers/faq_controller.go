package controllers

import (
	"context"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"fabric-store/models"
	"fabric-store/services"
)

type FAQController struct {
	svc *services.FAQService
}

func NewFAQController(svc *services.FAQService) *FAQController {
	return &FAQController{svc: svc}
}

// clientID identifies the visitor for preference storage. The storefront
// sends a stable ID; direct API callers fall back to their IP.
func clientID(c *gin.Context) string {
	if id := strings.TrimSpace(c.GetHeader("X-Client-ID")); id != "" {
		return id
	}
	return c.ClientIP()
}

// @Summary List FAQs
// @Description Get FAQs, optionally filtered by category
// @Tags FAQ
// @Produce json
// @Param category query string false "Filter by category"
// @Success 200 {object} models.Response
// @Router /faqs [get]
func (ctrl *FAQController) GetFAQs(c *gin.Context) {
	faqs, err := ctrl.svc.ListFAQs(context.Background(), strings.TrimSpace(c.Query("category")))
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get FAQs"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "FAQs retrieved", "data": faqs})
}

// @Summary List FAQ categories
// @Tags FAQ
// @Produce json
// @Success 200 {object} models.Response
// @Router /faqs/categories [get]
func (ctrl *FAQController) GetCategories(c *gin.Context) {
	categories, err := ctrl.svc.Categories(context.Background())
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get FAQ categories"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "FAQ categories retrieved", "data": categories})
}

// @Summary Search FAQs
// @Description Fuzzy search over questions and answers
// @Tags FAQ
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} models.Response
// @Router /faqs/search [get]
func (ctrl *FAQController) SearchFAQs(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(400, gin.H{"success": false, "message": "Search query is required"})
		return
	}

	results, err := ctrl.svc.SearchFAQs(context.Background(), clientID(c), query)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Search failed"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Search results",
		"data":    results,
		"total":   len(results),
	})
}

// @Summary Get FAQ search history
// @Tags FAQ
// @Produce json
// @Success 200 {object} models.Response
// @Router /faqs/search/history [get]
func (ctrl *FAQController) GetSearchHistory(c *gin.Context) {
	history := ctrl.svc.SearchHistory(context.Background(), clientID(c))
	c.JSON(200, gin.H{"success": true, "message": "Search history retrieved", "data": history})
}

// @Summary Vote on a FAQ
// @Description Record a helpful/not-helpful vote (one per visitor)
// @Tags FAQ
// @Accept json
// @Produce json
// @Param id path int true "FAQ ID"
// @Param request body models.VoteRequest true "Vote"
// @Success 200 {object} models.Response
// @Router /faqs/{id}/vote [post]
func (ctrl *FAQController) Vote(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req models.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	faq, err := ctrl.svc.Vote(context.Background(), clientID(c), id, req.Helpful)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "FAQ not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Vote recorded", "data": faq})
}

// @Summary Toggle a FAQ bookmark
// @Tags FAQ
// @Produce json
// @Param id path int true "FAQ ID"
// @Success 200 {object} models.Response
// @Router /faqs/{id}/bookmark [post]
func (ctrl *FAQController) ToggleBookmark(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid FAQ ID"})
		return
	}

	bookmarked := ctrl.svc.ToggleBookmark(context.Background(), clientID(c), id)
	c.JSON(200, gin.H{
		"success": true,
		"message": "Bookmark updated",
		"data":    gin.H{"bookmarked": bookmarked},
	})
}
