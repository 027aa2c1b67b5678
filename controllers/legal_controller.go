package controllers

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"fabric-store/services"
)

type LegalController struct {
	svc *services.LegalService
}

func NewLegalController(svc *services.LegalService) *LegalController {
	return &LegalController{svc: svc}
}

// @Summary List legal documents
// @Tags Legal
// @Produce json
// @Success 200 {object} models.Response
// @Router /legal [get]
func (ctrl *LegalController) GetDocuments(c *gin.Context) {
	docs, err := ctrl.svc.ListDocuments(context.Background())
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get legal documents"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Legal documents retrieved", "data": docs})
}

// @Summary Get legal document
// @Tags Legal
// @Produce json
// @Param slug path string true "Document slug"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /legal/{slug} [get]
func (ctrl *LegalController) GetDocument(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))

	doc, err := ctrl.svc.GetDocument(context.Background(), slug)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Document not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Document retrieved", "data": doc})
}

// @Summary List bookmarked legal documents
// @Tags Legal
// @Produce json
// @Success 200 {object} models.Response
// @Router /legal/bookmarks [get]
func (ctrl *LegalController) GetBookmarks(c *gin.Context) {
	slugs := ctrl.svc.Bookmarks(context.Background(), clientID(c))
	c.JSON(200, gin.H{"success": true, "message": "Bookmarks retrieved", "data": slugs})
}

// @Summary Toggle a legal document bookmark
// @Tags Legal
// @Produce json
// @Param slug path string true "Document slug"
// @Success 200 {object} models.Response
// @Router /legal/{slug}/bookmark [post]
func (ctrl *LegalController) ToggleBookmark(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		c.JSON(400, gin.H{"success": false, "message": "Invalid document slug"})
		return
	}

	if _, err := ctrl.svc.GetDocument(context.Background(), slug); err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Document not found"})
		return
	}

	bookmarked := ctrl.svc.ToggleBookmark(context.Background(), clientID(c), slug)
	c.JSON(200, gin.H{
		"success": true,
		"message": "Bookmark updated",
		"data":    gin.H{"bookmarked": bookmarked},
	})
}
