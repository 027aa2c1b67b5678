package controllers

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"fabric-store/models"
)

type CollectionController struct{}

// @Summary List collections
// @Description Get carousel collections with their products in display order
// @Tags Collections
// @Produce json
// @Success 200 {object} models.Response
// @Router /collections [get]
func (ctrl *CollectionController) GetCollections(c *gin.Context) {
	ctx := context.Background()

	rows, err := models.DB.Query(ctx,
		"SELECT id, title, slug, position, is_active FROM collections WHERE is_active=true ORDER BY position")
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get collections"})
		return
	}
	defer rows.Close()

	collections := []models.Collection{}
	for rows.Next() {
		var col models.Collection
		if rows.Scan(&col.ID, &col.Title, &col.Slug, &col.Position, &col.IsActive) != nil {
			continue
		}
		collections = append(collections, col)
	}

	for i := range collections {
		collections[i].Products = collectionProducts(ctx, collections[i].ID)
	}

	c.JSON(200, gin.H{"success": true, "message": "Collections retrieved", "data": collections})
}

// @Summary Get collection by slug
// @Tags Collections
// @Produce json
// @Param slug path string true "Collection slug"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /collections/{slug} [get]
func (ctrl *CollectionController) GetCollectionBySlug(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	ctx := context.Background()

	var col models.Collection
	err := models.DB.QueryRow(ctx,
		"SELECT id, title, slug, position, is_active FROM collections WHERE slug=$1 AND is_active=true",
		slug).Scan(&col.ID, &col.Title, &col.Slug, &col.Position, &col.IsActive)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Collection not found"})
		return
	}

	col.Products = collectionProducts(ctx, col.ID)

	c.JSON(200, gin.H{"success": true, "message": "Collection retrieved", "data": col})
}

func collectionProducts(ctx context.Context, collectionID int) []models.Product {
	rows, err := models.DB.Query(ctx,
		`SELECT `+productColumns+` FROM products p
		 JOIN collection_products cp ON cp.product_id = p.id
		 WHERE cp.collection_id = $1 AND p.is_active = true
		 ORDER BY cp.position`, collectionID)
	if err != nil {
		return []models.Product{}
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if scanProduct(rows, &p) == nil {
			products = append(products, p)
		}
	}
	return products
}
