package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"fabric-store/config"
	"fabric-store/libs"
	"fabric-store/models"
)

type ProductController struct{}

const productColumns = `id, name, description, category_id, COALESCE(material, ''),
	COALESCE(color, ''), COALESCE(width_cm, 0), price, stock, COALESCE(image_url, ''),
	COALESCE(is_featured, false), is_active, created_at, updated_at`

func scanProduct(row interface{ Scan(dest ...any) error }, p *models.Product) error {
	return row.Scan(&p.ID, &p.Name, &p.Description, &p.CategoryID, &p.Material,
		&p.Color, &p.WidthCM, &p.Price, &p.Stock, &p.ImageURL,
		&p.IsFeatured, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
}

func getProductCacheKey(page, limit int) string {
	return fmt.Sprintf("products_list_p%d_l%d", page, limit)
}

func invalidateProductCache() {
	if models.RedisClient == nil {
		return
	}
	ctx := context.Background()
	iter := models.RedisClient.Scan(ctx, 0, "products_list_*", 0).Iterator()
	for iter.Next(ctx) {
		models.RedisClient.Del(ctx, iter.Val())
	}
}

// @Summary Get all categories
// @Description Get list of all fabric categories
// @Tags Categories
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *ProductController) GetAllCategories(c *gin.Context) {
	rows, _ := models.DB.Query(context.Background(),
		"SELECT id, name, slug, is_active, created_at FROM categories WHERE is_active=true ORDER BY name")
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var cat models.Category
		rows.Scan(&cat.ID, &cat.Name, &cat.Slug, &cat.IsActive, &cat.CreatedAt)
		categories = append(categories, cat)
	}

	c.JSON(200, gin.H{"success": true, "message": "Categories retrieved", "data": categories})
}

// @Summary Get all products
// @Description Get paginated list of fabrics
// @Tags Products
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.PaginatedResponse
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(config.AppConfig.ItemsPerPage)))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = config.AppConfig.ItemsPerPage
	}

	cacheKey := getProductCacheKey(page, limit)
	ctx := context.Background()

	if models.RedisClient != nil {
		cached, err := models.RedisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			c.Data(200, "application/json", []byte(cached))
			return
		}
	}

	offset := (page - 1) * limit

	var total int
	models.DB.QueryRow(ctx, "SELECT COUNT(*) FROM products WHERE is_active=true").Scan(&total)

	rows, _ := models.DB.Query(ctx,
		"SELECT "+productColumns+" FROM products WHERE is_active=true ORDER BY created_at DESC LIMIT $1 OFFSET $2",
		limit, offset)
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if scanProduct(rows, &p) == nil {
			products = append(products, p)
		}
	}

	response := gin.H{
		"success": true, "message": "Products retrieved", "data": products,
		"meta": gin.H{
			"page": page, "limit": limit, "total_items": total,
			"total_pages": int(math.Ceil(float64(total) / float64(limit))),
		},
	}

	if models.RedisClient != nil {
		jsonData, _ := json.Marshal(response)
		models.RedisClient.Set(ctx, cacheKey, string(jsonData), config.AppConfig.CacheTTL)
	}

	c.JSON(200, response)
}

// @Summary Filter products
// @Description Filter fabrics by search, category, material, sort, and price range
// @Tags Products
// @Produce json
// @Param search query string false "Search by product name"
// @Param category query string false "Filter by category"
// @Param material query string false "Filter by material"
// @Param sort_name query string false "Sort by name" Enums(asc, desc)
// @Param sort_price query string false "Sort by price" Enums(asc, desc)
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Success 200 {object} models.Response
// @Router /products/filter [get]
func (ctrl *ProductController) FilterProducts(c *gin.Context) {
	search := strings.TrimSpace(c.Query("search"))
	category := strings.TrimSpace(c.Query("category"))
	material := strings.TrimSpace(c.Query("material"))
	sortName := strings.TrimSpace(c.Query("sort_name"))
	sortPrice := strings.TrimSpace(c.Query("sort_price"))
	minPrice, _ := strconv.Atoi(c.Query("min_price"))
	maxPrice, _ := strconv.Atoi(c.Query("max_price"))

	query := "SELECT " + productColumns + " FROM products WHERE is_active=true"
	args := []interface{}{}
	paramIndex := 1

	if search != "" {
		query += fmt.Sprintf(" AND LOWER(name) LIKE LOWER($%d)", paramIndex)
		args = append(args, "%"+search+"%")
		paramIndex++
	}

	if category != "" && category != "all" {
		query += fmt.Sprintf(" AND category_id IN (SELECT id FROM categories WHERE LOWER(name)=LOWER($%d) OR slug=$%d)", paramIndex, paramIndex)
		args = append(args, category)
		paramIndex++
	}

	if material != "" {
		query += fmt.Sprintf(" AND LOWER(material)=LOWER($%d)", paramIndex)
		args = append(args, material)
		paramIndex++
	}

	if minPrice > 0 {
		query += fmt.Sprintf(" AND price >= $%d", paramIndex)
		args = append(args, minPrice)
		paramIndex++
	}

	if maxPrice > 0 {
		query += fmt.Sprintf(" AND price <= $%d", paramIndex)
		args = append(args, maxPrice)
		paramIndex++
	}

	orderBy := " ORDER BY created_at DESC"
	if sortName == "asc" {
		orderBy = " ORDER BY name ASC"
	} else if sortName == "desc" {
		orderBy = " ORDER BY name DESC"
	} else if sortPrice == "asc" {
		orderBy = " ORDER BY price ASC"
	} else if sortPrice == "desc" {
		orderBy = " ORDER BY price DESC"
	}
	query += orderBy

	rows, err := models.DB.Query(context.Background(), query, args...)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to filter products"})
		return
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if scanProduct(rows, &p) == nil {
			products = append(products, p)
		}
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Products filtered",
		"data":    products,
		"total":   len(products),
	})
}

// @Summary Get featured products
// @Description Get list of featured fabrics (limited to 4)
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Router /products/featured [get]
func (ctrl *ProductController) GetFeaturedProducts(c *gin.Context) {
	rows, _ := models.DB.Query(context.Background(),
		"SELECT "+productColumns+" FROM products WHERE is_active=true AND is_featured=true ORDER BY created_at DESC LIMIT 4")
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if scanProduct(rows, &p) == nil {
			products = append(products, p)
		}
	}

	c.JSON(200, gin.H{"success": true, "message": "Featured products retrieved", "data": products})
}

// @Summary Get product by ID
// @Description Get fabric details
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var p models.Product
	err := scanProduct(models.DB.QueryRow(context.Background(),
		"SELECT "+productColumns+" FROM products WHERE id=$1", id), &p)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Product retrieved", "data": p})
}

// @Summary Create product
// @Description Create new fabric listing (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Product name"
// @Param description formData string false "Product description"
// @Param category_id formData int true "Category ID"
// @Param material formData string false "Material"
// @Param color formData string false "Color"
// @Param width_cm formData int false "Fabric width in cm"
// @Param price formData int true "Price per meter in cents"
// @Param stock formData int false "Stock in meters"
// @Param is_featured formData bool false "Is featured"
// @Param image formData file false "Product image"
// @Success 201 {object} models.Response
// @Router /admin/products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	description := strings.TrimSpace(c.PostForm("description"))
	material := strings.TrimSpace(c.PostForm("material"))
	color := strings.TrimSpace(c.PostForm("color"))
	categoryIDStr := c.PostForm("category_id")
	priceStr := c.PostForm("price")
	widthCM, _ := strconv.Atoi(c.DefaultPostForm("width_cm", "0"))
	stock, _ := strconv.Atoi(c.DefaultPostForm("stock", "0"))
	isFeatured, _ := strconv.ParseBool(c.DefaultPostForm("is_featured", "false"))

	if name == "" || categoryIDStr == "" || priceStr == "" {
		c.JSON(400, gin.H{"success": false, "message": "Name, category_id, and price are required"})
		return
	}

	if len(name) < 3 {
		c.JSON(400, gin.H{"success": false, "message": "Product name must be at least 3 characters"})
		return
	}

	categoryID, err := strconv.Atoi(categoryIDStr)
	if err != nil || categoryID <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid category_id"})
		return
	}

	price, err := strconv.Atoi(priceStr)
	if err != nil || price <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid price"})
		return
	}

	if stock < 0 || widthCM < 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid stock or width"})
		return
	}

	var categoryExists int
	models.DB.QueryRow(context.Background(), "SELECT COUNT(*) FROM categories WHERE id=$1", categoryID).Scan(&categoryExists)
	if categoryExists == 0 {
		c.JSON(400, gin.H{"success": false, "message": "Category not found"})
		return
	}

	imageURL := ""
	if file, err := c.FormFile("image"); err == nil {
		localPath, err := saveUpload(c, file, "products")
		if err != nil {
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
			return
		}
		imageURL, err = libs.UploadToCloudinary(localPath, "products")
		if err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to upload image: " + err.Error()})
			return
		}
	}

	now := time.Now()
	var id int
	err = models.DB.QueryRow(context.Background(),
		`INSERT INTO products (name, description, category_id, material, color, width_cm,
		 price, stock, image_url, is_featured, is_active, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,true,$11,$11) RETURNING id`,
		name, description, categoryID, material, color, widthCM,
		price, stock, imageURL, isFeatured, now).Scan(&id)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create product: " + err.Error()})
		return
	}

	invalidateProductCache()

	c.JSON(201, gin.H{
		"success": true, "message": "Product created successfully",
		"data": gin.H{
			"id": id, "name": name, "description": description,
			"category_id": categoryID, "material": material, "color": color,
			"width_cm": widthCM, "price": price, "stock": stock,
			"image_url": imageURL, "is_featured": isFeatured, "is_active": true,
		},
	})
}

// @Summary Update product
// @Description Update fabric listing (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Router /admin/products/{id} [patch]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var existing models.Product
	err := scanProduct(models.DB.QueryRow(context.Background(),
		"SELECT "+productColumns+" FROM products WHERE id=$1", id), &existing)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	name := strings.TrimSpace(c.DefaultPostForm("name", existing.Name))
	description := strings.TrimSpace(c.DefaultPostForm("description", existing.Description))
	material := strings.TrimSpace(c.DefaultPostForm("material", existing.Material))
	color := strings.TrimSpace(c.DefaultPostForm("color", existing.Color))
	categoryID, _ := strconv.Atoi(c.DefaultPostForm("category_id", strconv.Itoa(existing.CategoryID)))
	widthCM, _ := strconv.Atoi(c.DefaultPostForm("width_cm", strconv.Itoa(existing.WidthCM)))
	price, _ := strconv.Atoi(c.DefaultPostForm("price", strconv.Itoa(existing.Price)))
	stock, _ := strconv.Atoi(c.DefaultPostForm("stock", strconv.Itoa(existing.Stock)))
	isFeatured, _ := strconv.ParseBool(c.DefaultPostForm("is_featured", strconv.FormatBool(existing.IsFeatured)))
	isActive, _ := strconv.ParseBool(c.DefaultPostForm("is_active", strconv.FormatBool(existing.IsActive)))

	if len(name) < 3 {
		c.JSON(400, gin.H{"success": false, "message": "Product name must be at least 3 characters"})
		return
	}
	if categoryID <= 0 || price <= 0 || stock < 0 || widthCM < 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product fields"})
		return
	}

	imageURL := existing.ImageURL
	if file, err := c.FormFile("image"); err == nil {
		localPath, err := saveUpload(c, file, "products")
		if err != nil {
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
			return
		}
		if uploaded, err := libs.UploadToCloudinary(localPath, "products"); err == nil {
			imageURL = uploaded
		}
	}

	_, err = models.DB.Exec(context.Background(),
		`UPDATE products SET name=$1, description=$2, category_id=$3, material=$4, color=$5,
		 width_cm=$6, price=$7, stock=$8, image_url=$9, is_featured=$10, is_active=$11,
		 updated_at=$12 WHERE id=$13`,
		name, description, categoryID, material, color, widthCM,
		price, stock, imageURL, isFeatured, isActive, time.Now(), id)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update product"})
		return
	}

	invalidateProductCache()

	c.JSON(200, gin.H{"success": true, "message": "Product updated successfully"})
}

// @Summary Delete product
// @Description Deactivate fabric listing (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Router /admin/products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	tag, err := models.DB.Exec(context.Background(),
		"UPDATE products SET is_active=false, updated_at=$1 WHERE id=$2", time.Now(), id)
	if err != nil || tag.RowsAffected() == 0 {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	invalidateProductCache()

	c.JSON(200, gin.H{"success": true, "message": "Product deactivated"})
}
