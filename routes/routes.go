package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"fabric-store/controllers"
	"fabric-store/middleware"
	"fabric-store/models"
	"fabric-store/services"
)

// SetupRoutes wires all controllers and returns the flash-sale service
// so main can start its refresh loop.
func SetupRoutes(router *gin.Engine) *services.FlashSaleService {
	store := models.NewKVStore()

	dealSvc := services.NewDealService()
	flashSvc := services.NewFlashSaleService(dealSvc)
	faqSvc := services.NewFAQService(store)
	legalSvc := services.NewLegalService(store)
	newsSvc := services.NewNewsletterService()

	authCtrl := &controllers.AuthController{}
	productCtrl := &controllers.ProductController{}
	collectionCtrl := &controllers.CollectionController{}
	dealCtrl := controllers.NewDealController(dealSvc)
	flashCtrl := controllers.NewFlashSaleController(flashSvc)
	faqCtrl := controllers.NewFAQController(faqSvc)
	legalCtrl := controllers.NewLegalController(legalSvc)
	newsCtrl := controllers.NewNewsletterController(newsSvc)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.POST("/auth/login", authCtrl.Login)

	router.GET("/categories", productCtrl.GetAllCategories)
	router.GET("/products", productCtrl.GetAllProducts)
	router.GET("/products/filter", productCtrl.FilterProducts)
	router.GET("/products/featured", productCtrl.GetFeaturedProducts)
	router.GET("/products/:id", productCtrl.GetProductByID)

	router.GET("/collections", collectionCtrl.GetCollections)
	router.GET("/collections/:slug", collectionCtrl.GetCollectionBySlug)

	router.GET("/deals", dealCtrl.GetDeals)
	router.GET("/deals/:id", dealCtrl.GetDealByID)

	router.GET("/flash-sales", flashCtrl.GetFlashSales)
	router.POST("/flash-sales/refresh", flashCtrl.Refresh)

	router.GET("/faqs", faqCtrl.GetFAQs)
	router.GET("/faqs/categories", faqCtrl.GetCategories)
	router.GET("/faqs/search", faqCtrl.SearchFAQs)
	router.GET("/faqs/search/history", faqCtrl.GetSearchHistory)
	router.POST("/faqs/:id/vote", faqCtrl.Vote)
	router.POST("/faqs/:id/bookmark", faqCtrl.ToggleBookmark)

	router.GET("/legal", legalCtrl.GetDocuments)
	router.GET("/legal/bookmarks", legalCtrl.GetBookmarks)
	router.GET("/legal/:slug", legalCtrl.GetDocument)
	router.POST("/legal/:slug/bookmark", legalCtrl.ToggleBookmark)

	router.POST("/api/newsletter/subscribe", newsCtrl.Subscribe)
	router.GET("/newsletter/verify", newsCtrl.Verify)

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("/products", productCtrl.CreateProduct)
		admin.PATCH("/products/:id", productCtrl.UpdateProduct)
		admin.DELETE("/products/:id", productCtrl.DeleteProduct)

		admin.POST("/deals", dealCtrl.CreateDeal)
		admin.PATCH("/deals/:id", dealCtrl.UpdateDeal)
		admin.DELETE("/deals/:id", dealCtrl.DeleteDeal)
	}

	router.Static("/uploads", "./uploads")

	return flashSvc
}
