package ecommerce_routes

import (
	"github.com/MayankMaurya27/Ecommerce/controllers/ecommerce/insight_controller"
	"github.com/MayankMaurya27/Ecommerce/controllers/ecommerce/product_controller"
	"github.com/MayankMaurya27/Ecommerce/controllers/ecommerce/search_controller"
	"github.com/gin-gonic/gin"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")

	products := store.Group("/products")
	{
		products.GET("", product_controller.GetStorefrontProducts)
		products.GET("/:id", product_controller.GetStorefrontProductByID)
		products.GET("/:id/insight", insight_controller.GetProductInsight)
	}

	store.POST("/search/image", search_controller.ImageSearch)
}
