package ecommerce_routes

import (
	"github.com/MayankMaurya27/Ecommerce/controllers/ecommerce/cart_controller"
	"github.com/MayankMaurya27/Ecommerce/controllers/ecommerce/order_controller"
	"github.com/MayankMaurya27/Ecommerce/middleware"
	"github.com/gin-gonic/gin"
)

// SetupUserRoutes sets up the signed-in storefront routes (cart, checkout).
func SetupUserRoutes(router *gin.RouterGroup) {
	store := router.Group("/store")
	store.Use(middleware.AuthMiddleware())
	{
		store.GET("/cart", cart_controller.GetCart)
		store.PUT("/cart", cart_controller.SaveCart)

		store.POST("/orders", order_controller.CreateOrder)
	}
}
