package cms_routes

import (
	"github.com/MayankMaurya27/Ecommerce/controllers/cms/product_controller"
	"github.com/gin-gonic/gin"
)

func SetupProductRoutes(rg *gin.RouterGroup) {
	product := rg.Group("/products")
	{
		product.GET("", product_controller.GetProducts)
		product.POST("", product_controller.CreateProduct)
		product.PUT("/:id", product_controller.UpdateProduct)
		product.DELETE("/:id", product_controller.DeleteProduct)
	}
}
