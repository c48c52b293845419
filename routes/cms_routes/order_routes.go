package cms_routes

import (
	"github.com/MayankMaurya27/Ecommerce/controllers/cms/order_controller"
	"github.com/gin-gonic/gin"
)

func SetupOrderRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	{
		orders.GET("", order_controller.GetOrders)
		orders.GET("/:id/invoice", order_controller.DownloadOrderInvoicePDF)
	}
}
