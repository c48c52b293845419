package cms_routes

import (
	"github.com/MayankMaurya27/Ecommerce/controllers/cms/analytics_controller"
	"github.com/gin-gonic/gin"
)

func SetupAnalyticsRoutes(rg *gin.RouterGroup) {
	analytics := rg.Group("/analytics")
	{
		analytics.GET("/dashboard", analytics_controller.GetDashboard)
	}
}
