package analytics_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/MayankMaurya27/Ecommerce/analytics"
	dashboard_cache "github.com/MayankMaurya27/Ecommerce/cache"
	"github.com/MayankMaurya27/Ecommerce/config"
	"github.com/MayankMaurya27/Ecommerce/models"
	"github.com/gin-gonic/gin"
)

// GetDashboard godoc
// @Summary Get the analytics dashboard snapshot
// @Description Returns revenue, order/product/user counts, low-stock alerts, top sellers, category revenue split, the trailing 7-day order window and growth projections, all derived in one pass from the raw collections
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.AnalyticsSnapshot}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/analytics/dashboard [get]
func GetDashboard(c *gin.Context) {
	log.Printf("[admin.analytics-dashboard] start")

	if snapshot, ok := dashboard_cache.Get(); ok {
		log.Printf("[admin.analytics-dashboard] respond 200 (cached)")
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Analytics snapshot retrieved successfully", snapshot))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var products []models.Product
	if err := config.Gorm.WithContext(ctx).Find(&products).Error; err != nil {
		log.Printf("[admin.analytics-dashboard] ERROR load products err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch analytics"))
		return
	}

	var orders []models.Order
	if err := config.Gorm.WithContext(ctx).Find(&orders).Error; err != nil {
		log.Printf("[admin.analytics-dashboard] ERROR load orders err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch analytics"))
		return
	}

	var users []models.User
	if err := config.Gorm.WithContext(ctx).Find(&users).Error; err != nil {
		log.Printf("[admin.analytics-dashboard] ERROR load users err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch analytics"))
		return
	}

	snapshot := analytics.Compute(products, orders, users, time.Now())
	dashboard_cache.Set(snapshot)

	log.Printf("[admin.analytics-dashboard] respond 200 orders=%d revenue=%.2f low_stock=%d",
		snapshot.TotalOrders, snapshot.TotalRevenue, len(snapshot.LowStockProducts))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Analytics snapshot retrieved successfully", snapshot))
}
