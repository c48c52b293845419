package order_controller

import (
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/MayankMaurya27/Ecommerce/config"
	"github.com/MayankMaurya27/Ecommerce/models"
	"github.com/gin-gonic/gin"
)

// GetOrders godoc
// @Summary Get orders (admin)
// @Description Retrieve all orders with pagination, newest first. Supports optional search by customer email.
// @Tags Admin - Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 50)" default(10)
// @Param q query string false "Search by customer email"
// @Success 200 {object} models.ApiResponse{data=[]models.Order,meta=models.Pagination}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/orders [get]
func GetOrders(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		log.Printf("[admin.orders] WARN invalid page=%q err=%v -> default 1", c.Query("page"), err)
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		log.Printf("[admin.orders] WARN invalid limit=%q err=%v -> default 10", c.Query("limit"), err)
		limit = 10
	}

	if page < 1 {
		log.Printf("[admin.orders] WARN page < 1 (%d) -> set 1", page)
		page = 1
	}
	if limit < 1 || limit > 50 {
		log.Printf("[admin.orders] WARN limit out of range (%d) -> set 10", limit)
		limit = 10
	}
	offset := (page - 1) * limit

	q := strings.TrimSpace(c.Query("q"))
	log.Printf("[admin.orders] params page=%d limit=%d offset=%d q=%q", page, limit, offset, q)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	db := config.Gorm.WithContext(ctx).Model(&models.Order{})
	if q != "" {
		db = db.Where("email ILIKE ?", "%"+q+"%")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		log.Printf("[admin.orders] ERROR count failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count orders"))
		return
	}

	var orders []models.Order
	if err := db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&orders).Error; err != nil {
		log.Printf("[admin.orders] ERROR query failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	log.Printf("[admin.orders] respond 200 count=%d total=%d page=%d/%d", len(orders), total, page, totalPages)

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Orders retrieved successfully", orders, &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}))
}
