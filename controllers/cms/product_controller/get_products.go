package product_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/MayankMaurya27/Ecommerce/config"
	"github.com/MayankMaurya27/Ecommerce/models"
	"github.com/gin-gonic/gin"
)

// GetProducts godoc
// @Summary List products
// @Description Paginated product list for the admin panel, newest first
// @Tags Admin - Products
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} models.ApiResponse{data=[]models.Product}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/products [get]
func GetProducts(c *gin.Context) {
	log.Printf("[admin.get-products] start")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var total int64
	if err := config.Gorm.WithContext(ctx).Model(&models.Product{}).Count(&total).Error; err != nil {
		log.Printf("[admin.get-products] ERROR count err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	var products []models.Product
	if err := config.Gorm.WithContext(ctx).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&products).Error; err != nil {
		log.Printf("[admin.get-products] ERROR query err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
	}

	log.Printf("[admin.get-products] respond 200 products=%d total=%d", len(products), total)
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products retrieved successfully", products, meta))
}
