package product_controller

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

// GetStorefrontProducts godoc
// @Summary Get storefront products
// @Description Retrieve products with optional search, category and price-range filters, newest first.
// @Tags store
// @Produce json
// @Param q query string false "Search query (title or description)"
// @Param category query string false "Category name (case-insensitive)"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.ApiResponse{data=[]models.Product,meta=models.Pagination}
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/products [get]
func GetStorefrontProducts(c *gin.Context) {
	page, limit := parsePagination(c)

	searchQuery := strings.TrimSpace(c.Query("q"))
	category := strings.TrimSpace(c.Query("category"))
	minPriceStr := c.Query("minPrice")
	maxPriceStr := c.Query("maxPrice")

	log.Printf("[store.products] params page=%d limit=%d q=%q category=%q minPrice=%q maxPrice=%q",
		page, limit, searchQuery, category, minPriceStr, maxPriceStr)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	db := config.Gorm.WithContext(ctx).Model(&models.Product{})

	if searchQuery != "" {
		like := "%" + searchQuery + "%"
		db = db.Where("title ILIKE ? OR description ILIKE ?", like, like)
	}
	if category != "" {
		db = db.Where("LOWER(category) = LOWER(?)", category)
	}
	if minPriceStr != "" {
		if minPrice, err := strconv.ParseFloat(minPriceStr, 64); err == nil {
			db = db.Where("price >= ?", minPrice)
		} else {
			log.Printf("[store.products] WARN invalid minPrice=%q ignored", minPriceStr)
		}
	}
	if maxPriceStr != "" {
		if maxPrice, err := strconv.ParseFloat(maxPriceStr, 64); err == nil {
			db = db.Where("price <= ?", maxPrice)
		} else {
			log.Printf("[store.products] WARN invalid maxPrice=%q ignored", maxPriceStr)
		}
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		log.Printf("[store.products] ERROR count failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count products"))
		return
	}

	var products []models.Product
	if err := db.Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&products).Error; err != nil {
		log.Printf("[store.products] ERROR query failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	log.Printf("[store.products] respond 200 count=%d total=%d", len(products), total)

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products fetched successfully", products, &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}))
}

func parsePagination(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "12"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 12
	}
	return page, limit
}
