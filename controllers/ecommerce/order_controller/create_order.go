package order_controller

import (
	"log"
	"net/http"
	"time"

	dashboard_cache "github.com/MayankMaurya27/Ecommerce/cache"
	"github.com/MayankMaurya27/Ecommerce/config"
	"github.com/MayankMaurya27/Ecommerce/middleware"
	"github.com/MayankMaurya27/Ecommerce/models"
	"github.com/MayankMaurya27/Ecommerce/services"
	"github.com/gin-gonic/gin"
)

var cartService *services.CartService

// InitCheckout wires the cart store so checkout can clear it after an order.
func InitCheckout(svc *services.CartService) {
	cartService = svc
}

// CreateOrder godoc
// @Summary Place an order (checkout)
// @Description Persists the order with line-item snapshots, then clears the user's stored cart. Orders are immutable once written.
// @Tags store
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateOrderRequest true "Order payload"
// @Success 201 {object} models.ApiResponse{data=models.Order}
// @Failure 400 {object} models.ApiResponse "Invalid payload"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /store/orders [post]
func CreateOrder(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order payload"))
		return
	}

	// The order email comes from the JWT claims, not the payload, so the
	// per-customer metrics cannot be skewed by a forged body field.
	email, ok := middleware.GetUserEmailFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	date := req.Date
	if date == "" {
		date = time.Now().Format(time.RFC3339)
	}

	order := models.Order{
		Email:     email,
		Date:      date,
		CartItems: req.CartItems,
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.Gorm.WithContext(ctx).Create(&order).Error; err != nil {
		log.Printf("[store.checkout] ERROR create failed user=%s err=%v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to place order"))
		return
	}

	// Best effort: a stale cart is recoverable, a lost order is not.
	if err := cartService.Clear(c.Request.Context(), userID); err != nil {
		log.Printf("[store.checkout] WARN cart clear failed user=%s err=%v", userID, err)
	}

	dashboard_cache.Invalidate()

	log.Printf("[store.checkout] order %s placed user=%s items=%d", order.ID, userID, len(order.CartItems))
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Order placed successfully", order))
}
