package cart_controller

import (
	"log"
	"net/http"

	"github.com/MayankMaurya27/Ecommerce/middleware"
	"github.com/MayankMaurya27/Ecommerce/models"
	"github.com/MayankMaurya27/Ecommerce/services"
	"github.com/gin-gonic/gin"
)

var cartService *services.CartService

// InitCart wires the Redis-backed cart store.
func InitCart(svc *services.CartService) {
	cartService = svc
}

// GetCart godoc
// @Summary Get the signed-in user's cart
// @Description Returns the stored cart items. A user with no stored cart gets an empty list.
// @Tags store
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.CartItem}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /store/cart [get]
func GetCart(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	items, err := cartService.Get(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[store.cart] ERROR get failed user=%s err=%v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart fetched successfully", items))
}
