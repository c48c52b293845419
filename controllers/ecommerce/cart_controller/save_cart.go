package cart_controller

import (
	"log"
	"net/http"

	"github.com/MayankMaurya27/Ecommerce/middleware"
	"github.com/MayankMaurya27/Ecommerce/models"
	"github.com/gin-gonic/gin"
)

// SaveCartRequest replaces the whole cart. The client owns the cart contents;
// the server just snapshots whatever array it is handed.
type SaveCartRequest struct {
	CartItems []models.CartItem `json:"cartItems" binding:"required"`
}

// SaveCart godoc
// @Summary Replace the signed-in user's cart
// @Description Overwrites the stored cart with the posted items. Posting an empty array clears the cart.
// @Tags store
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SaveCartRequest true "Cart contents"
// @Success 200 {object} models.ApiResponse{data=[]models.CartItem}
// @Failure 400 {object} models.ApiResponse "Invalid payload"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /store/cart [put]
func SaveCart(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	var req SaveCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid cart payload"))
		return
	}

	if err := cartService.Save(c.Request.Context(), userID, req.CartItems); err != nil {
		log.Printf("[store.cart] ERROR save failed user=%s err=%v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save cart"))
		return
	}

	log.Printf("[store.cart] saved user=%s items=%d", userID, len(req.CartItems))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart saved successfully", req.CartItems))
}
