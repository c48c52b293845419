package auth_controller

import (
	"log"
	"net/http"

	"github.com/MayankMaurya27/Ecommerce/config"
	"github.com/MayankMaurya27/Ecommerce/middleware"
	"github.com/MayankMaurya27/Ecommerce/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetCurrentUser godoc
// @Summary Get the signed-in user
// @Description Returns the profile of the user identified by the auth cookie or bearer token.
// @Tags Auth - Google OAuth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.User}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 404 {object} models.ApiResponse "User not found"
// @Router /auth/me [get]
func GetCurrentUser(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User
	if err := config.Gorm.WithContext(ctx).
		Where("id = ?", userID).
		First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "User not found"))
			return
		}
		log.Printf("[auth.me] ERROR query failed user=%s err=%v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch user"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "User fetched successfully", user))
}
