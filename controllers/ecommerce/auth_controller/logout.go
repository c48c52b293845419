package auth_controller

import (
	"net/http"
	"os"

	"github.com/MayankMaurya27/Ecommerce/models"
	"github.com/gin-gonic/gin"
)

// Logout godoc
// @Summary Logout user
// @Description Logs out the authenticated user by clearing the auth_token cookie.
// @Tags Auth - Google OAuth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse "Logged out"
// @Router /auth/logout [post]
func Logout(c *gin.Context) {
	isProd := os.Getenv("ENV") == "production"
	// Must match name, path, domain, secure and httpOnly used when setting it
	c.SetCookie(
		"auth_token",
		"",
		-1, // MaxAge < 0 -> delete
		"/",
		"",
		isProd,
		true,
	)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out", nil))
}
