package auth_controller

import (
	"fmt"
	"net/http"
	"net/url"

	dashboard_cache "github.com/MayankMaurya27/Ecommerce/cache"
	"github.com/MayankMaurya27/Ecommerce/config"
	"github.com/MayankMaurya27/Ecommerce/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func createOrUpdateUser(googleUser *models.GoogleUserInfo, googleID string, emailVerified bool) (*models.User, error) {
	var user models.User

	result := config.Gorm.
		Where("email = ?", googleUser.Email).
		First(&user)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			// First-time Google sign-in, create the user
			user = models.User{
				Email:         googleUser.Email,
				Name:          googleUser.Name,
				GoogleID:      googleID,
				Provider:      "google",
				EmailVerified: emailVerified,
				Avatar:        &googleUser.Picture,
			}
			if err := config.Gorm.Create(&user).Error; err != nil {
				return nil, err
			}
			// New user changes TotalUsers; drop the snapshot like any other
			// collection write does.
			dashboard_cache.Invalidate()
			return &user, nil
		}
		return nil, result.Error
	}

	// Existing user: refresh profile fields only
	updates := map[string]interface{}{
		"avatar":         googleUser.Picture,
		"email_verified": emailVerified,
	}
	if user.Name == "" {
		updates["name"] = googleUser.Name
	}
	if user.GoogleID == "" {
		updates["google_id"] = googleID
		updates["provider"] = "google"
	}

	if err := config.Gorm.Model(&user).Updates(updates).Error; err != nil {
		return nil, err
	}

	if user.Name == "" {
		user.Name = googleUser.Name
	}
	user.Avatar = &googleUser.Picture
	user.EmailVerified = emailVerified

	return &user, nil
}

func redirectToFrontendWithError(c *gin.Context, errorMsg string) {
	frontendURL := config.GetFrontendURL()
	redirectURL := fmt.Sprintf("%s/auth/error?message=%s", frontendURL, url.QueryEscape(errorMsg))
	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}
