package auth_controller

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/MayankMaurya27/Ecommerce/config"
	"github.com/MayankMaurya27/Ecommerce/models"
	"github.com/MayankMaurya27/Ecommerce/utils"
	"github.com/gin-gonic/gin"
)

// GoogleCallback godoc
// @Summary Google OAuth callback
// @Description Verifies the state token, exchanges the authorization code, creates/updates the user and issues a JWT cookie before redirecting back to the storefront.
// @Tags Auth - Google OAuth
// @Produce json
// @Success 307 "Redirect to storefront after login"
// @Failure 400 {object} models.ApiResponse "Invalid state or missing authorization code"
// @Router /auth/google/callback [get]
func GoogleCallback(c *gin.Context) {
	state := c.Query("state")
	savedState, err := c.Cookie("oauth_state")
	if err != nil || state != savedState {
		log.Printf("[auth.google] state mismatch")
		redirectToFrontendWithError(c, "Invalid state token")
		return
	}

	// State is single use
	c.SetCookie("oauth_state", "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		redirectToFrontendWithError(c, "No authorization code")
		return
	}

	ctx := c.Request.Context()
	token, err := config.GoogleOAuthConfig.Exchange(ctx, code)
	if err != nil {
		log.Printf("[auth.google] exchange failed: %v", err)
		redirectToFrontendWithError(c, "Failed to exchange token")
		return
	}

	client := config.GoogleOAuthConfig.Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		log.Printf("[auth.google] userinfo request failed: %v", err)
		redirectToFrontendWithError(c, "Failed to get user info")
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		redirectToFrontendWithError(c, "Failed to read user info")
		return
	}

	var googleUser models.GoogleUserInfo
	if err := json.Unmarshal(body, &googleUser); err != nil {
		log.Printf("[auth.google] decode failed: %v", err)
		redirectToFrontendWithError(c, "Failed to decode user info")
		return
	}

	googleID := googleUser.Sub
	if googleID == "" {
		googleID = googleUser.ID
	}
	if googleID == "" {
		redirectToFrontendWithError(c, "Google ID not found")
		return
	}

	emailVerified := googleUser.EmailVerified || googleUser.VerifiedEmail

	user, err := createOrUpdateUser(&googleUser, googleID, emailVerified)
	if err != nil {
		log.Printf("[auth.google] db error: %v", err)
		redirectToFrontendWithError(c, "Database error")
		return
	}

	jwtToken, err := utils.GenerateJWT(user.ID, user.Email, user.Name)
	if err != nil {
		log.Printf("[auth.google] jwt error: %v", err)
		redirectToFrontendWithError(c, "Failed to generate token")
		return
	}

	isProd := os.Getenv("ENV") == "production"
	c.SetCookie(
		"auth_token",
		jwtToken,
		24*60*60, // 24 hours
		"/",
		"",
		isProd,
		true, // httpOnly
	)

	log.Printf("[auth.google] login successful: %s (verified: %v)", user.Email, emailVerified)

	c.Redirect(http.StatusTemporaryRedirect, config.GetFrontendURL())
}
