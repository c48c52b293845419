package ecommerce_routes

import (
	"github.com/MayankMaurya27/Ecommerce/controllers/ecommerce/auth_controller"
	"github.com/MayankMaurya27/Ecommerce/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up all authentication routes
func SetupAuthRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.GET("/google/login", auth_controller.GoogleLogin)
		auth.GET("/google/callback", auth_controller.GoogleCallback)
		auth.POST("/logout", auth_controller.Logout)

		auth.GET("/me", middleware.AuthMiddleware(), auth_controller.GetCurrentUser)
	}
}
