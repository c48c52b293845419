// @title ShopSmart API
// @version 1.0
// @description Storefront and admin analytics API for the ShopSmart store
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/MayankMaurya27/Ecommerce/config"
	"github.com/MayankMaurya27/Ecommerce/controllers/cms/product_controller"
	"github.com/MayankMaurya27/Ecommerce/controllers/ecommerce/cart_controller"
	"github.com/MayankMaurya27/Ecommerce/controllers/ecommerce/insight_controller"
	store_order "github.com/MayankMaurya27/Ecommerce/controllers/ecommerce/order_controller"
	"github.com/MayankMaurya27/Ecommerce/controllers/ecommerce/search_controller"
	"github.com/MayankMaurya27/Ecommerce/middleware"
	"github.com/MayankMaurya27/Ecommerce/routes/cms_routes"
	"github.com/MayankMaurya27/Ecommerce/routes/ecommerce_routes"
	"github.com/MayankMaurya27/Ecommerce/services"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	defer config.CloseDB()

	// Redis connection (cart store + rate limiter)
	config.ConnectRedis()

	// Google sign-in
	config.InitGoogleOAuth()

	// Cloudinary for product image uploads
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	if err := product_controller.InitCloudinary(cloudName, apiKey, apiSecret); err != nil {
		log.Fatalf("Failed to initialize Cloudinary: %v", err)
	}

	// External AI services
	search_controller.InitVision(services.NewVisionClient())
	insight_controller.InitInsight(services.NewInsightClient())

	// Redis-backed cart
	carts := services.NewCartService(config.RedisClient)
	cart_controller.InitCart(carts)
	store_order.InitCheckout(carts)

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	api := router.Group("/api/v1")

	// Admin routes (auth + rate limited)
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.AuthMiddleware())
	adminGroup.Use(middleware.RateLimiter(100, time.Minute))

	cms_routes.SetupAnalyticsRoutes(adminGroup)
	cms_routes.SetupProductRoutes(adminGroup)
	cms_routes.SetupOrderRoutes(adminGroup)
	log.Println("✅ Admin routes registered")

	// Public storefront + auth
	ecommerce_routes.SetupAuthRoutes(api)
	ecommerce_routes.SetupStorefrontRoutes(api)
	ecommerce_routes.SetupUserRoutes(api)
	log.Println("✅ Storefront routes registered")

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("🚀 Server is running on http://localhost:%s\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
