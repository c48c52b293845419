package main

import (
	"fmt"
	"log"
	"time"

	"github.com/MayankMaurya27/Ecommerce/config"
	"github.com/MayankMaurya27/Ecommerce/models"
	"github.com/joho/godotenv"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main migrates the schema and seeds demo catalog data.
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application.
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("SHOPSMART - Schema Migration + Demo Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	defer config.CloseDB()
	log.Println("✓ Connected to database")

	if err := config.Gorm.AutoMigrate(&models.Product{}, &models.Order{}, &models.User{}); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("✓ Schema migrated")

	var count int64
	if err := config.Gorm.Model(&models.Product{}).Count(&count).Error; err != nil {
		log.Fatalf("Database error: %v", err)
	}
	if count > 0 {
		fmt.Printf("Catalog already has %d products, skipping seed\n", count)
		return
	}

	qty := func(n int) *int { return &n }
	products := []models.Product{
		{Title: "Nike Air Max 270", Description: "Lifestyle running shoe with visible air unit", Price: 7999, Category: "shoes", Quantity: qty(40)},
		{Title: "Classic Denim Jacket", Description: "Mid-wash denim jacket with button front", Price: 2499, Category: "clothing", Quantity: qty(25)},
		{Title: "Wireless Earbuds Pro", Description: "Noise cancelling earbuds, 24h battery", Price: 4999, Category: "electronics", Quantity: qty(60)},
		{Title: "Leather Wallet", Description: "Slim bifold wallet, full-grain leather", Price: 1299, Category: "accessories"},
		{Title: "Stainless Water Bottle", Description: "Insulated 750ml bottle", Price: 899, Category: "accessories", Quantity: qty(120)},
	}

	if err := config.Gorm.Create(&products).Error; err != nil {
		log.Fatalf("Failed to seed products: %v", err)
	}
	log.Printf("✓ Seeded %d products", len(products))

	orders := []models.Order{
		{
			Email: "demo@example.com",
			Date:  time.Now().AddDate(0, 0, -2).Format(time.RFC3339),
			CartItems: models.CartItemsList{
				{Title: "Nike Air Max 270", Price: "7999", Category: "shoes"},
				{Title: "Leather Wallet", Price: "1299", Category: "accessories"},
			},
		},
		{
			Email: "shopper@example.com",
			Date:  time.Now().AddDate(0, 0, -20).Format(time.RFC3339),
			CartItems: models.CartItemsList{
				{Title: "Wireless Earbuds Pro", Price: "4999", Category: "electronics"},
			},
		},
	}

	if err := config.Gorm.Create(&orders).Error; err != nil {
		log.Fatalf("Failed to seed orders: %v", err)
	}
	log.Printf("✓ Seeded %d orders", len(orders))

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Seed Complete!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Browse the catalog at GET /api/v1/store/products")
	fmt.Println("3. View analytics at GET /api/v1/admin/analytics/dashboard")
	fmt.Println()
}
