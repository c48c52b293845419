// Package analytics derives the admin dashboard snapshot from the raw
// product, order and user collections. Everything here is pure: Compute does
// no I/O and the snapshot is rebuilt from scratch on every call, which keeps
// the dashboard immune to incremental-update staleness bugs.
package analytics

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/MayankMaurya27/Ecommerce/models"
)

const (
	// lowStockThreshold flags products with fewer units than this for restocking.
	lowStockThreshold = 10

	// assumedStartingStock backs the inventory estimate for products without an
	// explicit quantity: effective stock = assumedStartingStock - units sold.
	// This is a business-logic placeholder pending real inventory data, not a
	// correctness requirement.
	assumedStartingStock = 100

	// recentWindow is the trailing period used for short-term rate projections.
	recentWindow = 7 * 24 * time.Hour

	topProductLimit = 5
)

// Compute builds an AnalyticsSnapshot from the collections as of now.
// Malformed numeric fields count as zero and unparseable order dates are
// excluded from the recent window; normal input never produces an error.
//
// Sales are aggregated by raw line-item title. Titles are the de facto
// product key here and are deliberately not normalized: differing casing or
// whitespace yields separate buckets, for parity with the numbers the
// dashboard has always shown.
func Compute(products []models.Product, orders []models.Order, users []models.User, now time.Time) models.AnalyticsSnapshot {
	totalOrders := len(orders)

	// Total revenue across all line items.
	totalRevenue := 0.0
	for _, ord := range orders {
		for _, item := range ord.CartItems {
			totalRevenue += item.PriceValue()
		}
	}

	// Per-product sales counts, keyed by title. salesOrder remembers the
	// first-encountered order of titles so ranking ties stay stable.
	productSales := make(map[string]int)
	var salesOrder []string
	for _, ord := range orders {
		for _, item := range ord.CartItems {
			if _, seen := productSales[item.Title]; !seen {
				salesOrder = append(salesOrder, item.Title)
			}
			productSales[item.Title]++
		}
	}

	// Low-stock set.
	lowStock := make([]models.Product, 0)
	for _, prod := range products {
		quantity := 0
		if prod.Quantity != nil {
			quantity = *prod.Quantity
		} else {
			quantity = assumedStartingStock - productSales[prod.Title]
			if quantity < 0 {
				quantity = 0
			}
		}
		if quantity < lowStockThreshold {
			lowStock = append(lowStock, prod)
		}
	}

	// Top sellers: join each sales bucket back to the first product matching
	// its title for display metadata, then rank by units sold.
	topProducts := make([]models.TopProduct, 0, len(salesOrder))
	for _, title := range salesOrder {
		count := productSales[title]
		entry := models.TopProduct{Title: title, Sales: count}
		if prod := findByTitle(products, title); prod != nil {
			entry.Revenue = float64(count) * prod.Price
			entry.ImageURL = prod.ImageURL
			entry.Category = prod.Category
		}
		topProducts = append(topProducts, entry)
	}
	sort.SliceStable(topProducts, func(i, j int) bool {
		return topProducts[i].Sales > topProducts[j].Sales
	})
	if len(topProducts) > topProductLimit {
		topProducts = topProducts[:topProductLimit]
	}

	// Revenue per category, from the line-item snapshots. This intentionally
	// reflects price and category at time of order capture, not the current
	// catalog record.
	categoryRevenue := make(map[string]float64)
	for _, ord := range orders {
		for _, item := range ord.CartItems {
			categoryRevenue[item.Category] += item.PriceValue()
		}
	}

	// Orders inside the trailing window.
	windowStart := now.Add(-recentWindow)
	recentOrders := make([]models.Order, 0)
	for _, ord := range orders {
		when, ok := parseOrderDate(ord.Date)
		if !ok {
			continue
		}
		if !when.Before(windowStart) {
			recentOrders = append(recentOrders, ord)
		}
	}

	// Derived rates.
	avgOrderValue := 0.0
	if totalOrders > 0 {
		avgOrderValue = totalRevenue / float64(totalOrders)
	}
	ordersPerDay := float64(len(recentOrders)) / 7
	predictedMonthlyRevenue := ordersPerDay * avgOrderValue * 30

	// The max(...,1) floor is how divide-by-zero is guarded; with zero total
	// orders this degenerates to recent/1, which is the intended behavior.
	growthRate := 0.0
	if len(recentOrders) > 0 {
		previous := totalOrders - len(recentOrders)
		if previous < 1 {
			previous = 1
		}
		growthRate = round1(float64(len(recentOrders)) / float64(previous) * 100)
	}

	// Customer metrics keyed by raw order email.
	seenEmails := make(map[string]struct{})
	for _, ord := range orders {
		seenEmails[ord.Email] = struct{}{}
	}
	uniqueCustomers := len(seenEmails)
	avgCustomerValue := 0.0
	if uniqueCustomers > 0 {
		avgCustomerValue = totalRevenue / float64(uniqueCustomers)
	}

	return models.AnalyticsSnapshot{
		TotalRevenue:            totalRevenue,
		TotalOrders:             totalOrders,
		TotalProducts:           len(products),
		TotalUsers:              len(users),
		LowStockProducts:        lowStock,
		TopProducts:             topProducts,
		CategoryRevenue:         categoryRevenue,
		RecentOrders:            recentOrders,
		PredictedMonthlyRevenue: predictedMonthlyRevenue,
		GrowthRate:              growthRate,
		UniqueCustomers:         uniqueCustomers,
		AvgCustomerValue:        avgCustomerValue,
		AvgOrderValue:           avgOrderValue,
		OrdersPerDay:            ordersPerDay,
	}
}

func findByTitle(products []models.Product, title string) *models.Product {
	for i := range products {
		if products[i].Title == title {
			return &products[i]
		}
	}
	return nil
}

// orderDateLayouts covers the formats checkout has written over time.
var orderDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"Jan 2, 2006",
	"Jan 2, 2006 3:04:05 PM",
	"1/2/2006, 3:04:05 PM",
	"1/2/2006",
}

func parseOrderDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range orderDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
