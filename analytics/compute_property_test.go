package analytics

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/MayankMaurya27/Ecommerce/models"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func genOrders() gopter.Gen {
	genItem := gopter.CombineGens(
		gen.IntRange(0, 9),
		gen.IntRange(0, 500),
		gen.IntRange(0, 4),
	).Map(func(vals []interface{}) models.CartItem {
		return models.CartItem{
			Title:    fmt.Sprintf("product-%d", vals[0].(int)),
			Price:    fmt.Sprintf("%d.50", vals[1].(int)),
			Category: fmt.Sprintf("category-%d", vals[2].(int)),
		}
	})

	genOrder := gopter.CombineGens(
		gen.IntRange(0, 20),
		gen.SliceOfN(3, genItem),
		gen.IntRange(0, 30),
	).Map(func(vals []interface{}) models.Order {
		days := vals[2].(int)
		return models.Order{
			Email:     fmt.Sprintf("user%d@example.com", vals[0].(int)),
			Date:      time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC).Add(-time.Duration(days) * 24 * time.Hour).Format(time.RFC3339),
			CartItems: vals[1].([]models.CartItem),
		}
	})

	return gen.SliceOf(genOrder)
}

func TestProperty_CategoryRevenuePartitionsTotalRevenue(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("sum of category revenue equals total revenue", prop.ForAll(
		func(orders []models.Order) bool {
			snap := Compute(nil, orders, nil, testNow)
			sum := 0.0
			for _, v := range snap.CategoryRevenue {
				sum += v
			}
			return math.Abs(sum-snap.TotalRevenue) < 1e-6
		},
		genOrders(),
	))

	properties.TestingRun(t)
}

func TestProperty_TopProductsSortedAndBounded(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("top products are non-increasing by sales and at most 5", prop.ForAll(
		func(orders []models.Order) bool {
			snap := Compute(nil, orders, nil, testNow)
			if len(snap.TopProducts) > 5 {
				return false
			}
			for i := 1; i < len(snap.TopProducts); i++ {
				if snap.TopProducts[i].Sales > snap.TopProducts[i-1].Sales {
					return false
				}
			}
			return true
		},
		genOrders(),
	))

	properties.TestingRun(t)
}

func TestProperty_SnapshotIsDeterministic(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("recomputing the same inputs yields the same aggregates", prop.ForAll(
		func(orders []models.Order) bool {
			a := Compute(nil, orders, nil, testNow)
			b := Compute(nil, orders, nil, testNow)
			return a.TotalRevenue == b.TotalRevenue &&
				a.TotalOrders == b.TotalOrders &&
				a.UniqueCustomers == b.UniqueCustomers &&
				a.GrowthRate == b.GrowthRate &&
				len(a.TopProducts) == len(b.TopProducts)
		},
		genOrders(),
	))

	properties.TestingRun(t)
}
