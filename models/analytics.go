package models

// TopProduct represents one entry of the best-sellers ranking. The join back
// to the catalog is by title, so ImageURL and Category come from the first
// product matching the line-item title (may be empty if it was deleted).
type TopProduct struct {
	Title    string  `json:"title"`
	Sales    int     `json:"sales"`
	Revenue  float64 `json:"revenue"`
	ImageURL string  `json:"imageUrl,omitempty"`
	Category string  `json:"category,omitempty"`
}

// AnalyticsSnapshot is the derived dashboard state. It is a pure function of
// the product/order/user collections at a point in time and is always
// recomputed in full - never patched incrementally.
type AnalyticsSnapshot struct {
	TotalRevenue            float64            `json:"total_revenue"`
	TotalOrders             int                `json:"total_orders"`
	TotalProducts           int                `json:"total_products"`
	TotalUsers              int                `json:"total_users"`
	LowStockProducts        []Product          `json:"low_stock_products"`
	TopProducts             []TopProduct       `json:"top_products"`
	CategoryRevenue         map[string]float64 `json:"category_revenue"`
	RecentOrders            []Order            `json:"recent_orders"`
	PredictedMonthlyRevenue float64            `json:"predicted_monthly_revenue"`
	GrowthRate              float64            `json:"growth_rate"`         // percent, one decimal
	UniqueCustomers         int                `json:"unique_customers"`
	AvgCustomerValue        float64            `json:"avg_customer_value"`
	AvgOrderValue           float64            `json:"avg_order_value"`
	OrdersPerDay            float64            `json:"orders_per_day"`
}
