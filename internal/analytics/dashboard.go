package analytics

import (
	"time"

	"omufusion/internal/models"
)

// DashboardStats is the headline figure set for the admin dashboard.
type DashboardStats struct {
	TotalProductsSold int     `json:"totalProductsSold"`
	TotalOrders       int     `json:"totalOrders"`
	TotalCustomers    int     `json:"totalCustomers"`
	TotalRevenue      float64 `json:"totalRevenue"`
	PendingOrders     int     `json:"pendingOrders"`
	LowStockProducts  int     `json:"lowStockProducts"`

	SalesGrowth    int `json:"salesGrowth"`
	OrderGrowth    int `json:"orderGrowth"`
	CustomerGrowth int `json:"customerGrowth"`
	RevenueGrowth  int `json:"revenueGrowth"`
}

// ComputeDashboardStats derives the dashboard figures from full collection
// snapshots. Units sold count every line item regardless of order status.
// Growth compares all data against data older than one month, the proxy
// previous period of the original dashboard.
func ComputeDashboardStats(orders []models.Order, products []models.Product, users []models.User, now time.Time) DashboardStats {
	cutoff := now.AddDate(0, -1, 0)

	var stats DashboardStats
	var prevUnits, prevOrders int
	var prevRevenue float64

	for _, order := range orders {
		units := order.UnitsSold()
		stats.TotalProductsSold += units
		stats.TotalOrders++
		stats.TotalRevenue += order.TotalPrice
		if order.Status == models.OrderStatusPending {
			stats.PendingOrders++
		}
		if order.CreatedAt.Before(cutoff) {
			prevUnits += units
			prevOrders++
			prevRevenue += order.TotalPrice
		}
	}

	var prevCustomers int
	for _, user := range users {
		if !user.IsCustomer() {
			continue
		}
		stats.TotalCustomers++
		if user.CreatedAt.Before(cutoff) {
			prevCustomers++
		}
	}

	for _, product := range products {
		if product.Stock < models.LowStockThreshold {
			stats.LowStockProducts++
		}
	}

	stats.SalesGrowth = GrowthRate(float64(stats.TotalProductsSold), float64(prevUnits))
	stats.OrderGrowth = GrowthRate(float64(stats.TotalOrders), float64(prevOrders))
	stats.CustomerGrowth = GrowthRate(float64(stats.TotalCustomers), float64(prevCustomers))
	stats.RevenueGrowth = GrowthRate(stats.TotalRevenue, prevRevenue)

	return stats
}
