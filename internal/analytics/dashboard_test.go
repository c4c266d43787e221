package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"omufusion/internal/models"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func orderAt(t time.Time, status string, total float64, quantities ...int) models.Order {
	items := make([]models.OrderItem, len(quantities))
	for i, q := range quantities {
		items[i] = models.OrderItem{ProductID: primitive.NewObjectID(), Quantity: q}
	}
	return models.Order{
		UserID:     primitive.NewObjectID(),
		Items:      items,
		TotalPrice: total,
		Status:     status,
		CreatedAt:  t,
	}
}

func TestDashboardRevenueAndPendingScenario(t *testing.T) {
	orders := []models.Order{
		orderAt(testNow.AddDate(0, 0, -2), models.OrderStatusDelivered, 259.97, 3),
		orderAt(testNow.AddDate(0, 0, -1), models.OrderStatusShipped, 89.99, 1),
	}

	stats := ComputeDashboardStats(orders, nil, nil, testNow)

	assert.InDelta(t, 349.96, stats.TotalRevenue, 0.001)
	assert.Equal(t, 0, stats.PendingOrders)
	assert.Equal(t, 2, stats.TotalOrders)
}

func TestTotalProductsSoldIgnoresStatus(t *testing.T) {
	orders := []models.Order{
		orderAt(testNow, models.OrderStatusPending, 10, 2, 3),
		orderAt(testNow, models.OrderStatusCancelled, 10, 5),
		orderAt(testNow, models.OrderStatusDelivered, 10, 1),
	}

	stats := ComputeDashboardStats(orders, nil, nil, testNow)
	assert.Equal(t, 11, stats.TotalProductsSold)
	assert.Equal(t, 1, stats.PendingOrders)
}

func TestDashboardCustomerCountExcludesAdminsAndDeleted(t *testing.T) {
	users := []models.User{
		{Role: models.RoleCustomer},
		{Role: models.RoleCustomer, IsDeleted: true},
		{Role: models.RoleAdmin},
		{Role: models.RoleModerator},
	}

	stats := ComputeDashboardStats(nil, nil, users, testNow)
	assert.Equal(t, 2, stats.TotalCustomers)
}

func TestDashboardLowStockCount(t *testing.T) {
	products := []models.Product{
		{Stock: 0},
		{Stock: 9},
		{Stock: 10},
		{Stock: 50},
	}

	stats := ComputeDashboardStats(nil, products, nil, testNow)
	assert.Equal(t, 2, stats.LowStockProducts)
}

func TestDashboardGrowthAgainstOlderThanOneMonth(t *testing.T) {
	orders := []models.Order{
		// previous period: older than one month
		orderAt(testNow.AddDate(0, -2, 0), models.OrderStatusDelivered, 100, 1),
		// current-only orders
		orderAt(testNow.AddDate(0, 0, -5), models.OrderStatusDelivered, 100, 1),
		orderAt(testNow.AddDate(0, 0, -3), models.OrderStatusDelivered, 100, 1),
	}

	stats := ComputeDashboardStats(orders, nil, nil, testNow)

	// current totals include everything: 3 orders / 300 revenue vs 1 / 100.
	assert.Equal(t, 200, stats.OrderGrowth)
	assert.Equal(t, 200, stats.RevenueGrowth)
}

func TestDashboardGrowthEmptyPreviousPeriod(t *testing.T) {
	orders := []models.Order{
		orderAt(testNow.AddDate(0, 0, -1), models.OrderStatusDelivered, 42, 1),
	}

	stats := ComputeDashboardStats(orders, nil, nil, testNow)
	assert.Equal(t, 100, stats.OrderGrowth)
	assert.Equal(t, 100, stats.RevenueGrowth)

	empty := ComputeDashboardStats(nil, nil, nil, testNow)
	assert.Equal(t, 0, empty.OrderGrowth)
	assert.Equal(t, 0, empty.RevenueGrowth)
}
