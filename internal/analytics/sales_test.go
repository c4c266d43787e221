package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"omufusion/internal/models"
)

func TestBucketDailyWindowAndZeroFill(t *testing.T) {
	orders := []models.Order{
		orderAt(testNow, models.OrderStatusDelivered, 50, 1),
		orderAt(testNow.AddDate(0, 0, -29), models.OrderStatusDelivered, 25, 1),
		// outside the window, must be dropped
		orderAt(testNow.AddDate(0, 0, -31), models.OrderStatusDelivered, 999, 1),
	}

	daily := bucketDaily(orders, testNow)
	require.Len(t, daily, 30)

	assert.Equal(t, testNow.AddDate(0, 0, -29).Format("2006-01-02"), daily[0].Label)
	assert.Equal(t, testNow.Format("2006-01-02"), daily[29].Label)
	assert.InDelta(t, 25.0, daily[0].Revenue, 0.001)
	assert.InDelta(t, 50.0, daily[29].Revenue, 0.001)

	total := 0.0
	for _, bucket := range daily {
		total += bucket.Revenue
	}
	assert.InDelta(t, 75.0, total, 0.001)
}

func TestWeekStartIsSunday(t *testing.T) {
	// 2024-06-15 is a Saturday; its week starts Sunday 2024-06-09.
	start := weekStart(testNow)
	assert.Equal(t, time.Sunday, start.Weekday())
	assert.Equal(t, "2024-06-09", start.Format("2006-01-02"))

	// A Sunday is its own week start.
	sunday := time.Date(2024, 6, 9, 18, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-06-09", weekStart(sunday).Format("2006-01-02"))
}

func TestBucketWeeklyTwelveWeeks(t *testing.T) {
	orders := []models.Order{
		orderAt(testNow, models.OrderStatusDelivered, 10, 1),
		orderAt(testNow.AddDate(0, 0, -7), models.OrderStatusDelivered, 20, 1),
	}

	weekly := bucketWeekly(orders, testNow)
	require.Len(t, weekly, 12)
	assert.InDelta(t, 10.0, weekly[11].Revenue, 0.001)
	assert.InDelta(t, 20.0, weekly[10].Revenue, 0.001)
}

func TestBucketMonthlyLabels(t *testing.T) {
	monthly := bucketMonthly(nil, testNow)
	require.Len(t, monthly, 12)
	assert.Equal(t, "2023-07", monthly[0].Label)
	assert.Equal(t, "2024-06", monthly[11].Label)
}

func TestBucketMonthlyMonthEndKeepsEveryMonth(t *testing.T) {
	// Stepping back from the 31st must not skip short months.
	monthEnd := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	orders := []models.Order{
		orderAt(time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC), models.OrderStatusDelivered, 40, 1),
	}

	monthly := bucketMonthly(orders, monthEnd)
	require.Len(t, monthly, 12)

	seen := map[string]bool{}
	for i, bucket := range monthly {
		assert.Falsef(t, seen[bucket.Label], "duplicate label %s", bucket.Label)
		seen[bucket.Label] = true
		if i > 0 {
			prev, err := time.Parse("2006-01", monthly[i-1].Label)
			require.NoError(t, err)
			assert.Equal(t, prev.AddDate(0, 1, 0).Format("2006-01"), bucket.Label)
		}
	}
	assert.Equal(t, "2025-09", monthly[0].Label)
	assert.Equal(t, "2026-08", monthly[11].Label)

	require.True(t, seen["2026-06"])
	for _, bucket := range monthly {
		if bucket.Label == "2026-06" {
			assert.Equal(t, 1, bucket.Orders)
			assert.InDelta(t, 40.0, bucket.Revenue, 0.001)
		}
	}
}

func TestRankProductsTopTenByRevenue(t *testing.T) {
	var orders []models.Order
	ids := make([]primitive.ObjectID, 12)
	for i := range ids {
		ids[i] = primitive.NewObjectID()
		orders = append(orders, models.Order{
			Items: []models.OrderItem{
				{ProductID: ids[i], Name: "p", Price: float64(i + 1), Quantity: 1},
			},
		})
	}

	ranks := rankProducts(orders)
	require.Len(t, ranks, 10)
	assert.InDelta(t, 12.0, ranks[0].Revenue, 0.001)
	assert.InDelta(t, 3.0, ranks[9].Revenue, 0.001)
}

func TestRankProductsAggregatesAcrossOrders(t *testing.T) {
	id := primitive.NewObjectID()
	orders := []models.Order{
		{Items: []models.OrderItem{{ProductID: id, Name: "Lamp", Price: 10, Quantity: 2}}},
		{Items: []models.OrderItem{{ProductID: id, Name: "Lamp", Price: 10, Quantity: 3}}},
	}

	ranks := rankProducts(orders)
	require.Len(t, ranks, 1)
	assert.Equal(t, 5, ranks[0].Units)
	assert.InDelta(t, 50.0, ranks[0].Revenue, 0.001)
}

func TestCategorySharesSumToRoughlyOneHundred(t *testing.T) {
	catA := primitive.NewObjectID()
	catB := primitive.NewObjectID()
	catC := primitive.NewObjectID()
	products := []models.Product{
		{ID: catA, Category: "lighting"},
		{ID: catB, Category: "furniture"},
		{ID: catC, Category: "decor"},
	}
	orders := []models.Order{
		{Items: []models.OrderItem{
			{ProductID: catA, Price: 10, Quantity: 1},
			{ProductID: catB, Price: 10, Quantity: 1},
			{ProductID: catC, Price: 10, Quantity: 1},
		}},
	}

	shares := categoryShares(orders, products)
	require.Len(t, shares, 3)

	sum := 0
	for _, share := range shares {
		sum += share.Percent
	}
	// 33+33+33; rounding may land within one point of 100 per category
	assert.InDelta(t, 100, sum, 3)
}

func TestCategorySharesUnknownProductFallsBack(t *testing.T) {
	orders := []models.Order{
		{Items: []models.OrderItem{{ProductID: primitive.NewObjectID(), Price: 5, Quantity: 1}}},
	}

	shares := categoryShares(orders, nil)
	require.Len(t, shares, 1)
	assert.Equal(t, "uncategorized", shares[0].Category)
	assert.Equal(t, 100, shares[0].Percent)
}
