package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"omufusion/internal/models"
)

func TestInventoryLowAndOutOfStockSplit(t *testing.T) {
	products := []models.Product{
		{Name: "gone", Stock: 0},
		{Name: "nearly", Stock: 2},
		{Name: "low", Stock: 8},
		{Name: "fine", Stock: 40},
	}

	result := ComputeInventoryAnalytics(products)

	require.Len(t, result.OutOfStock, 1)
	assert.Equal(t, "gone", result.OutOfStock[0].Name)

	require.Len(t, result.LowStock, 2)
	// ascending by stock, most urgent first
	assert.Equal(t, "nearly", result.LowStock[0].Name)
	assert.Equal(t, "low", result.LowStock[1].Name)
}

func TestInventoryStockValueAndAverage(t *testing.T) {
	products := []models.Product{
		{Stock: 2, Price: 10},
		{Stock: 4, Price: 5},
	}

	result := ComputeInventoryAnalytics(products)
	assert.InDelta(t, 40.0, result.TotalStockValue, 0.001)
	assert.InDelta(t, 3.0, result.AverageStock, 0.001)
}

func TestInventoryStatusCounts(t *testing.T) {
	products := []models.Product{
		{Status: models.ProductStatusNew},
		{Status: models.ProductStatusNew},
		{Status: models.ProductStatusSale},
		{Status: ""},
	}

	result := ComputeInventoryAnalytics(products)
	assert.Equal(t, 2, result.StatusCounts["new"])
	assert.Equal(t, 1, result.StatusCounts["sale"])
	assert.Equal(t, 1, result.StatusCounts["none"])
}

func TestInventoryCategoryDistribution(t *testing.T) {
	products := []models.Product{
		{Category: "lighting", Stock: 1},
		{Category: "lighting", Stock: 1},
		{Category: "decor", Stock: 1},
		{Category: "", Stock: 1},
	}

	result := ComputeInventoryAnalytics(products)
	require.Len(t, result.Categories, 3)
	assert.Equal(t, "lighting", result.Categories[0].Category)
	assert.Equal(t, 2, result.Categories[0].Count)
	assert.Equal(t, 50, result.Categories[0].Percent)
}

func TestInventoryEmptyCatalog(t *testing.T) {
	result := ComputeInventoryAnalytics(nil)
	assert.Zero(t, result.AverageStock)
	assert.Zero(t, result.TotalStockValue)
	assert.Empty(t, result.LowStock)
	assert.Empty(t, result.OutOfStock)
}
