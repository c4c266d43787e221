package analytics

import (
	"sort"

	"omufusion/internal/models"
)

// CategoryCount is one category's share of the catalog.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
	Percent  int    `json:"percent"`
}

// InventoryAnalytics is the stock health view of the catalog.
type InventoryAnalytics struct {
	LowStock        []models.Product `json:"lowStock"`
	OutOfStock      []models.Product `json:"outOfStock"`
	Categories      []CategoryCount  `json:"categories"`
	TotalStockValue float64          `json:"totalStockValue"`
	AverageStock    float64          `json:"averageStock"`
	StatusCounts    map[string]int   `json:"statusCounts"`
}

// ComputeInventoryAnalytics derives stock health from the product snapshot.
// Low stock is strictly between zero and the threshold, sorted ascending so
// the most urgent restocks lead.
func ComputeInventoryAnalytics(products []models.Product) InventoryAnalytics {
	result := InventoryAnalytics{
		LowStock:     []models.Product{},
		OutOfStock:   []models.Product{},
		StatusCounts: map[string]int{"new": 0, "sale": 0, "none": 0},
	}

	countBy := map[string]int{}
	totalStock := 0

	for _, product := range products {
		if product.Stock == 0 {
			result.OutOfStock = append(result.OutOfStock, product)
		} else if product.IsLowStock() {
			result.LowStock = append(result.LowStock, product)
		}

		category := product.Category
		if category == "" {
			category = "uncategorized"
		}
		countBy[category]++

		result.TotalStockValue += float64(product.Stock) * product.Price
		totalStock += product.Stock

		switch product.Status {
		case models.ProductStatusNew:
			result.StatusCounts["new"]++
		case models.ProductStatusSale:
			result.StatusCounts["sale"]++
		default:
			result.StatusCounts["none"]++
		}
	}

	sort.Slice(result.LowStock, func(i, j int) bool {
		return result.LowStock[i].Stock < result.LowStock[j].Stock
	})

	if len(products) > 0 {
		result.AverageStock = float64(totalStock) / float64(len(products))
	}

	result.Categories = make([]CategoryCount, 0, len(countBy))
	for category, count := range countBy {
		result.Categories = append(result.Categories, CategoryCount{
			Category: category,
			Count:    count,
			Percent:  roundPercent(float64(count), float64(len(products))),
		})
	}
	sort.Slice(result.Categories, func(i, j int) bool {
		if result.Categories[i].Count != result.Categories[j].Count {
			return result.Categories[i].Count > result.Categories[j].Count
		}
		return result.Categories[i].Category < result.Categories[j].Category
	})

	return result
}
