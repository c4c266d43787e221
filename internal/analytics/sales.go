package analytics

import (
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"omufusion/internal/models"
)

const (
	dailyWindowDays  = 30
	weeklyWindow     = 12
	monthlyWindow    = 12
	topRankingLength = 10
)

// SalesBucket is one time bucket of the sales series.
type SalesBucket struct {
	Label   string  `json:"label"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// ProductRank is one entry in the top-products ranking.
type ProductRank struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Units     int     `json:"units"`
	Revenue   float64 `json:"revenue"`
}

// CategoryShare is one category's slice of total line-item revenue.
type CategoryShare struct {
	Category string  `json:"category"`
	Revenue  float64 `json:"revenue"`
	Percent  int     `json:"percent"`
}

// SalesAnalytics bundles the time series and rankings for the sales view.
type SalesAnalytics struct {
	Daily       []SalesBucket   `json:"daily"`
	Weekly      []SalesBucket   `json:"weekly"`
	Monthly     []SalesBucket   `json:"monthly"`
	TopProducts []ProductRank   `json:"topProducts"`
	Categories  []CategoryShare `json:"categories"`
}

// ComputeSalesAnalytics buckets orders into trailing daily, weekly and
// monthly series (zero-filled) and ranks products and categories by revenue.
// Category attribution joins line items to the current product catalog.
func ComputeSalesAnalytics(orders []models.Order, products []models.Product, now time.Time) SalesAnalytics {
	return SalesAnalytics{
		Daily:       bucketDaily(orders, now),
		Weekly:      bucketWeekly(orders, now),
		Monthly:     bucketMonthly(orders, now),
		TopProducts: rankProducts(orders),
		Categories:  categoryShares(orders, products),
	}
}

func bucketDaily(orders []models.Order, now time.Time) []SalesBucket {
	buckets := make([]SalesBucket, dailyWindowDays)
	index := make(map[string]int, dailyWindowDays)

	start := now.AddDate(0, 0, -(dailyWindowDays - 1))
	for i := 0; i < dailyWindowDays; i++ {
		label := start.AddDate(0, 0, i).Format("2006-01-02")
		buckets[i] = SalesBucket{Label: label}
		index[label] = i
	}

	for _, order := range orders {
		if i, ok := index[order.CreatedAt.Format("2006-01-02")]; ok {
			buckets[i].Orders++
			buckets[i].Revenue += order.TotalPrice
		}
	}
	return buckets
}

// weekStart truncates to the Sunday beginning the week of t.
func weekStart(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -int(day.Weekday()))
}

func bucketWeekly(orders []models.Order, now time.Time) []SalesBucket {
	buckets := make([]SalesBucket, weeklyWindow)
	index := make(map[string]int, weeklyWindow)

	current := weekStart(now)
	for i := 0; i < weeklyWindow; i++ {
		start := current.AddDate(0, 0, -7*(weeklyWindow-1-i))
		label := start.Format("2006-01-02")
		buckets[i] = SalesBucket{Label: label}
		index[label] = i
	}

	for _, order := range orders {
		if i, ok := index[weekStart(order.CreatedAt).Format("2006-01-02")]; ok {
			buckets[i].Orders++
			buckets[i].Revenue += order.TotalPrice
		}
	}
	return buckets
}

func bucketMonthly(orders []models.Order, now time.Time) []SalesBucket {
	buckets := make([]SalesBucket, monthlyWindow)
	index := make(map[string]int, monthlyWindow)

	// Step months from a first-of-month anchor; stepping from day 29-31
	// would normalize into the neighboring month and skip labels.
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for i := 0; i < monthlyWindow; i++ {
		label := anchor.AddDate(0, -(monthlyWindow - 1 - i), 0).Format("2006-01")
		buckets[i] = SalesBucket{Label: label}
		index[label] = i
	}

	for _, order := range orders {
		if i, ok := index[order.CreatedAt.Format("2006-01")]; ok {
			buckets[i].Orders++
			buckets[i].Revenue += order.TotalPrice
		}
	}
	return buckets
}

func rankProducts(orders []models.Order) []ProductRank {
	byProduct := map[primitive.ObjectID]*ProductRank{}
	for _, order := range orders {
		for _, item := range order.Items {
			rank, ok := byProduct[item.ProductID]
			if !ok {
				rank = &ProductRank{ProductID: item.ProductID.Hex(), Name: item.Name}
				byProduct[item.ProductID] = rank
			}
			rank.Units += item.Quantity
			rank.Revenue += item.Price * float64(item.Quantity)
		}
	}

	ranks := make([]ProductRank, 0, len(byProduct))
	for _, rank := range byProduct {
		ranks = append(ranks, *rank)
	}
	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].Revenue != ranks[j].Revenue {
			return ranks[i].Revenue > ranks[j].Revenue
		}
		return ranks[i].ProductID < ranks[j].ProductID
	})

	if len(ranks) > topRankingLength {
		ranks = ranks[:topRankingLength]
	}
	return ranks
}

func categoryShares(orders []models.Order, products []models.Product) []CategoryShare {
	categoryOf := make(map[primitive.ObjectID]string, len(products))
	for _, product := range products {
		categoryOf[product.ID] = product.Category
	}

	revenueBy := map[string]float64{}
	total := 0.0
	for _, order := range orders {
		for _, item := range order.Items {
			category, ok := categoryOf[item.ProductID]
			if !ok || category == "" {
				category = "uncategorized"
			}
			revenue := item.Price * float64(item.Quantity)
			revenueBy[category] += revenue
			total += revenue
		}
	}

	shares := make([]CategoryShare, 0, len(revenueBy))
	for category, revenue := range revenueBy {
		shares = append(shares, CategoryShare{
			Category: category,
			Revenue:  revenue,
			Percent:  roundPercent(revenue, total),
		})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Revenue != shares[j].Revenue {
			return shares[i].Revenue > shares[j].Revenue
		}
		return shares[i].Category < shares[j].Category
	})
	return shares
}
