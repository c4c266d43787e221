package analytics

import (
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"omufusion/internal/models"
)

// CustomerRank is one entry in the top-customers ranking.
type CustomerRank struct {
	UserID     string  `json:"userId"`
	Name       string  `json:"name"`
	Orders     int     `json:"orders"`
	TotalSpend float64 `json:"totalSpend"`
}

// CustomerAnalytics is the customer base view for the dashboard.
type CustomerAnalytics struct {
	TotalCustomers    int            `json:"totalCustomers"`
	NewThisMonth      int            `json:"newThisMonth"`
	RepeatCustomers   int            `json:"repeatCustomers"`
	AverageOrderValue float64        `json:"averageOrderValue"`
	TopCustomers      []CustomerRank `json:"topCustomers"`
}

// ComputeCustomerAnalytics derives the customer view. Admin accounts never
// count as customers; "new" means created in the current calendar month.
func ComputeCustomerAnalytics(orders []models.Order, users []models.User, now time.Time) CustomerAnalytics {
	var result CustomerAnalytics

	nameOf := make(map[primitive.ObjectID]string, len(users))
	for _, user := range users {
		if user.IsCustomer() {
			result.TotalCustomers++
			if user.CreatedAt.Year() == now.Year() && user.CreatedAt.Month() == now.Month() {
				result.NewThisMonth++
			}
		}
		nameOf[user.ID] = user.Name
	}

	byCustomer := map[primitive.ObjectID]*CustomerRank{}
	totalRevenue := 0.0
	for _, order := range orders {
		rank, ok := byCustomer[order.UserID]
		if !ok {
			rank = &CustomerRank{UserID: order.UserID.Hex(), Name: nameOf[order.UserID]}
			byCustomer[order.UserID] = rank
		}
		rank.Orders++
		rank.TotalSpend += order.TotalPrice
		totalRevenue += order.TotalPrice
	}

	for _, rank := range byCustomer {
		if rank.Orders > 1 {
			result.RepeatCustomers++
		}
	}

	if len(orders) > 0 {
		result.AverageOrderValue = totalRevenue / float64(len(orders))
	}

	ranks := make([]CustomerRank, 0, len(byCustomer))
	for _, rank := range byCustomer {
		ranks = append(ranks, *rank)
	}
	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].TotalSpend != ranks[j].TotalSpend {
			return ranks[i].TotalSpend > ranks[j].TotalSpend
		}
		return ranks[i].UserID < ranks[j].UserID
	})
	if len(ranks) > topRankingLength {
		ranks = ranks[:topRankingLength]
	}
	result.TopCustomers = ranks

	return result
}
