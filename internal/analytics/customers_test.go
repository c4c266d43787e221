package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"omufusion/internal/models"
)

func TestCustomerCountsAndNewThisMonth(t *testing.T) {
	users := []models.User{
		{ID: primitive.NewObjectID(), Role: models.RoleCustomer, CreatedAt: testNow.AddDate(0, 0, -3)},
		{ID: primitive.NewObjectID(), Role: models.RoleCustomer, CreatedAt: testNow.AddDate(0, -2, 0)},
		{ID: primitive.NewObjectID(), Role: models.RoleAdmin, CreatedAt: testNow},
	}

	result := ComputeCustomerAnalytics(nil, users, testNow)
	assert.Equal(t, 2, result.TotalCustomers)
	assert.Equal(t, 1, result.NewThisMonth)
}

func TestRepeatCustomersAndAverageOrderValue(t *testing.T) {
	alice := primitive.NewObjectID()
	bob := primitive.NewObjectID()
	orders := []models.Order{
		{UserID: alice, TotalPrice: 100},
		{UserID: alice, TotalPrice: 50},
		{UserID: bob, TotalPrice: 30},
	}

	result := ComputeCustomerAnalytics(orders, nil, testNow)
	assert.Equal(t, 1, result.RepeatCustomers)
	assert.InDelta(t, 60.0, result.AverageOrderValue, 0.001)
}

func TestTopCustomersRankedBySpend(t *testing.T) {
	users := []models.User{}
	var orders []models.Order
	var big primitive.ObjectID
	for i := 0; i < 12; i++ {
		id := primitive.NewObjectID()
		if i == 11 {
			big = id
		}
		users = append(users, models.User{ID: id, Name: "c", Role: models.RoleCustomer})
		orders = append(orders, models.Order{UserID: id, TotalPrice: float64((i + 1) * 10)})
	}

	result := ComputeCustomerAnalytics(orders, users, testNow)
	require.Len(t, result.TopCustomers, 10)
	assert.Equal(t, big.Hex(), result.TopCustomers[0].UserID)
	assert.InDelta(t, 120.0, result.TopCustomers[0].TotalSpend, 0.001)
}

func TestTopCustomersCarryUserNames(t *testing.T) {
	id := primitive.NewObjectID()
	users := []models.User{{ID: id, Name: "Ada", Role: models.RoleCustomer}}
	orders := []models.Order{{UserID: id, TotalPrice: 10}}

	result := ComputeCustomerAnalytics(orders, users, testNow)
	require.Len(t, result.TopCustomers, 1)
	assert.Equal(t, "Ada", result.TopCustomers[0].Name)
}
