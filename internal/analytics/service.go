package analytics

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"omufusion/internal/models"
)

// Service computes dashboard reports from full collection snapshots, caching
// each report under a fixed key. There is no server-side aggregation; the
// scans happen here.
type Service struct {
	db    *mongo.Database
	cache *cache
	now   func() time.Time
}

func NewService(db *mongo.Database) *Service {
	return &Service{db: db, cache: newCache(time.Now), now: time.Now}
}

// Dashboard returns the headline stats, recomputed at most every five minutes.
func (s *Service) Dashboard(ctx context.Context) (DashboardStats, error) {
	if cached, ok := s.cache.get(keyDashboard); ok {
		return cached.(DashboardStats), nil
	}

	orders, products, users, err := s.snapshots(ctx)
	if err != nil {
		return DashboardStats{}, err
	}

	stats := ComputeDashboardStats(orders, products, users, s.now())
	s.cache.set(keyDashboard, stats, shortTTL)
	return stats, nil
}

// Sales returns the time-bucketed series and rankings.
func (s *Service) Sales(ctx context.Context) (SalesAnalytics, error) {
	if cached, ok := s.cache.get(keySales); ok {
		return cached.(SalesAnalytics), nil
	}

	orders, err := fetchAll[models.Order](ctx, s.db, "orders")
	if err != nil {
		return SalesAnalytics{}, err
	}
	products, err := fetchAll[models.Product](ctx, s.db, "products")
	if err != nil {
		return SalesAnalytics{}, err
	}

	result := ComputeSalesAnalytics(orders, products, s.now())
	s.cache.set(keySales, result, shortTTL)
	return result, nil
}

// Inventory returns the stock health view.
func (s *Service) Inventory(ctx context.Context) (InventoryAnalytics, error) {
	if cached, ok := s.cache.get(keyInventory); ok {
		return cached.(InventoryAnalytics), nil
	}

	products, err := fetchAll[models.Product](ctx, s.db, "products")
	if err != nil {
		return InventoryAnalytics{}, err
	}

	result := ComputeInventoryAnalytics(products)
	s.cache.set(keyInventory, result, shortTTL)
	return result, nil
}

// Customers returns the customer base view, cached for ten minutes.
func (s *Service) Customers(ctx context.Context) (CustomerAnalytics, error) {
	if cached, ok := s.cache.get(keyCustomers); ok {
		return cached.(CustomerAnalytics), nil
	}

	orders, err := fetchAll[models.Order](ctx, s.db, "orders")
	if err != nil {
		return CustomerAnalytics{}, err
	}
	users, err := fetchAll[models.User](ctx, s.db, "users")
	if err != nil {
		return CustomerAnalytics{}, err
	}

	result := ComputeCustomerAnalytics(orders, users, s.now())
	s.cache.set(keyCustomers, result, customerTTL)
	return result, nil
}

// ClearCache drops every cached report so the next read recomputes.
func (s *Service) ClearCache() {
	s.cache.clear()
}

func (s *Service) snapshots(ctx context.Context) ([]models.Order, []models.Product, []models.User, error) {
	orders, err := fetchAll[models.Order](ctx, s.db, "orders")
	if err != nil {
		return nil, nil, nil, err
	}
	products, err := fetchAll[models.Product](ctx, s.db, "products")
	if err != nil {
		return nil, nil, nil, err
	}
	users, err := fetchAll[models.User](ctx, s.db, "users")
	if err != nil {
		return nil, nil, nil, err
	}
	return orders, products, users, nil
}

func fetchAll[T any](ctx context.Context, db *mongo.Database, collection string) ([]T, error) {
	cursor, err := db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		log.Printf("[ANALYTICS] [ERROR] %s snapshot failed: %v", collection, err)
		return nil, fmt.Errorf("%s snapshot could not be fetched: %w", collection, err)
	}
	defer cursor.Close(ctx)

	docs := []T{}
	if err := cursor.All(ctx, &docs); err != nil {
		log.Printf("[ANALYTICS] [ERROR] %s snapshot decode failed: %v", collection, err)
		return nil, fmt.Errorf("%s snapshot could not be decoded: %w", collection, err)
	}
	return docs, nil
}
