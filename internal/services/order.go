package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"omufusion/internal/models"
)

// OrderService maps order operations onto the orders collection. The item
// list and total are frozen at creation; only the status moves afterwards.
type OrderService struct {
	db   *mongo.Database
	cart *CartService
}

func NewOrderService(db *mongo.Database, cart *CartService) *OrderService {
	return &OrderService{db: db, cart: cart}
}

func (s *OrderService) col() *mongo.Collection {
	return s.db.Collection("orders")
}

// Create places an order from the given items, computing the total at
// creation time, and clears the user's cart on success.
func (s *OrderService) Create(ctx context.Context, userID primitive.ObjectID, items []models.OrderItem, contact *models.OrderContact) (models.Order, error) {
	if len(items) == 0 {
		return models.Order{}, fmt.Errorf("at least one item is required")
	}

	total := 0.0
	for _, item := range items {
		if item.Quantity <= 0 {
			return models.Order{}, fmt.Errorf("quantity must be greater than zero")
		}
		if item.Price < 0 {
			return models.Order{}, fmt.Errorf("price cannot be negative")
		}
		total += item.Price * float64(item.Quantity)
	}

	now := time.Now()
	order := models.Order{
		UserID:     userID,
		Items:      items,
		TotalPrice: total,
		Status:     models.OrderStatusPending,
		Contact:    contact,
		StatusHistory: []models.StatusChange{
			{Status: models.OrderStatusPending, ChangedAt: now},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	res, err := s.col().InsertOne(ctx, order)
	if err != nil {
		logPersistenceError("ORDER", err)
		return models.Order{}, fmt.Errorf("order could not be created: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		order.ID = id
	}

	// Checkout empties the cart; a failure here does not undo the order.
	if err := s.cart.Clear(ctx, userID); err != nil {
		log.Println("[ORDER] [WARN] cart clear after checkout failed:", err)
	}

	log.Println("[ORDER] [INFO] order created:", order.ID.Hex())
	return order, nil
}

// GetByUser lists a user's orders, newest first.
func (s *OrderService) GetByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	return s.list(ctx, bson.M{"userId": userID})
}

// GetAll lists every order for the admin back-office.
func (s *OrderService) GetAll(ctx context.Context) ([]models.Order, error) {
	return s.list(ctx, bson.M{})
}

func (s *OrderService) list(ctx context.Context, filter bson.M) ([]models.Order, error) {
	cursor, err := s.col().Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		logPersistenceError("ORDER", err)
		if fallbackToEmpty(err) {
			return []models.Order{}, nil
		}
		return nil, fmt.Errorf("orders could not be fetched: %w", err)
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		logPersistenceError("ORDER", err)
		if fallbackToEmpty(err) {
			return []models.Order{}, nil
		}
		return nil, fmt.Errorf("orders could not be decoded: %w", err)
	}
	return orders, nil
}

// GetByID returns a single order.
func (s *OrderService) GetByID(ctx context.Context, id primitive.ObjectID) (models.Order, error) {
	var order models.Order
	err := s.col().FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return models.Order{}, fmt.Errorf("order %s: %w", id.Hex(), ErrNotFound)
	}
	if err != nil {
		logPersistenceError("ORDER", err)
		return models.Order{}, fmt.Errorf("order could not be fetched: %w", err)
	}
	return order, nil
}

// StatusHistory returns the status change log. This read is non-critical and
// degrades to an empty list when the document cannot be fetched.
func (s *OrderService) StatusHistory(ctx context.Context, id primitive.ObjectID) []models.StatusChange {
	order, err := s.GetByID(ctx, id)
	if err != nil {
		log.Println("[ORDER] [WARN] status history unavailable:", err)
		return []models.StatusChange{}
	}
	if order.StatusHistory == nil {
		return []models.StatusChange{}
	}
	return order.StatusHistory
}

// UpdateStatus moves the order to a new status and appends to the history.
func (s *OrderService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status, changedBy string) error {
	if !models.ValidOrderStatus(status) {
		return fmt.Errorf("invalid order status: %s", status)
	}

	now := time.Now()
	res, err := s.col().UpdateByID(ctx, id, bson.M{
		"$set": bson.M{
			"status":    status,
			"updatedAt": now,
		},
		"$push": bson.M{
			"statusHistory": models.StatusChange{Status: status, ChangedAt: now, ChangedBy: changedBy},
		},
	})
	if err != nil {
		logPersistenceError("ORDER", err)
		return fmt.Errorf("order status could not be updated: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("order %s: %w", id.Hex(), ErrNotFound)
	}
	return nil
}

// Cancel moves a pending or processing order to cancelled. Shipped and later
// orders can no longer be cancelled by the customer.
func (s *OrderService) Cancel(ctx context.Context, id, userID primitive.ObjectID) error {
	order, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order.UserID != userID {
		return fmt.Errorf("order %s: %w", id.Hex(), ErrNotFound)
	}
	if order.Status != models.OrderStatusPending && order.Status != models.OrderStatusProcessing {
		return fmt.Errorf("order can no longer be cancelled")
	}
	return s.UpdateStatus(ctx, id, models.OrderStatusCancelled, userID.Hex())
}
