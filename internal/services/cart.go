package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"omufusion/internal/models"
)

// CartService maps cart operations onto the carts collection, one document
// per user. Writes are last-writer-wins; there is no version check.
type CartService struct {
	db *mongo.Database
}

func NewCartService(db *mongo.Database) *CartService {
	return &CartService{db: db}
}

func (s *CartService) col() *mongo.Collection {
	return s.db.Collection("carts")
}

// Get returns the user's cart, or an empty cart if none exists yet.
func (s *CartService) Get(ctx context.Context, userID primitive.ObjectID) (models.Cart, error) {
	var cart models.Cart
	err := s.col().FindOne(ctx, bson.M{"userId": userID}).Decode(&cart)
	if err == mongo.ErrNoDocuments {
		return models.Cart{UserID: userID, Items: []models.CartItem{}}, nil
	}
	if err != nil {
		logPersistenceError("CART", err)
		if fallbackToEmpty(err) {
			return models.Cart{UserID: userID, Items: []models.CartItem{}}, nil
		}
		return models.Cart{}, fmt.Errorf("cart could not be loaded: %w", err)
	}
	return cart, nil
}

// AddItem adds a product to the cart, incrementing the quantity when the
// product is already present.
func (s *CartService) AddItem(ctx context.Context, userID primitive.ObjectID, item models.CartItem) (models.Cart, error) {
	if item.Quantity <= 0 {
		return models.Cart{}, fmt.Errorf("quantity must be greater than zero")
	}

	cart, err := s.Get(ctx, userID)
	if err != nil {
		return models.Cart{}, err
	}

	merged := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == item.ProductID {
			cart.Items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, item)
	}

	return s.save(ctx, userID, cart.Items)
}

// UpdateQuantity sets the quantity of an existing line; zero removes it.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, productID primitive.ObjectID, quantity int) (models.Cart, error) {
	if quantity < 0 {
		return models.Cart{}, fmt.Errorf("quantity cannot be negative")
	}

	cart, err := s.Get(ctx, userID)
	if err != nil {
		return models.Cart{}, err
	}

	items := make([]models.CartItem, 0, len(cart.Items))
	found := false
	for _, existing := range cart.Items {
		if existing.ProductID == productID {
			found = true
			if quantity == 0 {
				continue
			}
			existing.Quantity = quantity
		}
		items = append(items, existing)
	}
	if !found {
		return models.Cart{}, fmt.Errorf("item not in cart: %w", ErrNotFound)
	}

	return s.save(ctx, userID, items)
}

// RemoveItem drops a product line from the cart.
func (s *CartService) RemoveItem(ctx context.Context, userID, productID primitive.ObjectID) (models.Cart, error) {
	return s.UpdateQuantity(ctx, userID, productID, 0)
}

// Clear empties the cart, used by checkout and the explicit clear action.
func (s *CartService) Clear(ctx context.Context, userID primitive.ObjectID) error {
	_, err := s.save(ctx, userID, []models.CartItem{})
	return err
}

func (s *CartService) save(ctx context.Context, userID primitive.ObjectID, items []models.CartItem) (models.Cart, error) {
	now := time.Now()
	_, err := s.col().UpdateOne(ctx,
		bson.M{"userId": userID},
		bson.M{"$set": bson.M{
			"items":     items,
			"updatedAt": now,
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		logPersistenceError("CART", err)
		return models.Cart{}, fmt.Errorf("cart could not be saved: %w", err)
	}
	return models.Cart{UserID: userID, Items: items, UpdatedAt: now}, nil
}
