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

// WishlistService maps wishlist operations onto the wishlists collection,
// one document per user.
type WishlistService struct {
	db *mongo.Database
}

func NewWishlistService(db *mongo.Database) *WishlistService {
	return &WishlistService{db: db}
}

func (s *WishlistService) col() *mongo.Collection {
	return s.db.Collection("wishlists")
}

// Get returns the user's wishlist, or an empty one if none exists yet.
func (s *WishlistService) Get(ctx context.Context, userID primitive.ObjectID) (models.Wishlist, error) {
	var list models.Wishlist
	err := s.col().FindOne(ctx, bson.M{"userId": userID}).Decode(&list)
	if err == mongo.ErrNoDocuments {
		return models.Wishlist{UserID: userID, Items: []models.WishlistItem{}}, nil
	}
	if err != nil {
		logPersistenceError("WISHLIST", err)
		if fallbackToEmpty(err) {
			return models.Wishlist{UserID: userID, Items: []models.WishlistItem{}}, nil
		}
		return models.Wishlist{}, fmt.Errorf("wishlist could not be loaded: %w", err)
	}
	return list, nil
}

// AddItem saves a product to the wishlist. Adding a product twice is a no-op.
func (s *WishlistService) AddItem(ctx context.Context, userID primitive.ObjectID, item models.WishlistItem) (models.Wishlist, error) {
	list, err := s.Get(ctx, userID)
	if err != nil {
		return models.Wishlist{}, err
	}

	if list.Contains(item.ProductID) {
		return list, nil
	}

	item.AddedAt = time.Now()
	list.Items = append(list.Items, item)
	return s.save(ctx, userID, list.Items)
}

// RemoveItem drops a product from the wishlist.
func (s *WishlistService) RemoveItem(ctx context.Context, userID, productID primitive.ObjectID) (models.Wishlist, error) {
	list, err := s.Get(ctx, userID)
	if err != nil {
		return models.Wishlist{}, err
	}

	items := make([]models.WishlistItem, 0, len(list.Items))
	found := false
	for _, existing := range list.Items {
		if existing.ProductID == productID {
			found = true
			continue
		}
		items = append(items, existing)
	}
	if !found {
		return models.Wishlist{}, fmt.Errorf("item not in wishlist: %w", ErrNotFound)
	}

	return s.save(ctx, userID, items)
}

// Clear empties the wishlist.
func (s *WishlistService) Clear(ctx context.Context, userID primitive.ObjectID) error {
	_, err := s.save(ctx, userID, []models.WishlistItem{})
	return err
}

func (s *WishlistService) save(ctx context.Context, userID primitive.ObjectID, items []models.WishlistItem) (models.Wishlist, error) {
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
		logPersistenceError("WISHLIST", err)
		return models.Wishlist{}, fmt.Errorf("wishlist could not be saved: %w", err)
	}
	return models.Wishlist{UserID: userID, Items: items, UpdatedAt: now}, nil
}
