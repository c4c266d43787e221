package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"omufusion/internal/models"
)

// ProductService maps catalog CRUD onto the products collection. Storefront
// reads filter on isActive; admin reads see everything.
type ProductService struct {
	db *mongo.Database
}

func NewProductService(db *mongo.Database) *ProductService {
	return &ProductService{db: db}
}

func (s *ProductService) col() *mongo.Collection {
	return s.db.Collection("products")
}

// GetActive lists products visible on the storefront.
func (s *ProductService) GetActive(ctx context.Context) ([]models.Product, error) {
	return s.list(ctx, bson.M{"isActive": true})
}

// GetAll lists every product for the admin back-office.
func (s *ProductService) GetAll(ctx context.Context) ([]models.Product, error) {
	return s.list(ctx, bson.M{})
}

// GetFeatured lists active featured products for the storefront highlights.
func (s *ProductService) GetFeatured(ctx context.Context) ([]models.Product, error) {
	return s.list(ctx, bson.M{"isActive": true, "isFeatured": true})
}

// GetByCategory lists active products in a category.
func (s *ProductService) GetByCategory(ctx context.Context, category string) ([]models.Product, error) {
	return s.list(ctx, bson.M{"isActive": true, "category": category})
}

func (s *ProductService) list(ctx context.Context, filter bson.M) ([]models.Product, error) {
	cursor, err := s.col().Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		logPersistenceError("PRODUCT", err)
		if fallbackToEmpty(err) {
			return []models.Product{}, nil
		}
		return nil, fmt.Errorf("products could not be fetched: %w", err)
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		logPersistenceError("PRODUCT", err)
		if fallbackToEmpty(err) {
			return []models.Product{}, nil
		}
		return nil, fmt.Errorf("products could not be decoded: %w", err)
	}
	return products, nil
}

// GetByID returns a single product regardless of active flag.
func (s *ProductService) GetByID(ctx context.Context, id primitive.ObjectID) (models.Product, error) {
	var product models.Product
	err := s.col().FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return models.Product{}, fmt.Errorf("product %s: %w", id.Hex(), ErrNotFound)
	}
	if err != nil {
		logPersistenceError("PRODUCT", err)
		return models.Product{}, fmt.Errorf("product could not be fetched: %w", err)
	}
	return product, nil
}

// Create validates the minimum shape and inserts a new product.
func (s *ProductService) Create(ctx context.Context, product models.Product) (models.Product, error) {
	product.Name = strings.TrimSpace(product.Name)
	if product.Name == "" {
		return models.Product{}, fmt.Errorf("name is required")
	}
	if product.Price < 0 {
		return models.Product{}, fmt.Errorf("price cannot be negative")
	}
	if product.Stock < 0 {
		return models.Product{}, fmt.Errorf("stock cannot be negative")
	}
	if product.Images == nil {
		product.Images = models.StringList{}
	}

	now := time.Now()
	product.ID = primitive.NilObjectID
	product.CreatedAt = now
	product.UpdatedAt = now

	res, err := s.col().InsertOne(ctx, product)
	if err != nil {
		logPersistenceError("PRODUCT", err)
		return models.Product{}, fmt.Errorf("product could not be created: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		product.ID = id
	}
	return product, nil
}

// Update applies the given field set and refreshes updatedAt.
func (s *ProductService) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	fields["updatedAt"] = time.Now()

	res, err := s.col().UpdateByID(ctx, id, bson.M{"$set": fields})
	if err != nil {
		logPersistenceError("PRODUCT", err)
		return fmt.Errorf("product could not be updated: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("product %s: %w", id.Hex(), ErrNotFound)
	}
	return nil
}

// UpdateStock sets the absolute stock count.
func (s *ProductService) UpdateStock(ctx context.Context, id primitive.ObjectID, stock int) error {
	if stock < 0 {
		return fmt.Errorf("stock cannot be negative")
	}
	return s.Update(ctx, id, bson.M{"stock": stock})
}

// SetActive toggles storefront visibility.
func (s *ProductService) SetActive(ctx context.Context, id primitive.ObjectID, active bool) error {
	return s.Update(ctx, id, bson.M{"isActive": active})
}

// Delete removes the product document. Catalog deletes are hard deletes;
// order line items keep their own snapshot of the product.
func (s *ProductService) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.col().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		logPersistenceError("PRODUCT", err)
		return fmt.Errorf("product could not be deleted: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("product %s: %w", id.Hex(), ErrNotFound)
	}
	return nil
}
