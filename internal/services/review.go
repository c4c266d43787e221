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

// ReviewService maps the append-only review log onto the reviews collection.
type ReviewService struct {
	db *mongo.Database
}

func NewReviewService(db *mongo.Database) *ReviewService {
	return &ReviewService{db: db}
}

func (s *ReviewService) col() *mongo.Collection {
	return s.db.Collection("reviews")
}

// GetByProduct lists a product's reviews, newest first.
func (s *ReviewService) GetByProduct(ctx context.Context, productID primitive.ObjectID) ([]models.Review, error) {
	cursor, err := s.col().Find(ctx,
		bson.M{"productId": productID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		logPersistenceError("REVIEW", err)
		if fallbackToEmpty(err) {
			return []models.Review{}, nil
		}
		return nil, fmt.Errorf("reviews could not be fetched: %w", err)
	}
	defer cursor.Close(ctx)

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		logPersistenceError("REVIEW", err)
		if fallbackToEmpty(err) {
			return []models.Review{}, nil
		}
		return nil, fmt.Errorf("reviews could not be decoded: %w", err)
	}
	return reviews, nil
}

// Add appends a review. Reviews are never edited or removed afterwards.
func (s *ReviewService) Add(ctx context.Context, review models.Review) (models.Review, error) {
	if review.Rating < 1 || review.Rating > 5 {
		return models.Review{}, fmt.Errorf("rating must be between 1 and 5")
	}
	review.Comment = strings.TrimSpace(review.Comment)
	review.ID = primitive.NilObjectID
	review.CreatedAt = time.Now()

	res, err := s.col().InsertOne(ctx, review)
	if err != nil {
		logPersistenceError("REVIEW", err)
		return models.Review{}, fmt.Errorf("review could not be saved: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		review.ID = id
	}
	return review, nil
}
