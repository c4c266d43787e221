package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product status tags used by the storefront badges and inventory analytics.
const (
	ProductStatusNew  = "new"
	ProductStatusSale = "sale"
)

// LowStockThreshold drives the dashboard low-stock counter and the inventory
// low-stock list.
const LowStockThreshold = 10

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64            `bson:"price" json:"price"`
	Category    string             `bson:"category" json:"category"`
	Stock       int                `bson:"stock" json:"stock"`
	Images      StringList         `bson:"images" json:"images"`
	Status      string             `bson:"status,omitempty" json:"status,omitempty"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	IsFeatured  bool               `bson:"isFeatured" json:"isFeatured"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// IsLowStock reports whether the product is in stock but below the low-stock
// threshold.
func (p Product) IsLowStock() bool {
	return p.Stock > 0 && p.Stock < LowStockThreshold
}
