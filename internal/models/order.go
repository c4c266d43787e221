package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses, in workflow order.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// ValidOrderStatus reports whether s is one of the known order statuses.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderItem represents a single product entry within an order. The item list
// is frozen at checkout; later product edits do not flow back into it.
type OrderItem struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	Name      string             `bson:"name" json:"name"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
	Price     float64            `bson:"price" json:"price"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}

// OrderContact captures the shipping address and contact snapshot taken at
// checkout time.
type OrderContact struct {
	Name    string `bson:"name" json:"name"`
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Address string `bson:"address" json:"address"`
	Note    string `bson:"note,omitempty" json:"note,omitempty"`
}

// StatusChange is one entry in an order's status history. History reads are
// non-critical and degrade to empty on failure.
type StatusChange struct {
	Status    string    `bson:"status" json:"status"`
	ChangedAt time.Time `bson:"changedAt" json:"changedAt"`
	ChangedBy string    `bson:"changedBy,omitempty" json:"changedBy,omitempty"`
}

// Order defines the persisted order document. TotalPrice is computed once at
// creation and never re-derived.
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        primitive.ObjectID `bson:"userId" json:"userId"`
	Items         []OrderItem        `bson:"items" json:"items"`
	TotalPrice    float64            `bson:"totalPrice" json:"totalPrice"`
	Status        string             `bson:"status" json:"status"`
	Contact       *OrderContact      `bson:"contact,omitempty" json:"contact,omitempty"`
	StatusHistory []StatusChange     `bson:"statusHistory,omitempty" json:"statusHistory,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// UnitsSold returns the total quantity across all line items.
func (o Order) UnitsSold() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}
