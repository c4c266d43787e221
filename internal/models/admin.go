package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Admin maps a user account to admin-specific fields in its own collection.
// Presence of a document here is what grants admin access; the role field on
// the user alone is not enough.
type Admin struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        primitive.ObjectID `bson:"userId" json:"userId"`
	Username      string             `bson:"username" json:"username"`
	RecoveryEmail string             `bson:"recoveryEmail,omitempty" json:"recoveryEmail,omitempty"`
	LoginCount    int                `bson:"loginCount" json:"loginCount"`
	LastLoginAt   *time.Time         `bson:"lastLoginAt,omitempty" json:"lastLoginAt,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
