package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles. Admins are excluded from customer-facing analytics.
const (
	RoleCustomer  = "customer"
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
)

// Address represents a single address entry for a user. At most one address
// per user carries IsDefault=true; the profile service keeps that invariant.
type Address struct {
	ID        string `bson:"id" json:"id"`
	Title     string `bson:"title" json:"title"`
	Detail    string `bson:"detail" json:"detail"`
	City      string `bson:"city,omitempty" json:"city,omitempty"`
	Zip       string `bson:"zip,omitempty" json:"zip,omitempty"`
	IsDefault bool   `bson:"isDefault" json:"isDefault"`
}

// User represents the application user account. Accounts are never hard
// deleted, only flagged via IsDeleted.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	Name         string             `bson:"name" json:"name"`
	Phone        string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Role         string             `bson:"role" json:"role"`
	Permissions  []string           `bson:"permissions,omitempty" json:"permissions,omitempty"`
	IsActive     bool               `bson:"isActive" json:"isActive"`
	IsDeleted    bool               `bson:"isDeleted" json:"isDeleted,omitempty"`
	Addresses    []Address          `bson:"addresses" json:"addresses"`
	Preferences  map[string]string  `bson:"preferences,omitempty" json:"preferences,omitempty"`
	LoginCount   int                `bson:"loginCount" json:"loginCount"`
	LastLoginAt  *time.Time         `bson:"lastLoginAt,omitempty" json:"lastLoginAt,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// IsCustomer reports whether the account counts as a customer for analytics.
func (u User) IsCustomer() bool {
	return u.Role != RoleAdmin && !u.IsDeleted
}
