package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"omufusion/internal/models"
)

// UserProfileService maps profile, address, preference and account-state
// operations onto the users collection. Accounts are soft-deleted only.
type UserProfileService struct {
	db *mongo.Database
}

func NewUserProfileService(db *mongo.Database) *UserProfileService {
	return &UserProfileService{db: db}
}

func (s *UserProfileService) col() *mongo.Collection {
	return s.db.Collection("users")
}

// GetByID returns a user profile; soft-deleted accounts read as not found.
func (s *UserProfileService) GetByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	var user models.User
	err := s.col().FindOne(ctx, bson.M{"_id": id, "isDeleted": bson.M{"$ne": true}}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return models.User{}, fmt.Errorf("user %s: %w", id.Hex(), ErrUserNotFound)
	}
	if err != nil {
		logPersistenceError("PROFILE", err)
		return models.User{}, fmt.Errorf("user could not be fetched: %w", err)
	}
	return user, nil
}

// GetAll lists accounts for the admin back-office, soft-deleted included.
func (s *UserProfileService) GetAll(ctx context.Context) ([]models.User, error) {
	cursor, err := s.col().Find(ctx, bson.M{})
	if err != nil {
		logPersistenceError("PROFILE", err)
		if fallbackToEmpty(err) {
			return []models.User{}, nil
		}
		return nil, fmt.Errorf("users could not be fetched: %w", err)
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		logPersistenceError("PROFILE", err)
		if fallbackToEmpty(err) {
			return []models.User{}, nil
		}
		return nil, fmt.Errorf("users could not be decoded: %w", err)
	}
	return users, nil
}

// UpdateProfile updates the mutable identity fields.
func (s *UserProfileService) UpdateProfile(ctx context.Context, id primitive.ObjectID, name, phone string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name is required")
	}
	return s.setFields(ctx, id, bson.M{"name": name, "phone": strings.TrimSpace(phone)})
}

// UpdatePreferences replaces the preference bag whole.
func (s *UserProfileService) UpdatePreferences(ctx context.Context, id primitive.ObjectID, prefs map[string]string) error {
	if prefs == nil {
		prefs = map[string]string{}
	}
	return s.setFields(ctx, id, bson.M{"preferences": prefs})
}

// AddAddress appends an address. The first address a user adds becomes the
// default; a new default demotes every other entry.
func (s *UserProfileService) AddAddress(ctx context.Context, userID primitive.ObjectID, addr models.Address) (models.Address, error) {
	addr.Title = strings.TrimSpace(addr.Title)
	addr.Detail = strings.TrimSpace(addr.Detail)
	if addr.Title == "" || addr.Detail == "" {
		return models.Address{}, fmt.Errorf("title and detail are required")
	}

	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return models.Address{}, err
	}

	addr.ID = uuid.NewString()
	updated := addAddress(user.Addresses, addr)
	if err := s.saveAddresses(ctx, userID, updated); err != nil {
		return models.Address{}, err
	}

	for _, saved := range updated {
		if saved.ID == addr.ID {
			return saved, nil
		}
	}
	return addr, nil
}

// UpdateAddress replaces an address entry in place, re-normalizing defaults.
func (s *UserProfileService) UpdateAddress(ctx context.Context, userID primitive.ObjectID, addr models.Address) error {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	index := -1
	for i, existing := range user.Addresses {
		if existing.ID == addr.ID {
			index = i
			break
		}
	}
	if index == -1 {
		return fmt.Errorf("address %s: %w", addr.ID, ErrNotFound)
	}

	user.Addresses[index] = addr
	return s.saveAddresses(ctx, userID, normalizeDefaultAddress(user.Addresses, addr.IsDefault, addr.ID))
}

// RemoveAddress deletes an address; when the default goes away the first
// remaining address is promoted so the invariant holds.
func (s *UserProfileService) RemoveAddress(ctx context.Context, userID primitive.ObjectID, addressID string) error {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	updated, found := removeAddress(user.Addresses, addressID)
	if !found {
		return fmt.Errorf("address %s: %w", addressID, ErrNotFound)
	}
	return s.saveAddresses(ctx, userID, updated)
}

// SetDefaultAddress flags one address as default, demoting all others.
func (s *UserProfileService) SetDefaultAddress(ctx context.Context, userID primitive.ObjectID, addressID string) error {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	updated, found := setDefaultAddress(user.Addresses, addressID)
	if !found {
		return fmt.Errorf("address %s: %w", addressID, ErrNotFound)
	}
	return s.saveAddresses(ctx, userID, updated)
}

// Suspend flips the account's active flag. Admin action.
func (s *UserProfileService) Suspend(ctx context.Context, id primitive.ObjectID, active bool) error {
	return s.setFields(ctx, id, bson.M{"isActive": active})
}

// Promote changes the account role. Admin action.
func (s *UserProfileService) Promote(ctx context.Context, id primitive.ObjectID, role string) error {
	switch role {
	case models.RoleCustomer, models.RoleAdmin, models.RoleModerator:
	default:
		return fmt.Errorf("invalid role: %s", role)
	}
	return s.setFields(ctx, id, bson.M{"role": role})
}

// SoftDelete flags the account as deleted; the document stays behind.
func (s *UserProfileService) SoftDelete(ctx context.Context, id primitive.ObjectID) error {
	return s.setFields(ctx, id, bson.M{"isDeleted": true, "isActive": false})
}

// RecordLogin bumps the login counters after a successful sign-in.
func (s *UserProfileService) RecordLogin(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.col().UpdateByID(ctx, id, bson.M{
		"$inc": bson.M{"loginCount": 1},
		"$set": bson.M{"lastLoginAt": time.Now(), "updatedAt": time.Now()},
	})
	if err != nil {
		logPersistenceError("PROFILE", err)
		return fmt.Errorf("login could not be recorded: %w", err)
	}
	return nil
}

func (s *UserProfileService) setFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	fields["updatedAt"] = time.Now()

	res, err := s.col().UpdateByID(ctx, id, bson.M{"$set": fields})
	if err != nil {
		logPersistenceError("PROFILE", err)
		return fmt.Errorf("user could not be updated: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("user %s: %w", id.Hex(), ErrUserNotFound)
	}
	return nil
}

func (s *UserProfileService) saveAddresses(ctx context.Context, userID primitive.ObjectID, addresses []models.Address) error {
	return s.setFields(ctx, userID, bson.M{"addresses": addresses})
}

// addAddress appends and keeps exactly one default among a non-empty list.
func addAddress(addresses []models.Address, addr models.Address) []models.Address {
	if len(addresses) == 0 {
		addr.IsDefault = true
		return []models.Address{addr}
	}
	out := append(append([]models.Address{}, addresses...), addr)
	return normalizeDefaultAddress(out, addr.IsDefault, addr.ID)
}

// removeAddress drops the entry and promotes the first remaining address if
// the default was removed.
func removeAddress(addresses []models.Address, id string) ([]models.Address, bool) {
	out := make([]models.Address, 0, len(addresses))
	found := false
	removedDefault := false
	for _, addr := range addresses {
		if addr.ID == id {
			found = true
			removedDefault = addr.IsDefault
			continue
		}
		out = append(out, addr)
	}
	if !found {
		return addresses, false
	}
	if removedDefault && len(out) > 0 {
		out[0].IsDefault = true
	}
	return out, true
}

// setDefaultAddress marks id as the single default.
func setDefaultAddress(addresses []models.Address, id string) ([]models.Address, bool) {
	found := false
	out := make([]models.Address, len(addresses))
	for i, addr := range addresses {
		addr.IsDefault = addr.ID == id
		if addr.IsDefault {
			found = true
		}
		out[i] = addr
	}
	if !found {
		return addresses, false
	}
	return out, true
}

// normalizeDefaultAddress enforces the single-default invariant. When
// preferID claims the default every other entry is demoted; when nothing is
// default the first entry is promoted.
func normalizeDefaultAddress(addresses []models.Address, preferClaims bool, preferID string) []models.Address {
	if len(addresses) == 0 {
		return addresses
	}

	out := make([]models.Address, len(addresses))
	copy(out, addresses)

	if preferClaims {
		for i := range out {
			out[i].IsDefault = out[i].ID == preferID
		}
		return out
	}

	defaults := 0
	for i := range out {
		if out[i].IsDefault {
			defaults++
			if defaults > 1 {
				out[i].IsDefault = false
			}
		}
	}
	if defaults == 0 {
		out[0].IsDefault = true
	}
	return out
}
