package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"omufusion/internal/models"
)

const (
	// adminSessionKeyPrefix is the Redis key prefix for admin session markers.
	adminSessionKeyPrefix = "admin_session:"
	// SessionChannel is the Redis channel carrying session-change events so
	// every open view converges on the same admin/customer session state.
	SessionChannel = "session_events"
)

// SessionEvent is published on SessionChannel whenever an admin session is
// created or destroyed.
type SessionEvent struct {
	Event  string    `json:"event"`
	UserID string    `json:"userId"`
	At     time.Time `json:"at"`
}

// AdminAuthService gates the admin back-office: credentials must check out
// AND an admin record must exist, otherwise the sign-in is rejected outright.
// Successful sign-ins get a session marker in Redis with a TTL.
type AdminAuthService struct {
	db         *mongo.Database
	auth       *AuthService
	rdb        *redis.Client
	sessionTTL time.Duration
}

func NewAdminAuthService(db *mongo.Database, auth *AuthService, rdb *redis.Client, sessionTTL time.Duration) *AdminAuthService {
	return &AdminAuthService{db: db, auth: auth, rdb: rdb, sessionTTL: sessionTTL}
}

func (s *AdminAuthService) admins() *mongo.Collection {
	return s.db.Collection("admins")
}

// Login signs in an admin by email or username. An authenticated account
// without an admin record gets ErrNotAdmin and no session of any kind.
func (s *AdminAuthService) Login(ctx context.Context, login, password string) (models.User, string, string, error) {
	email := strings.ToLower(strings.TrimSpace(login))

	// A username login resolves to the account email through the admin
	// record before the credential check.
	if !strings.Contains(email, "@") {
		resolved, err := s.resolveUsername(ctx, email)
		if err != nil {
			return models.User{}, "", "", err
		}
		email = resolved
	}

	user, err := s.auth.Authenticate(ctx, email, password)
	if err != nil {
		return models.User{}, "", "", err
	}

	var admin models.Admin
	err = s.admins().FindOne(ctx, bson.M{"userId": user.ID}).Decode(&admin)
	if err == mongo.ErrNoDocuments {
		// Authenticated but not an admin: reject and make sure no stale
		// marker survives, the equivalent of the forced sign-out.
		s.dropMarkersFor(ctx, user.ID.Hex())
		log.Println("[ADMIN] [ERROR] admin login without admin record:", user.Email)
		return models.User{}, "", "", ErrNotAdmin
	}
	if err != nil {
		logPersistenceError("ADMIN", err)
		return models.User{}, "", "", fmt.Errorf("admin lookup failed: %w", err)
	}

	token, err := s.auth.IssueToken(user)
	if err != nil {
		return models.User{}, "", "", err
	}

	marker, err := s.createMarker(ctx, user.ID.Hex())
	if err != nil {
		return models.User{}, "", "", err
	}

	now := time.Now()
	_, err = s.admins().UpdateByID(ctx, admin.ID, bson.M{
		"$inc": bson.M{"loginCount": 1},
		"$set": bson.M{"lastLoginAt": now},
	})
	if err != nil {
		log.Println("[ADMIN] [WARN] admin login counter update failed:", err)
	}

	s.publish(ctx, SessionEvent{Event: "admin-signin", UserID: user.ID.Hex(), At: now})
	log.Println("[ADMIN] [INFO] admin login succeeded:", user.Email)
	return user, token, marker, nil
}

// Logout destroys the session marker and broadcasts the change.
func (s *AdminAuthService) Logout(ctx context.Context, marker string) error {
	userID, ok, err := s.ValidateMarker(ctx, marker)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := s.rdb.Del(ctx, adminSessionKeyPrefix+marker).Err(); err != nil {
		return fmt.Errorf("admin session could not be cleared: %w", err)
	}

	s.publish(ctx, SessionEvent{Event: "admin-signout", UserID: userID, At: time.Now()})
	return nil
}

// ValidateMarker checks a session marker and returns the admin's user id.
func (s *AdminAuthService) ValidateMarker(ctx context.Context, marker string) (string, bool, error) {
	if strings.TrimSpace(marker) == "" {
		return "", false, nil
	}

	userID, err := s.rdb.Get(ctx, adminSessionKeyPrefix+marker).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("admin session lookup failed: %w", err)
	}
	return userID, true, nil
}

// Subscribe opens the session-change stream for relays such as the websocket
// endpoint. The caller owns the returned subscription.
func (s *AdminAuthService) Subscribe(ctx context.Context) *redis.PubSub {
	return s.rdb.Subscribe(ctx, SessionChannel)
}

func (s *AdminAuthService) resolveUsername(ctx context.Context, username string) (string, error) {
	var admin models.Admin
	err := s.admins().FindOne(ctx, bson.M{"username": username}).Decode(&admin)
	if err == mongo.ErrNoDocuments {
		return "", ErrUserNotFound
	}
	if err != nil {
		logPersistenceError("ADMIN", err)
		return "", fmt.Errorf("admin lookup failed: %w", err)
	}

	var user models.User
	err = s.db.Collection("users").FindOne(ctx, bson.M{"_id": admin.UserID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return "", ErrUserNotFound
	}
	if err != nil {
		logPersistenceError("ADMIN", err)
		return "", fmt.Errorf("admin lookup failed: %w", err)
	}
	return user.Email, nil
}

func (s *AdminAuthService) createMarker(ctx context.Context, userID string) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("session marker generation failed: %w", err)
	}
	marker := base64.URLEncoding.EncodeToString(buf)

	if err := s.rdb.Set(ctx, adminSessionKeyPrefix+marker, userID, s.sessionTTL).Err(); err != nil {
		return "", fmt.Errorf("admin session could not be stored: %w", err)
	}
	return marker, nil
}

// dropMarkersFor removes any markers belonging to the user. Scan is fine at
// admin-session cardinality.
func (s *AdminAuthService) dropMarkersFor(ctx context.Context, userID string) {
	iter := s.rdb.Scan(ctx, 0, adminSessionKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		owner, err := s.rdb.Get(ctx, key).Result()
		if err == nil && owner == userID {
			_ = s.rdb.Del(ctx, key).Err()
		}
	}
	if err := iter.Err(); err != nil {
		log.Println("[ADMIN] [WARN] session sweep failed:", err)
	}
}

func (s *AdminAuthService) publish(ctx context.Context, event SessionEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}
	if err := s.rdb.Publish(ctx, SessionChannel, payload).Err(); err != nil {
		log.Println("[ADMIN] [WARN] session event publish failed:", err)
	}
}
