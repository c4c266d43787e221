package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"omufusion/internal/models"
)

const minPasswordLength = 6

// AuthService owns the email/password credential flows and session token
// issuance for customer accounts.
type AuthService struct {
	db        *mongo.Database
	profile   *UserProfileService
	jwtSecret string
	accessTTL time.Duration
}

func NewAuthService(db *mongo.Database, profile *UserProfileService, jwtSecret string, accessTTL time.Duration) *AuthService {
	return &AuthService{db: db, profile: profile, jwtSecret: jwtSecret, accessTTL: accessTTL}
}

func (s *AuthService) users() *mongo.Collection {
	return s.db.Collection("users")
}

// Register creates a customer account. Validation happens before any
// database call.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)

	if !looksLikeEmail(email) {
		return models.User{}, ErrInvalidEmail
	}
	if len(password) < minPasswordLength {
		return models.User{}, ErrWeakPassword
	}
	if name == "" {
		return models.User{}, fmt.Errorf("name is required")
	}

	count, err := s.users().CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		logPersistenceError("AUTH", err)
		return models.User{}, fmt.Errorf("registration failed: %w", err)
	}
	if count > 0 {
		return models.User{}, ErrEmailInUse
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("password hash failed: %w", err)
	}

	now := time.Now()
	user := models.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         models.RoleCustomer,
		IsActive:     true,
		Addresses:    []models.Address{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	res, err := s.users().InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, ErrEmailInUse
		}
		logPersistenceError("AUTH", err)
		return models.User{}, fmt.Errorf("registration failed: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = id
	}

	log.Println("[AUTH] [INFO] user registered:", email)
	return user, nil
}

// Login checks credentials and returns the account with a signed session
// token. Unknown email and wrong password both map to the same user-facing
// message downstream.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.User, string, error) {
	user, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return models.User{}, "", err
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return models.User{}, "", err
	}

	if err := s.profile.RecordLogin(ctx, user.ID); err != nil {
		log.Println("[AUTH] [WARN] login counter update failed:", err)
	}

	log.Println("[AUTH] [INFO] login succeeded:", user.Email)
	return user, token, nil
}

// Authenticate verifies email and password without issuing a session.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	err := s.users().FindOne(ctx, bson.M{"email": email, "isDeleted": bson.M{"$ne": true}}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		logPersistenceError("AUTH", err)
		return models.User{}, fmt.Errorf("login failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrWrongPassword
	}
	if !user.IsActive {
		return models.User{}, ErrAccountInactive
	}
	return user, nil
}

// IssueToken signs an HS256 access token carrying the user id and role.
func (s *AuthService) IssueToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"userId": user.ID.Hex(),
		"email":  user.Email,
		"role":   user.Role,
		"exp":    time.Now().Add(s.accessTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("token generation failed: %w", err)
	}
	return signed, nil
}

// PasswordResetToken issues a short-lived single-purpose token for the reset
// email link. The account's existence is not revealed to the caller.
func (s *AuthService) PasswordResetToken(ctx context.Context, email string) (string, error) {
	return s.purposeToken(ctx, email, "password-reset", 30*time.Minute)
}

// EmailVerificationToken issues the token embedded in the verification link.
func (s *AuthService) EmailVerificationToken(ctx context.Context, email string) (string, error) {
	return s.purposeToken(ctx, email, "verify-email", 24*time.Hour)
}

func (s *AuthService) purposeToken(ctx context.Context, email, purpose string, ttl time.Duration) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	err := s.users().FindOne(ctx, bson.M{"email": email, "isDeleted": bson.M{"$ne": true}}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return "", ErrUserNotFound
	}
	if err != nil {
		logPersistenceError("AUTH", err)
		return "", fmt.Errorf("token generation failed: %w", err)
	}

	claims := jwt.MapClaims{
		"userId":  user.ID.Hex(),
		"purpose": purpose,
		"exp":     time.Now().Add(ttl).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("token generation failed: %w", err)
	}
	return signed, nil
}

func looksLikeEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	return strings.Contains(email[at+1:], ".")
}
