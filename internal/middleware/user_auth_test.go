package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testSecret = "test-secret"

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("token signing failed: %v", err)
	}
	return token
}

func TestUserAuthRejectsMissingToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest("GET", "/api/ws/session", nil)

	UserAuth(testSecret)(c)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", rec.Code)
	}
	if !c.IsAborted() {
		t.Fatal("expected the chain to be aborted")
	}
}

func TestUserAuthRejectsWrongSecret(t *testing.T) {
	gin.SetMode(gin.TestMode)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": primitive.NewObjectID().Hex(),
		"exp":    time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("token signing failed: %v", err)
	}

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest("GET", "/api/ws/session", nil)
	c.Request.Header.Set("Authorization", "Bearer "+token)

	UserAuth(testSecret)(c)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a foreign signature, got %d", rec.Code)
	}
}

func TestUserAuthInjectsUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	want := primitive.NewObjectID()
	token := signedToken(t, jwt.MapClaims{
		"userId": want.Hex(),
		"exp":    time.Now().Add(time.Hour).Unix(),
	})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest("GET", "/api/ws/session", nil)
	c.Request.Header.Set("Authorization", "Bearer "+token)

	UserAuth(testSecret)(c)

	if c.IsAborted() {
		t.Fatalf("expected the request to pass, got %d", rec.Code)
	}
	value, ok := c.Get("userId")
	if !ok {
		t.Fatal("expected userId in context")
	}
	if got, _ := value.(primitive.ObjectID); got != want {
		t.Fatalf("expected %s, got %v", want.Hex(), value)
	}
}
