package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRequestEmailVerificationRequiresEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest("POST", "/api/auth/verify-email", strings.NewReader(`{}`))
	c.Request.Header.Set("Content-Type", "application/json")

	RequestEmailVerification(nil)(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing email, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "email") {
		t.Fatalf("expected the field name in the message, got %s", rec.Body.String())
	}
}

func TestRequestPasswordResetRequiresEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest("POST", "/api/auth/password-reset", strings.NewReader(`{}`))
	c.Request.Header.Set("Content-Type", "application/json")

	RequestPasswordReset(nil)(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing email, got %d: %s", rec.Code, rec.Body.String())
	}
}
