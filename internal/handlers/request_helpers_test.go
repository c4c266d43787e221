package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestObjectIDParamRejectsGarbage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Params = gin.Params{{Key: "id", Value: "not-a-hex-id"}}

	if _, ok := objectIDParam(c, "id"); ok {
		t.Fatal("expected objectIDParam to fail on garbage input")
	}
	if rec.Code != 400 {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestObjectIDParamAcceptsValidHex(t *testing.T) {
	gin.SetMode(gin.TestMode)

	want := primitive.NewObjectID()
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Params = gin.Params{{Key: "id", Value: want.Hex()}}

	got, ok := objectIDParam(c, "id")
	if !ok {
		t.Fatalf("expected objectIDParam to succeed, response: %s", rec.Body.String())
	}
	if got != want {
		t.Fatalf("expected %s, got %s", want.Hex(), got.Hex())
	}
}

func TestLowerCamel(t *testing.T) {
	cases := map[string]string{
		"":         "",
		"Name":     "name",
		"SiteName": "siteName",
		"already":  "already",
	}
	for in, want := range cases {
		if got := lowerCamel(in); got != want {
			t.Fatalf("lowerCamel(%q) = %q, want %q", in, got, want)
		}
	}
}
