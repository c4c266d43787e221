package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"omufusion/internal/upload"
)

type stubUploader struct {
	url   string
	calls int
}

func (s *stubUploader) Name() string { return "stub" }

func (s *stubUploader) Upload(_ context.Context, _ []byte, _ string) (upload.Result, error) {
	s.calls++
	return upload.Result{URL: s.url, Provider: s.Name()}, nil
}

func multipartImageRequest(t *testing.T, contentType string, payload []byte) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="image"; filename="product.png"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("CreatePart returned error: %v", err)
	}
	if _, err := part.Write(payload); err != nil {
		t.Fatalf("part write returned error: %v", err)
	}
	_ = writer.Close()

	req := httptest.NewRequest("POST", "/api/admin/products/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadProductImageReturnsChainResult(t *testing.T) {
	gin.SetMode(gin.TestMode)

	stub := &stubUploader{url: "https://img.example/p.png"}
	chain := upload.NewChain(stub)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = multipartImageRequest(t, "image/png", []byte("fake png bytes"))

	UploadProductImage(chain)(c)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if stub.calls != 1 {
		t.Fatalf("expected one uploader call, got %d", stub.calls)
	}

	var parsed struct {
		Data upload.Result `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &parsed); err != nil {
		t.Fatalf("response unreadable: %v", err)
	}
	if parsed.Data.URL != stub.url {
		t.Fatalf("expected url %q, got %q", stub.url, parsed.Data.URL)
	}
}

func TestUploadProductImageRejectsBadType(t *testing.T) {
	gin.SetMode(gin.TestMode)

	stub := &stubUploader{url: "https://img.example/p.png"}
	chain := upload.NewChain(stub)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = multipartImageRequest(t, "application/pdf", []byte("%PDF-1.7"))

	UploadProductImage(chain)(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if stub.calls != 0 {
		t.Fatalf("rejected file must not reach the chain, got %d calls", stub.calls)
	}
}

func TestUploadProductImageRequiresFile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest("POST", "/api/admin/products/upload", strings.NewReader(""))

	UploadProductImage(upload.NewChain(upload.NewLocalUploader()))(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
