package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// ImageHostUploader posts the image to a generic third-party host that takes
// a multipart upload and answers with a stable URL. Second hop of the chain.
type ImageHostUploader struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

func NewImageHostUploader(endpoint, apiKey string) *ImageHostUploader {
	return &ImageHostUploader{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

func (u *ImageHostUploader) Name() string { return "imagehost" }

type imageHostResponse struct {
	Data struct {
		URL        string `json:"url"`
		DisplayURL string `json:"display_url"`
	} `json:"data"`
	Success bool `json:"success"`
}

func (u *ImageHostUploader) Upload(ctx context.Context, data []byte, filename string) (Result, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return Result{}, err
	}
	if _, err := part.Write(data); err != nil {
		return Result{}, err
	}
	if u.apiKey != "" {
		_ = writer.WriteField("key", u.apiKey)
	}
	if err := writer.Close(); err != nil {
		return Result{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.endpoint, body)
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := u.client.Do(req)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Result{}, fmt.Errorf("image host returned %d: %s", resp.StatusCode, payload)
	}

	var parsed imageHostResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Result{}, fmt.Errorf("image host response unreadable: %w", err)
	}

	url := parsed.Data.URL
	if url == "" {
		url = parsed.Data.DisplayURL
	}
	if !parsed.Success || url == "" {
		return Result{}, fmt.Errorf("image host rejected the upload")
	}
	return Result{URL: url, Provider: u.Name()}, nil
}
