// Package upload pushes product images through an ordered chain of hosts,
// falling back to the next on failure. The chain ends in a local encoder
// that cannot fail, so a validated image always gets a URL.
package upload

import (
	"context"
	"errors"
	"fmt"
	"log"
)

// MaxFileSize is the upload size ceiling, checked before any network call.
const MaxFileSize = 10 << 20

// ErrFileTooLarge is surfaced verbatim to the user.
var ErrFileTooLarge = errors.New("File too large. Images must be 10MB or smaller.")

var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Result is the outcome of a successful upload.
type Result struct {
	URL      string `json:"url"`
	Provider string `json:"provider"`
}

// Uploader is one hop of the fallback chain.
type Uploader interface {
	Name() string
	Upload(ctx context.Context, data []byte, filename string) (Result, error)
}

// Validate checks MIME type and size. It runs before the first hop so an
// invalid file never reaches the network.
func Validate(contentType string, size int64) error {
	if !allowedTypes[contentType] {
		return fmt.Errorf("unsupported image type: %s", contentType)
	}
	if size > MaxFileSize {
		return ErrFileTooLarge
	}
	return nil
}

// Chain tries each uploader in order and returns the first success.
type Chain struct {
	uploaders []Uploader
}

// NewChain builds a chain. Callers append the local fallback last so the
// chain is guaranteed to terminate with a result.
func NewChain(uploaders ...Uploader) *Chain {
	return &Chain{uploaders: uploaders}
}

// Upload validates, then walks the chain. Each hop's failure is logged and
// the next hop is tried; only a fully exhausted chain errors.
func (c *Chain) Upload(ctx context.Context, data []byte, contentType, filename string) (Result, error) {
	if err := Validate(contentType, int64(len(data))); err != nil {
		return Result{}, err
	}

	var lastErr error
	for _, uploader := range c.uploaders {
		result, err := uploader.Upload(ctx, data, filename)
		if err == nil {
			log.Printf("[UPLOAD] [INFO] image stored via %s", uploader.Name())
			return result, nil
		}
		log.Printf("[UPLOAD] [WARN] %s failed, trying next: %v", uploader.Name(), err)
		lastErr = err
	}

	if lastErr == nil {
		lastErr = errors.New("no upload targets configured")
	}
	return Result{}, fmt.Errorf("all upload targets failed: %w", lastErr)
}
