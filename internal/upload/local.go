package upload

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	// maxDimension is the longest side after downscaling.
	maxDimension = 800
	jpegQuality  = 80
)

// LocalUploader is the terminal hop: it downscales, re-encodes as JPEG and
// returns a base64 data URL. It only fails on an undecodable image, which
// validation has already screened for.
type LocalUploader struct{}

func NewLocalUploader() *LocalUploader { return &LocalUploader{} }

func (u *LocalUploader) Name() string { return "local" }

func (u *LocalUploader) Upload(_ context.Context, data []byte, _ string) (Result, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Result{}, fmt.Errorf("image could not be decoded: %w", err)
	}

	img = Downscale(img, maxDimension)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return Result{}, fmt.Errorf("image could not be encoded: %w", err)
	}

	url := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
	return Result{URL: url, Provider: u.Name()}, nil
}

// Downscale shrinks img so its longest side is at most limit pixels,
// preserving aspect ratio. Smaller images pass through untouched.
func Downscale(img image.Image, limit int) image.Image {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= limit && height <= limit {
		return img
	}

	var newWidth, newHeight int
	if width >= height {
		newWidth = limit
		newHeight = height * limit / width
	} else {
		newHeight = limit
		newWidth = width * limit / height
	}
	if newWidth < 1 {
		newWidth = 1
	}
	if newHeight < 1 {
		newHeight = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, xdraw.Over, nil)
	return dst
}
