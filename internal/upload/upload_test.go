package upload

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/jpeg"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingUploader struct {
	calls int
	fail  bool
}

func (r *recordingUploader) Name() string { return "recorder" }

func (r *recordingUploader) Upload(context.Context, []byte, string) (Result, error) {
	r.calls++
	if r.fail {
		return Result{}, errors.New("host down")
	}
	return Result{URL: "https://img.example/x.jpg", Provider: "recorder"}, nil
}

func TestValidateRejectsOversizeBeforeAnyUpload(t *testing.T) {
	recorder := &recordingUploader{}
	chain := NewChain(recorder)

	oversized := make([]byte, 15<<20)
	_, err := chain.Upload(context.Background(), oversized, "image/jpeg", "big.jpg")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "File too large")
	assert.Zero(t, recorder.calls, "no uploader may be reached for an oversized file")
}

func TestValidateRejectsUnsupportedType(t *testing.T) {
	err := Validate("application/pdf", 100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported image type")
}

func TestValidateAcceptsSupportedTypes(t *testing.T) {
	for _, mime := range []string{"image/jpeg", "image/png", "image/gif", "image/webp"} {
		assert.NoError(t, Validate(mime, 1024), mime)
	}
}

func TestChainFallsBackToNextUploader(t *testing.T) {
	first := &recordingUploader{fail: true}
	second := &recordingUploader{}
	chain := NewChain(first, second)

	result, err := chain.Upload(context.Background(), []byte("x"), "image/jpeg", "a.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://img.example/x.jpg", result.URL)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
}

func TestChainErrorsWhenEveryHopFails(t *testing.T) {
	chain := NewChain(&recordingUploader{fail: true}, &recordingUploader{fail: true})
	_, err := chain.Upload(context.Background(), []byte("x"), "image/png", "a.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all upload targets failed")
}

func TestDownscaleCapsLongestSide(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		wantW, wantH int
	}{
		{"wide", 1600, 800, 800, 400},
		{"tall", 600, 1200, 400, 800},
		{"small passthrough", 640, 480, 640, 480},
		{"square", 2000, 2000, 800, 800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := image.NewRGBA(image.Rect(0, 0, tt.w, tt.h))
			dst := Downscale(src, maxDimension)
			assert.Equal(t, tt.wantW, dst.Bounds().Dx())
			assert.Equal(t, tt.wantH, dst.Bounds().Dy())
		})
	}
}

func TestLocalUploaderProducesJPEGDataURL(t *testing.T) {
	var buf bytes.Buffer
	src := image.NewRGBA(image.Rect(0, 0, 1200, 900))
	require.NoError(t, jpeg.Encode(&buf, src, nil))

	result, err := NewLocalUploader().Upload(context.Background(), buf.Bytes(), "photo.jpg")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.URL, "data:image/jpeg;base64,"))
	assert.Equal(t, "local", result.Provider)
}

func TestLocalUploaderRejectsGarbage(t *testing.T) {
	_, err := NewLocalUploader().Upload(context.Background(), []byte("not an image"), "x.jpg")
	require.Error(t, err)
}
