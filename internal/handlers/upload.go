package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"omufusion/internal/upload"
)

// UploadProductImage accepts a multipart "image" field and pushes it through
// the host fallback chain. The chain ends in a local encoder, so the client
// gets a usable URL whenever the file itself passes validation.
func UploadProductImage(chain *upload.Chain) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
			return
		}

		contentType := fileHeader.Header.Get("Content-Type")
		if err := upload.Validate(contentType, fileHeader.Size); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image could not be read"})
			return
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, upload.MaxFileSize+1))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image could not be read"})
			return
		}

		result, err := chain.Upload(c.Request.Context(), data, contentType, fileHeader.Filename)
		if err != nil {
			if errors.Is(err, upload.ErrFileTooLarge) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": "image could not be uploaded"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"data": result})
	}
}
