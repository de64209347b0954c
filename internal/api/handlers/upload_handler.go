// server/internal/api/handlers/upload_handler.go
package handlers

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"hadirkoe-api-server/internal/s3"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const uploadTimeout = 30 * time.Second

// ImageUploader streams photo bytes to durable blob storage and returns
// the public URL.
type ImageUploader interface {
	UploadFile(ctx context.Context, file io.Reader, objectKey string) (string, error)
}

type UploadHandler struct {
	Uploader ImageUploader // nil when blob storage is not configured
}

// Upload is a pure pass-through: the raw request body goes to blob
// storage under a key derived from ?filename=, and the public URL comes
// back. No retries here; the caller decides whether to retry.
func (h *UploadHandler) Upload(c *gin.Context) {
	filename := c.Query("filename")
	if filename == "" || c.Request.Body == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Filename and body are required"})
		return
	}

	if !s3.IsAllowedImage(filename) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Only image files are allowed"})
		return
	}

	// ContentLength is -1 on chunked requests, so emptiness is detected
	// by peeking the stream rather than trusting the header.
	body := bufio.NewReader(c.Request.Body)
	if _, err := body.Peek(1); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Filename and body are required"})
		return
	}

	if h.Uploader == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Blob storage is not configured"})
		return
	}

	// Prefix with a short random id so two clients uploading the same
	// filename never overwrite each other.
	objectKey := fmt.Sprintf("attendance/%s-%s", uuid.New().String()[:8], filepath.Base(filename))

	ctx, cancel := context.WithTimeout(c.Request.Context(), uploadTimeout)
	defer cancel()

	url, err := h.Uploader.UploadFile(ctx, body, objectKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Upload failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url":         url,
		"pathname":    objectKey,
		"contentType": s3.ContentTypeFor(filename),
		"size":        c.Request.ContentLength,
	})
}
