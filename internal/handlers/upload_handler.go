package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/techdayconf/techday-backend/pkg/storage"
	"golang.org/x/exp/slog"
)

// MaxUploadSize is the upload size ceiling in bytes.
const MaxUploadSize = 5 << 20 // 5MB

// allowedImageTypes is the MIME allow-list for uploads.
var allowedImageTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

// UploadHandler stores admin-uploaded images to blob storage. The uploader
// may be nil when storage is unconfigured; uploads then degrade to 503.
type UploadHandler struct {
	uploader storage.Uploader
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(uploader storage.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

// Upload handles POST /admin/uploads with multipart fields file and folder.
func (h *UploadHandler) Upload(c *gin.Context) {
	if h.uploader == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "File storage is not configured"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	folder := c.PostForm("folder")
	if folder == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "folder is required"})
		return
	}

	if file.Size > MaxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File exceeds the 5MB limit"})
		return
	}
	contentType := file.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only image uploads are allowed"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}
	defer src.Close()

	key := fmt.Sprintf("%s/%d-%s%s",
		strings.Trim(folder, "/"),
		time.Now().UnixMilli(),
		uuid.NewString()[:8],
		strings.ToLower(filepath.Ext(file.Filename)),
	)
	url, err := h.uploader.Upload(c.Request.Context(), key, contentType, src)
	if err != nil {
		slog.Error("Upload failed", "error", err, "key", key)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	slog.Info("File uploaded", "key", key, "by", actor(c))
	c.JSON(http.StatusOK, gin.H{"success": true, "url": url})
}
