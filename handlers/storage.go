package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"studyhub/services/storage"

	"github.com/gin-gonic/gin"
)

// StorageHandler handles catalog file uploads and download URLs.
type StorageHandler struct {
	StorageSvc storage.StorageService
}

// NewStorageHandler creates a new StorageHandler instance.
func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{StorageSvc: svc}
}

// allowedBuckets maps upload buckets to their storage folders.
var allowedBuckets = map[string]string{
	"notes":   storage.FolderNotes,
	"pyqs":    storage.FolderPYQs,
	"avatars": storage.FolderAvatars,
}

// UploadFileHandler handles POST /api/storage/:bucket. The uploaded file is
// staged to a temp path and pushed to Cloudinary.
func (h *StorageHandler) UploadFileHandler(c *gin.Context) {
	bucket := c.Param("bucket")
	destFolder, ok := allowedBuckets[bucket]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bucket; allowed values are 'notes', 'pyqs' and 'avatars'"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), filepath.Base(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	publicID, err := h.StorageSvc.UploadFile(c, tempFilePath, destFolder)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload file", "detail": err.Error()})
		return
	}

	downloadURL, err := h.StorageSvc.GetDownloadURL(c, "raw", publicID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to construct download URL", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "file uploaded successfully",
		"publicID":    publicID,
		"downloadURL": downloadURL,
	})
}

// GetSecureDownloadURLHandler handles GET /api/storage/secure-url. Premium
// content is served through short-lived signed URLs.
func (h *StorageHandler) GetSecureDownloadURLHandler(c *gin.Context) {
	publicID := c.Query("publicId")
	if publicID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "publicId is required"})
		return
	}
	resourceType := c.DefaultQuery("resourceType", "raw")

	url, err := h.StorageSvc.GetSecureDownloadURL(c, resourceType, publicID, 15*time.Minute)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to construct download URL", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"downloadURL": url})
}
