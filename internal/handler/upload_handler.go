package handler

import (
	"net/http"
	"strings"

	"spandan/internal/domain"
	"spandan/internal/middleware"
	"spandan/internal/service"
	"spandan/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UploadHandler struct {
	cloud    cloudinary.Client
	folder   string
	recorder *service.Recorder
}

func NewUploadHandler(cloud cloudinary.Client, folder string, recorder *service.Recorder) *UploadHandler {
	return &UploadHandler{cloud: cloud, folder: folder, recorder: recorder}
}

// UploadImage hosts an admin-supplied image and returns delivery URLs.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	if h.cloud == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "uploads not configured"})
		return
	}
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file required"})
		return
	}
	publicID := "img_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:16]

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
		return
	}
	defer f.Close()

	url, thumbnailURL, err := h.cloud.UploadImage(c.Request.Context(), f, h.folder, publicID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}
	h.recorder.Record(middleware.GetUserID(c), domain.ActionCreate, "upload", 0, gin.H{"public_id": publicID, "filename": file.Filename})
	c.JSON(http.StatusOK, gin.H{"url": url, "thumbnail_url": thumbnailURL})
}
