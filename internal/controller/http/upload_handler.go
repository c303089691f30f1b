package http

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"stylefeed/pkg/logger"
	"stylefeed/pkg/s3"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var allowedUploadExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

type UploadHandler struct {
	s3Client *s3.Client
	logger   *logger.Logger
}

func NewUploadHandler(s3Client *s3.Client, logger *logger.Logger) *UploadHandler {
	return &UploadHandler{
		s3Client: s3Client,
		logger:   logger,
	}
}

// Upload godoc
// @Summary      Upload a cover or avatar image
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file formData file true "Image file (jpg/jpeg/png/webp)"
// @Param        kind formData string false "Upload kind" Enums(cover, avatar) default(cover)
// @Success      201  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /uploads [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	if h.s3Client == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Uploads are not configured"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	contentType, ok := allowedUploadExtensions[ext]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only jpg, jpeg, png and webp files are allowed"})
		return
	}

	kind := c.DefaultPostForm("kind", "cover")
	if kind != "cover" && kind != "avatar" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be cover or avatar"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
		return
	}
	defer src.Close()

	key := fmt.Sprintf("%ss/%s/%s%s", kind, c.GetString("user_id"), uuid.New().String(), ext)
	if _, err := h.s3Client.Upload(key, src, contentType); err != nil {
		h.logger.Error("Upload failed for key=%s: %v", key, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to store file"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"key": key,
		"url": h.s3Client.PublicURL(key),
	})
}
