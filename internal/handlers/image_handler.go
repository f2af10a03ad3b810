package handlers

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ImageHandler stores uploaded images on disk and hands back public URLs
type ImageHandler struct {
	imageDir string
	baseURL  string
}

// NewImageHandler creates a new ImageHandler
func NewImageHandler(imageDir, baseURL string) *ImageHandler {
	return &ImageHandler{imageDir: imageDir, baseURL: baseURL}
}

// RegisterImageRoutes registers the upload route
func (h *ImageHandler) RegisterImageRoutes(e *echo.Echo) {
	e.POST("/image", h.UploadImage)
}

// UploadImage accepts a multipart image, saves it under a random name
// keeping the original extension, and returns the public URL. Only the
// declared content type is checked; there is no size limit or content scan.
func (h *ImageHandler) UploadImage(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid_image_upload_request")
	}
	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid_image_upload_request")
	}

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := strings.ReplaceAll(uuid.NewString(), "-", "") + ext

	if err := os.MkdirAll(h.imageDir, 0o755); err != nil {
		return err
	}
	dst, err := os.Create(filepath.Join(h.imageDir, name))
	if err != nil {
		return err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return err
	}

	return respond(c, http.StatusCreated, "image_upload_success", echo.Map{
		"file_path": h.baseURL + "/image/" + name,
	})
}
