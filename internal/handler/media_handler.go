package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"inkwell/internal/errors"
	"inkwell/internal/media"
)

// maxUploadSize caps media uploads at 10MB.
const maxUploadSize = 10 << 20

// MediaHandler handles rich-text media uploads to the external store.
type MediaHandler struct {
	mediaStore media.Store
}

// NewMediaHandler creates a new media handler.
func NewMediaHandler(mediaStore media.Store) *MediaHandler {
	return &MediaHandler{mediaStore: mediaStore}
}

// MediaResponse carries the public URL of an uploaded object.
type MediaResponse struct {
	MediaURL string `json:"media_url"`
}

// Upload godoc
// @Summary Upload a media file for embedding in a post
// @Tags admin
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Media file (max 10MB)"
// @Param type formData string false "Resource type: image or video"
// @Success 200 {object} MediaResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/upload-media [post]
func (h *MediaHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "no file provided",
			Code:  "MISSING_FILE",
		})
	}
	if fileHeader.Size > maxUploadSize {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "file exceeds 10MB limit",
			Code:  "FILE_TOO_LARGE",
		})
	}

	resourceType := "image"
	if c.FormValue("type") == "video" {
		resourceType = "video"
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to read file",
			Code:  "UPLOAD_FAILED",
		})
	}
	defer src.Close()

	url, err := h.mediaStore.Upload(c.Request().Context(), src, resourceType, uuid.New().String())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "upload failed",
			Code:  "UPLOAD_FAILED",
		})
	}

	return c.JSON(http.StatusOK, MediaResponse{MediaURL: url})
}
