package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"inkwell/internal/errors"
	"inkwell/internal/service"
)

// FeedHandler handles the public, unauthenticated read endpoints.
type FeedHandler struct {
	postService       service.PostService
	engagementService service.EngagementService
}

// NewFeedHandler creates a new feed handler.
func NewFeedHandler(postService service.PostService, engagementService service.EngagementService) *FeedHandler {
	return &FeedHandler{
		postService:       postService,
		engagementService: engagementService,
	}
}

// ListPosts godoc
// @Summary List all posts with author and engagement counts
// @Tags feed
// @Produce json
// @Success 200 {array} model.PostWithCounts
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/posts [get]
func (h *FeedHandler) ListPosts(c echo.Context) error {
	posts, err := h.postService.ListFeed(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, posts)
}

// ListComments godoc
// @Summary List a post's comments
// @Tags feed
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {array} model.CommentWithAuthor
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/posts/{id}/comments [get]
func (h *FeedHandler) ListComments(c echo.Context) error {
	postID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	comments, err := h.engagementService.ListComments(c.Request().Context(), postID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, comments)
}
