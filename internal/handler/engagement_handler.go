package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"inkwell/internal/auth"
	"inkwell/internal/errors"
	"inkwell/internal/service"
)

// EngagementHandler handles authenticated like and comment endpoints.
type EngagementHandler struct {
	engagementService service.EngagementService
}

// NewEngagementHandler creates a new engagement handler.
func NewEngagementHandler(engagementService service.EngagementService) *EngagementHandler {
	return &EngagementHandler{engagementService: engagementService}
}

// CommentRequest represents a new comment. Blank content is rejected by the
// service so the check also holds for non-HTTP callers.
type CommentRequest struct {
	Content string `json:"content"`
}

// LikeResponse carries the recomputed like total after a toggle.
type LikeResponse struct {
	LikesCount int64 `json:"likes_count"`
}

// ToggleLike godoc
// @Summary Toggle the caller's like on a post
// @Tags engagement
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} LikeResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/posts/{id}/like [post]
func (h *EngagementHandler) ToggleLike(c echo.Context) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	postID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	count, err := h.engagementService.ToggleLike(c.Request().Context(), claims.UserID, postID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, LikeResponse{LikesCount: count})
}

// AddComment godoc
// @Summary Comment on a post
// @Tags engagement
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body CommentRequest true "Comment body"
// @Success 201 {object} model.CommentWithAuthor
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/posts/{id}/comments [post]
func (h *EngagementHandler) AddComment(c echo.Context) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	postID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req CommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	comment, err := h.engagementService.AddComment(c.Request().Context(), claims.UserID, postID, req.Content)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, comment)
}
