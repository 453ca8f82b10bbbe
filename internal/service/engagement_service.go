package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"inkwell/internal/cache"
	apperr "inkwell/internal/errors"
	"inkwell/internal/model"
	"inkwell/internal/repository"
)

// EngagementService handles likes and comments on the public feed.
type EngagementService interface {
	ToggleLike(ctx context.Context, userID, postID uint) (int64, error)
	AddComment(ctx context.Context, userID, postID uint, content string) (*model.CommentWithAuthor, error)
	ListComments(ctx context.Context, postID uint) ([]model.CommentWithAuthor, error)
}

type engagementService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	likeRepo    repository.LikeRepository
	cache       *cache.Client
}

// NewEngagementService creates a new engagement service.
func NewEngagementService(
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	likeRepo repository.LikeRepository,
	cache *cache.Client,
) EngagementService {
	return &engagementService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		cache:       cache,
	}
}

// ToggleLike removes the user's like if present, adds it otherwise, and
// returns the recomputed total. The check-then-act pair is not wrapped in a
// transaction; the unique index on (user_id, post_id) arbitrates concurrent
// toggles, and a duplicate-key insert means the like is already there.
func (s *engagementService) ToggleLike(ctx context.Context, userID, postID uint) (int64, error) {
	exists, err := s.postRepo.Exists(ctx, postID)
	if err != nil {
		return 0, fmt.Errorf("check post: %w", err)
	}
	if !exists {
		return 0, apperr.ErrPostNotFound
	}

	removed, err := s.likeRepo.DeleteByUserAndPost(ctx, userID, postID)
	if err != nil {
		return 0, fmt.Errorf("remove like: %w", err)
	}
	if removed == 0 {
		like := &model.Like{UserID: userID, PostID: postID}
		if err := s.likeRepo.Create(ctx, like); err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, fmt.Errorf("add like: %w", err)
		}
	}

	count, err := s.likeRepo.CountByPost(ctx, postID)
	if err != nil {
		return 0, fmt.Errorf("count likes: %w", err)
	}
	s.cache.InvalidateFeed(ctx)
	return count, nil
}

// AddComment appends a comment and returns it with the commenter's handle.
func (s *engagementService) AddComment(ctx context.Context, userID, postID uint, content string) (*model.CommentWithAuthor, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperr.ErrEmptyContent
	}

	exists, err := s.postRepo.Exists(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("check post: %w", err)
	}
	if !exists {
		return nil, apperr.ErrPostNotFound
	}

	comment := &model.Comment{
		PostID:  postID,
		UserID:  userID,
		Content: content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	created, err := s.commentRepo.FindWithAuthor(ctx, comment.ID)
	if err != nil {
		return nil, fmt.Errorf("load comment: %w", err)
	}
	s.cache.InvalidateFeed(ctx)
	return created, nil
}

// ListComments lists a post's comments with commenter handles.
func (s *engagementService) ListComments(ctx context.Context, postID uint) ([]model.CommentWithAuthor, error) {
	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}
