package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"inkwell/internal/cache"
	apperr "inkwell/internal/errors"
	"inkwell/internal/media"
	"inkwell/internal/model"
	"inkwell/internal/repository"
)

// mediaDestroyTimeout caps each external destroy call during the delete
// cascade. No retries: a failure is reported, not repeated.
const mediaDestroyTimeout = 10 * time.Second

// DeleteResult reports the outcome of a cascading post deletion.
type DeleteResult struct {
	// FailedMedia lists public IDs that could not be removed from the
	// external store. The post and its dependents are gone regardless.
	FailedMedia []string
}

// PostService handles the post lifecycle, including the delete cascade.
type PostService interface {
	Create(ctx context.Context, ownerID uint, title, content string) (*model.Post, error)
	Update(ctx context.Context, ownerID, postID uint, title, content string) error
	Delete(ctx context.Context, ownerID, postID uint) (*DeleteResult, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]model.Post, error)
	ListFeed(ctx context.Context) ([]model.PostWithCounts, error)
}

type postService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	likeRepo    repository.LikeRepository
	mediaStore  media.Store
	cache       *cache.Client
}

// NewPostService creates a new post service.
func NewPostService(
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	likeRepo repository.LikeRepository,
	mediaStore media.Store,
	cache *cache.Client,
) PostService {
	return &postService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		mediaStore:  mediaStore,
		cache:       cache,
	}
}

// Create persists a new post for the owner.
func (s *postService) Create(ctx context.Context, ownerID uint, title, content string) (*model.Post, error) {
	post := &model.Post{
		Title:   title,
		Content: content,
		UserID:  ownerID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	s.cache.InvalidateFeed(ctx)
	return post, nil
}

// Update edits a post the owner holds. A post owned by someone else is
// reported exactly like a missing one.
func (s *postService) Update(ctx context.Context, ownerID, postID uint, title, content string) error {
	post, err := s.postRepo.FindByIDAndOwner(ctx, postID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrPostNotFound
		}
		return fmt.Errorf("find post: %w", err)
	}

	post.Title = title
	post.Content = content
	if err := s.postRepo.Update(ctx, post); err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	s.cache.InvalidateFeed(ctx)
	return nil
}

// Delete removes a post and everything referencing it, as an ordered
// sequence of independently committed steps: comments, likes, externally
// hosted media, then the post row. Media destroys are best-effort; failures
// are collected in the result and never block the row deletion. The body is
// the source of the media URLs, so extraction happens before the row goes.
func (s *postService) Delete(ctx context.Context, ownerID, postID uint) (*DeleteResult, error) {
	post, err := s.postRepo.FindByIDAndOwner(ctx, postID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}

	if _, err := s.commentRepo.DeleteByPost(ctx, postID); err != nil {
		return nil, fmt.Errorf("delete comments: %w", err)
	}
	if _, err := s.likeRepo.DeleteByPost(ctx, postID); err != nil {
		return nil, fmt.Errorf("delete likes: %w", err)
	}

	result := &DeleteResult{}
	for _, ref := range media.ExtractRefs(post.Content) {
		destroyCtx, cancel := context.WithTimeout(ctx, mediaDestroyTimeout)
		err := s.mediaStore.Destroy(destroyCtx, ref.PublicID, ref.ResourceType)
		cancel()
		if err != nil {
			result.FailedMedia = append(result.FailedMedia, ref.PublicID)
		}
	}

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return result, fmt.Errorf("delete post: %w", err)
	}
	s.cache.InvalidateFeed(ctx)
	return result, nil
}

// ListByOwner lists the owner's posts, newest first.
func (s *postService) ListByOwner(ctx context.Context, ownerID uint) ([]model.Post, error) {
	posts, err := s.postRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// ListFeed returns the public feed, served from the cache when warm.
func (s *postService) ListFeed(ctx context.Context) ([]model.PostWithCounts, error) {
	if posts, ok := s.cache.GetFeed(ctx); ok {
		return posts, nil
	}
	posts, err := s.postRepo.ListWithCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list feed: %w", err)
	}
	s.cache.SetFeed(ctx, posts)
	return posts, nil
}
