package repository

import (
	"context"

	"gorm.io/gorm"

	"inkwell/internal/model"
)

// PostRepository defines post persistence operations.
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*model.Post, error)
	Update(ctx context.Context, post *model.Post) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]model.Post, error)
	ListWithCounts(ctx context.Context) ([]model.PostWithCounts, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Create inserts a new post.
func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// FindByIDAndOwner finds a post by ID scoped to its owner. A post owned by
// someone else comes back as gorm.ErrRecordNotFound, same as a missing one.
func (r *postRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*model.Post, error) {
	var post model.Post
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// Update persists changed post fields.
func (r *postRepository) Update(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Save(post).Error
}

// Delete removes the post row.
func (r *postRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Post{}, id).Error
}

// Exists reports whether a post with the given ID exists.
func (r *postRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByOwner lists an owner's posts, newest first.
func (r *postRepository) ListByOwner(ctx context.Context, ownerID uint) ([]model.Post, error) {
	var posts []model.Post
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// ListWithCounts builds the public feed: every post joined with its author
// handle and aggregate like/comment counts, newest first.
func (r *postRepository) ListWithCounts(ctx context.Context) ([]model.PostWithCounts, error) {
	var rows []model.PostWithCounts
	err := r.db.WithContext(ctx).
		Table("posts").
		Select("posts.id, posts.title, posts.content, posts.created_at, users.username AS author, " +
			"COUNT(DISTINCT likes.id) AS likes_count, COUNT(DISTINCT comments.id) AS comments_count").
		Joins("JOIN users ON users.id = posts.user_id").
		Joins("LEFT JOIN likes ON likes.post_id = posts.id").
		Joins("LEFT JOIN comments ON comments.post_id = posts.id").
		Group("posts.id, posts.title, posts.content, posts.created_at, users.username").
		Order("posts.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
