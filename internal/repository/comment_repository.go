package repository

import (
	"context"

	"gorm.io/gorm"

	"inkwell/internal/model"
)

// CommentRepository defines comment persistence operations.
type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	FindWithAuthor(ctx context.Context, id uint) (*model.CommentWithAuthor, error)
	ListByPost(ctx context.Context, postID uint) ([]model.CommentWithAuthor, error)
	DeleteByPost(ctx context.Context, postID uint) (int64, error)
	CountByPeriod(ctx context.Context, ownerID uint, format string) ([]model.PeriodCount, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create inserts a new comment.
func (r *commentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// FindWithAuthor returns a comment joined with the commenting user's handle.
func (r *commentRepository) FindWithAuthor(ctx context.Context, id uint) (*model.CommentWithAuthor, error) {
	var row model.CommentWithAuthor
	err := r.db.WithContext(ctx).
		Table("comments").
		Select("comments.id, comments.post_id, comments.content, comments.created_at, users.username AS username").
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.id = ?", id).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ListByPost lists a post's comments with commenter handles, oldest first.
func (r *commentRepository) ListByPost(ctx context.Context, postID uint) ([]model.CommentWithAuthor, error) {
	var rows []model.CommentWithAuthor
	err := r.db.WithContext(ctx).
		Table("comments").
		Select("comments.id, comments.post_id, comments.content, comments.created_at, users.username AS username").
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.post_id = ?", postID).
		Order("comments.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// DeleteByPost removes every comment referencing the post.
func (r *commentRepository) DeleteByPost(ctx context.Context, postID uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("post_id = ?", postID).Delete(&model.Comment{})
	return res.RowsAffected, res.Error
}

// CountByPeriod groups comment counts on the owner's posts by the given
// DATE_FORMAT truncation.
func (r *commentRepository) CountByPeriod(ctx context.Context, ownerID uint, format string) ([]model.PeriodCount, error) {
	var rows []model.PeriodCount
	err := r.db.WithContext(ctx).
		Table("comments").
		Select("DATE_FORMAT(comments.created_at, ?) AS period, COUNT(*) AS count", format).
		Joins("JOIN posts ON posts.id = comments.post_id").
		Where("posts.user_id = ?", ownerID).
		Group("period").
		Order("period ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
