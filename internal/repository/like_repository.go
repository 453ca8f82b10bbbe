package repository

import (
	"context"

	"gorm.io/gorm"

	"inkwell/internal/model"
)

// LikeRepository defines like persistence operations.
type LikeRepository interface {
	Create(ctx context.Context, like *model.Like) error
	DeleteByUserAndPost(ctx context.Context, userID, postID uint) (int64, error)
	CountByPost(ctx context.Context, postID uint) (int64, error)
	DeleteByPost(ctx context.Context, postID uint) (int64, error)
	CountByPeriod(ctx context.Context, ownerID uint, format string) ([]model.PeriodCount, error)
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new like repository.
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Create inserts a like. The unique index on (user_id, post_id) makes a
// concurrent duplicate surface as gorm.ErrDuplicatedKey.
func (r *likeRepository) Create(ctx context.Context, like *model.Like) error {
	return r.db.WithContext(ctx).Create(like).Error
}

// DeleteByUserAndPost removes the (user, post) like if present and reports
// how many rows went away.
func (r *likeRepository) DeleteByUserAndPost(ctx context.Context, userID, postID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&model.Like{})
	return res.RowsAffected, res.Error
}

// CountByPost returns the current like total for a post.
func (r *likeRepository) CountByPost(ctx context.Context, postID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Like{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// DeleteByPost removes every like referencing the post.
func (r *likeRepository) DeleteByPost(ctx context.Context, postID uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("post_id = ?", postID).Delete(&model.Like{})
	return res.RowsAffected, res.Error
}

// CountByPeriod groups like counts on the owner's posts by the given
// DATE_FORMAT truncation.
func (r *likeRepository) CountByPeriod(ctx context.Context, ownerID uint, format string) ([]model.PeriodCount, error) {
	var rows []model.PeriodCount
	err := r.db.WithContext(ctx).
		Table("likes").
		Select("DATE_FORMAT(likes.created_at, ?) AS period, COUNT(*) AS count", format).
		Joins("JOIN posts ON posts.id = likes.post_id").
		Where("posts.user_id = ?", ownerID).
		Group("period").
		Order("period ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
