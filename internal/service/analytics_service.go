package service

import (
	"context"
	"fmt"

	apperr "inkwell/internal/errors"
	"inkwell/internal/model"
	"inkwell/internal/repository"
)

// periodFormats maps an analytics bucket to the MySQL DATE_FORMAT string
// that truncates timestamps to it.
var periodFormats = map[string]string{
	"day":   "%Y-%m-%d",
	"week":  "%x-%v",
	"month": "%Y-%m",
	"year":  "%Y",
}

// Analytics holds two independent series. Periods present in one series and
// absent in the other are not zero-padded; callers zip by period label.
type Analytics struct {
	Likes    []model.PeriodCount `json:"likes"`
	Comments []model.PeriodCount `json:"comments"`
}

// AnalyticsService computes time-bucketed engagement counts for an owner's posts.
type AnalyticsService interface {
	Aggregate(ctx context.Context, ownerID uint, period string) (*Analytics, error)
}

type analyticsService struct {
	likeRepo    repository.LikeRepository
	commentRepo repository.CommentRepository
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(likeRepo repository.LikeRepository, commentRepo repository.CommentRepository) AnalyticsService {
	return &analyticsService{
		likeRepo:    likeRepo,
		commentRepo: commentRepo,
	}
}

// Aggregate returns like and comment counts on the owner's posts grouped by
// the requested bucket. An unknown bucket fails before any store query.
func (s *analyticsService) Aggregate(ctx context.Context, ownerID uint, period string) (*Analytics, error) {
	format, ok := periodFormats[period]
	if !ok {
		return nil, apperr.ErrInvalidPeriod
	}

	likes, err := s.likeRepo.CountByPeriod(ctx, ownerID, format)
	if err != nil {
		return nil, fmt.Errorf("aggregate likes: %w", err)
	}
	comments, err := s.commentRepo.CountByPeriod(ctx, ownerID, format)
	if err != nil {
		return nil, fmt.Errorf("aggregate comments: %w", err)
	}

	if likes == nil {
		likes = []model.PeriodCount{}
	}
	if comments == nil {
		comments = []model.PeriodCount{}
	}
	return &Analytics{Likes: likes, Comments: comments}, nil
}
