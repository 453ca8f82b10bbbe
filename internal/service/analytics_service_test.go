package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperr "inkwell/internal/errors"
	"inkwell/internal/model"
)

func TestAnalyticsService_Aggregate(t *testing.T) {
	likeRepo := new(MockLikeRepository)
	commentRepo := new(MockCommentRepository)

	likeRepo.On("CountByPeriod", mock.Anything, uint(7), "%Y-%m-%d").Return([]model.PeriodCount{
		{Period: "2026-08-30", Count: 4},
		{Period: "2026-08-31", Count: 2},
	}, nil)
	commentRepo.On("CountByPeriod", mock.Anything, uint(7), "%Y-%m-%d").Return([]model.PeriodCount{
		{Period: "2026-08-31", Count: 1},
	}, nil)

	svc := NewAnalyticsService(likeRepo, commentRepo)
	analytics, err := svc.Aggregate(context.Background(), 7, "day")

	assert.NoError(t, err)
	assert.Len(t, analytics.Likes, 2)
	assert.Len(t, analytics.Comments, 1)
	// The two series stay independent: no zero-padding of missing periods.
	assert.Equal(t, "2026-08-30", analytics.Likes[0].Period)
	likeRepo.AssertExpectations(t)
	commentRepo.AssertExpectations(t)
}

func TestAnalyticsService_Aggregate_EmptySeriesAreArrays(t *testing.T) {
	likeRepo := new(MockLikeRepository)
	commentRepo := new(MockCommentRepository)

	likeRepo.On("CountByPeriod", mock.Anything, uint(7), "%Y").Return(nil, nil)
	commentRepo.On("CountByPeriod", mock.Anything, uint(7), "%Y").Return(nil, nil)

	svc := NewAnalyticsService(likeRepo, commentRepo)
	analytics, err := svc.Aggregate(context.Background(), 7, "year")

	assert.NoError(t, err)
	assert.NotNil(t, analytics.Likes)
	assert.NotNil(t, analytics.Comments)
	assert.Empty(t, analytics.Likes)
	assert.Empty(t, analytics.Comments)
}

func TestAnalyticsService_Aggregate_InvalidPeriodSkipsStore(t *testing.T) {
	likeRepo := new(MockLikeRepository)
	commentRepo := new(MockCommentRepository)

	svc := NewAnalyticsService(likeRepo, commentRepo)

	for _, period := range []string{"hour", "decade", "", "Day"} {
		analytics, err := svc.Aggregate(context.Background(), 7, period)
		assert.ErrorIs(t, err, apperr.ErrInvalidPeriod)
		assert.Nil(t, analytics)
	}

	likeRepo.AssertNotCalled(t, "CountByPeriod", mock.Anything, mock.Anything, mock.Anything)
	commentRepo.AssertNotCalled(t, "CountByPeriod", mock.Anything, mock.Anything, mock.Anything)
}
