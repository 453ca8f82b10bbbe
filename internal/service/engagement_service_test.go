package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperr "inkwell/internal/errors"
	"inkwell/internal/model"
)

func newEngagementService(postRepo *MockPostRepository, commentRepo *MockCommentRepository, likeRepo *MockLikeRepository) EngagementService {
	return NewEngagementService(postRepo, commentRepo, likeRepo, nil)
}

func TestEngagementService_ToggleLike_Involution(t *testing.T) {
	postRepo := new(MockPostRepository)
	likeRepo := new(MockLikeRepository)
	postRepo.On("Exists", mock.Anything, uint(3)).Return(true, nil)

	// First toggle: nothing to remove, so the like is inserted.
	likeRepo.On("DeleteByUserAndPost", mock.Anything, uint(5), uint(3)).Return(int64(0), nil).Once()
	likeRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Like")).Return(nil).Once()
	likeRepo.On("CountByPost", mock.Anything, uint(3)).Return(int64(1), nil).Once()

	// Second toggle: the like is removed again.
	likeRepo.On("DeleteByUserAndPost", mock.Anything, uint(5), uint(3)).Return(int64(1), nil).Once()
	likeRepo.On("CountByPost", mock.Anything, uint(3)).Return(int64(0), nil).Once()

	svc := newEngagementService(postRepo, new(MockCommentRepository), likeRepo)

	count, err := svc.ToggleLike(context.Background(), 5, 3)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = svc.ToggleLike(context.Background(), 5, 3)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)

	likeRepo.AssertExpectations(t)
}

func TestEngagementService_ToggleLike_DuplicateInsertIsSuccess(t *testing.T) {
	postRepo := new(MockPostRepository)
	likeRepo := new(MockLikeRepository)
	postRepo.On("Exists", mock.Anything, uint(3)).Return(true, nil)

	// A concurrent toggle inserted between our delete and insert; the
	// unique index rejects ours and the like stands.
	likeRepo.On("DeleteByUserAndPost", mock.Anything, uint(5), uint(3)).Return(int64(0), nil)
	likeRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Like")).Return(gorm.ErrDuplicatedKey)
	likeRepo.On("CountByPost", mock.Anything, uint(3)).Return(int64(1), nil)

	svc := newEngagementService(postRepo, new(MockCommentRepository), likeRepo)
	count, err := svc.ToggleLike(context.Background(), 5, 3)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestEngagementService_ToggleLike_MissingPost(t *testing.T) {
	postRepo := new(MockPostRepository)
	likeRepo := new(MockLikeRepository)
	postRepo.On("Exists", mock.Anything, uint(99)).Return(false, nil)

	svc := newEngagementService(postRepo, new(MockCommentRepository), likeRepo)
	_, err := svc.ToggleLike(context.Background(), 5, 99)

	assert.ErrorIs(t, err, apperr.ErrPostNotFound)
	likeRepo.AssertNotCalled(t, "DeleteByUserAndPost", mock.Anything, mock.Anything, mock.Anything)
	likeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEngagementService_AddComment(t *testing.T) {
	postRepo := new(MockPostRepository)
	commentRepo := new(MockCommentRepository)
	postRepo.On("Exists", mock.Anything, uint(3)).Return(true, nil)
	commentRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Comment")).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Comment).ID = 11
	}).Return(nil)
	commentRepo.On("FindWithAuthor", mock.Anything, uint(11)).Return(&model.CommentWithAuthor{
		ID:       11,
		PostID:   3,
		Content:  "nice post",
		Username: "bob",
	}, nil)

	svc := newEngagementService(postRepo, commentRepo, new(MockLikeRepository))
	comment, err := svc.AddComment(context.Background(), 5, 3, "nice post")

	assert.NoError(t, err)
	assert.Equal(t, "bob", comment.Username)
	assert.Equal(t, "nice post", comment.Content)
	commentRepo.AssertExpectations(t)
}

func TestEngagementService_AddComment_BlankContent(t *testing.T) {
	postRepo := new(MockPostRepository)
	commentRepo := new(MockCommentRepository)

	svc := newEngagementService(postRepo, commentRepo, new(MockLikeRepository))
	comment, err := svc.AddComment(context.Background(), 5, 3, "   \n\t ")

	assert.ErrorIs(t, err, apperr.ErrEmptyContent)
	assert.Nil(t, comment)
	postRepo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
	commentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
