package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/tendril/internal/error_values"
	"github.com/limbo/tendril/internal/repository/mocks"
	"github.com/limbo/tendril/internal/service"
	servmocks "github.com/limbo/tendril/internal/service/mocks"
	"github.com/limbo/tendril/pkg/entity"
	"github.com/limbo/tendril/pkg/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePost(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	postsRepo := mocks.NewMockPostsRepositoryI(ctrl)
	commentsRepo := mocks.NewMockCommentsRepositoryI(ctrl)
	moderation := servmocks.NewMockModerationServiceI(ctrl)
	serv := service.NewForumService(postsRepo, commentsRepo, moderation)
	analysisID, userID, postID := uuid.New(), uuid.New(), uuid.New()

	valid := service.CreatePostRequest{
		AnalysisID: analysisID,
		UserID:     userID,
		Title:      "A hard day",
		Content:    "Today was difficult for me.",
	}
	testCases := []struct {
		Desc         string
		Error        error
		Request      service.CreatePostRequest
		MockPrepFunc func()
	}{
		{
			Desc:    "success",
			Request: valid,
			MockPrepFunc: func() {
				gomock.InOrder(
					moderation.EXPECT().Verify(gomock.Any(), analysisID, userID, entity.KindPost, "A hard day\n\nToday was difficult for me.").Return(nil),
					postsRepo.EXPECT().Create(gomock.Any(), &entity.ForumPost{UserID: userID, Title: valid.Title, Content: valid.Content}, analysisID).Return(postID, nil),
					postsRepo.EXPECT().GetByID(gomock.Any(), postID, userID).Return(&entity.ForumPost{ID: postID, Title: valid.Title}, nil),
				)
			},
		},
		{
			Desc:         "missing analysis id",
			Error:        errorvalues.ErrValidation,
			Request:      service.CreatePostRequest{UserID: userID, Title: "t", Content: "c"},
			MockPrepFunc: func() {},
		},
		{
			Desc:         "blank content",
			Error:        errorvalues.ErrValidation,
			Request:      service.CreatePostRequest{AnalysisID: analysisID, UserID: userID, Title: "t", Content: " \t"},
			MockPrepFunc: func() {},
		},
		{
			Desc:    "text changed after analysis",
			Error:   errorvalues.ErrApprovalMismatch,
			Request: valid,
			MockPrepFunc: func() {
				moderation.EXPECT().Verify(gomock.Any(), analysisID, userID, entity.KindPost, gomock.Any()).Return(errorvalues.ErrApprovalMismatch)
			},
		},
		{
			Desc:    "analysis reused",
			Error:   errorvalues.ErrApprovalConsumed,
			Request: valid,
			MockPrepFunc: func() {
				moderation.EXPECT().Verify(gomock.Any(), analysisID, userID, entity.KindPost, gomock.Any()).Return(errorvalues.ErrApprovalConsumed)
			},
		},
		{
			Desc:    "repository error",
			Error:   errors.New("posts repository error: db error"),
			Request: valid,
			MockPrepFunc: func() {
				moderation.EXPECT().Verify(gomock.Any(), analysisID, userID, entity.KindPost, gomock.Any()).Return(nil)
				postsRepo.EXPECT().Create(gomock.Any(), gomock.Any(), analysisID).Return(uuid.Nil, errors.New("db error"))
			},
		},
		{
			Desc:    "spent by a concurrent publish",
			Error:   errorvalues.ErrApprovalConsumed,
			Request: valid,
			MockPrepFunc: func() {
				moderation.EXPECT().Verify(gomock.Any(), analysisID, userID, entity.KindPost, gomock.Any()).Return(nil)
				postsRepo.EXPECT().Create(gomock.Any(), gomock.Any(), analysisID).Return(uuid.Nil, errorvalues.ErrApprovalConsumed)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			post, err := serv.CreatePost(ctx, &tc.Request)
			switch {
			case tc.Error == nil:
				require.NoError(t, err)
				assert.Equal(t, postID, post.ID)
			case errors.Is(tc.Error, errorvalues.ErrValidation) || errors.Is(tc.Error, errorvalues.ErrApprovalMismatch) ||
				errors.Is(tc.Error, errorvalues.ErrApprovalConsumed):
				assert.ErrorIs(t, err, tc.Error)
			default:
				assert.EqualError(t, err, tc.Error.Error())
			}
		})
	}
}

func TestCreatePostRetryAfterFailedInsert(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	postsRepo := mocks.NewMockPostsRepositoryI(ctrl)
	approvals := mocks.NewMockApprovalsRepositoryI(ctrl)
	limiter := ratelimit.NewMemoryLimiter(ratelimit.Config{RequestsPerWindow: 10, WindowSize: time.Minute})
	moderation := service.NewModerationService(approvals, limiter, service.NewNegativeWordDetector(nil), nil, 30*time.Minute).
		WithClock(func() time.Time { return moderationNow })
	serv := service.NewForumService(postsRepo, mocks.NewMockCommentsRepositoryI(ctrl), moderation)
	analysisID, userID, postID := uuid.New(), uuid.New(), uuid.New()
	req := &service.CreatePostRequest{
		AnalysisID: analysisID,
		UserID:     userID,
		Title:      "A hard day",
		Content:    "Today was difficult for me.",
	}
	approval := &entity.ModerationApproval{
		ID:             analysisID,
		UserID:         userID,
		Kind:           entity.KindPost,
		ApprovedHashes: []string{service.ContentHash(service.ComposePostText(req.Title, req.Content))},
		ExpiresAt:      moderationNow.Add(time.Minute),
	}
	// the failed insert rolled back, so the approval reads as unspent on retry
	approvals.EXPECT().GetByID(gomock.Any(), analysisID).Return(approval, nil).Times(2)
	gomock.InOrder(
		postsRepo.EXPECT().Create(gomock.Any(), gomock.Any(), analysisID).Return(uuid.Nil, errors.New("connection reset")),
		postsRepo.EXPECT().Create(gomock.Any(), gomock.Any(), analysisID).Return(postID, nil),
	)
	postsRepo.EXPECT().GetByID(gomock.Any(), postID, userID).Return(&entity.ForumPost{ID: postID}, nil)
	ctx := context.Background()

	_, err := serv.CreatePost(ctx, req)
	require.Error(t, err)
	assert.NotErrorIs(t, err, errorvalues.ErrApprovalConsumed)

	post, err := serv.CreatePost(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, postID, post.ID)
}

func TestCreateComment(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	postsRepo := mocks.NewMockPostsRepositoryI(ctrl)
	commentsRepo := mocks.NewMockCommentsRepositoryI(ctrl)
	moderation := servmocks.NewMockModerationServiceI(ctrl)
	serv := service.NewForumService(postsRepo, commentsRepo, moderation)
	analysisID, userID, postID, otherPostID := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	parentID, commentID := uuid.New(), uuid.New()

	request := func(parent *uuid.UUID) service.CreateCommentRequest {
		return service.CreateCommentRequest{
			AnalysisID: analysisID,
			PostID:     postID,
			UserID:     userID,
			Content:    "Sending you strength",
			ParentID:   parent,
		}
	}
	testCases := []struct {
		Desc         string
		Error        error
		Request      service.CreateCommentRequest
		MockPrepFunc func()
	}{
		{
			Desc:    "top level comment",
			Request: request(nil),
			MockPrepFunc: func() {
				postsRepo.EXPECT().GetByID(gomock.Any(), postID, userID).Return(&entity.ForumPost{ID: postID}, nil)
				moderation.EXPECT().Verify(gomock.Any(), analysisID, userID, entity.KindComment, "Sending you strength").Return(nil)
				commentsRepo.EXPECT().Create(gomock.Any(), &entity.Comment{PostID: postID, UserID: userID, Content: "Sending you strength"}, analysisID).Return(commentID, nil)
				commentsRepo.EXPECT().GetByID(gomock.Any(), commentID, userID).Return(&entity.Comment{ID: commentID, PostID: postID}, nil)
			},
		},
		{
			Desc:    "reply",
			Request: request(&parentID),
			MockPrepFunc: func() {
				postsRepo.EXPECT().GetByID(gomock.Any(), postID, userID).Return(&entity.ForumPost{ID: postID}, nil)
				commentsRepo.EXPECT().GetByID(gomock.Any(), parentID, userID).Return(&entity.Comment{ID: parentID, PostID: postID}, nil)
				moderation.EXPECT().Verify(gomock.Any(), analysisID, userID, entity.KindComment, gomock.Any()).Return(nil)
				commentsRepo.EXPECT().Create(gomock.Any(), gomock.Any(), analysisID).Return(commentID, nil)
				commentsRepo.EXPECT().GetByID(gomock.Any(), commentID, userID).Return(&entity.Comment{ID: commentID, PostID: postID, ParentID: &parentID}, nil)
			},
		},
		{
			Desc:    "post not found",
			Error:   errorvalues.ErrPostNotFound,
			Request: request(nil),
			MockPrepFunc: func() {
				postsRepo.EXPECT().GetByID(gomock.Any(), postID, userID).Return(nil, errorvalues.ErrPostNotFound)
			},
		},
		{
			Desc:    "parent not found",
			Error:   errorvalues.ErrParentCommentNotFound,
			Request: request(&parentID),
			MockPrepFunc: func() {
				postsRepo.EXPECT().GetByID(gomock.Any(), postID, userID).Return(&entity.ForumPost{ID: postID}, nil)
				commentsRepo.EXPECT().GetByID(gomock.Any(), parentID, userID).Return(nil, errorvalues.ErrCommentNotFound)
			},
		},
		{
			Desc:    "parent on another post",
			Error:   errorvalues.ErrParentCommentNotFound,
			Request: request(&parentID),
			MockPrepFunc: func() {
				postsRepo.EXPECT().GetByID(gomock.Any(), postID, userID).Return(&entity.ForumPost{ID: postID}, nil)
				commentsRepo.EXPECT().GetByID(gomock.Any(), parentID, userID).Return(&entity.Comment{ID: parentID, PostID: otherPostID}, nil)
			},
		},
		{
			Desc:    "approval expired",
			Error:   errorvalues.ErrApprovalExpired,
			Request: request(nil),
			MockPrepFunc: func() {
				postsRepo.EXPECT().GetByID(gomock.Any(), postID, userID).Return(&entity.ForumPost{ID: postID}, nil)
				moderation.EXPECT().Verify(gomock.Any(), analysisID, userID, entity.KindComment, gomock.Any()).Return(errorvalues.ErrApprovalExpired)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			comment, err := serv.CreateComment(ctx, &tc.Request)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, commentID, comment.ID)
		})
	}
}

func TestListComments(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	postsRepo := mocks.NewMockPostsRepositoryI(ctrl)
	commentsRepo := mocks.NewMockCommentsRepositoryI(ctrl)
	serv := service.NewForumService(postsRepo, commentsRepo, servmocks.NewMockModerationServiceI(ctrl))
	postID, viewer := uuid.New(), uuid.New()
	ctx := context.Background()

	postsRepo.EXPECT().GetByID(gomock.Any(), postID, viewer).Return(&entity.ForumPost{ID: postID}, nil)
	commentsRepo.EXPECT().ListByPost(gomock.Any(), postID, viewer).Return([]*entity.Comment{{PostID: postID}}, nil)
	comments, err := serv.ListComments(ctx, postID, viewer)
	require.NoError(t, err)
	assert.Len(t, comments, 1)

	postsRepo.EXPECT().GetByID(gomock.Any(), postID, viewer).Return(nil, errorvalues.ErrPostNotFound)
	_, err = serv.ListComments(ctx, postID, viewer)
	assert.ErrorIs(t, err, errorvalues.ErrPostNotFound)
}

func TestReactions(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	postsRepo := mocks.NewMockPostsRepositoryI(ctrl)
	commentsRepo := mocks.NewMockCommentsRepositoryI(ctrl)
	serv := service.NewForumService(postsRepo, commentsRepo, servmocks.NewMockModerationServiceI(ctrl))
	id, userID := uuid.New(), uuid.New()
	ctx := context.Background()

	postsRepo.EXPECT().ToggleReaction(gomock.Any(), id, userID).Return(&entity.ReactionState{ReactionsCount: 1, UserReacted: true}, nil)
	state, err := serv.ReactToPost(ctx, id, userID)
	require.NoError(t, err)
	assert.True(t, state.UserReacted)

	postsRepo.EXPECT().ToggleReaction(gomock.Any(), id, userID).Return(nil, errorvalues.ErrPostNotFound)
	_, err = serv.ReactToPost(ctx, id, userID)
	assert.ErrorIs(t, err, errorvalues.ErrPostNotFound)

	commentsRepo.EXPECT().ToggleReaction(gomock.Any(), id, userID).Return(&entity.ReactionState{}, nil)
	state, err = serv.ReactToComment(ctx, id, userID)
	require.NoError(t, err)
	assert.False(t, state.UserReacted)

	commentsRepo.EXPECT().ToggleReaction(gomock.Any(), id, userID).Return(nil, errors.New("db error"))
	_, err = serv.ReactToComment(ctx, id, userID)
	assert.EqualError(t, err, "comments repository error: db error")
}
