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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTip(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	tipsRepo := mocks.NewMockTipsRepositoryI(ctrl)
	moderation := servmocks.NewMockModerationServiceI(ctrl)
	serv := service.NewTipsService(tipsRepo, moderation)
	analysisID, userID, tipID := uuid.New(), uuid.New(), uuid.New()

	testCases := []struct {
		Desc         string
		Error        error
		Request      service.CreateTipRequest
		MockPrepFunc func()
	}{
		{
			Desc:    "defaults author and category",
			Request: service.CreateTipRequest{AnalysisID: analysisID, UserID: userID, Content: "Drink water first thing"},
			MockPrepFunc: func() {
				moderation.EXPECT().Verify(gomock.Any(), analysisID, userID, entity.KindTip, "Drink water first thing").Return(nil)
				tipsRepo.EXPECT().Create(gomock.Any(), &entity.Tip{Content: "Drink water first thing", Author: "Community Member", Category: "General"}, analysisID).Return(tipID, nil)
				tipsRepo.EXPECT().GetByID(gomock.Any(), tipID).Return(&entity.Tip{ID: tipID}, nil)
			},
		},
		{
			Desc:    "keeps provided author",
			Request: service.CreateTipRequest{AnalysisID: analysisID, UserID: userID, Content: "Stretch", Author: "Sam", Category: "Movement"},
			MockPrepFunc: func() {
				moderation.EXPECT().Verify(gomock.Any(), analysisID, userID, entity.KindTip, "Stretch").Return(nil)
				tipsRepo.EXPECT().Create(gomock.Any(), &entity.Tip{Content: "Stretch", Author: "Sam", Category: "Movement"}, analysisID).Return(tipID, nil)
				tipsRepo.EXPECT().GetByID(gomock.Any(), tipID).Return(&entity.Tip{ID: tipID}, nil)
			},
		},
		{
			Desc:         "empty content",
			Error:        errorvalues.ErrValidation,
			Request:      service.CreateTipRequest{AnalysisID: analysisID, UserID: userID},
			MockPrepFunc: func() {},
		},
		{
			Desc:    "not approved",
			Error:   errorvalues.ErrApprovalNotFound,
			Request: service.CreateTipRequest{AnalysisID: analysisID, UserID: userID, Content: "Stretch"},
			MockPrepFunc: func() {
				moderation.EXPECT().Verify(gomock.Any(), analysisID, userID, entity.KindTip, "Stretch").Return(errorvalues.ErrApprovalNotFound)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			tip, err := serv.CreateTip(ctx, &tc.Request)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tipID, tip.ID)
		})
	}
}

func TestReadTips(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	tipsRepo := mocks.NewMockTipsRepositoryI(ctrl)
	serv := service.NewTipsService(tipsRepo, servmocks.NewMockModerationServiceI(ctrl))
	ctx := context.Background()

	tipsRepo.EXPECT().List(gomock.Any()).Return([]*entity.Tip{{Content: "a"}, {Content: "b"}}, nil)
	tips, err := serv.ListTips(ctx)
	require.NoError(t, err)
	assert.Len(t, tips, 2)

	tipsRepo.EXPECT().ListFeatured(gomock.Any()).Return([]*entity.Tip{{Content: "a", IsFeatured: true}}, nil)
	tips, err = serv.FeaturedTips(ctx)
	require.NoError(t, err)
	assert.True(t, tips[0].IsFeatured)

	tipsRepo.EXPECT().Random(gomock.Any()).Return(nil, errorvalues.ErrNoTips)
	_, err = serv.RandomTip(ctx)
	assert.ErrorIs(t, err, errorvalues.ErrNoTips)

	tipsRepo.EXPECT().Random(gomock.Any()).Return(nil, errors.New("db error"))
	_, err = serv.RandomTip(ctx)
	assert.EqualError(t, err, "tips repository error: db error")
}

func TestSessionService(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSessionsRepositoryI(ctrl)
	now := time.Date(2030, time.May, 20, 10, 0, 0, 0, time.UTC)
	serv := service.NewSessionService(repo, 24*time.Hour).WithClock(func() time.Time { return now })
	id := uuid.New()
	ctx := context.Background()

	t.Run("start", func(t *testing.T) {
		repo.EXPECT().Create(gomock.Any(), now.Add(24*time.Hour)).Return(&entity.Session{ID: id, ExpiresAt: now.Add(24 * time.Hour)}, nil)
		session, err := serv.Start(ctx)
		require.NoError(t, err)
		assert.Equal(t, id, session.ID)
	})
	t.Run("resolve live session", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), id).Return(&entity.Session{ID: id, ExpiresAt: now.Add(time.Hour)}, nil)
		repo.EXPECT().Touch(gomock.Any(), id).Return(nil)
		session, err := serv.Resolve(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, session.ID)
	})
	t.Run("resolve expired session", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), id).Return(&entity.Session{ID: id, ExpiresAt: now}, nil)
		_, err := serv.Resolve(ctx, id)
		assert.ErrorIs(t, err, errorvalues.ErrSessionExpired)
	})
	t.Run("resolve unknown session", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, errorvalues.ErrSessionNotFound)
		_, err := serv.Resolve(ctx, id)
		assert.ErrorIs(t, err, errorvalues.ErrSessionNotFound)
	})
	t.Run("purge", func(t *testing.T) {
		repo.EXPECT().DeleteExpired(gomock.Any(), now).Return(int64(2), nil)
		n, err := serv.PurgeExpired(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})
}
