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

var moderationNow = time.Date(2030, time.May, 20, 10, 0, 0, 0, time.UTC)

type moderationFixture struct {
	approvals *mocks.MockApprovalsRepositoryI
	rewriter  *servmocks.MockRewriterI
	serv      *service.ModerationService
	// last approval passed to the repository
	saved *entity.ModerationApproval
}

func newModerationFixture(t *testing.T, limit int) *moderationFixture {
	ctrl := gomock.NewController(t)
	f := &moderationFixture{
		approvals: mocks.NewMockApprovalsRepositoryI(ctrl),
		rewriter:  servmocks.NewMockRewriterI(ctrl),
	}
	limiter := ratelimit.NewMemoryLimiter(ratelimit.Config{RequestsPerWindow: limit, WindowSize: time.Minute}).
		WithClock(func() time.Time { return moderationNow })
	f.serv = service.NewModerationService(f.approvals, limiter, service.NewNegativeWordDetector(nil), f.rewriter, 30*time.Minute).
		WithClock(func() time.Time { return moderationNow })
	return f
}

func (f *moderationFixture) expectSave(id uuid.UUID) {
	f.approvals.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a *entity.ModerationApproval) (uuid.UUID, error) {
			f.saved = a
			return id, nil
		})
}

func TestAnalyzeCleanText(t *testing.T) {
	t.Parallel()
	f := newModerationFixture(t, 10)
	userID, analysisID := uuid.New(), uuid.New()
	f.expectSave(analysisID)

	res, err := f.serv.Analyze(context.Background(), &service.AnalyzeRequest{
		Kind:    entity.KindComment,
		Content: "Had a good walk today",
		UserID:  userID,
	})
	require.NoError(t, err)
	assert.Equal(t, analysisID, res.AnalysisID)
	assert.False(t, res.ContainsNegativeWords)
	assert.Empty(t, res.FoundWords)
	assert.False(t, res.SuggestionAvailable)
	assert.Nil(t, res.RewrittenText)
	assert.Nil(t, res.Error)
	assert.Equal(t, &entity.RateLimitInfo{RemainingRequests: 9, MaxRequests: 10, WindowSeconds: 60}, res.RateLimit)

	require.NotNil(t, f.saved)
	assert.Equal(t, userID, f.saved.UserID)
	assert.Equal(t, entity.KindComment, f.saved.Kind)
	assert.Equal(t, []string{service.ContentHash("Had a good walk today")}, f.saved.ApprovedHashes)
	assert.Equal(t, moderationNow.Add(30*time.Minute), f.saved.ExpiresAt)
}

func TestAnalyzeFlaggedText(t *testing.T) {
	t.Parallel()
	f := newModerationFixture(t, 10)
	f.expectSave(uuid.New())
	f.rewriter.EXPECT().Rewrite(gomock.Any(), "I feel lazy and STUPID").Return("I am resting and learning", nil)

	res, err := f.serv.Analyze(context.Background(), &service.AnalyzeRequest{
		Kind:    entity.KindTip,
		Content: "I feel lazy and STUPID",
		UserID:  uuid.New(),
	})
	require.NoError(t, err)
	assert.True(t, res.ContainsNegativeWords)
	assert.Equal(t, []string{"lazy", "stupid"}, res.FoundWords)
	assert.True(t, res.SuggestionAvailable)
	require.NotNil(t, res.RewrittenText)
	assert.Equal(t, "I am resting and learning", *res.RewrittenText)
	// the flagged original is never approved
	assert.Equal(t, []string{service.ContentHash("I am resting and learning")}, f.saved.ApprovedHashes)
}

func TestAnalyzeFlaggedPost(t *testing.T) {
	t.Parallel()
	f := newModerationFixture(t, 10)
	f.expectSave(uuid.New())
	original := service.ComposePostText("Bad day", "I hate everything")
	f.rewriter.EXPECT().Rewrite(gomock.Any(), original).Return("A hard day\n\nToday was difficult for me.\n", nil)

	res, err := f.serv.Analyze(context.Background(), &service.AnalyzeRequest{
		Kind:    entity.KindPost,
		Content: original,
		UserID:  uuid.New(),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"hate"}, res.FoundWords)
	assert.Equal(t, "A hard day", res.SuggestedTitle)
	assert.Equal(t, "Today was difficult for me.", res.SuggestedContent)
	assert.Equal(t, []string{service.ContentHash(service.ComposePostText("A hard day", "Today was difficult for me."))}, f.saved.ApprovedHashes)
}

func TestAnalyzeFlaggedPostTitle(t *testing.T) {
	t.Parallel()
	original := service.ComposePostText("I hate myself, I am worthless", "Today went badly")
	testCases := []struct {
		Desc         string
		TitleRewrite string
		Title        string
	}{
		{Desc: "title is rewritten on its own", TitleRewrite: "\nFeeling low today\n", Title: "Feeling low today"},
		{Desc: "still flagged title blocks", TitleRewrite: "I still hate myself"},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			f := newModerationFixture(t, 10)
			f.expectSave(uuid.New())
			gomock.InOrder(
				f.rewriter.EXPECT().Rewrite(gomock.Any(), original).Return("Today was a rough day for me", nil),
				f.rewriter.EXPECT().Rewrite(gomock.Any(), "I hate myself, I am worthless").Return(tc.TitleRewrite, nil),
			)

			res, err := f.serv.Analyze(context.Background(), &service.AnalyzeRequest{
				Kind:    entity.KindPost,
				Content: original,
				UserID:  uuid.New(),
			})
			require.NoError(t, err)
			assert.Equal(t, []string{"hate", "worthless"}, res.FoundWords)
			if tc.Title == "" {
				assert.False(t, res.SuggestionAvailable)
				assert.Nil(t, res.RewrittenText)
				assert.Empty(t, res.SuggestedTitle)
				require.NotNil(t, res.Error)
				assert.Empty(t, f.saved.ApprovedHashes)
				return
			}
			approved := service.ComposePostText(tc.Title, "Today was a rough day for me")
			assert.True(t, res.SuggestionAvailable)
			assert.Equal(t, tc.Title, res.SuggestedTitle)
			assert.Equal(t, "Today was a rough day for me", res.SuggestedContent)
			require.NotNil(t, res.RewrittenText)
			assert.Equal(t, approved, *res.RewrittenText)
			assert.Equal(t, []string{service.ContentHash(approved)}, f.saved.ApprovedHashes)
			assert.NotContains(t, f.saved.ApprovedHashes, service.ContentHash(service.ComposePostText("I hate myself, I am worthless", "Today was a rough day for me")))
		})
	}
}

func TestAnalyzeStillFlaggedRewriteBlocks(t *testing.T) {
	t.Parallel()
	f := newModerationFixture(t, 10)
	f.expectSave(uuid.New())
	f.rewriter.EXPECT().Rewrite(gomock.Any(), "you are pathetic").Return("you are a bit pathetic", nil)

	res, err := f.serv.Analyze(context.Background(), &service.AnalyzeRequest{
		Kind:    entity.KindComment,
		Content: "you are pathetic",
		UserID:  uuid.New(),
	})
	require.NoError(t, err)
	assert.False(t, res.SuggestionAvailable)
	require.NotNil(t, res.Error)
	assert.Equal(t, service.RewriteFailedMessage, *res.Error)
	assert.Empty(t, f.saved.ApprovedHashes)
}

func TestAnalyzeRewriterFailureBlocks(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		Desc    string
		Rewrite func(f *moderationFixture)
	}{
		{
			Desc: "rewriter error",
			Rewrite: func(f *moderationFixture) {
				f.rewriter.EXPECT().Rewrite(gomock.Any(), gomock.Any()).Return("", errors.New("upstream 500"))
			},
		},
		{
			Desc: "empty rewrite",
			Rewrite: func(f *moderationFixture) {
				f.rewriter.EXPECT().Rewrite(gomock.Any(), gomock.Any()).Return("  \n", nil)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			f := newModerationFixture(t, 10)
			f.expectSave(uuid.New())
			tc.Rewrite(f)

			res, err := f.serv.Analyze(context.Background(), &service.AnalyzeRequest{
				Kind:    entity.KindComment,
				Content: "this is awful",
				UserID:  uuid.New(),
			})
			require.NoError(t, err)
			assert.True(t, res.ContainsNegativeWords)
			assert.False(t, res.SuggestionAvailable)
			assert.Nil(t, res.RewrittenText)
			require.NotNil(t, res.Error)
			assert.Equal(t, service.RewriteFailedMessage, *res.Error)
			assert.Empty(t, f.saved.ApprovedHashes)
		})
	}
}

func TestAnalyzeWithoutRewriter(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	approvals := mocks.NewMockApprovalsRepositoryI(ctrl)
	serv := service.NewModerationService(approvals, ratelimit.NewMemoryLimiter(ratelimit.DefaultConfig()),
		service.NewNegativeWordDetector([]string{"gloomy"}), nil, time.Minute)
	approvals.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)

	res, err := serv.Analyze(context.Background(), &service.AnalyzeRequest{Kind: entity.KindTip, Content: "Gloomy morning", UserID: uuid.New()})
	require.NoError(t, err)
	assert.Equal(t, []string{"gloomy"}, res.FoundWords)
	require.NotNil(t, res.Error)
}

func TestAnalyzeRateLimit(t *testing.T) {
	t.Parallel()
	f := newModerationFixture(t, 2)
	userID := uuid.New()
	ctx := context.Background()
	req := &service.AnalyzeRequest{Kind: entity.KindComment, Content: "hello there", UserID: userID}
	f.approvals.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.New(), nil).Times(2)

	for range 2 {
		_, err := f.serv.Analyze(ctx, req)
		require.NoError(t, err)
	}
	_, err := f.serv.Analyze(ctx, req)
	require.ErrorIs(t, err, errorvalues.ErrRateLimitExceeded)
	var rlErr *service.RateLimitError
	require.ErrorAs(t, err, &rlErr)
	assert.Equal(t, 0, rlErr.Info.RemainingRequests)
	assert.Equal(t, 2, rlErr.Info.MaxRequests)
	assert.Equal(t, "Too many analysis requests. Please wait 60 seconds before trying again.", err.Error())

	// other users keep their own budget
	f.approvals.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
	_, err = f.serv.Analyze(ctx, &service.AnalyzeRequest{Kind: entity.KindComment, Content: "hello", UserID: uuid.New()})
	assert.NoError(t, err)

	info, err := f.serv.Limits(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 0, info.RemainingRequests)
}

func TestAnalyzeValidation(t *testing.T) {
	t.Parallel()
	f := newModerationFixture(t, 10)
	ctx := context.Background()
	for _, req := range []*service.AnalyzeRequest{
		nil,
		{Kind: "story", Content: "hello", UserID: uuid.New()},
		{Kind: entity.KindPost, Content: "   ", UserID: uuid.New()},
		{Kind: entity.KindPost, Content: "hello"},
	} {
		_, err := f.serv.Analyze(ctx, req)
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	}
	// invalid requests don't spend the budget
	info, err := f.serv.Limits(ctx, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 10, info.RemainingRequests)
}

func TestVerify(t *testing.T) {
	t.Parallel()
	f := newModerationFixture(t, 10)
	analysisID, owner := uuid.New(), uuid.New()
	consumedAt := moderationNow.Add(-time.Minute)
	approval := func(mod func(a *entity.ModerationApproval)) *entity.ModerationApproval {
		a := &entity.ModerationApproval{
			ID:             analysisID,
			UserID:         owner,
			Kind:           entity.KindComment,
			ApprovedHashes: []string{service.ContentHash("kind words")},
			ExpiresAt:      moderationNow.Add(time.Minute),
		}
		if mod != nil {
			mod(a)
		}
		return a
	}

	testCases := []struct {
		Desc         string
		Error        error
		UserID       uuid.UUID
		Kind         entity.ContentKind
		Text         string
		MockPrepFunc func()
	}{
		{
			Desc:   "success ignores surrounding whitespace",
			UserID: owner,
			Kind:   entity.KindComment,
			Text:   "  kind words\n",
			MockPrepFunc: func() {
				f.approvals.EXPECT().GetByID(gomock.Any(), analysisID).Return(approval(nil), nil)
			},
		},
		{
			Desc:   "unknown analysis",
			Error:  errorvalues.ErrApprovalNotFound,
			UserID: owner,
			Kind:   entity.KindComment,
			Text:   "kind words",
			MockPrepFunc: func() {
				f.approvals.EXPECT().GetByID(gomock.Any(), analysisID).Return(nil, errorvalues.ErrApprovalNotFound)
			},
		},
		{
			Desc:   "another user's analysis",
			Error:  errorvalues.ErrApprovalNotFound,
			UserID: uuid.New(),
			Kind:   entity.KindComment,
			Text:   "kind words",
			MockPrepFunc: func() {
				f.approvals.EXPECT().GetByID(gomock.Any(), analysisID).Return(approval(nil), nil)
			},
		},
		{
			Desc:   "kind mismatch",
			Error:  errorvalues.ErrApprovalMismatch,
			UserID: owner,
			Kind:   entity.KindTip,
			Text:   "kind words",
			MockPrepFunc: func() {
				f.approvals.EXPECT().GetByID(gomock.Any(), analysisID).Return(approval(nil), nil)
			},
		},
		{
			Desc:   "expired",
			Error:  errorvalues.ErrApprovalExpired,
			UserID: owner,
			Kind:   entity.KindComment,
			Text:   "kind words",
			MockPrepFunc: func() {
				f.approvals.EXPECT().GetByID(gomock.Any(), analysisID).Return(approval(func(a *entity.ModerationApproval) {
					a.ExpiresAt = moderationNow
				}), nil)
			},
		},
		{
			Desc:   "already consumed",
			Error:  errorvalues.ErrApprovalConsumed,
			UserID: owner,
			Kind:   entity.KindComment,
			Text:   "kind words",
			MockPrepFunc: func() {
				f.approvals.EXPECT().GetByID(gomock.Any(), analysisID).Return(approval(func(a *entity.ModerationApproval) {
					a.ConsumedAt = &consumedAt
				}), nil)
			},
		},
		{
			Desc:   "edited after analysis",
			Error:  errorvalues.ErrApprovalMismatch,
			UserID: owner,
			Kind:   entity.KindComment,
			Text:   "kind words, you idiot",
			MockPrepFunc: func() {
				f.approvals.EXPECT().GetByID(gomock.Any(), analysisID).Return(approval(nil), nil)
			},
		},
		{
			Desc:   "blocked analysis approves nothing",
			Error:  errorvalues.ErrApprovalMismatch,
			UserID: owner,
			Kind:   entity.KindComment,
			Text:   "kind words",
			MockPrepFunc: func() {
				f.approvals.EXPECT().GetByID(gomock.Any(), analysisID).Return(approval(func(a *entity.ModerationApproval) {
					a.ApprovedHashes = []string{}
				}), nil)
			},
		},
		{
			Desc:   "repository error",
			Error:  errors.New("approvals repository error: db error"),
			UserID: owner,
			Kind:   entity.KindComment,
			Text:   "kind words",
			MockPrepFunc: func() {
				f.approvals.EXPECT().GetByID(gomock.Any(), analysisID).Return(nil, errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := f.serv.Verify(ctx, analysisID, tc.UserID, tc.Kind, tc.Text)
			if tc.Error == nil {
				assert.NoError(t, err)
				return
			}
			if errors.Is(tc.Error, errorvalues.ErrApprovalNotFound) || errors.Is(tc.Error, errorvalues.ErrApprovalMismatch) ||
				errors.Is(tc.Error, errorvalues.ErrApprovalExpired) || errors.Is(tc.Error, errorvalues.ErrApprovalConsumed) {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			assert.EqualError(t, err, tc.Error.Error())
		})
	}
}

func TestPurgeExpiredApprovals(t *testing.T) {
	t.Parallel()
	f := newModerationFixture(t, 10)
	f.approvals.EXPECT().DeleteExpired(gomock.Any(), moderationNow).Return(int64(3), nil)
	n, err := f.serv.PurgeExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestNegativeWordDetector(t *testing.T) {
	t.Parallel()
	detector := service.NewNegativeWordDetector(nil)
	testCases := []struct {
		Desc     string
		Text     string
		Expected []string
	}{
		{Desc: "clean", Text: "A calm and kind morning", Expected: []string{}},
		{Desc: "case insensitive", Text: "I HATE Mondays", Expected: []string{"hate"}},
		{Desc: "whole words only", Text: "The chatter was weakly hateful", Expected: []string{}},
		{Desc: "phrase across whitespace", Text: "I really messed\n  up", Expected: []string{"messed up"}},
		{Desc: "punctuation boundary", Text: "so gross!", Expected: []string{"gross"}},
		{Desc: "sorted and unique", Text: "weak, weak and broken", Expected: []string{"broken", "weak"}},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Expected, detector.Find(tc.Text))
		})
	}

	custom := service.NewNegativeWordDetector([]string{" Dreary ", "dreary", ""})
	assert.Equal(t, []string{"dreary"}, custom.Find("a dreary day"))
}

func TestPostText(t *testing.T) {
	t.Parallel()
	composed := service.ComposePostText("Title", "Line one\n\nLine two")
	title, content := service.SplitPostText(composed)
	assert.Equal(t, "Title", title)
	assert.Equal(t, "Line one\n\nLine two", content)

	title, content = service.SplitPostText("no separator")
	assert.Empty(t, title)
	assert.Equal(t, "no separator", content)

	testCases := []struct {
		Desc           string
		Rewritten      string
		Title, Content string
	}{
		{Desc: "title and body", Rewritten: "\nNew title\nfirst\n\nsecond", Title: "New title", Content: "first\nsecond"},
		{Desc: "single line keeps title", Rewritten: "  just content  ", Title: "Old", Content: "just content"},
		{Desc: "empty", Rewritten: "\n \n", Title: "Old", Content: ""},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			title, content := service.SplitRewrite(tc.Rewritten, "Old")
			assert.Equal(t, tc.Title, title)
			assert.Equal(t, tc.Content, content)
		})
	}
}

func TestAnalyzeIsConsistent(t *testing.T) {
	t.Parallel()
	f := newModerationFixture(t, 10)
	f.approvals.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.New(), nil).Times(4)
	f.rewriter.EXPECT().Rewrite(gomock.Any(), "I hate Mondays").Return("Mondays are hard for me", nil).Times(2)
	userID := uuid.New()

	for _, text := range []string{"I hate Mondays", "Mondays are fine"} {
		first, err := f.serv.Analyze(context.Background(), &service.AnalyzeRequest{Kind: entity.KindComment, Content: text, UserID: userID})
		require.NoError(t, err)
		second, err := f.serv.Analyze(context.Background(), &service.AnalyzeRequest{Kind: entity.KindComment, Content: text, UserID: userID})
		require.NoError(t, err)

		assert.Equal(t, first.ContainsNegativeWords, second.ContainsNegativeWords, text)
		assert.Equal(t, first.FoundWords, second.FoundWords, text)
		assert.Equal(t, first.SuggestionAvailable, second.SuggestionAvailable, text)
		// each call spends one unit
		assert.Equal(t, first.RateLimit.RemainingRequests-1, second.RateLimit.RemainingRequests, text)
	}
}
