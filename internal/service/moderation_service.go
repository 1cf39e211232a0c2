package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/tendril/internal/error_values"
	"github.com/limbo/tendril/internal/repository"
	"github.com/limbo/tendril/pkg/entity"
	"github.com/limbo/tendril/pkg/ratelimit"
)

const (
	RewriteFailedMessage = "Unable to generate compassionate rewrite"
	postSeparator        = "\n\n"
)

// RateLimitError is returned by Analyze when the caller's budget is spent.
// Its message is meant to be shown to the user verbatim.
type RateLimitError struct {
	Info       entity.RateLimitInfo
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("Too many analysis requests. Please wait %d seconds before trying again.", e.Info.WindowSeconds)
}

func (e *RateLimitError) Unwrap() error {
	return errorvalues.ErrRateLimitExceeded
}

type ModerationService struct {
	approvalsRepo repository.ApprovalsRepositoryI
	limiter       ratelimit.Limiter
	detector      *NegativeWordDetector
	// nil when no rewriter is configured; flagged text is then blocked
	rewriter    RewriterI
	approvalTTL time.Duration
	now         func() time.Time
}

func NewModerationService(approvalsRepo repository.ApprovalsRepositoryI, limiter ratelimit.Limiter, detector *NegativeWordDetector, rewriter RewriterI, approvalTTL time.Duration) *ModerationService {
	if approvalsRepo == nil {
		log.Fatal("on moderation service provided nil approvals repo")
	}
	if limiter == nil || detector == nil {
		log.Fatal("on moderation service provided nil limiter or detector")
	}
	if approvalTTL <= 0 {
		approvalTTL = 30 * time.Minute
	}
	return &ModerationService{
		approvalsRepo: approvalsRepo,
		limiter:       limiter,
		detector:      detector,
		rewriter:      rewriter,
		approvalTTL:   approvalTTL,
		now:           time.Now,
	}
}

// WithClock replaces the time source. Intended for tests.
func (ms *ModerationService) WithClock(now func() time.Time) *ModerationService {
	ms.now = now
	return ms
}

func (ms *ModerationService) Analyze(ctx context.Context, req *AnalyzeRequest) (*entity.ModerationAnalysis, error) {
	if req == nil {
		return nil, errorvalues.ErrValidation
	}
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	res, err := ms.limiter.Allow(ctx, req.UserID.String())
	if err != nil {
		return nil, errors.New("rate limiter error: " + err.Error())
	}
	info := rateLimitInfo(res)
	if !res.Allowed {
		return nil, &RateLimitError{Info: info, RetryAfter: res.RetryAfter}
	}

	found := ms.detector.Find(req.Content)
	analysis := &entity.ModerationAnalysis{
		ContainsNegativeWords: len(found) > 0,
		FoundWords:            found,
		RateLimit:             &info,
	}
	approval := &entity.ModerationApproval{
		UserID:         req.UserID,
		Kind:           req.Kind,
		ApprovedHashes: []string{},
		ExpiresAt:      ms.now().Add(ms.approvalTTL),
	}
	if len(found) == 0 {
		approval.ApprovedHashes = append(approval.ApprovedHashes, ContentHash(req.Content))
	} else {
		s, err := ms.suggest(ctx, req.Kind, req.Content)
		if err != nil {
			slog.Default().Warn("compassionate rewrite failed", slog.String("error", err.Error()))
			msg := RewriteFailedMessage
			analysis.Error = &msg
		} else {
			analysis.SuggestionAvailable = true
			analysis.RewrittenText = &s.rewritten
			analysis.SuggestedTitle, analysis.SuggestedContent = s.title, s.content
			approval.ApprovedHashes = append(approval.ApprovedHashes, ContentHash(s.approved))
		}
	}

	id, err := ms.approvalsRepo.Create(ctx, approval)
	if err != nil {
		return nil, errors.New("approvals repository error: " + err.Error())
	}
	analysis.AnalysisID = id
	return analysis, nil
}

type suggestion struct {
	rewritten      string
	title, content string
	// exact text the analysis approves
	approved string
}

// suggest rewrites flagged text. A post title the rewrite kept or left flagged is
// rewritten on its own. The suggestion is refused if it still contains lexicon terms.
func (ms *ModerationService) suggest(ctx context.Context, kind entity.ContentKind, text string) (*suggestion, error) {
	rewritten, err := ms.rewrite(ctx, text)
	if err != nil {
		return nil, err
	}
	s := &suggestion{rewritten: rewritten, approved: rewritten}
	if kind == entity.KindPost {
		originalTitle, _ := SplitPostText(text)
		s.title, s.content = SplitRewrite(rewritten, originalTitle)
		if len(ms.detector.Find(s.title)) > 0 {
			title, err := ms.rewrite(ctx, s.title)
			if err != nil {
				return nil, errors.New("title rewrite: " + err.Error())
			}
			s.title = firstLine(title)
		}
		s.approved = ComposePostText(s.title, s.content)
		s.rewritten = s.approved
	}
	if found := ms.detector.Find(s.approved); len(found) > 0 {
		return nil, fmt.Errorf("rewrite still contains %s", strings.Join(found, ", "))
	}
	return s, nil
}

func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}

func (ms *ModerationService) rewrite(ctx context.Context, text string) (string, error) {
	if ms.rewriter == nil {
		return "", errors.New("rewriter is not configured")
	}
	rewritten, err := ms.rewriter.Rewrite(ctx, text)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(rewritten) == "" {
		return "", errors.New("rewriter returned empty text")
	}
	return rewritten, nil
}

func (ms *ModerationService) Verify(ctx context.Context, analysisID, userID uuid.UUID, kind entity.ContentKind, text string) error {
	approval, err := ms.approvalsRepo.GetByID(ctx, analysisID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrApprovalNotFound) {
			return err
		}
		return errors.New("approvals repository error: " + err.Error())
	}
	// Someone else's ticket is reported as missing
	if approval.UserID != userID {
		return errorvalues.ErrApprovalNotFound
	}
	if approval.Kind != kind {
		return errorvalues.ErrApprovalMismatch
	}
	if !ms.now().Before(approval.ExpiresAt) {
		return errorvalues.ErrApprovalExpired
	}
	if approval.ConsumedAt != nil {
		return errorvalues.ErrApprovalConsumed
	}
	if !slices.Contains(approval.ApprovedHashes, ContentHash(text)) {
		return errorvalues.ErrApprovalMismatch
	}
	return nil
}

func (ms *ModerationService) Limits(ctx context.Context, userID uuid.UUID) (*entity.RateLimitInfo, error) {
	res, err := ms.limiter.Peek(ctx, userID.String())
	if err != nil {
		return nil, errors.New("rate limiter error: " + err.Error())
	}
	info := rateLimitInfo(res)
	return &info, nil
}

func (ms *ModerationService) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := ms.approvalsRepo.DeleteExpired(ctx, ms.now())
	if err != nil {
		return 0, errors.New("approvals repository error: " + err.Error())
	}
	return n, nil
}

func rateLimitInfo(res *ratelimit.Result) entity.RateLimitInfo {
	return entity.RateLimitInfo{
		RemainingRequests: res.Remaining,
		MaxRequests:       res.Limit,
		WindowSeconds:     int(res.Window / time.Second),
	}
}

// ContentHash identifies text an analysis approved. Surrounding whitespace is ignored.
func ContentHash(text string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(text)))
	return hex.EncodeToString(sum[:])
}

// ComposePostText is the text analyzed for a post.
func ComposePostText(title, content string) string {
	return title + postSeparator + content
}

// SplitPostText recovers title and content from ComposePostText output.
// Text without a blank line is treated as content only.
func SplitPostText(text string) (title, content string) {
	before, after, found := strings.Cut(text, postSeparator)
	if !found {
		return "", text
	}
	return before, after
}

// SplitRewrite maps a rewritten post back onto title and content: the first non-empty
// line becomes the title and the rest the content. A single line rewrite keeps the title.
func SplitRewrite(rewritten, originalTitle string) (title, content string) {
	lines := make([]string, 0)
	for _, line := range strings.Split(rewritten, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	switch len(lines) {
	case 0:
		return originalTitle, ""
	case 1:
		return originalTitle, lines[0]
	default:
		return lines[0], strings.Join(lines[1:], "\n")
	}
}
