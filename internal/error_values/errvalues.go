package errorvalues

import "errors"

var (
	ErrTaskNotFound             = errors.New("task doesn't exist")
	ErrCompletionDateNotAllowed = errors.New("completion can't be set for a future date")
	ErrDueDateInPast            = errors.New("due date cannot be in the past")
	ErrValidation               = errors.New("validation error")

	ErrPostNotFound          = errors.New("post doesn't exist")
	ErrCommentNotFound       = errors.New("comment doesn't exist")
	ErrParentCommentNotFound = errors.New("parent comment doesn't exist on this post")
	ErrNoTips                = errors.New("no tips available")

	ErrRateLimitExceeded = errors.New("rate limit exceeded")
	ErrApprovalNotFound  = errors.New("analysis doesn't exist")
	ErrApprovalMismatch  = errors.New("content differs from the analyzed text")
	ErrApprovalConsumed  = errors.New("analysis was already used")
	ErrApprovalExpired   = errors.New("analysis expired")

	ErrSessionNotFound = errors.New("session doesn't exist")
	ErrSessionExpired  = errors.New("session expired")
	ErrInvalidToken    = errors.New("invalid token")
	ErrUserMismatch    = errors.New("user_id doesn't match session")
)
