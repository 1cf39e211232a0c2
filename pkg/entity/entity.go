package entity

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	ID                uuid.UUID       `json:"id"`
	Title             string          `json:"title"`
	Description       string          `json:"description"`
	Completed         bool            `json:"completed"`
	DueDate           Date            `json:"due_date"`
	CompletionHistory map[string]bool `json:"completion_history"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// CompletedOn reports the authoritative completion state for the date.
func (t *Task) CompletedOn(d Date) bool {
	if t.CompletionHistory == nil {
		return false
	}
	return t.CompletionHistory[d.String()]
}

type TaskCompletion struct {
	TaskID    uuid.UUID
	Date      Date
	Completed bool
	UpdatedAt time.Time
}

type CalendarDay struct {
	Date           Date    `json:"date"`
	Tasks          []*Task `json:"tasks"`
	CompletedCount int     `json:"completed_count"`
	TotalCount     int     `json:"total_count"`
	CompletionRate float64 `json:"completion_rate"`
}

type StreakSummary struct {
	CurrentStreak           int   `json:"current_streak"`
	LongestStreak           int   `json:"longest_streak"`
	IsPaused                bool  `json:"is_paused"`
	LastCompletionDate      *Date `json:"last_completion_date"`
	DaysSinceLastCompletion *int  `json:"days_since_last_completion"`
	TotalCompletionDays     int   `json:"total_completion_days"`
}

type ForumPost struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	UserID         uuid.UUID `json:"user_id"`
	Author         string    `json:"author,omitempty"`
	Category       string    `json:"category,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	CommentsCount  int       `json:"comments_count"`
	ReactionsCount int       `json:"reactions_count"`
	UserReacted    bool      `json:"user_reacted"`
}

type Comment struct {
	ID             uuid.UUID  `json:"id"`
	PostID         uuid.UUID  `json:"post_id"`
	UserID         uuid.UUID  `json:"user_id"`
	Content        string     `json:"content"`
	ParentID       *uuid.UUID `json:"parent_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	RepliesCount   int        `json:"replies_count"`
	ReactionsCount int        `json:"reactions_count"`
	UserReacted    bool       `json:"user_reacted"`
}

type Tip struct {
	ID         uuid.UUID `json:"id"`
	Content    string    `json:"content"`
	Author     string    `json:"author"`
	Category   string    `json:"category"`
	Likes      int       `json:"likes"`
	CreatedAt  time.Time `json:"created_at"`
	IsFeatured bool      `json:"is_featured"`
}

type ReactionState struct {
	ReactionsCount int
	UserReacted    bool
}

// ContentKind names what a piece of moderated text will be published as.
type ContentKind string

const (
	KindPost    ContentKind = "post"
	KindComment ContentKind = "comment"
	KindTip     ContentKind = "tip"
)

type RateLimitInfo struct {
	RemainingRequests int `json:"remaining_requests"`
	MaxRequests       int `json:"max_requests"`
	WindowSeconds     int `json:"window_seconds"`
}

type ModerationAnalysis struct {
	AnalysisID            uuid.UUID      `json:"analysis_id"`
	ContainsNegativeWords bool           `json:"contains_negative_words"`
	FoundWords            []string       `json:"found_words"`
	SuggestionAvailable   bool           `json:"suggestion_available"`
	RewrittenText         *string        `json:"rewritten_text"`
	SuggestedTitle        string         `json:"suggested_title,omitempty"`
	SuggestedContent      string         `json:"suggested_content,omitempty"`
	Error                 *string        `json:"error"`
	RateLimit             *RateLimitInfo `json:"rate_limit,omitempty"`
}

// ModerationApproval is the server-side record of one analysis. Only text whose
// hash is in ApprovedHashes may be published with it, and only once.
type ModerationApproval struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Kind           ContentKind
	ApprovedHashes []string
	CreatedAt      time.Time
	ExpiresAt      time.Time
	ConsumedAt     *time.Time
}

type Session struct {
	ID         uuid.UUID `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	LastSeenAt time.Time `json:"last_seen_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}
