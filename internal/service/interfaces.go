package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/limbo/tendril/pkg/entity"
)

type TaskRequest struct {
	Title       string      `validate:"required,notblank,max=200"`
	Description string      `validate:"max=2000"`
	DueDate     entity.Date `validate:"required"`
}

type AnalyzeRequest struct {
	Kind    entity.ContentKind `validate:"content_kind"`
	Content string             `validate:"required,notblank,max=10000"`
	UserID  uuid.UUID          `validate:"required"`
}

type CreatePostRequest struct {
	AnalysisID uuid.UUID `validate:"required"`
	UserID     uuid.UUID `validate:"required"`
	Title      string    `validate:"required,notblank,max=200"`
	Content    string    `validate:"required,notblank,max=10000"`
	Author     string    `validate:"max=100"`
	Category   string    `validate:"max=100"`
}

type CreateCommentRequest struct {
	AnalysisID uuid.UUID  `validate:"required"`
	PostID     uuid.UUID  `validate:"required"`
	UserID     uuid.UUID  `validate:"required"`
	Content    string     `validate:"required,notblank,max=5000"`
	ParentID   *uuid.UUID `validate:"omitempty"`
}

type CreateTipRequest struct {
	AnalysisID uuid.UUID `validate:"required"`
	UserID     uuid.UUID `validate:"required"`
	Content    string    `validate:"required,notblank,max=2000"`
	Author     string    `validate:"max=100"`
	Category   string    `validate:"max=100"`
}

type TasksServiceI interface {
	// Lists every task with its completion history, completed reflects today
	ListTasks(ctx context.Context) ([]*entity.Task, error)
	// Validates request and creates task. Due date must not be in the past
	CreateTask(ctx context.Context, req *TaskRequest) (*entity.Task, error)
	// Replaces title, description and due date. Completion history is kept
	UpdateTask(ctx context.Context, id uuid.UUID, req *TaskRequest) (*entity.Task, error)
	DeleteTask(ctx context.Context, id uuid.UUID) error
}

type CompletionsServiceI interface {
	// Sets completion of the task on date and recomputes the streak
	UpdateTaskCompletion(ctx context.Context, taskID uuid.UUID, date entity.Date, completed bool) error
	// Tasks due on date with completion projected for that date
	GetCalendarDay(ctx context.Context, date entity.Date) (*entity.CalendarDay, error)
}

type StreakServiceI interface {
	GetStreak(ctx context.Context) (*entity.StreakSummary, error)
	// Computes the summary and persists the longest streak
	Recompute(ctx context.Context) (*entity.StreakSummary, error)
}

type ModerationServiceI interface {
	// Consumes one unit of the caller's budget, classifies the text and records an approval
	Analyze(ctx context.Context, req *AnalyzeRequest) (*entity.ModerationAnalysis, error)
	// Checks that the approval is alive, unspent and covers text. Nothing is spent,
	// repositories spend the approval together with the insert
	Verify(ctx context.Context, analysisID, userID uuid.UUID, kind entity.ContentKind, text string) error
	// Remaining analysis budget of the user, nothing is consumed
	Limits(ctx context.Context, userID uuid.UUID) (*entity.RateLimitInfo, error)
	PurgeExpired(ctx context.Context) (int64, error)
}

type ForumServiceI interface {
	ListPosts(ctx context.Context, viewer uuid.UUID) ([]*entity.ForumPost, error)
	GetPost(ctx context.Context, id, viewer uuid.UUID) (*entity.ForumPost, error)
	CreatePost(ctx context.Context, req *CreatePostRequest) (*entity.ForumPost, error)
	ReactToPost(ctx context.Context, postID, userID uuid.UUID) (*entity.ReactionState, error)
	ListComments(ctx context.Context, postID, viewer uuid.UUID) ([]*entity.Comment, error)
	CreateComment(ctx context.Context, req *CreateCommentRequest) (*entity.Comment, error)
	ReactToComment(ctx context.Context, commentID, userID uuid.UUID) (*entity.ReactionState, error)
}

type TipsServiceI interface {
	ListTips(ctx context.Context) ([]*entity.Tip, error)
	FeaturedTips(ctx context.Context) ([]*entity.Tip, error)
	RandomTip(ctx context.Context) (*entity.Tip, error)
	CreateTip(ctx context.Context, req *CreateTipRequest) (*entity.Tip, error)
}

type SessionServiceI interface {
	// Creates a new anonymous session
	Start(ctx context.Context) (*entity.Session, error)
	// Returns live session and marks it as seen
	Resolve(ctx context.Context, id uuid.UUID) (*entity.Session, error)
	PurgeExpired(ctx context.Context) (int64, error)
}

type RewriterI interface {
	Rewrite(ctx context.Context, text string) (string, error)
}
