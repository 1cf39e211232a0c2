package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/tendril/pkg/entity"
)

type TasksRepositoryI interface {
	// Creates new task. Only Title, Description and DueDate are used
	Create(ctx context.Context, task *entity.Task) (uuid.UUID, error)
	// Searches task with given id. Completion history is not loaded
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Task, error)
	// Lists every task ordered by due date
	List(ctx context.Context) ([]*entity.Task, error)
	// Lists tasks due on the date
	ListDueOn(ctx context.Context, date entity.Date) ([]*entity.Task, error)
	// Updates title, description and due date by ID
	Update(ctx context.Context, task *entity.Task) error
	// Deletes task with id, its completions go with it
	Delete(ctx context.Context, id uuid.UUID) error
}

type CompletionsRepositoryI interface {
	// Sets completion state of the task on the date, overwriting the previous one
	Set(ctx context.Context, taskID uuid.UUID, date entity.Date, completed bool) error
	// Provides completion histories of the tasks keyed by task id
	GetByTaskIDs(ctx context.Context, taskIDs []uuid.UUID) (map[uuid.UUID]map[string]bool, error)
	// Returns every date at least one task was completed on, ascending
	QualifyingDays(ctx context.Context) ([]entity.Date, error)
}

type StreakRepositoryI interface {
	// Returns persisted longest streak, 0 if nothing was saved
	GetLongest(ctx context.Context) (int, error)
	// Saves longest streak. Stored value never decreases
	SaveLongest(ctx context.Context, longest int) error
}

type SessionsRepositoryI interface {
	// Creates anonymous session alive until expiresAt
	Create(ctx context.Context, expiresAt time.Time) (*entity.Session, error)
	// Looks up session by id. Can be used for authorization middleware
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)
	// Marks session as seen now
	Touch(ctx context.Context, id uuid.UUID) error
	// Deletes sessions expired before now, returns how many
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type ApprovalsRepositoryI interface {
	// Stores approval of an analysis and returns its id
	Create(ctx context.Context, approval *entity.ModerationApproval) (uuid.UUID, error)
	// Searches approval with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ModerationApproval, error)
	// Deletes approvals expired before now, returns how many
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type PostsRepositoryI interface {
	// Spends the approval and creates new post in one transaction, returns its id.
	// Fails with ErrApprovalConsumed if the approval was already spent
	Create(ctx context.Context, post *entity.ForumPost, approvalID uuid.UUID) (uuid.UUID, error)
	// Searches post with counters. user_reacted is computed for viewer
	GetByID(ctx context.Context, id, viewer uuid.UUID) (*entity.ForumPost, error)
	// Lists posts newest first
	List(ctx context.Context, viewer uuid.UUID) ([]*entity.ForumPost, error)
	// Adds reaction of userID or removes it if present
	ToggleReaction(ctx context.Context, postID, userID uuid.UUID) (*entity.ReactionState, error)
}

type CommentsRepositoryI interface {
	// Spends the approval and creates new comment in one transaction, returns its id
	Create(ctx context.Context, comment *entity.Comment, approvalID uuid.UUID) (uuid.UUID, error)
	// Searches comment with counters. user_reacted is computed for viewer
	GetByID(ctx context.Context, id, viewer uuid.UUID) (*entity.Comment, error)
	// Lists comments of the post oldest first
	ListByPost(ctx context.Context, postID, viewer uuid.UUID) ([]*entity.Comment, error)
	// Adds reaction of userID or removes it if present
	ToggleReaction(ctx context.Context, commentID, userID uuid.UUID) (*entity.ReactionState, error)
}

type TipsRepositoryI interface {
	// Spends the approval and creates new tip in one transaction, returns its id
	Create(ctx context.Context, tip *entity.Tip, approvalID uuid.UUID) (uuid.UUID, error)
	// Searches tip with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Tip, error)
	// Lists tips newest first
	List(ctx context.Context) ([]*entity.Tip, error)
	// Lists featured tips newest first
	ListFeatured(ctx context.Context) ([]*entity.Tip, error)
	// Picks one tip at random
	Random(ctx context.Context) (*entity.Tip, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
