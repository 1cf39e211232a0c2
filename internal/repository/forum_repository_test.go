package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/tendril/internal/error_values"
	"github.com/limbo/tendril/internal/repository"
	"github.com/limbo/tendril/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
)

var postColumns = []string{"id", "user_id", "title", "content", "author", "category", "created_at",
	"comments_count", "reactions_count", "user_reacted"}

var spendApprovalQuery = regexp.QuoteMeta(`UPDATE moderation_approvals SET consumed_at = now() WHERE id = $1 AND consumed_at IS NULL;`)

func TestCreatePost(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewPostsRepoWithConn(mock)
	post := entity.ForumPost{
		UserID:  uuid.New(),
		Title:   "Bad day",
		Content: "I had a hard day",
	}
	approvalID := uuid.New()
	query := regexp.QuoteMeta(`INSERT INTO posts (user_id, title, content, author, category) VALUES ($1, $2, $3, $4, $5) RETURNING id;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		id := uuid.New()
		mock.ExpectBegin()
		mock.ExpectExec(spendApprovalQuery).WithArgs(approvalID).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectQuery(query).
			WithArgs(post.UserID, post.Title, post.Content, "", "").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(id))
		mock.ExpectCommit()
		result, err := repo.Create(ctx, &post, approvalID)
		assert.NoError(t, err)
		assert.Equal(t, id, result)
	})
	t.Run("approval already spent", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(spendApprovalQuery).WithArgs(approvalID).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectRollback()
		_, err := repo.Create(ctx, &post, approvalID)
		assert.ErrorIs(t, err, errorvalues.ErrApprovalConsumed)
	})
	t.Run("failed insert rolls the approval back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(spendApprovalQuery).WithArgs(approvalID).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectQuery(query).
			WithArgs(post.UserID, post.Title, post.Content, "", "").
			WillReturnError(errors.New("db error"))
		mock.ExpectRollback()
		_, err := repo.Create(ctx, &post, approvalID)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrApprovalConsumed)
	})
	t.Run("begin error", func(t *testing.T) {
		mock.ExpectBegin().WillReturnError(errors.New("db error"))
		_, err := repo.Create(ctx, &post, approvalID)
		assert.Error(t, err)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPostByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewPostsRepoWithConn(mock)
	viewer := uuid.New()
	post := entity.ForumPost{
		ID:             uuid.New(),
		UserID:         uuid.New(),
		Title:          "Small wins",
		Content:        "Walked for ten minutes",
		Category:       "movement",
		CreatedAt:      time.Date(2030, time.May, 1, 9, 0, 0, 0, time.UTC),
		CommentsCount:  2,
		ReactionsCount: 5,
		UserReacted:    true,
	}
	query := regexp.QuoteMeta(`SELECT p.id, p.user_id, p.title, p.content, p.author, p.category, p.created_at,
	(SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id),
	(SELECT COUNT(*) FROM post_reactions r WHERE r.post_id = p.id),
	EXISTS(SELECT 1 FROM post_reactions r WHERE r.post_id = p.id AND r.user_id = $1)
	FROM posts p WHERE p.id = $2;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(viewer, post.ID).
			WillReturnRows(pgxmock.NewRows(postColumns).AddRow(post.ID, post.UserID, post.Title, post.Content,
				post.Author, post.Category, post.CreatedAt, post.CommentsCount, post.ReactionsCount, post.UserReacted))
		result, err := repo.GetByID(ctx, post.ID, viewer)
		assert.NoError(t, err)
		assert.Equal(t, post, *result)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(viewer, post.ID).WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, post.ID, viewer)
		assert.ErrorIs(t, err, errorvalues.ErrPostNotFound)
	})
}

func TestTogglePostReaction(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewPostsRepoWithConn(mock)
	postID, userID := uuid.New(), uuid.New()
	lockQuery := regexp.QuoteMeta(`SELECT id FROM posts WHERE id = $1 FOR NO KEY UPDATE;`)
	removeQuery := regexp.QuoteMeta(`DELETE FROM post_reactions WHERE post_id = $1 AND user_id = $2;`)
	addQuery := regexp.QuoteMeta(`INSERT INTO post_reactions (post_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING;`)
	countQuery := regexp.QuoteMeta(`SELECT COUNT(*) FROM post_reactions WHERE post_id = $1;`)
	lockRow := func() *pgxmock.Rows {
		return pgxmock.NewRows([]string{"id"}).AddRow(postID)
	}
	ctx := context.Background()
	t.Run("react", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).WithArgs(postID).WillReturnRows(lockRow())
		mock.ExpectExec(removeQuery).WithArgs(postID, userID).WillReturnResult(pgxmock.NewResult("DELETE", 0))
		mock.ExpectExec(addQuery).WithArgs(postID, userID).WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectQuery(countQuery).WithArgs(postID).WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(4))
		mock.ExpectCommit()
		state, err := repo.ToggleReaction(ctx, postID, userID)
		assert.NoError(t, err)
		assert.Equal(t, entity.ReactionState{ReactionsCount: 4, UserReacted: true}, *state)
	})
	t.Run("unreact", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).WithArgs(postID).WillReturnRows(lockRow())
		mock.ExpectExec(removeQuery).WithArgs(postID, userID).WillReturnResult(pgxmock.NewResult("DELETE", 1))
		mock.ExpectQuery(countQuery).WithArgs(postID).WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))
		mock.ExpectCommit()
		state, err := repo.ToggleReaction(ctx, postID, userID)
		assert.NoError(t, err)
		assert.Equal(t, entity.ReactionState{ReactionsCount: 3, UserReacted: false}, *state)
	})
	t.Run("unknown post", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).WithArgs(postID).WillReturnError(pgx.ErrNoRows)
		mock.ExpectRollback()
		_, err := repo.ToggleReaction(ctx, postID, userID)
		assert.ErrorIs(t, err, errorvalues.ErrPostNotFound)
	})
	t.Run("FK violation", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).WithArgs(postID).WillReturnRows(lockRow())
		mock.ExpectExec(removeQuery).WithArgs(postID, userID).WillReturnResult(pgxmock.NewResult("DELETE", 0))
		mock.ExpectExec(addQuery).WithArgs(postID, userID).WillReturnError(&pgconn.PgError{Code: "23503"})
		mock.ExpectRollback()
		_, err := repo.ToggleReaction(ctx, postID, userID)
		assert.ErrorIs(t, err, errorvalues.ErrPostNotFound)
	})
	t.Run("begin error", func(t *testing.T) {
		mock.ExpectBegin().WillReturnError(errors.New("db error"))
		_, err := repo.ToggleReaction(ctx, postID, userID)
		assert.Error(t, err)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateComment(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewCommentsRepoWithConn(mock)
	parent := uuid.New()
	comment := entity.Comment{
		PostID:   uuid.New(),
		UserID:   uuid.New(),
		Content:  "You've got this",
		ParentID: &parent,
	}
	approvalID := uuid.New()
	query := regexp.QuoteMeta(`INSERT INTO comments (post_id, parent_id, user_id, content) VALUES ($1, $2, $3, $4) RETURNING id;`)
	ctx := context.Background()
	expectInsert := func() *pgxmock.ExpectedQuery {
		mock.ExpectBegin()
		mock.ExpectExec(spendApprovalQuery).WithArgs(approvalID).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		return mock.ExpectQuery(query).WithArgs(comment.PostID, comment.ParentID, comment.UserID, comment.Content)
	}
	t.Run("success", func(t *testing.T) {
		id := uuid.New()
		expectInsert().WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(id))
		mock.ExpectCommit()
		result, err := repo.Create(ctx, &comment, approvalID)
		assert.NoError(t, err)
		assert.Equal(t, id, result)
	})
	t.Run("unknown post", func(t *testing.T) {
		expectInsert().WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "comments_post_id_fkey"})
		mock.ExpectRollback()
		_, err := repo.Create(ctx, &comment, approvalID)
		assert.ErrorIs(t, err, errorvalues.ErrPostNotFound)
	})
	t.Run("unknown parent", func(t *testing.T) {
		expectInsert().WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "comments_parent_id_fkey"})
		mock.ExpectRollback()
		_, err := repo.Create(ctx, &comment, approvalID)
		assert.ErrorIs(t, err, errorvalues.ErrParentCommentNotFound)
	})
	t.Run("approval already spent", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(spendApprovalQuery).WithArgs(approvalID).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectRollback()
		_, err := repo.Create(ctx, &comment, approvalID)
		assert.ErrorIs(t, err, errorvalues.ErrApprovalConsumed)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTip(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewTipsRepoWithConn(mock)
	tip := entity.Tip{Content: "Stretch for five minutes", Author: "Sam", Category: "Movement"}
	approvalID := uuid.New()
	query := regexp.QuoteMeta(`INSERT INTO tips (content, author, category) VALUES ($1, $2, $3) RETURNING id;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		id := uuid.New()
		mock.ExpectBegin()
		mock.ExpectExec(spendApprovalQuery).WithArgs(approvalID).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectQuery(query).WithArgs(tip.Content, tip.Author, tip.Category).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(id))
		mock.ExpectCommit()
		result, err := repo.Create(ctx, &tip, approvalID)
		assert.NoError(t, err)
		assert.Equal(t, id, result)
	})
	t.Run("failed insert rolls the approval back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(spendApprovalQuery).WithArgs(approvalID).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectQuery(query).WithArgs(tip.Content, tip.Author, tip.Category).WillReturnError(errors.New("db error"))
		mock.ExpectRollback()
		_, err := repo.Create(ctx, &tip, approvalID)
		assert.Error(t, err)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRandomTip(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewTipsRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT id, content, author, category, likes, created_at, is_featured FROM tips ORDER BY random() LIMIT 1;`)
	tip := entity.Tip{
		ID:         uuid.New(),
		Content:    "Drink a glass of water first thing in the morning.",
		Author:     "Dr. Sarah Wellness",
		Category:   "Hydration",
		Likes:      42,
		CreatedAt:  time.Date(2030, time.May, 1, 9, 0, 0, 0, time.UTC),
		IsFeatured: true,
	}
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WillReturnRows(pgxmock.NewRows([]string{"id", "content", "author", "category", "likes", "created_at", "is_featured"}).
				AddRow(tip.ID, tip.Content, tip.Author, tip.Category, tip.Likes, tip.CreatedAt, tip.IsFeatured))
		result, err := repo.Random(ctx)
		assert.NoError(t, err)
		assert.Equal(t, tip, *result)
	})
	t.Run("no tips", func(t *testing.T) {
		mock.ExpectQuery(query).WillReturnError(pgx.ErrNoRows)
		_, err := repo.Random(ctx)
		assert.ErrorIs(t, err, errorvalues.ErrNoTips)
	})
}
