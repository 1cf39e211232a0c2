package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/tendril/internal/error_values"
	"github.com/limbo/tendril/pkg/entity"
)

const selectComments = `SELECT c.id, c.post_id, c.user_id, c.content, c.parent_id, c.created_at,
	(SELECT COUNT(*) FROM comments r WHERE r.parent_id = c.id),
	(SELECT COUNT(*) FROM comment_reactions cr WHERE cr.comment_id = c.id),
	EXISTS(SELECT 1 FROM comment_reactions cr WHERE cr.comment_id = c.id AND cr.user_id = $1)
	FROM comments c`

type CommentsRepository struct {
	conn PgConnection
}

func NewCommentsRepoWithConn(conn PgConnection) *CommentsRepository {
	ping(conn, "commentsRepo")
	return &CommentsRepository{
		conn: conn,
	}
}

func (cr *CommentsRepository) Create(ctx context.Context, comment *entity.Comment, approvalID uuid.UUID) (uuid.UUID, error) {
	if comment == nil {
		return uuid.Nil, errors.New("comment is nil")
	}
	var id uuid.UUID
	err := createApproved(ctx, cr.conn, approvalID, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `INSERT INTO comments (post_id, parent_id, user_id, content) VALUES ($1, $2, $3, $4) RETURNING id;`,
			comment.PostID,
			comment.ParentID,
			comment.UserID,
			comment.Content,
		)
		err := row.Scan(&id)
		if err == nil {
			return nil
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			if pgErr.ConstraintName == "comments_parent_id_fkey" {
				return errorvalues.ErrParentCommentNotFound
			}
			return errorvalues.ErrPostNotFound
		}
		return errors.New("creating comment db error: " + err.Error())
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (cr *CommentsRepository) GetByID(ctx context.Context, id, viewer uuid.UUID) (*entity.Comment, error) {
	row := cr.conn.QueryRow(ctx, selectComments+` WHERE c.id = $2;`, viewer, id)
	comment, err := scanComment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrCommentNotFound
		}
		return nil, errors.New("getting comment by id error: " + err.Error())
	}
	return comment, nil
}

func (cr *CommentsRepository) ListByPost(ctx context.Context, postID, viewer uuid.UUID) ([]*entity.Comment, error) {
	rows, err := cr.conn.Query(ctx, selectComments+` WHERE c.post_id = $2 ORDER BY c.created_at;`, viewer, postID)
	if err != nil {
		return nil, errors.New("listing comments error: " + err.Error())
	}
	defer rows.Close()
	comments := make([]*entity.Comment, 0)
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, errors.New("unmarshalling comment error: " + err.Error())
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning comments: " + err.Error())
	}
	return comments, nil
}

func (cr *CommentsRepository) ToggleReaction(ctx context.Context, commentID, userID uuid.UUID) (*entity.ReactionState, error) {
	return toggleReaction(ctx, cr.conn, commentReactionQueries, commentID, userID, errorvalues.ErrCommentNotFound)
}

func scanComment(row pgx.Row) (*entity.Comment, error) {
	var c entity.Comment
	err := row.Scan(&c.ID, &c.PostID, &c.UserID, &c.Content, &c.ParentID, &c.CreatedAt,
		&c.RepliesCount, &c.ReactionsCount, &c.UserReacted)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
