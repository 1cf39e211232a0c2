package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/tendril/internal/error_values"
	"github.com/limbo/tendril/pkg/entity"
)

const selectPosts = `SELECT p.id, p.user_id, p.title, p.content, p.author, p.category, p.created_at,
	(SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id),
	(SELECT COUNT(*) FROM post_reactions r WHERE r.post_id = p.id),
	EXISTS(SELECT 1 FROM post_reactions r WHERE r.post_id = p.id AND r.user_id = $1)
	FROM posts p`

type PostsRepository struct {
	conn PgConnection
}

func NewPostsRepoWithConn(conn PgConnection) *PostsRepository {
	ping(conn, "postsRepo")
	return &PostsRepository{
		conn: conn,
	}
}

func (pr *PostsRepository) Create(ctx context.Context, post *entity.ForumPost, approvalID uuid.UUID) (uuid.UUID, error) {
	if post == nil {
		return uuid.Nil, errors.New("post is nil")
	}
	var id uuid.UUID
	err := createApproved(ctx, pr.conn, approvalID, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `INSERT INTO posts (user_id, title, content, author, category) VALUES ($1, $2, $3, $4, $5) RETURNING id;`,
			post.UserID,
			post.Title,
			post.Content,
			post.Author,
			post.Category,
		)
		if err := row.Scan(&id); err != nil {
			return errors.New("creating post db error: " + err.Error())
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (pr *PostsRepository) GetByID(ctx context.Context, id, viewer uuid.UUID) (*entity.ForumPost, error) {
	row := pr.conn.QueryRow(ctx, selectPosts+` WHERE p.id = $2;`, viewer, id)
	post, err := scanPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrPostNotFound
		}
		return nil, errors.New("getting post by id error: " + err.Error())
	}
	return post, nil
}

func (pr *PostsRepository) List(ctx context.Context, viewer uuid.UUID) ([]*entity.ForumPost, error) {
	rows, err := pr.conn.Query(ctx, selectPosts+` ORDER BY p.created_at DESC;`, viewer)
	if err != nil {
		return nil, errors.New("listing posts error: " + err.Error())
	}
	defer rows.Close()
	posts := make([]*entity.ForumPost, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, errors.New("unmarshalling post error: " + err.Error())
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning posts: " + err.Error())
	}
	return posts, nil
}

func (pr *PostsRepository) ToggleReaction(ctx context.Context, postID, userID uuid.UUID) (*entity.ReactionState, error) {
	return toggleReaction(ctx, pr.conn, postReactionQueries, postID, userID, errorvalues.ErrPostNotFound)
}

func scanPost(row pgx.Row) (*entity.ForumPost, error) {
	var p entity.ForumPost
	err := row.Scan(&p.ID, &p.UserID, &p.Title, &p.Content, &p.Author, &p.Category, &p.CreatedAt,
		&p.CommentsCount, &p.ReactionsCount, &p.UserReacted)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
