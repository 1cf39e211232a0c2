package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/limbo/tendril/pkg/entity"
)

type reactionQueries struct {
	lock   string
	remove string
	add    string
	count  string
}

var (
	postReactionQueries = reactionQueries{
		lock:   `SELECT id FROM posts WHERE id = $1 FOR NO KEY UPDATE;`,
		remove: `DELETE FROM post_reactions WHERE post_id = $1 AND user_id = $2;`,
		add:    `INSERT INTO post_reactions (post_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING;`,
		count:  `SELECT COUNT(*) FROM post_reactions WHERE post_id = $1;`,
	}
	commentReactionQueries = reactionQueries{
		lock:   `SELECT id FROM comments WHERE id = $1 FOR NO KEY UPDATE;`,
		remove: `DELETE FROM comment_reactions WHERE comment_id = $1 AND user_id = $2;`,
		add:    `INSERT INTO comment_reactions (comment_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING;`,
		count:  `SELECT COUNT(*) FROM comment_reactions WHERE comment_id = $1;`,
	}
)

// toggleReaction removes the actor's reaction if it exists and adds it otherwise.
// The target row stays locked until commit, so concurrent toggles on it run one after another
// and each flips the state exactly once.
func toggleReaction(ctx context.Context, conn PgConnection, q reactionQueries, targetID, userID uuid.UUID, notFound error) (*entity.ReactionState, error) {
	tx, err := conn.Begin(ctx)
	if err != nil {
		return nil, errors.New("beginning reaction tx error: " + err.Error())
	}
	defer tx.Rollback(ctx)

	var locked uuid.UUID
	if err := tx.QueryRow(ctx, q.lock, targetID).Scan(&locked); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound
		}
		return nil, errors.New("locking reaction target error: " + err.Error())
	}

	state := entity.ReactionState{}
	ct, err := tx.Exec(ctx, q.remove, targetID, userID)
	if err != nil {
		return nil, errors.New("removing reaction error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		_, err = tx.Exec(ctx, q.add, targetID, userID)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return nil, notFound
			}
			return nil, errors.New("adding reaction error: " + err.Error())
		}
		state.UserReacted = true
	}
	if err := tx.QueryRow(ctx, q.count, targetID).Scan(&state.ReactionsCount); err != nil {
		return nil, errors.New("counting reactions error: " + err.Error())
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, errors.New("committing reaction tx error: " + err.Error())
	}
	return &state, nil
}
