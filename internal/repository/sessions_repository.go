package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/tendril/internal/error_values"
	"github.com/limbo/tendril/pkg/entity"
)

type SessionsRepository struct {
	conn PgConnection
}

func NewSessionsRepoWithConn(conn PgConnection) *SessionsRepository {
	ping(conn, "sessionsRepo")
	return &SessionsRepository{
		conn: conn,
	}
}

func (sr *SessionsRepository) Create(ctx context.Context, expiresAt time.Time) (*entity.Session, error) {
	var session entity.Session
	row := sr.conn.QueryRow(ctx, `INSERT INTO sessions (expires_at) VALUES ($1) RETURNING id, created_at, last_seen_at, expires_at;`, expiresAt)
	if err := row.Scan(&session.ID, &session.CreatedAt, &session.LastSeenAt, &session.ExpiresAt); err != nil {
		return nil, errors.New("creating session db error: " + err.Error())
	}
	return &session, nil
}

func (sr *SessionsRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	var session entity.Session
	row := sr.conn.QueryRow(ctx, `SELECT id, created_at, last_seen_at, expires_at FROM sessions WHERE id = $1;`, id)
	if err := row.Scan(&session.ID, &session.CreatedAt, &session.LastSeenAt, &session.ExpiresAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrSessionNotFound
		}
		return nil, errors.New("searching session by id error: " + err.Error())
	}
	return &session, nil
}

func (sr *SessionsRepository) Touch(ctx context.Context, id uuid.UUID) error {
	ct, err := sr.conn.Exec(ctx, `UPDATE sessions SET last_seen_at = NOW() WHERE id = $1;`, id)
	if err != nil {
		return errors.New("touching session error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrSessionNotFound
	}
	return nil
}

func (sr *SessionsRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	ct, err := sr.conn.Exec(ctx, `DELETE FROM sessions WHERE expires_at < $1;`, now)
	if err != nil {
		return 0, errors.New("deleting expired sessions error: " + err.Error())
	}
	return ct.RowsAffected(), nil
}
