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

type ApprovalsRepository struct {
	conn PgConnection
}

func NewApprovalsRepoWithConn(conn PgConnection) *ApprovalsRepository {
	ping(conn, "approvalsRepo")
	return &ApprovalsRepository{
		conn: conn,
	}
}

func (ar *ApprovalsRepository) Create(ctx context.Context, approval *entity.ModerationApproval) (uuid.UUID, error) {
	if approval == nil {
		return uuid.Nil, errors.New("approval is nil")
	}
	hashes := approval.ApprovedHashes
	if hashes == nil {
		hashes = []string{}
	}
	var id uuid.UUID
	row := ar.conn.QueryRow(ctx, `INSERT INTO moderation_approvals (user_id, kind, approved_hashes, expires_at)
		VALUES ($1, $2, $3, $4) RETURNING id;`,
		approval.UserID,
		string(approval.Kind),
		hashes,
		approval.ExpiresAt,
	)
	if err := row.Scan(&id); err != nil {
		return uuid.Nil, errors.New("creating approval db error: " + err.Error())
	}
	return id, nil
}

func (ar *ApprovalsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ModerationApproval, error) {
	approval := entity.ModerationApproval{ID: id}
	var kind string
	row := ar.conn.QueryRow(ctx, `SELECT user_id, kind, approved_hashes, created_at, expires_at, consumed_at
		FROM moderation_approvals WHERE id = $1;`, id)
	err := row.Scan(&approval.UserID, &kind, &approval.ApprovedHashes, &approval.CreatedAt, &approval.ExpiresAt, &approval.ConsumedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrApprovalNotFound
		}
		return nil, errors.New("getting approval by id error: " + err.Error())
	}
	approval.Kind = entity.ContentKind(kind)
	return &approval, nil
}

func (ar *ApprovalsRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	ct, err := ar.conn.Exec(ctx, `DELETE FROM moderation_approvals WHERE expires_at < $1;`, now)
	if err != nil {
		return 0, errors.New("deleting expired approvals error: " + err.Error())
	}
	return ct.RowsAffected(), nil
}

const spendApprovalQuery = `UPDATE moderation_approvals SET consumed_at = now() WHERE id = $1 AND consumed_at IS NULL;`

// createApproved spends the approval and runs insert in one transaction.
// The approval stays unspent unless the insert commits.
func createApproved(ctx context.Context, conn PgConnection, approvalID uuid.UUID, insert func(tx pgx.Tx) error) error {
	tx, err := conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning publish tx error: " + err.Error())
	}
	defer tx.Rollback(ctx)

	ct, err := tx.Exec(ctx, spendApprovalQuery, approvalID)
	if err != nil {
		return errors.New("consuming approval error: " + err.Error())
	}
	// Somebody spent it first or the row is gone; the caller has already read it.
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrApprovalConsumed
	}
	if err := insert(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return errors.New("committing publish tx error: " + err.Error())
	}
	return nil
}
