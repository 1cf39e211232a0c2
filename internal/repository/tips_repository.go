package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/tendril/internal/error_values"
	"github.com/limbo/tendril/pkg/entity"
)

const selectTips = `SELECT id, content, author, category, likes, created_at, is_featured FROM tips`

type TipsRepository struct {
	conn PgConnection
}

func NewTipsRepoWithConn(conn PgConnection) *TipsRepository {
	ping(conn, "tipsRepo")
	return &TipsRepository{
		conn: conn,
	}
}

func (tr *TipsRepository) Create(ctx context.Context, tip *entity.Tip, approvalID uuid.UUID) (uuid.UUID, error) {
	if tip == nil {
		return uuid.Nil, errors.New("tip is nil")
	}
	var id uuid.UUID
	err := createApproved(ctx, tr.conn, approvalID, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `INSERT INTO tips (content, author, category) VALUES ($1, $2, $3) RETURNING id;`,
			tip.Content,
			tip.Author,
			tip.Category,
		)
		if err := row.Scan(&id); err != nil {
			return errors.New("creating tip db error: " + err.Error())
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (tr *TipsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Tip, error) {
	tip, err := scanTip(tr.conn.QueryRow(ctx, selectTips+` WHERE id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrNoTips
		}
		return nil, errors.New("getting tip by id error: " + err.Error())
	}
	return tip, nil
}

func (tr *TipsRepository) List(ctx context.Context) ([]*entity.Tip, error) {
	rows, err := tr.conn.Query(ctx, selectTips+` ORDER BY created_at DESC;`)
	if err != nil {
		return nil, errors.New("listing tips error: " + err.Error())
	}
	return scanTips(rows)
}

func (tr *TipsRepository) ListFeatured(ctx context.Context) ([]*entity.Tip, error) {
	rows, err := tr.conn.Query(ctx, selectTips+` WHERE is_featured ORDER BY created_at DESC;`)
	if err != nil {
		return nil, errors.New("listing featured tips error: " + err.Error())
	}
	return scanTips(rows)
}

func (tr *TipsRepository) Random(ctx context.Context) (*entity.Tip, error) {
	tip, err := scanTip(tr.conn.QueryRow(ctx, selectTips+` ORDER BY random() LIMIT 1;`))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrNoTips
		}
		return nil, errors.New("getting random tip error: " + err.Error())
	}
	return tip, nil
}

func scanTip(row pgx.Row) (*entity.Tip, error) {
	var t entity.Tip
	if err := row.Scan(&t.ID, &t.Content, &t.Author, &t.Category, &t.Likes, &t.CreatedAt, &t.IsFeatured); err != nil {
		return nil, err
	}
	return &t, nil
}

func scanTips(rows pgx.Rows) ([]*entity.Tip, error) {
	defer rows.Close()
	tips := make([]*entity.Tip, 0)
	for rows.Next() {
		tip, err := scanTip(rows)
		if err != nil {
			return nil, errors.New("unmarshalling tip error: " + err.Error())
		}
		tips = append(tips, tip)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning tips: " + err.Error())
	}
	return tips, nil
}
