package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// StreakRepository keeps the single row with the historical longest streak.
type StreakRepository struct {
	conn PgConnection
}

func NewStreakRepoWithConn(conn PgConnection) *StreakRepository {
	ping(conn, "streakRepo")
	return &StreakRepository{
		conn: conn,
	}
}

func (sr *StreakRepository) GetLongest(ctx context.Context) (int, error) {
	var longest int
	row := sr.conn.QueryRow(ctx, `SELECT longest_streak FROM streak_records WHERE id = 1;`)
	if err := row.Scan(&longest); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, errors.New("getting longest streak error: " + err.Error())
	}
	return longest, nil
}

func (sr *StreakRepository) SaveLongest(ctx context.Context, longest int) error {
	_, err := sr.conn.Exec(ctx, `INSERT INTO streak_records (id, longest_streak) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET longest_streak = GREATEST(streak_records.longest_streak, EXCLUDED.longest_streak), updated_at = NOW();`,
		longest,
	)
	if err != nil {
		return errors.New("saving longest streak error: " + err.Error())
	}
	return nil
}
