package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/tendril/internal/error_values"
	"github.com/limbo/tendril/pkg/entity"
)

type CompletionsRepository struct {
	conn PgConnection
}

func NewCompletionsRepoWithConn(conn PgConnection) *CompletionsRepository {
	ping(conn, "completionsRepo")
	return &CompletionsRepository{
		conn: conn,
	}
}

func (cr *CompletionsRepository) Set(ctx context.Context, taskID uuid.UUID, date entity.Date, completed bool) error {
	_, err := cr.conn.Exec(
		ctx,
		`INSERT INTO task_completions (task_id, completion_date, completed) VALUES ($1, $2, $3)
		ON CONFLICT (task_id, completion_date) DO UPDATE SET completed = EXCLUDED.completed, updated_at = NOW();`,
		taskID,
		date.Time(),
		completed,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrTaskNotFound
			}
		}
		return errors.New("setting completion error: " + err.Error())
	}
	return nil
}

func (cr *CompletionsRepository) GetByTaskIDs(ctx context.Context, taskIDs []uuid.UUID) (map[uuid.UUID]map[string]bool, error) {
	result := make(map[uuid.UUID]map[string]bool, len(taskIDs))
	if len(taskIDs) == 0 {
		return result, nil
	}
	rows, err := cr.conn.Query(
		ctx,
		`SELECT task_id, completion_date, completed FROM task_completions WHERE task_id = ANY($1);`,
		taskIDs,
	)
	if err != nil {
		return nil, errors.New("getting completion histories error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		var (
			taskID    uuid.UUID
			date      time.Time
			completed bool
		)
		if err := rows.Scan(&taskID, &date, &completed); err != nil {
			return nil, errors.New("completion row parsing error: " + err.Error())
		}
		history, ok := result[taskID]
		if !ok {
			history = make(map[string]bool)
			result[taskID] = history
		}
		history[entity.DateOf(date).String()] = completed
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected completion rows error: " + err.Error())
	}
	return result, nil
}

func (cr *CompletionsRepository) QualifyingDays(ctx context.Context) ([]entity.Date, error) {
	rows, err := cr.conn.Query(
		ctx,
		`SELECT DISTINCT completion_date FROM task_completions WHERE completed ORDER BY completion_date;`,
	)
	if err != nil {
		return nil, errors.New("getting qualifying days error: " + err.Error())
	}
	defer rows.Close()
	days := make([]entity.Date, 0)
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, errors.New("qualifying day parsing error: " + err.Error())
		}
		days = append(days, entity.DateOf(date))
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected qualifying day rows error: " + err.Error())
	}
	return days, nil
}
