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

type TasksRepository struct {
	conn PgConnection
}

func NewTasksRepoWithConn(conn PgConnection) *TasksRepository {
	ping(conn, "tasksRepo")
	return &TasksRepository{
		conn: conn,
	}
}

func (tr *TasksRepository) Create(ctx context.Context, task *entity.Task) (uuid.UUID, error) {
	if task == nil {
		return uuid.Nil, errors.New("task is nil")
	}
	var id uuid.UUID
	row := tr.conn.QueryRow(ctx, `INSERT INTO tasks (title, description, due_date) VALUES ($1, $2, $3) RETURNING id;`,
		task.Title,
		task.Description,
		task.DueDate.Time(),
	)
	if err := row.Scan(&id); err != nil {
		return uuid.Nil, errors.New("creating task db error: " + err.Error())
	}
	return id, nil
}

func (tr *TasksRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	var task entity.Task
	var due time.Time
	task.ID = id
	row := tr.conn.QueryRow(ctx, `SELECT title, description, due_date, created_at, updated_at FROM tasks WHERE id = $1;`, id)
	if err := row.Scan(&task.Title, &task.Description, &due, &task.CreatedAt, &task.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrTaskNotFound
		}
		return nil, errors.New("getting task by id error: " + err.Error())
	}
	task.DueDate = entity.DateOf(due)
	return &task, nil
}

func (tr *TasksRepository) List(ctx context.Context) ([]*entity.Task, error) {
	rows, err := tr.conn.Query(ctx, `SELECT id, title, description, due_date, created_at, updated_at
		FROM tasks ORDER BY due_date, created_at;`)
	if err != nil {
		return nil, errors.New("listing tasks error: " + err.Error())
	}
	return scanTasks(rows)
}

func (tr *TasksRepository) ListDueOn(ctx context.Context, date entity.Date) ([]*entity.Task, error) {
	rows, err := tr.conn.Query(ctx, `SELECT id, title, description, due_date, created_at, updated_at
		FROM tasks WHERE due_date = $1 ORDER BY created_at;`, date.Time())
	if err != nil {
		return nil, errors.New("listing tasks by due date error: " + err.Error())
	}
	return scanTasks(rows)
}

func scanTasks(rows pgx.Rows) ([]*entity.Task, error) {
	defer rows.Close()
	tasks := make([]*entity.Task, 0)
	for rows.Next() {
		t := entity.Task{}
		var due time.Time
		err := rows.Scan(&t.ID, &t.Title, &t.Description, &due, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling task error: " + err.Error())
		}
		t.DueDate = entity.DateOf(due)
		tasks = append(tasks, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning tasks: " + err.Error())
	}
	return tasks, nil
}

func (tr *TasksRepository) Update(ctx context.Context, task *entity.Task) error {
	ct, err := tr.conn.Exec(ctx, `UPDATE tasks SET title = $1, description = $2, due_date = $3, updated_at = NOW() WHERE id = $4;`,
		task.Title, task.Description, task.DueDate.Time(), task.ID,
	)
	if err != nil {
		return errors.New("error updating task: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrTaskNotFound
	}
	return nil
}

func (tr *TasksRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := tr.conn.Exec(ctx, `DELETE FROM tasks WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting task: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrTaskNotFound
	}
	return nil
}
