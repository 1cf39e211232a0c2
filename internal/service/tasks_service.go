package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/tendril/internal/error_values"
	"github.com/limbo/tendril/internal/repository"
	"github.com/limbo/tendril/pkg/entity"
)

type TasksService struct {
	tasksRepo       repository.TasksRepositoryI
	completionsRepo repository.CompletionsRepositoryI
	clock           Clock
}

func NewTasksService(tasksRepo repository.TasksRepositoryI, completionsRepo repository.CompletionsRepositoryI, clock Clock) *TasksService {
	if tasksRepo == nil || completionsRepo == nil {
		log.Fatal("on tasks service provided nil repos")
	}
	return &TasksService{
		tasksRepo:       tasksRepo,
		completionsRepo: completionsRepo,
		clock:           clock,
	}
}

func (ts *TasksService) ListTasks(ctx context.Context) ([]*entity.Task, error) {
	tasks, err := ts.tasksRepo.List(ctx)
	if err != nil {
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	if err := attachHistories(ctx, ts.completionsRepo, tasks, ts.clock.Today()); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (ts *TasksService) CreateTask(ctx context.Context, req *TaskRequest) (*entity.Task, error) {
	if err := ts.validate(req); err != nil {
		return nil, err
	}
	id, err := ts.tasksRepo.Create(ctx, &entity.Task{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
	})
	if err != nil {
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	task, err := ts.tasksRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return nil, err
		}
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	task.CompletionHistory = map[string]bool{}
	return task, nil
}

func (ts *TasksService) UpdateTask(ctx context.Context, id uuid.UUID, req *TaskRequest) (*entity.Task, error) {
	if err := ts.validate(req); err != nil {
		return nil, err
	}
	err := ts.tasksRepo.Update(ctx, &entity.Task{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return nil, err
		}
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	task, err := ts.tasksRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return nil, err
		}
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	if err := attachHistories(ctx, ts.completionsRepo, []*entity.Task{task}, ts.clock.Today()); err != nil {
		return nil, err
	}
	return task, nil
}

func (ts *TasksService) DeleteTask(ctx context.Context, id uuid.UUID) error {
	err := ts.tasksRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return err
		}
		return errors.New("tasks repository error: " + err.Error())
	}
	return nil
}

func (ts *TasksService) validate(req *TaskRequest) error {
	if req == nil {
		return errorvalues.ErrValidation
	}
	if err := validateStruct(*req); err != nil {
		return err
	}
	if req.DueDate.Before(ts.clock.Today()) {
		return errorvalues.ErrDueDateInPast
	}
	return nil
}

// attachHistories loads completion histories of tasks and projects Completed for day.
func attachHistories(ctx context.Context, completionsRepo repository.CompletionsRepositoryI, tasks []*entity.Task, day entity.Date) error {
	ids := make([]uuid.UUID, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}
	histories, err := completionsRepo.GetByTaskIDs(ctx, ids)
	if err != nil {
		return errors.New("completions repository error: " + err.Error())
	}
	for _, t := range tasks {
		history, ok := histories[t.ID]
		if !ok {
			history = map[string]bool{}
		}
		t.CompletionHistory = history
		t.Completed = t.CompletedOn(day)
	}
	return nil
}
