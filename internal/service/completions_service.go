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

type CompletionsService struct {
	tasksRepo       repository.TasksRepositoryI
	completionsRepo repository.CompletionsRepositoryI
	streak          StreakServiceI
	clock           Clock
}

func NewCompletionsService(tasksRepo repository.TasksRepositoryI, completionsRepo repository.CompletionsRepositoryI, streak StreakServiceI, clock Clock) *CompletionsService {
	if tasksRepo == nil || completionsRepo == nil {
		log.Fatal("on completions service provided nil repos")
	}
	if streak == nil {
		log.Fatal("on completions service provided nil streak service")
	}
	return &CompletionsService{
		tasksRepo:       tasksRepo,
		completionsRepo: completionsRepo,
		streak:          streak,
		clock:           clock,
	}
}

func (serv *CompletionsService) UpdateTaskCompletion(ctx context.Context, taskID uuid.UUID, date entity.Date, completed bool) error {
	if date.After(serv.clock.Today()) {
		return errorvalues.ErrCompletionDateNotAllowed
	}
	_, err := serv.tasksRepo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	err = serv.completionsRepo.Set(ctx, taskID, date, completed)
	if err != nil {
		// Task may have been deleted in between
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	if _, err := serv.streak.Recompute(ctx); err != nil {
		return errors.New("streak recompute error: " + err.Error())
	}
	return nil
}

func (serv *CompletionsService) GetCalendarDay(ctx context.Context, date entity.Date) (*entity.CalendarDay, error) {
	tasks, err := serv.tasksRepo.ListDueOn(ctx, date)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	if err := attachHistories(ctx, serv.completionsRepo, tasks, date); err != nil {
		return nil, err
	}
	day := &entity.CalendarDay{
		Date:       date,
		Tasks:      tasks,
		TotalCount: len(tasks),
	}
	for _, t := range tasks {
		if t.Completed {
			day.CompletedCount++
		}
	}
	if day.TotalCount > 0 {
		day.CompletionRate = float64(day.CompletedCount) / float64(day.TotalCount) * 100
	}
	return day, nil
}
