package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/tendril/internal/error_values"
	"github.com/limbo/tendril/internal/repository/mocks"
	"github.com/limbo/tendril/internal/service"
	"github.com/limbo/tendril/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedClock says it is 2030-05-20 10:00 UTC.
func fixedClock() service.Clock {
	return service.NewClock(time.UTC).WithNow(func() time.Time {
		return time.Date(2030, time.May, 20, 10, 0, 0, 0, time.UTC)
	})
}

func TestCreateTask(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	tasksRepo := mocks.NewMockTasksRepositoryI(ctrl)
	completionsRepo := mocks.NewMockCompletionsRepositoryI(ctrl)
	serv := service.NewTasksService(tasksRepo, completionsRepo, fixedClock())
	taskID := uuid.New()

	testCases := []struct {
		Desc         string
		Error        error
		Request      service.TaskRequest
		MockPrepFunc func()
	}{
		{
			Desc:    "success",
			Request: service.TaskRequest{Title: "Morning Meditation", DueDate: day(20)},
			MockPrepFunc: func() {
				tasksRepo.EXPECT().Create(gomock.Any(), &entity.Task{Title: "Morning Meditation", DueDate: day(20)}).Return(taskID, nil)
				tasksRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(&entity.Task{ID: taskID, Title: "Morning Meditation", DueDate: day(20)}, nil)
			},
		},
		{
			Desc:         "blank title",
			Error:        errorvalues.ErrValidation,
			Request:      service.TaskRequest{Title: "   ", DueDate: day(20)},
			MockPrepFunc: func() {},
		},
		{
			Desc:         "missing due date",
			Error:        errorvalues.ErrValidation,
			Request:      service.TaskRequest{Title: "Read"},
			MockPrepFunc: func() {},
		},
		{
			Desc:         "due date in the past",
			Error:        errorvalues.ErrDueDateInPast,
			Request:      service.TaskRequest{Title: "Read", DueDate: day(19)},
			MockPrepFunc: func() {},
		},
		{
			Desc:    "repository error",
			Error:   errors.New("any"),
			Request: service.TaskRequest{Title: "Read", DueDate: day(25)},
			MockPrepFunc: func() {
				tasksRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.Nil, errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			task, err := serv.CreateTask(ctx, &tc.Request)
			switch {
			case tc.Error == nil:
				require.NoError(t, err)
				assert.Equal(t, taskID, task.ID)
				assert.NotNil(t, task.CompletionHistory)
				assert.False(t, task.Completed)
			case errors.Is(tc.Error, errorvalues.ErrValidation) || errors.Is(tc.Error, errorvalues.ErrDueDateInPast):
				assert.ErrorIs(t, err, tc.Error)
			default:
				assert.Error(t, err)
			}
		})
	}
}

func TestListTasksProjectsToday(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	tasksRepo := mocks.NewMockTasksRepositoryI(ctrl)
	completionsRepo := mocks.NewMockCompletionsRepositoryI(ctrl)
	serv := service.NewTasksService(tasksRepo, completionsRepo, fixedClock())

	done, open := uuid.New(), uuid.New()
	tasksRepo.EXPECT().List(gomock.Any()).Return([]*entity.Task{
		{ID: done, Title: "done today", DueDate: day(20)},
		{ID: open, Title: "done yesterday", DueDate: day(20)},
	}, nil)
	completionsRepo.EXPECT().GetByTaskIDs(gomock.Any(), []uuid.UUID{done, open}).Return(map[uuid.UUID]map[string]bool{
		done: {"2030-05-20": true},
		open: {"2030-05-19": true},
	}, nil)

	tasks, err := serv.ListTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.True(t, tasks[0].Completed)
	assert.False(t, tasks[1].Completed)
	assert.Equal(t, map[string]bool{"2030-05-19": true}, tasks[1].CompletionHistory)
}

func TestUpdateTaskKeepsHistory(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	tasksRepo := mocks.NewMockTasksRepositoryI(ctrl)
	completionsRepo := mocks.NewMockCompletionsRepositoryI(ctrl)
	serv := service.NewTasksService(tasksRepo, completionsRepo, fixedClock())
	id := uuid.New()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		req := service.TaskRequest{Title: "Evening walk", Description: "20 minutes", DueDate: day(21)}
		tasksRepo.EXPECT().Update(gomock.Any(), &entity.Task{ID: id, Title: req.Title, Description: req.Description, DueDate: req.DueDate}).Return(nil)
		tasksRepo.EXPECT().GetByID(gomock.Any(), id).Return(&entity.Task{ID: id, Title: req.Title, Description: req.Description, DueDate: req.DueDate}, nil)
		completionsRepo.EXPECT().GetByTaskIDs(gomock.Any(), []uuid.UUID{id}).Return(map[uuid.UUID]map[string]bool{
			id: {"2030-05-18": true, "2030-05-20": true},
		}, nil)
		task, err := serv.UpdateTask(ctx, id, &req)
		require.NoError(t, err)
		assert.Equal(t, "Evening walk", task.Title)
		assert.Len(t, task.CompletionHistory, 2)
		assert.True(t, task.Completed)
	})
	t.Run("not found", func(t *testing.T) {
		req := service.TaskRequest{Title: "Evening walk", DueDate: day(21)}
		tasksRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(errorvalues.ErrTaskNotFound)
		_, err := serv.UpdateTask(ctx, id, &req)
		assert.ErrorIs(t, err, errorvalues.ErrTaskNotFound)
	})
}

func TestDeleteTask(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	tasksRepo := mocks.NewMockTasksRepositoryI(ctrl)
	completionsRepo := mocks.NewMockCompletionsRepositoryI(ctrl)
	serv := service.NewTasksService(tasksRepo, completionsRepo, fixedClock())
	id := uuid.New()
	ctx := context.Background()

	tasksRepo.EXPECT().Delete(gomock.Any(), id).Return(nil)
	assert.NoError(t, serv.DeleteTask(ctx, id))

	tasksRepo.EXPECT().Delete(gomock.Any(), id).Return(errorvalues.ErrTaskNotFound)
	assert.ErrorIs(t, serv.DeleteTask(ctx, id), errorvalues.ErrTaskNotFound)
}
