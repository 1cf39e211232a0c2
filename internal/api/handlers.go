package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/tendril/internal/error_values"
	"github.com/limbo/tendril/internal/service"
	"github.com/limbo/tendril/pkg/entity"
	"github.com/limbo/tendril/pkg/httputil"
)

const dueDateInPastMessage = "Due date cannot be in the past. Please select today or a future date."

type TaskRequest struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	DueDate     entity.Date `json:"due_date"`
}

type TaskCompletionResponse struct {
	Message   string      `json:"message"`
	TaskID    string      `json:"task_id"`
	Date      entity.Date `json:"date"`
	Completed bool        `json:"completed"`
}

func (s *Server) Root(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"message": "Tendril Wellness API is running!",
	})
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) GetTasks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	tasks, err := s.tasksService.ListTasks(ctx)
	if err != nil {
		logger.Error("getting tasks error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting tasks", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, tasks)
	logger.Info("tasks provided")
}

func (s *Server) CreateTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req TaskRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create task error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	task, err := s.tasksService.CreateTask(ctx, &service.TaskRequest{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrDueDateInPast):
			logger.Error("create task error: due date in the past")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, dueDateInPastMessage, nil)
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("create task error: validation failed", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid task", err)
		default:
			logger.Error("create task error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating task", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, task)
	logger.Info("task created", slog.String("task_id", task.ID.String()))
}

func (s *Server) UpdateTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("update task error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid task id in path value", nil)
		return
	}
	var req TaskRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update task error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	task, err := s.tasksService.UpdateTask(ctx, id, &service.TaskRequest{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrTaskNotFound):
			logger.Error("update task error: unexist task")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "Task not found", nil)
		case errors.Is(err, errorvalues.ErrDueDateInPast):
			logger.Error("update task error: due date in the past")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, dueDateInPastMessage, nil)
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("update task error: validation failed", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid task", err)
		default:
			logger.Error("update task error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating task", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, task)
	logger.Info("task updated", slog.String("task_id", id.String()))
}

func (s *Server) DeleteTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("task deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid task id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	err = s.tasksService.DeleteTask(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrTaskNotFound):
			logger.Error("task deletion error: unexist task")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "Task not found", nil)
		default:
			logger.Error("task deletion error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting task", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"message": "Task deleted"})
	logger.Info("task deleted", slog.String("task_id", id.String()))
}

func (s *Server) UpdateTaskCompletion(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("task completion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid task id in path value", nil)
		return
	}
	date, err := entity.ParseDate(r.PathValue("date"))
	if err != nil {
		logger.Error("task completion error: invalid date in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date in path value", err)
		return
	}
	completed, err := strconv.ParseBool(r.URL.Query().Get("completed"))
	if err != nil {
		logger.Error("task completion error: invalid completed query parameter")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "query parameter completed must be true or false", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	err = s.completionsService.UpdateTaskCompletion(ctx, id, date, completed)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrTaskNotFound):
			logger.Error("task completion error: unexist task")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "Task not found", nil)
		case errors.Is(err, errorvalues.ErrCompletionDateNotAllowed):
			logger.Error("task completion error: future date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "completion can't be set for a future date", nil)
		default:
			logger.Error("task completion error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating completion", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, TaskCompletionResponse{
		Message:   "Task completion updated for " + date.String(),
		TaskID:    id.String(),
		Date:      date,
		Completed: completed,
	})
	logger.Info("task completion updated", slog.String("task_id", id.String()), slog.String("date", date.String()))
}

func (s *Server) GetCalendarDay(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	date, err := entity.ParseDate(r.PathValue("date"))
	if err != nil {
		logger.Error("calendar error: invalid date in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date in path value", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	day, err := s.completionsService.GetCalendarDay(ctx, date)
	if err != nil {
		logger.Error("calendar error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting calendar day", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, day)
	logger.Info("calendar day provided")
}

func (s *Server) GetStreak(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	summary, err := s.streakService.GetStreak(ctx)
	if err != nil {
		logger.Error("getting streak error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting streak", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, summary)
	logger.Info("streak provided")
}
