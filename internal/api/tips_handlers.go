package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/tendril/internal/error_values"
	"github.com/limbo/tendril/internal/service"
	"github.com/limbo/tendril/pkg/httputil"
)

type CreateTipRequest struct {
	AnalysisID string `json:"analysis_id"`
	UserID     string `json:"user_id"`
	Content    string `json:"content"`
	Author     string `json:"author"`
	Category   string `json:"category"`
}

func (s *Server) GetTips(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	tips, err := s.tipsService.ListTips(ctx)
	if err != nil {
		logger.Error("getting tips error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting tips", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, tips)
	logger.Info("tips provided")
}

func (s *Server) GetFeaturedTips(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	tips, err := s.tipsService.FeaturedTips(ctx)
	if err != nil {
		logger.Error("getting featured tips error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting featured tips", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, tips)
	logger.Info("featured tips provided")
}

func (s *Server) GetRandomTip(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	tip, err := s.tipsService.RandomTip(ctx)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrNoTips):
			logger.Error("random tip error: no tips")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "No tips available", nil)
		default:
			logger.Error("random tip error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting tip", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, tip)
	logger.Info("random tip provided")
}

func (s *Server) CreateTip(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req CreateTipRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create tip error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	uid, ok := sessionUser(w, r, req.UserID, "create tip")
	if !ok {
		return
	}
	analysisID, err := uuid.Parse(req.AnalysisID)
	if err != nil {
		logger.Error("create tip error: invalid analysis_id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "analysis_id is required, analyze the content first", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	tip, err := s.tipsService.CreateTip(ctx, &service.CreateTipRequest{
		AnalysisID: analysisID,
		UserID:     uid,
		Content:    req.Content,
		Author:     req.Author,
		Category:   req.Category,
	})
	if err != nil {
		if writeApprovalError(w, logger, "create tip", err) {
			return
		}
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("create tip error: validation failed", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "content is required", err)
		default:
			logger.Error("create tip error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating tip", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, tip)
	logger.Info("tip created", slog.String("tip_id", tip.ID.String()))
}
