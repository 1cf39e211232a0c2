package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/tendril/internal/error_values"
	"github.com/limbo/tendril/internal/service"
	"github.com/limbo/tendril/pkg/entity"
	"github.com/limbo/tendril/pkg/httputil"
)

type AnalyzeRequest struct {
	Content string `json:"content"`
	UserID  string `json:"user_id"`
}

type StartSessionResponse struct {
	SessionID string    `json:"session_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *Server) AnalyzePost(w http.ResponseWriter, r *http.Request) {
	s.analyze(w, r, entity.KindPost)
}

func (s *Server) AnalyzeComment(w http.ResponseWriter, r *http.Request) {
	s.analyze(w, r, entity.KindComment)
}

func (s *Server) AnalyzeTip(w http.ResponseWriter, r *http.Request) {
	s.analyze(w, r, entity.KindTip)
}

func (s *Server) analyze(w http.ResponseWriter, r *http.Request, kind entity.ContentKind) {
	logger := GetLoggerFromCtx(r.Context()).With(slog.String("kind", string(kind)))
	var req AnalyzeRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("analyze error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	uid, ok := sessionUser(w, r, req.UserID, "analyze")
	if !ok {
		return
	}
	// The rewriter call is bounded here as well as by its own client timeout
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*30)
	defer cancel()
	analysis, err := s.moderationService.Analyze(ctx, &service.AnalyzeRequest{
		Kind:    kind,
		Content: req.Content,
		UserID:  uid,
	})
	if err != nil {
		var rlErr *service.RateLimitError
		switch {
		case errors.As(err, &rlErr):
			logger.Error("analyze error: rate limit exceeded")
			w.Header().Set("Retry-After", strconv.Itoa(int(rlErr.RetryAfter.Round(time.Second)/time.Second)))
			httputil.WriteRateLimitResponse(w, rlErr.Error(), rlErr.Info)
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("analyze error: validation failed", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "content must not be empty", err)
		default:
			logger.Error("analyze error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while analyzing content", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, analysis)
	logger.Info("content analyzed",
		slog.String("analysis_id", analysis.AnalysisID.String()),
		slog.Bool("flagged", analysis.ContainsNegativeWords),
		slog.Bool("suggestion", analysis.SuggestionAvailable),
	)
}

func (s *Server) GetLimits(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := sessionUser(w, r, "", "limits")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*5)
	defer cancel()
	info, err := s.moderationService.Limits(ctx, uid)
	if err != nil {
		logger.Error("limits error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while reading limits", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, info)
	logger.Info("limits provided")
}

func (s *Server) StartSession(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	session, err := s.sessionService.Start(ctx)
	if err != nil {
		logger.Error("session start error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while starting session", nil)
		return
	}
	token, err := s.tokenService.GenerateToken(session)
	if err != nil {
		logger.Error("session start error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, StartSessionResponse{
		SessionID: session.ID.String(),
		Token:     token,
		ExpiresAt: session.ExpiresAt,
	})
	logger.Info("session started", slog.String("uid", session.ID.String()))
}

// writeApprovalError maps a failed redeem to its status. It reports false for errors
// that are not about the approval.
func writeApprovalError(w http.ResponseWriter, logger *slog.Logger, op string, err error) bool {
	switch {
	case errors.Is(err, errorvalues.ErrApprovalNotFound):
		logger.Error(op + " error: unknown analysis")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "analysis not found, analyze the content first", nil)
	case errors.Is(err, errorvalues.ErrApprovalMismatch):
		logger.Error(op + " error: content differs from the analysis")
		httputil.WriteErrorResponse(w, http.StatusUnprocessableEntity, "content differs from the analyzed text, analyze it again", nil)
	case errors.Is(err, errorvalues.ErrApprovalConsumed):
		logger.Error(op + " error: analysis reused")
		httputil.WriteErrorResponse(w, http.StatusConflict, "analysis was already used", nil)
	case errors.Is(err, errorvalues.ErrApprovalExpired):
		logger.Error(op + " error: analysis expired")
		httputil.WriteErrorResponse(w, http.StatusGone, "analysis expired, analyze the content again", nil)
	default:
		return false
	}
	return true
}
