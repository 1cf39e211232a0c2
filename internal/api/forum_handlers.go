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

type CreatePostRequest struct {
	AnalysisID string `json:"analysis_id"`
	UserID     string `json:"user_id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Author     string `json:"author"`
	Category   string `json:"category"`
}

type CreateCommentRequest struct {
	AnalysisID string `json:"analysis_id"`
	UserID     string `json:"user_id"`
	Content    string `json:"content"`
	ParentID   string `json:"parent_id"`
}

type PostReactionResponse struct {
	Message        string `json:"message"`
	PostID         string `json:"post_id"`
	ReactionsCount int    `json:"reactions_count"`
	UserReacted    bool   `json:"user_reacted"`
}

type CommentReactionResponse struct {
	Message        string `json:"message"`
	CommentID      string `json:"comment_id"`
	ReactionsCount int    `json:"reactions_count"`
	UserReacted    bool   `json:"user_reacted"`
}

func (s *Server) GetPosts(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	posts, err := s.forumService.ListPosts(ctx, viewer(r))
	if err != nil {
		logger.Error("getting posts error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting posts", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, posts)
	logger.Info("posts provided")
}

func (s *Server) GetPost(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get post error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid post id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	post, err := s.forumService.GetPost(ctx, id, viewer(r))
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrPostNotFound):
			logger.Error("get post error: unexist post")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "Post not found", nil)
		default:
			logger.Error("get post error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting post", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, post)
	logger.Info("post provided")
}

func (s *Server) CreatePost(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req CreatePostRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create post error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	uid, ok := sessionUser(w, r, req.UserID, "create post")
	if !ok {
		return
	}
	analysisID, err := uuid.Parse(req.AnalysisID)
	if err != nil {
		logger.Error("create post error: invalid analysis_id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "analysis_id is required, analyze the content first", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	post, err := s.forumService.CreatePost(ctx, &service.CreatePostRequest{
		AnalysisID: analysisID,
		UserID:     uid,
		Title:      req.Title,
		Content:    req.Content,
		Author:     req.Author,
		Category:   req.Category,
	})
	if err != nil {
		if writeApprovalError(w, logger, "create post", err) {
			return
		}
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("create post error: validation failed", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "title and content are required", err)
		default:
			logger.Error("create post error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating post", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, post)
	logger.Info("post created", slog.String("post_id", post.ID.String()))
}

func (s *Server) ReactToPost(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("post reaction error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid post id in path value", nil)
		return
	}
	uid, ok := sessionUser(w, r, "", "post reaction")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	state, err := s.forumService.ReactToPost(ctx, id, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrPostNotFound):
			logger.Error("post reaction error: unexist post")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "Post not found", nil)
		default:
			logger.Error("post reaction error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating reaction", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, PostReactionResponse{
		Message:        "Reaction updated",
		PostID:         id.String(),
		ReactionsCount: state.ReactionsCount,
		UserReacted:    state.UserReacted,
	})
	logger.Info("post reaction updated", slog.Bool("reacted", state.UserReacted))
}

func (s *Server) GetComments(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get comments error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid post id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	comments, err := s.forumService.ListComments(ctx, id, viewer(r))
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrPostNotFound):
			logger.Error("get comments error: unexist post")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "Post not found", nil)
		default:
			logger.Error("get comments error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting comments", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, comments)
	logger.Info("comments provided")
}

func (s *Server) CreateComment(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	postID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("create comment error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid post id in path value", nil)
		return
	}
	var req CreateCommentRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create comment error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	uid, ok := sessionUser(w, r, req.UserID, "create comment")
	if !ok {
		return
	}
	analysisID, err := uuid.Parse(req.AnalysisID)
	if err != nil {
		logger.Error("create comment error: invalid analysis_id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "analysis_id is required, analyze the content first", nil)
		return
	}
	var parentID *uuid.UUID
	if req.ParentID != "" {
		parsed, err := uuid.Parse(req.ParentID)
		if err != nil {
			logger.Error("create comment error: invalid parent_id")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid parent_id", nil)
			return
		}
		parentID = &parsed
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	comment, err := s.forumService.CreateComment(ctx, &service.CreateCommentRequest{
		AnalysisID: analysisID,
		PostID:     postID,
		UserID:     uid,
		Content:    req.Content,
		ParentID:   parentID,
	})
	if err != nil {
		if writeApprovalError(w, logger, "create comment", err) {
			return
		}
		switch {
		case errors.Is(err, errorvalues.ErrPostNotFound):
			logger.Error("create comment error: unexist post")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "Post not found", nil)
		case errors.Is(err, errorvalues.ErrParentCommentNotFound):
			logger.Error("create comment error: unexist parent comment")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "Parent comment not found", nil)
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("create comment error: validation failed", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "content is required", err)
		default:
			logger.Error("create comment error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating comment", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, comment)
	logger.Info("comment created", slog.String("comment_id", comment.ID.String()))
}

func (s *Server) ReactToComment(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("comment reaction error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid comment id in path value", nil)
		return
	}
	uid, ok := sessionUser(w, r, "", "comment reaction")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	state, err := s.forumService.ReactToComment(ctx, id, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrCommentNotFound):
			logger.Error("comment reaction error: unexist comment")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "Comment not found", nil)
		default:
			logger.Error("comment reaction error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating reaction", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, CommentReactionResponse{
		Message:        "Reaction updated",
		CommentID:      id.String(),
		ReactionsCount: state.ReactionsCount,
		UserReacted:    state.UserReacted,
	})
	logger.Info("comment reaction updated", slog.Bool("reacted", state.UserReacted))
}
