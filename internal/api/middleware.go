package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/tendril/internal/error_values"
	"github.com/limbo/tendril/pkg/httputil"
)

var (
	requestIDKContextKey = "Request-ID"
	loggerContextKey     = "Logger"
	uidContextKey        = "User-ID"
)

func (s *Server) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.New()
		w.Header().Set("X-Request-ID", reqID.String())
		ctx := context.WithValue(r.Context(), requestIDKContextKey, reqID.String())
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) SettingUpLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := slog.Default()
		reqID, ok := r.Context().Value(requestIDKContextKey).(string)
		if ok && reqID != "" {
			logger = logger.With(slog.String("request_id", reqID))
		}
		logger = logger.With(slog.String("from", r.RemoteAddr))
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) LoggerExtensionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		userID, ok := r.Context().Value(uidContextKey).(uuid.UUID)
		if ok && userID != uuid.Nil {
			logger = logger.With(slog.String("uid", userID.String()))
		}
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

// SessionMiddleware resolves the session named by the bearer token. Requests without
// a token pass through anonymously; a token that doesn't resolve to a live session is rejected.
func (s *Server) SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		if r.Header.Get("Authorization") == "" {
			next.ServeHTTP(w, r)
			return
		}
		tokenString, err := GetTokenFromHeader(r)
		if err != nil {
			logger.Error("session failed: malformed authorization header")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed: invalid token", nil)
			return
		}
		claims, err := s.tokenService.ParseToken(tokenString)
		if err != nil {
			switch {
			case errors.Is(err, errorvalues.ErrInvalidToken):
				logger.Error("session failed: error parsing token")
				httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed: invalid token", nil)
			default:
				logger.Error("session failed: internal error while parsing token", slog.String("error", err.Error()))
				httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error parsing token", nil)
			}
			return
		}
		sid, err := uuid.Parse(claims.SessionID)
		if err != nil {
			logger.Error("invalid session id in token claims")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "invalid token payload", nil)
			return
		}
		// The token is only a pointer, the session row must still be alive
		ctx, cancel := context.WithTimeout(r.Context(), time.Second*5)
		defer cancel()
		session, err := s.sessionService.Resolve(ctx, sid)
		if err != nil {
			switch {
			case errors.Is(err, errorvalues.ErrSessionNotFound), errors.Is(err, errorvalues.ErrSessionExpired):
				logger.Error("session failed: session is gone", slog.String("error", err.Error()))
				httputil.WriteErrorResponse(w, http.StatusUnauthorized, "session expired, start a new one", nil)
			default:
				logger.Error("error while resolving session", slog.String("error", err.Error()))
				httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while resolving session", nil)
			}
			return
		}
		ctx = context.WithValue(r.Context(), uidContextKey, session.ID)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerContextKey).(*slog.Logger)
	if ok {
		return logger
	}
	return slog.Default()
}

func GetTokenFromHeader(r *http.Request) (string, error) {
	token := r.Header.Get("Authorization")
	if token == "" {
		return "", errorvalues.ErrInvalidToken
	}
	parts := strings.Split(token, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", errorvalues.ErrInvalidToken
	}
	return parts[1], nil
}

func GetUIDFromContext(r *http.Request) (uuid.UUID, error) {
	uid, ok := r.Context().Value(uidContextKey).(uuid.UUID)
	if !ok {
		return uuid.UUID{}, errors.New("uid invalid or doesn't exists")
	}
	return uid, nil
}

// WithSession attaches a resolved session id the way SessionMiddleware does.
func WithSession(ctx context.Context, sid uuid.UUID) context.Context {
	return context.WithValue(ctx, uidContextKey, sid)
}

// viewer is the session id of the caller, uuid.Nil for anonymous readers.
func viewer(r *http.Request) uuid.UUID {
	uid, err := GetUIDFromContext(r)
	if err != nil {
		return uuid.Nil
	}
	return uid
}

// sessionUser returns the caller's session id and checks that an optional body user_id
// names the same session. It writes the error response itself.
func sessionUser(w http.ResponseWriter, r *http.Request, bodyUserID, op string) (uuid.UUID, bool) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error(op + " error: no session")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "session required", nil)
		return uuid.Nil, false
	}
	if bodyUserID == "" {
		return uid, true
	}
	claimed, err := uuid.Parse(bodyUserID)
	if err != nil {
		logger.Error(op + " error: invalid user_id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid user_id", nil)
		return uuid.Nil, false
	}
	if claimed != uid {
		logger.Error(op + " error: user_id doesn't match session")
		httputil.WriteErrorResponse(w, http.StatusForbidden, "user_id doesn't match session", errorvalues.ErrUserMismatch)
		return uuid.Nil, false
	}
	return uid, true
}
