package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/tendril/internal/error_values"
	"github.com/limbo/tendril/internal/repository"
	"github.com/limbo/tendril/pkg/entity"
)

type SessionService struct {
	repo repository.SessionsRepositoryI
	ttl  time.Duration
	now  func() time.Time
}

func NewSessionService(sessionsRepo repository.SessionsRepositoryI, ttl time.Duration) *SessionService {
	if sessionsRepo == nil {
		log.Fatal("provided nil sessionsRepo")
	}
	if ttl <= 0 {
		ttl = 720 * time.Hour
	}
	return &SessionService{
		repo: sessionsRepo,
		ttl:  ttl,
		now:  time.Now,
	}
}

// WithClock replaces the time source. Intended for tests.
func (ss *SessionService) WithClock(now func() time.Time) *SessionService {
	ss.now = now
	return ss
}

func (ss *SessionService) Start(ctx context.Context) (*entity.Session, error) {
	session, err := ss.repo.Create(ctx, ss.now().Add(ss.ttl))
	if err != nil {
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	return session, nil
}

func (ss *SessionService) Resolve(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	session, err := ss.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSessionNotFound) {
			return nil, err
		}
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	if !ss.now().Before(session.ExpiresAt) {
		return nil, errorvalues.ErrSessionExpired
	}
	if err := ss.repo.Touch(ctx, id); err != nil {
		if errors.Is(err, errorvalues.ErrSessionNotFound) {
			return nil, err
		}
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	return session, nil
}

func (ss *SessionService) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := ss.repo.DeleteExpired(ctx, ss.now())
	if err != nil {
		return 0, errors.New("sessions repository error: " + err.Error())
	}
	return n, nil
}
