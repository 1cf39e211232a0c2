package service

import (
	"context"
	"errors"
	"log"

	"github.com/limbo/tendril/internal/repository"
	"github.com/limbo/tendril/pkg/entity"
)

type StreakService struct {
	completionsRepo repository.CompletionsRepositoryI
	streakRepo      repository.StreakRepositoryI
	clock           Clock
	graceDays       int
}

func NewStreakService(completionsRepo repository.CompletionsRepositoryI, streakRepo repository.StreakRepositoryI, clock Clock, graceDays int) *StreakService {
	if completionsRepo == nil || streakRepo == nil {
		log.Fatal("on streak service provided nil repos")
	}
	return &StreakService{
		completionsRepo: completionsRepo,
		streakRepo:      streakRepo,
		clock:           clock,
		graceDays:       graceDays,
	}
}

func (serv *StreakService) GetStreak(ctx context.Context) (*entity.StreakSummary, error) {
	summary, persisted, err := serv.compute(ctx)
	if err != nil {
		return nil, err
	}
	if summary.LongestStreak > persisted {
		if err := serv.streakRepo.SaveLongest(ctx, summary.LongestStreak); err != nil {
			return nil, errors.New("streak repository error: " + err.Error())
		}
	}
	return summary, nil
}

func (serv *StreakService) Recompute(ctx context.Context) (*entity.StreakSummary, error) {
	summary, _, err := serv.compute(ctx)
	if err != nil {
		return nil, err
	}
	if err := serv.streakRepo.SaveLongest(ctx, summary.LongestStreak); err != nil {
		return nil, errors.New("streak repository error: " + err.Error())
	}
	return summary, nil
}

func (serv *StreakService) compute(ctx context.Context) (*entity.StreakSummary, int, error) {
	days, err := serv.completionsRepo.QualifyingDays(ctx)
	if err != nil {
		return nil, 0, errors.New("completions repository error: " + err.Error())
	}
	persisted, err := serv.streakRepo.GetLongest(ctx)
	if err != nil {
		return nil, 0, errors.New("streak repository error: " + err.Error())
	}
	return ComputeStreak(days, serv.clock.Today(), serv.graceDays, persisted), persisted, nil
}
