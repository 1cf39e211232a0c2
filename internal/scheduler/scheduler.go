// Package scheduler runs the periodic maintenance of the API: the daily streak
// rollover and purging of expired sessions, approvals and limiter keys.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/limbo/tendril/internal/service"
	"github.com/robfig/cron/v3"
)

// Pruner is implemented by in-process limiters that keep per-key state.
type Pruner interface {
	Prune() int
}

type Scheduler struct {
	cron *cron.Cron
}

func New(loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	return &Scheduler{
		cron: cron.New(cron.WithLocation(loc), cron.WithSeconds()),
	}
}

// ScheduleDaily registers a daily job at the given HH:MM time string.
func (s *Scheduler) ScheduleDaily(timeStr string, job func()) (cron.EntryID, error) {
	spec, err := buildDailySpec(timeStr)
	if err != nil {
		return 0, err
	}
	return s.cron.AddFunc(spec, job)
}

// ScheduleInterval registers a periodic job every given duration.
func (s *Scheduler) ScheduleInterval(interval time.Duration, job func()) (cron.EntryID, error) {
	if interval <= 0 {
		return 0, fmt.Errorf("interval must be positive")
	}
	seconds := max(int(interval.Seconds()), 1)
	return s.cron.AddFunc(fmt.Sprintf("@every %ds", seconds), job)
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}

// RolloverJob recomputes the streak so the longest run is persisted before a reset.
func RolloverJob(streak service.StreakServiceI) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
		defer cancel()
		summary, err := streak.Recompute(ctx)
		if err != nil {
			slog.Error("streak rollover failed", slog.String("error", err.Error()))
			return
		}
		slog.Info("streak rollover done",
			slog.Int("current_streak", summary.CurrentStreak),
			slog.Int("longest_streak", summary.LongestStreak),
			slog.Bool("paused", summary.IsPaused),
		)
	}
}

// PurgeJob drops expired sessions and approvals. limiter may be nil.
func PurgeJob(sessions service.SessionServiceI, moderation service.ModerationServiceI, limiter Pruner) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
		defer cancel()
		sessionsPurged, err := sessions.PurgeExpired(ctx)
		if err != nil {
			slog.Error("purging sessions failed", slog.String("error", err.Error()))
		}
		approvalsPurged, err := moderation.PurgeExpired(ctx)
		if err != nil {
			slog.Error("purging approvals failed", slog.String("error", err.Error()))
		}
		keysPruned := 0
		if limiter != nil {
			keysPruned = limiter.Prune()
		}
		slog.Info("purge done",
			slog.Int64("sessions", sessionsPurged),
			slog.Int64("approvals", approvalsPurged),
			slog.Int("limiter_keys", keysPruned),
		)
	}
}

func buildDailySpec(timeStr string) (string, error) {
	parts := strings.Split(timeStr, ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid time %q, expected HH:MM", timeStr)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return "", fmt.Errorf("invalid hour in %q", timeStr)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return "", fmt.Errorf("invalid minute in %q", timeStr)
	}
	// second minute hour dom month dow
	return fmt.Sprintf("0 %d %d * * *", minute, hour), nil
}
