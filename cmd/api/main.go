// @title Tendril Wellness API
// @description Tasks, streaks, forum and tips with compassionate content moderation
// @BasePath /api
// @schemes http
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/limbo/tendril/internal/api"
	"github.com/limbo/tendril/internal/migrate"
	"github.com/limbo/tendril/internal/repository"
	"github.com/limbo/tendril/internal/scheduler"
	"github.com/limbo/tendril/internal/service"
	"github.com/limbo/tendril/pkg/cleanup"
	"github.com/limbo/tendril/pkg/config"
	"github.com/limbo/tendril/pkg/ratelimit"
	"github.com/limbo/tendril/pkg/rewriter"
	sessiontoken "github.com/limbo/tendril/pkg/session_token"
	"github.com/redis/go-redis/v9"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	dbCfg := repository.PGCfg{
		Address:  cfg.Postgres.Address,
		Username: cfg.Postgres.Username,
		Password: cfg.Postgres.Password,
		DB:       cfg.Postgres.DB,
	}
	if err := migrate.Up(dbCfg.ConnString()+"?sslmode=disable", cfg.MigrationsDir); err != nil {
		log.Fatal(err)
	}
	pool := repository.NewPool(&dbCfg)

	tasksRepo := repository.NewTasksRepoWithConn(pool)
	completionsRepo := repository.NewCompletionsRepoWithConn(pool)

	limiterCfg := ratelimit.Config{
		RequestsPerWindow: cfg.RateLimit.MaxRequests,
		WindowSize:        cfg.RateLimit.Window,
	}
	var limiter ratelimit.Limiter
	var pruner scheduler.Pruner
	if cfg.Redis.Address != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		if err := client.Ping(pingCtx).Err(); err != nil {
			log.Fatal("pinging redis error: " + err.Error())
		}
		cancel()
		cleanup.Register(&cleanup.Job{Name: "closing redis client", F: client.Close})
		limiter = ratelimit.NewRedisLimiter(client, limiterCfg, "tendril:ratelimit:")
	} else {
		log.Println("REDIS_ADDR is not set, rate limits are kept in memory")
		memory := ratelimit.NewMemoryLimiter(limiterCfg)
		limiter, pruner = memory, memory
	}

	// Without a key flagged text can't be rewritten and is blocked
	var rw service.RewriterI
	if key := cfg.Rewriter.Key(); key != "" {
		rw = rewriter.New(rewriter.Config{
			APIKey:      key,
			BaseURL:     cfg.Rewriter.BaseURL,
			Model:       cfg.Rewriter.Model,
			MaxTokens:   cfg.Rewriter.MaxTokens,
			Temperature: cfg.Rewriter.Temperature,
		})
	} else {
		log.Println("no rewriter API key configured, flagged content will be blocked")
	}

	clock := service.NewClock(cfg.Streak.Location())
	streakService := service.NewStreakService(completionsRepo, repository.NewStreakRepoWithConn(pool), clock, cfg.Streak.GraceDays)
	moderationService := service.NewModerationService(
		repository.NewApprovalsRepoWithConn(pool),
		limiter,
		service.NewNegativeWordDetector(cfg.NegativeWords),
		rw,
		cfg.ApprovalTTL,
	)
	sessionService := service.NewSessionService(repository.NewSessionsRepoWithConn(pool), cfg.SessionTTL)

	serv := api.New(&api.ServicesList{
		TasksService:       service.NewTasksService(tasksRepo, completionsRepo, clock),
		CompletionsService: service.NewCompletionsService(tasksRepo, completionsRepo, streakService, clock),
		StreakService:      streakService,
		ModerationService:  moderationService,
		ForumService: service.NewForumService(
			repository.NewPostsRepoWithConn(pool),
			repository.NewCommentsRepoWithConn(pool),
			moderationService,
		),
		TipsService:    service.NewTipsService(repository.NewTipsRepoWithConn(pool), moderationService),
		SessionService: sessionService,
		TokenService:   sessiontoken.New(cfg.SessionSecret),
		AllowedOrigins: cfg.AllowedOrigins,
	})

	sched := scheduler.New(cfg.Streak.Location())
	if _, err := sched.ScheduleDaily(cfg.Streak.RolloverAt, scheduler.RolloverJob(streakService)); err != nil {
		log.Fatal("scheduling streak rollover error: " + err.Error())
	}
	if _, err := sched.ScheduleInterval(time.Hour, scheduler.PurgeJob(sessionService, moderationService, pruner)); err != nil {
		log.Fatal("scheduling purge error: " + err.Error())
	}
	sched.Start()
	cleanup.Register(&cleanup.Job{Name: "stopping scheduler", F: func() error {
		sched.Stop()
		return nil
	}})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	err := serv.Run(ctx, cfg.APIAddress)
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
	cleanup.CleanUp()
}
