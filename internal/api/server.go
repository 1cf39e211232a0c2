package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/limbo/tendril/internal/service"
)

type Server struct {
	mx                 *chi.Mux
	tasksService       service.TasksServiceI
	completionsService service.CompletionsServiceI
	streakService      service.StreakServiceI
	moderationService  service.ModerationServiceI
	forumService       service.ForumServiceI
	tipsService        service.TipsServiceI
	sessionService     service.SessionServiceI
	tokenService       SessionTokenServiceI
	allowedOrigins     []string
}

type ServicesList struct {
	TasksService       service.TasksServiceI
	CompletionsService service.CompletionsServiceI
	StreakService      service.StreakServiceI
	ModerationService  service.ModerationServiceI
	ForumService       service.ForumServiceI
	TipsService        service.TipsServiceI
	SessionService     service.SessionServiceI
	TokenService       SessionTokenServiceI
	AllowedOrigins     []string
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:                 chi.NewMux(),
		tasksService:       servicesOptions.TasksService,
		completionsService: servicesOptions.CompletionsService,
		streakService:      servicesOptions.StreakService,
		moderationService:  servicesOptions.ModerationService,
		forumService:       servicesOptions.ForumService,
		tipsService:        servicesOptions.TipsService,
		sessionService:     servicesOptions.SessionService,
		tokenService:       servicesOptions.TokenService,
		allowedOrigins:     servicesOptions.AllowedOrigins,
	}
	s.mountHandlers()
	return s
}

func (s *Server) mountHandlers() {
	s.mx.Use(middleware.Recoverer)
	s.mx.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)

	s.mx.Get("/", s.Root)
	s.mx.Get("/health", s.Health)

	s.mx.Route("/api", func(r chi.Router) {
		r.Post("/session", s.StartSession)

		r.Group(func(r chi.Router) {
			r.Use(s.SessionMiddleware)
			r.Use(s.LoggerExtensionMiddleware)

			r.Get("/tasks", s.GetTasks)
			r.Post("/tasks", s.CreateTask)
			r.Put("/tasks/{id}", s.UpdateTask)
			r.Delete("/tasks/{id}", s.DeleteTask)
			r.Put("/tasks/{id}/complete/{date}", s.UpdateTaskCompletion)
			r.Get("/calendar/{date}", s.GetCalendarDay)
			r.Get("/streak", s.GetStreak)

			r.Get("/posts", s.GetPosts)
			r.Post("/posts", s.CreatePost)
			r.Post("/posts/analyze", s.AnalyzePost)
			r.Get("/posts/{id}", s.GetPost)
			r.Post("/posts/{id}/react", s.ReactToPost)
			r.Get("/posts/{id}/comments", s.GetComments)
			r.Post("/posts/{id}/comments", s.CreateComment)
			r.Post("/comments/analyze", s.AnalyzeComment)
			r.Post("/comments/{id}/react", s.ReactToComment)

			r.Get("/tips", s.GetTips)
			r.Post("/tips", s.CreateTip)
			r.Post("/tips/analyze", s.AnalyzeTip)
			r.Get("/tips/featured", s.GetFeaturedTips)
			r.Get("/tips/random", s.GetRandomTip)

			r.Get("/moderation/limits", s.GetLimits)
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Println("Listening on " + addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*15)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
