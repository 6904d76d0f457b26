package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/yukikurage/hero-task-tracker/internal/config"
	"github.com/yukikurage/hero-task-tracker/internal/constants"
	"github.com/yukikurage/hero-task-tracker/internal/database"
	"github.com/yukikurage/hero-task-tracker/internal/handlers"
	"github.com/yukikurage/hero-task-tracker/internal/logging"
	"github.com/yukikurage/hero-task-tracker/internal/middleware"
	"github.com/yukikurage/hero-task-tracker/internal/repository"
	"github.com/yukikurage/hero-task-tracker/internal/services"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg := config.Load()

	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		fatal("failed to connect to database", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		fatal("failed to run migrations", err)
	}

	taskRepo := repository.NewTaskRepository(db)
	userRepo := repository.NewUserRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	users := services.NewUserService(userRepo)
	tasks := services.NewTaskService(taskRepo)
	svc := handlers.Services{
		Auth:        services.NewAuthService(userRepo, users),
		Users:       users,
		Tasks:       tasks,
		Assignments: services.NewAssignmentService(tasks, taskRepo, userRepo),
		Intake:      services.NewIntakeService(tasks),
		Stats:       services.NewStatsService(statsRepo, cfg.Location()),
		Suggestions: services.NewSuggestionService(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL),
	}
	svc.HealthChecks = map[string]handlers.HealthCheck{
		"database": func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if svc.Suggestions == nil {
		slog.Info("OPENAI_API_KEY not set, task suggestions disabled")
	}

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 10*time.Second)
	_, err = users.EnsureAdmin(seedCtx, cfg.AdminUsername, cfg.AdminPassword)
	cancelSeed()
	if err != nil {
		fatal("failed to seed administrator", err)
	}

	store, err := newSessionStore(cfg)
	if err != nil {
		fatal("failed to create session store", err)
	}

	var redisClient *redis.Client
	if cfg.SessionStore != "cookie" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisHost + ":" + cfg.RedisPort})
		svc.HealthChecks["redis"] = func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}
	}

	// Initialize Gin router
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))
	handlers.RegisterRoutes(r, svc)

	os.Exit(run(cfg, r, db, redisClient))
}

// newSessionStore builds the redis-backed store, or a signed cookie store
// when SESSION_STORE=cookie.
func newSessionStore(cfg *config.Config) (sessions.Store, error) {
	var store sessions.Store
	switch cfg.SessionStore {
	case "cookie":
		store = cookie.NewStore([]byte(cfg.SessionSecret))
	default:
		redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
		rs, err := redisStore.NewStore(
			10,        // Redis pool size
			"tcp",     // network type
			redisAddr, // Redis address from config
			"",        // username (empty for default user)
			"",        // password (empty = no password)
			[]byte(cfg.SessionSecret),
		)
		if err != nil {
			return nil, err
		}
		store = rs
	}

	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.GinMode == gin.ReleaseMode,
		SameSite: http.SameSiteLaxMode,
	})
	slog.Info("session store ready", "type", cfg.SessionStore)
	return store, nil
}

// run serves until SIGINT/SIGTERM, then drains HTTP and closes the
// database and redis probe within shutdownTimeout.
func run(cfg *config.Config, handler http.Handler, db *gorm.DB, redisClient *redis.Client) int {
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.ServerPort, "db_driver", cfg.DBDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fatal("failed to listen", err)
		}
	}()

	ops := map[string]gfshutdown.Operation{
		"http-server": func(ctx context.Context) error {
			slog.Info("shutting down server")
			return srv.Shutdown(ctx)
		},
		"database": func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	}
	if redisClient != nil {
		ops["redis"] = func(ctx context.Context) error {
			return redisClient.Close()
		}
	}

	wait := gfshutdown.GracefulShutdown(context.Background(), shutdownTimeout, ops)

	exitCode := <-wait
	slog.Info("server exited", "code", exitCode)
	return exitCode
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}
