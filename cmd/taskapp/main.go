package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/Maksim-Borisov7/TaskApp/internal/application/auth"
	"github.com/Maksim-Borisov7/TaskApp/internal/application/task"
	"github.com/Maksim-Borisov7/TaskApp/internal/config"
	infraauth "github.com/Maksim-Borisov7/TaskApp/internal/infrastructure/auth"
	httprouter "github.com/Maksim-Borisov7/TaskApp/internal/infrastructure/http"
	"github.com/Maksim-Borisov7/TaskApp/internal/infrastructure/http/handlers"
	"github.com/Maksim-Borisov7/TaskApp/internal/infrastructure/http/middleware"
	"github.com/Maksim-Borisov7/TaskApp/internal/infrastructure/persistence/migrations"
	"github.com/Maksim-Borisov7/TaskApp/internal/infrastructure/persistence/postgres"
	"github.com/Maksim-Borisov7/TaskApp/internal/infrastructure/security"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	ctx := context.Background()
	if err := migrations.Up(ctx, cfg.Database.URL); err != nil {
		log.Fatal().Err(err).Msg("run migrations")
	}
	pool, err := pgxpool.New(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to database")
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("ping database")
	}

	privateKey, err := infraauth.EnsureKeyPair(cfg.JWT.PrivateKeyPath, cfg.JWT.PublicKeyPath, cfg.JWT.GenerateKeys)
	if err != nil {
		log.Fatal().Err(err).Msg("load JWT keypair")
	}
	codec := infraauth.NewTokenCodec(privateKey, cfg.JWT.AccessExpiry)
	hasher := security.NewBcryptHasher(cfg.Bcrypt.Cost)

	userRepo := postgres.NewUserRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)

	registerUC := auth.NewRegister(userRepo, hasher)
	loginUC := auth.NewLogin(userRepo, hasher, codec)
	listUC := task.NewList(taskRepo)
	createUC := task.NewCreate(taskRepo)
	toggleUC := task.NewToggle(taskRepo)
	deleteUC := task.NewDelete(taskRepo)

	authHandler := handlers.NewAuthHandler(registerUC, loginUC, log)
	tasksHandler := handlers.NewTasksHandler(listUC, createUC, toggleUC, deleteUC, log)
	usersHandler := handlers.NewUsersHandler()
	healthHandler := handlers.NewHealthHandler(pool)

	ipLimit, err := middleware.NewIPRateLimiter(cfg.RateLimit.RatePerIP)
	if err != nil {
		log.Fatal().Err(err).Msg("create IP rate limiter")
	}
	requireAuth := middleware.NewAuthResolver(codec, userRepo).Handler
	router := httprouter.NewRouter(httprouter.RouterConfig{
		AuthHandler:   authHandler,
		TasksHandler:  tasksHandler,
		UsersHandler:  usersHandler,
		HealthHandler: healthHandler,
		RequireAuth:   requireAuth,
		CORS:          middleware.CORS(cfg.CORS.AllowedOrigins, nil, nil),
		Secure:        middleware.NewSecure(middleware.SecureOptions(cfg.Secure.IsDevelopment)),
		IPRateLimit:   ipLimit,
		Log:           log,
		Metrics:       true,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	log.Info().Msg("server stopped")
}
