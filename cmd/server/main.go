package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/vedran77/whispr/internal/config"
	"github.com/vedran77/whispr/internal/database"
	postgresrepo "github.com/vedran77/whispr/internal/repository/postgres"
	"github.com/vedran77/whispr/internal/service"
	"github.com/vedran77/whispr/internal/transport/http/handlers"
	"github.com/vedran77/whispr/internal/transport/http/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg := config.Load()

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	// Database
	pool, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("database connect failed", zap.Error(err))
	}
	defer pool.Close()
	logger.Info("Connected to database")

	if err := database.EnsureSchema(context.Background(), pool); err != nil {
		logger.Fatal("schema setup failed", zap.Error(err))
	}

	// Repositories
	userRepo := postgresrepo.NewUserRepo(pool)
	messageRepo := postgresrepo.NewMessageRepo(pool)

	// Services
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	messageService := service.NewMessageService(messageRepo, userRepo)
	userService := service.NewUserService(userRepo)

	// Seed admin account
	created, err := authService.SeedAdmin(context.Background(), service.RegisterInput{
		Email:     cfg.AdminEmail,
		Password:  cfg.AdminPassword,
		FirstName: "admin",
		LastName:  "admin",
	})
	if err != nil {
		logger.Fatal("admin seeding failed", zap.Error(err))
	}
	if created {
		logger.Info("Admin user seeded", zap.String("email", cfg.AdminEmail))
	}

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, logger)
	messageHandler := handlers.NewMessageHandler(messageService, logger)
	userHandler := handlers.NewUserHandler(userService, logger)

	// Auth middleware
	auth := middleware.Auth(cfg.JWTSecret)

	// Routes
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestLogger(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		r.Route("/messages", func(r chi.Router) {
			// Sending is anonymous and public; reading requires a token
			r.Post("/{recipientId}", messageHandler.Send)
			r.With(auth).Get("/", messageHandler.Inbox)
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(auth)
			r.Get("/profile", userHandler.Profile)
			r.Get("/", userHandler.List)
		})
	})

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server shutdown failed", zap.Error(err))
	}
	logger.Info("Server stopped")
}

func newLogger(env string) (*zap.Logger, error) {
	zapConfig := zap.NewProductionConfig()
	if env == "dev" {
		zapConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		zapConfig.Development = true
	}
	zapConfig.OutputPaths = []string{"stdout"}
	zapConfig.ErrorOutputPaths = []string{"stderr"}
	return zapConfig.Build()
}
