package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"trivia-backend/internal/config"
	"trivia-backend/internal/database"
	"trivia-backend/internal/handlers"
	"trivia-backend/internal/routers"
	"trivia-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// @title           Trivia API
// @version         1.0
// @description     Questions, categories and quiz rounds for the trivia game
// @host            localhost:8080
// @BasePath        /

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	gin.SetMode(cfg.ServerMode)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}
	if cfg.SeedData {
		if _, err := database.SeedDefaults(db); err != nil {
			log.Fatalf("failed to seed database: %v", err)
		}
	}

	categoryService := services.NewCategoryService(db)
	questionService := services.NewQuestionService(db)
	quizService := services.NewQuizService(questionService)

	r := routers.New(routers.Handlers{
		Categories: handlers.NewCategoryHandler(categoryService),
		Questions:  handlers.NewQuestionHandler(questionService, categoryService),
		Quiz:       handlers.NewQuizHandler(quizService),
	}, cfg.CORSOrigins)

	srv := &http.Server{
		Addr:    cfg.ServerAddr(),
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("server starting on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("forced shutdown: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
