package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4-hotseat/internal/config"
	"github.com/iamasit07/connect4-hotseat/internal/service/cleanup"
	"github.com/iamasit07/connect4-hotseat/internal/service/game"
	transportHttp "github.com/iamasit07/connect4-hotseat/internal/transport/http"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found")
		}
	}

	cfg := config.LoadConfig()
	gin.SetMode(cfg.GinMode)

	sessionManager := game.NewSessionManager(cfg.MaxSessions)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cleanupWorker := cleanup.NewWorker(sessionManager, cfg.SessionCleanupInterval, cfg.SessionTTL, cfg.SessionUnattachedTTL)
	go cleanupWorker.Start(ctx)

	router, err := transportHttp.NewRouter(cfg, sessionManager)
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
