package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/netcoach-ai/netcoach/internal/api"
	"github.com/netcoach-ai/netcoach/internal/config"
	"github.com/netcoach-ai/netcoach/internal/llm"
	"github.com/netcoach-ai/netcoach/internal/repository"
	"github.com/netcoach-ai/netcoach/internal/service"
	"github.com/netcoach-ai/netcoach/internal/tools"
)

var (
	configPath = flag.String("config", "", "Path to config file")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	db, err := repository.NewDB(cfg.Database.Path)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	sessionRepo := repository.NewSessionRepository(db)

	// The diagnostic tool set is fixed at startup
	registry := tools.DefaultRegistry(
		cfg.Probe.DNSTimeout,
		cfg.Probe.TCPTimeout,
		cfg.Probe.HTTPTimeout,
	)

	llmClient := llm.New(cfg, registry, logger)

	chatService := service.NewChatService(sessionRepo, llmClient, llmClient, logger)
	sessionService := service.NewSessionService(sessionRepo)

	router := api.SetupRouter(chatService, sessionService, logger, api.RouterConfig{
		AllowOrigins: cfg.Server.AllowOrigins,
	})

	srv := &http.Server{
		Addr:         cfg.Address(),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("Starting NetCoach server",
			zap.String("address", cfg.Address()),
			zap.String("database", cfg.Database.Path),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
