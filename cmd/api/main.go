package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resumeai/resume-assistant/internal/config"
	"resumeai/resume-assistant/internal/handlers"
	"resumeai/resume-assistant/internal/logger"
	"resumeai/resume-assistant/internal/repositories"
	"resumeai/resume-assistant/internal/server"
	"resumeai/resume-assistant/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger.Init(logger.Config{
		Level:  cfg.Logger.Level,
		Format: cfg.Logger.Format,
	})
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("❌ Invalid configuration")
	}
	logger.Info().Str("env", cfg.Server.Env).Msg("✅ Config loaded successfully")

	ctx := context.Background()

	// Initialize session storage
	sessionRepo, err := newSessionRepository(cfg.Session)
	if err != nil {
		logger.Fatal().Err(err).Msg("❌ Failed to initialize session storage")
	}
	defer sessionRepo.Close()

	pingCtx, cancelPing := context.WithTimeout(ctx, 5*time.Second)
	err = sessionRepo.Ping(pingCtx)
	cancelPing()
	if err != nil {
		logger.Fatal().Err(err).Msg("❌ Session storage unreachable")
	}
	logger.Info().Str("backend", cfg.Session.Backend).Msg("✅ Session storage initialized")

	// Initialize completion client
	client, err := services.NewCompletionClient(ctx, cfg.LLM)
	if err != nil {
		logger.Fatal().Err(err).Msg("❌ Failed to initialize completion client")
	}
	logger.Info().Str("provider", cfg.LLM.Provider).Msg("✅ Completion client initialized")

	// Initialize services
	registry, err := services.DefaultPromptRegistry()
	if err != nil {
		logger.Fatal().Err(err).Msg("❌ Failed to load prompts")
	}
	promptBuilder := services.NewPromptBuilder(registry)
	pdfParser := services.NewPDFParserService(cfg.Upload.MaxPages)
	sessionService := services.NewSessionService(sessionRepo, pdfParser)

	analyzerService, err := services.NewAnalyzerService(client, pdfParser, registry)
	if err != nil {
		logger.Fatal().Err(err).Msg("❌ Failed to initialize analyzer")
	}
	chatService := services.NewChatService(sessionRepo, sessionService, client, promptBuilder)
	jobMatchService := services.NewJobMatchService(client, promptBuilder)
	rewriteService := services.NewRewriteService(client, promptBuilder)
	logger.Info().Msg("✅ Services initialized successfully")

	// Initialize Handlers
	hideInternal := cfg.IsProduction()
	app := server.New(cfg, server.Handlers{
		Analyze:  handlers.NewAnalyzeHandler(sessionService, analyzerService, cfg.Upload.MaxFileSize, hideInternal),
		Chatbot:  handlers.NewChatbotHandler(sessionService, chatService, cfg.Upload.MaxFileSize, hideInternal),
		JobMatch: handlers.NewJobMatchHandler(sessionService, jobMatchService, hideInternal),
		Rewrite:  handlers.NewRewriteHandler(sessionService, rewriteService, hideInternal),
	})
	logger.Info().Msg("✅ Handlers initialized")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info().Msg("🛑 Shutting down server...")
		if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
			logger.Error().Err(err).Msg("❌ Server forced to shutdown")
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info().Str("addr", addr).Strs("allowed_origins", cfg.Server.AllowedOrigins).Msg("🚀 Server starting")

	if err := app.Listen(addr); err != nil {
		logger.Fatal().Err(err).Msg("❌ Failed to start server")
	}
}

func newSessionRepository(cfg config.SessionConfig) (repositories.SessionRepository, error) {
	if cfg.Backend == config.SessionBackendRedis {
		return repositories.NewRedisSessionRepository(cfg.RedisURL, cfg.TTL)
	}
	return repositories.NewMemorySessionRepository(), nil
}
