// Package server assembles the Fiber application: middleware, CORS policy,
// routes and the fallback error handler.
package server

import (
	"slices"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"resumeai/resume-assistant/internal/config"
	"resumeai/resume-assistant/internal/handlers"
	"resumeai/resume-assistant/internal/logger"
)

const (
	appName    = "Resume Assistant API"
	appVersion = "1.0.0"

	// Multipart framing overhead allowed on top of the file size limit, so an
	// oversized file still reaches the handler and gets a 400.
	bodyLimitSlack = 1 << 20
)

type Handlers struct {
	Analyze  *handlers.AnalyzeHandler
	Chatbot  *handlers.ChatbotHandler
	JobMatch *handlers.JobMatchHandler
	Rewrite  *handlers.RewriteHandler
}

var endpoints = []string{
	"POST /analyze",
	"POST /chatbot/load",
	"POST /chatbot/respond",
	"POST /jobmatch",
	"POST /rewrite",
	"GET /health",
}

func New(cfg *config.Config, h Handlers) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      appName,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute,
		BodyLimit:    int(cfg.Upload.MaxFileSize) + bodyLimitSlack,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(cors.New(corsConfig(cfg.Server.AllowedOrigins)))

	app.Get("/health", handleHealth)

	app.Post("/analyze", h.Analyze.HandleAnalyze)
	app.Post("/chatbot/load", h.Chatbot.HandleLoad)
	app.Post("/chatbot/respond", h.Chatbot.HandleRespond)
	app.Post("/jobmatch", h.JobMatch.HandleJobMatch)
	app.Post("/rewrite", h.Rewrite.HandleRewrite)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message":   appName,
			"version":   appVersion,
			"endpoints": endpoints,
		})
	})

	return app
}

// corsConfig allows only the listed origins. Credentials are allowed unless
// the list contains the "*" wildcard, which Fiber rejects in that combination.
func corsConfig(origins []string) cors.Config {
	return cors.Config{
		AllowOrigins:     strings.Join(origins, ","),
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: !slices.Contains(origins, "*"),
	}
}

func handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if code >= fiber.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
