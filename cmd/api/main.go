package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"smartresume/analyzer/internal/config"
	"smartresume/analyzer/internal/handlers"
	"smartresume/analyzer/internal/logger"
	"smartresume/analyzer/internal/services"
)

func main() {
	cfg := config.Load()

	zapLogger, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	// Transient upload storage
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		zapLogger.Fatal("failed to create upload directory", zap.Error(err))
	}

	nameExtractor := buildNameExtractor(cfg, zapLogger)

	// Analysis pipeline
	parser := services.NewDocumentParserService()
	extractor := services.NewFieldExtractorService(nameExtractor)
	scorer := services.NewScorerService()
	keywords := services.NewKeywordMatcherService()
	suggester := services.NewSuggestionService()

	analyzer := services.NewAnalyzerService(
		parser,
		extractor,
		scorer,
		keywords,
		suggester,
		zapLogger,
	)
	zapLogger.Info("analysis pipeline initialized",
		zap.String("name_strategy", cfg.Extractor.NameStrategy),
	)

	analyzeHandler := handlers.NewAnalyzeHandler(
		analyzer,
		storageService,
		cfg.Storage.MaxFileSize,
	)

	app := fiber.New(fiber.Config{
		AppName:      "Smart Resume Analyzer API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/analyze", analyzeHandler.HandleAnalyze)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Smart Resume Analyzer API",
			"version": "2.0.0",
			"endpoints": []string{
				"POST /api/v1/analyze",
				"GET /api/v1/health",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		zapLogger.Info("shutting down server")
		if err := app.Shutdown(); err != nil {
			zapLogger.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zapLogger.Info("server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		zapLogger.Fatal("failed to start server", zap.Error(err))
	}
}

// buildNameExtractor picks the configured name extraction strategy,
// falling back to the heuristic when Gemini is requested without an
// API key.
func buildNameExtractor(cfg *config.Config, zapLogger *zap.Logger) services.NameExtractor {
	if cfg.Extractor.NameStrategy != config.NameStrategyGemini {
		return services.NewHeuristicNameExtractor()
	}

	if cfg.Gemini.APIKey == "" {
		zapLogger.Warn("NAME_EXTRACTOR=gemini but GEMINI_API_KEY is empty, using heuristic strategy")
		return services.NewHeuristicNameExtractor()
	}

	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey)
	if err != nil {
		zapLogger.Warn("failed to initialize Gemini, using heuristic strategy", zap.Error(err))
		return services.NewHeuristicNameExtractor()
	}

	return services.NewGeminiNameExtractor(geminiService, zapLogger)
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
