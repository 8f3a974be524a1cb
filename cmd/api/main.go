package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/robfig/cron/v3"

	"github.com/insightx-ai/insightx-be/internal/core/export"
	"github.com/insightx-ai/insightx-be/internal/core/llm"
	"github.com/insightx-ai/insightx-be/internal/core/profiler"
	"github.com/insightx-ai/insightx-be/internal/modules/insights/handlers"
	"github.com/insightx-ai/insightx-be/internal/modules/insights/repositories"
	"github.com/insightx-ai/insightx-be/internal/modules/insights/services"
	"github.com/insightx-ai/insightx-be/internal/shared/config"
	"github.com/insightx-ai/insightx-be/internal/shared/database"
	"github.com/insightx-ai/insightx-be/internal/shared/utils"

	_ "github.com/insightx-ai/insightx-be/cmd/api/docs"
)

// @title InsightX API
// @version 1.0
// @description Conversational analytics API: dataset profiling, dashboards, and AI chat grounded on live data
// @contact.name API Support
// @contact.email support@insightx.ai
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	// Load config
	cfg := config.LoadConfig()
	utils.InitLogger()
	log.Printf("🚀 Starting insightx-api on port %s", cfg.Port)

	// Database is optional: without DATABASE_URL the API runs fully
	// in-memory and skips upload/transcript audit logging.
	var uploadRepo repositories.UploadRepo
	var transcriptRepo repositories.TranscriptRepo
	if cfg.DatabaseURL != "" {
		db := database.NewDB(cfg.DatabaseURL)
		defer db.Close()
		uploadRepo = repositories.NewUploadRepo(db.GORM)
		transcriptRepo = repositories.NewTranscriptRepo(db.GORM)
	} else {
		log.Printf("⚠️ DATABASE_URL not set, audit logging disabled")
	}

	// Init LLM service (multi-provider support)
	llmService := llm.NewService()

	// Init dataset + chat services
	datasetService := services.NewDatasetService(profiler.Options{}, uploadRepo)
	chatService := services.NewChatService(llmService, datasetService, transcriptRepo)
	exportService := export.NewService()

	// Preload a dataset so the dashboard works before the first upload
	if cfg.DatasetPath != "" {
		file, err := os.Open(cfg.DatasetPath)
		if err != nil {
			log.Fatalf("❌ Failed to open dataset %s: %v", cfg.DatasetPath, err)
		}
		snap, err := datasetService.Load(cfg.DatasetPath, file)
		file.Close()
		if err != nil {
			log.Fatalf("❌ Failed to load dataset %s: %v", cfg.DatasetPath, err)
		}
		log.Printf("📊 Dataset loaded: %s (%d rows, %d columns)", snap.Filename, snap.Summary.RowCount, snap.Summary.ColumnCount)
	} else {
		log.Printf("⚠️ DATASET_PATH not set, waiting for upload")
	}

	log.Printf("🤖 Using LLM provider: %s", llmService.GetProviderName())

	// Session janitor: drop chats idle past the TTL
	janitor := cron.New()
	if _, err := janitor.AddFunc("@every 30m", func() {
		if pruned := chatService.PruneIdle(cfg.SessionTTL); pruned > 0 {
			utils.LogInfo("Pruned idle sessions", map[string]interface{}{"count": pruned})
		}
	}); err != nil {
		log.Fatalf("❌ Failed to schedule session janitor: %v", err)
	}
	janitor.Start()
	defer janitor.Stop()

	// Init handlers
	chatHandler := handlers.NewChatHandler(chatService)
	sessionHandler := handlers.NewSessionHandler(chatService)
	uploadHandler := handlers.NewUploadHandler(datasetService)
	dashboardHandler := handlers.NewDashboardHandler(datasetService)
	exportHandler := handlers.NewExportHandler(datasetService, exportService)
	healthHandler := handlers.NewHealthHandler(llmService, datasetService, chatService)

	// Init Fiber app
	app := fiber.New(fiber.Config{
		AppName: "InsightX API",
	})

	// Middleware
	app.Use(cors.New())

	// Swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Service card
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service": "InsightX API",
			"version": "1.0",
			"docs":    "/swagger/index.html",
		})
	})

	// Health check
	app.Get("/api/health", healthHandler.GetHealth)

	// Chat routes
	app.Post("/api/chat", chatHandler.PostChat)
	app.Get("/api/overview", chatHandler.GetOverview)

	// Session routes
	app.Get("/api/session/:id", sessionHandler.GetSession)
	app.Delete("/api/session/:id", sessionHandler.ClearSession)

	// Dataset routes
	app.Post("/api/upload", uploadHandler.UploadDataset)
	app.Get("/api/profile", uploadHandler.GetProfile)
	app.Get("/api/charts", dashboardHandler.GetCharts)
	app.Get("/api/export", exportHandler.ExportProfile)

	// Audit routes (need the database)
	if uploadRepo != nil && transcriptRepo != nil {
		auditHandler := handlers.NewAuditHandler(uploadRepo, transcriptRepo)
		app.Get("/api/uploads", auditHandler.GetRecentUploads)
		app.Get("/api/transcripts/:id", auditHandler.GetSessionTranscript)
	}

	// Start server
	log.Printf("✅ insightx-api running at :%s", cfg.Port)
	log.Printf("📄 Swagger UI: http://localhost:%s/swagger/", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
