package cli

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"alfredoptarigan/ai-interviewer/internal/config"
	"alfredoptarigan/ai-interviewer/internal/handlers"
	"alfredoptarigan/ai-interviewer/internal/metrics"
	"alfredoptarigan/ai-interviewer/internal/middleware"
	"alfredoptarigan/ai-interviewer/internal/repositories"
	"alfredoptarigan/ai-interviewer/internal/server"
	"alfredoptarigan/ai-interviewer/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the HTTP API.

Available endpoints:
- POST /api/ai/resume: upload a resume (multipart field "resume")
- POST /api/ai/interview/question: get a question for a role, domain and round
- POST /api/ai/interview/report: evaluate answers and store the report
- GET  /api/ai/interview/report/:id: read a stored report
- GET  /api/ai/health
- GET  /metrics`,
	RunE: runServe,
}

func init() {
	addServeFlags(serveCmd)
}

func addServeFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("port", "p", "", "Port to listen on (default from PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	if port, _ := cmd.Flags().GetString("port"); port != "" {
		cfg.Server.Port = port
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	redisClient, err := config.InitRedis(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	defer redisClient.Close()

	interviewRepo := repositories.NewInterviewRepository(db)
	log.Println("✅ Repositories initialized successfully")

	model, err := services.NewGeminiClient(cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.Temperature)
	if err != nil {
		return fmt.Errorf("failed to initialize Gemini AI: %w", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	m := metrics.New()
	questionCache := services.NewRedisQuestionCache(redisClient, cfg.Redis.QuestionTTL)
	interviewService := services.NewInterviewService(model, questionCache, interviewRepo, m)
	resumeService := services.NewResumeService()
	log.Println("✅ Services initialized successfully")

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled() {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	}

	app := server.New(server.Options{
		CORSOrigins: cfg.Server.CORSOrigins,
		MaxBodySize: cfg.Upload.MaxFileSize,
		AccessLog:   true,
		RateLimiter: limiter,
		Metrics:     m,
		Resume:      handlers.NewResumeHandler(resumeService, cfg.Upload.MaxFileSize),
		Interview:   handlers.NewInterviewHandler(interviewService),
		Result:      handlers.NewResultHandler(interviewRepo),
	})

	go func() {
		<-cmd.Context().Done()
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	return app.Listen(addr)
}
