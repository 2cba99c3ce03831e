package server

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"alfredoptarigan/ai-interviewer/internal/handlers"
	"alfredoptarigan/ai-interviewer/internal/metrics"
	"alfredoptarigan/ai-interviewer/internal/middleware"
)

// multipartOverhead is the room left in the request body limit for form
// boundaries and headers, so upload size is judged by the resume handler.
const multipartOverhead = 1 << 20

type Options struct {
	CORSOrigins string
	MaxBodySize int64
	AccessLog   bool
	RateLimiter *middleware.RateLimiter
	Metrics     *metrics.Metrics
	Resume      *handlers.ResumeHandler
	Interview   *handlers.InterviewHandler
	Result      *handlers.ResultHandler
}

func New(opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "AI Interviewer API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * time.Minute,
		BodyLimit:    int(opts.MaxBodySize + multipartOverhead),
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	if opts.AccessLog {
		app.Use(logger.New(logger.Config{
			Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
			TimeFormat: "2006-01-02 15:04:05",
		}))
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: opts.CORSOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	if opts.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(opts.Metrics.Registry, promhttp.HandlerOpts{})))
	}

	api := app.Group("/api/ai")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	if opts.RateLimiter != nil {
		api.Use(opts.RateLimiter.Handler())
	}

	api.Post("/resume", opts.Resume.HandleUpload)
	api.Post("/interview/question", opts.Interview.HandleQuestion)
	api.Post("/interview/report", opts.Interview.HandleReport)
	api.Get("/interview/report/:id", opts.Result.HandleGetResult)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "AI Interviewer API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/ai/resume",
				"POST /api/ai/interview/question",
				"POST /api/ai/interview/report",
				"GET /api/ai/interview/report/:id",
			},
		})
	})

	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
