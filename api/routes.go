package api

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"os-scheduling-simulator/config"
)

// NewApp wires the scheduler routes under /api/v1.
func NewApp(cfg *config.SchedulerConfig) (*fiber.App, error) {
	handler, err := NewSchedulerHandlerImpl(cfg)
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.SendString("OK")
	})

	api := app.Group("/api", RateLimit(cfg.RateLimit, cfg.RateBurst))
	v1 := api.Group("/v1")
	Register(v1, handler)

	return app, nil
}

func Register(router fiber.Router, handler SchedulerHandler) {
	router.Get("/algorithms", handler.Algorithms)
	router.Post("/schedule", handler.Schedule)
	router.Post("/fcfs", handler.FirstComeFirstServe)
	router.Post("/sjf", handler.ShortestJobFirst)
	router.Post("/rr", handler.RoundRobin)
	router.Post("/all", handler.AllAlgorithms)
	router.Post("/report", handler.Report)
}

// RateLimit rejects requests beyond limit per second. A non-positive limit
// disables it.
func RateLimit(limit float64, burst int) fiber.Handler {
	if limit <= 0 {
		return func(ctx *fiber.Ctx) error {
			return ctx.Next()
		}
	}

	limiter := rate.NewLimiter(rate.Limit(limit), burst)
	return func(ctx *fiber.Ctx) error {
		if !limiter.Allow() {
			return ctx.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded"})
		}
		return ctx.Next()
	}
}
