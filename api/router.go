package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

// NewApp wires the scheduler routes and the metrics endpoint.
func NewApp(handler SchedulerHandler, metrics *Metrics) *fiber.App {
	app := fiber.New()
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Get("/policies", handler.Policies)
		v1.Post("/all", handler.AllAlgorithms)
		v1.Post("/:policy", handler.Schedule)
	}

	return app
}
