package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/cvparse/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(
	app *fiber.App,
	auth *handlers.AuthHandler,
	health *handlers.HealthHandler,
	parse *handlers.ParseHandler,
	resumes *handlers.ResumesHandler,
	authMW fiber.Handler,
) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", auth.Register)
	a.Post("/login", auth.Login)

	// Stateless parsing: text or file in, structured record out
	rg := v1.Group("/resume", authMW)
	rg.Post("/parse", parse.Parse)

	// Stored resumes and their structured profiles
	rs := v1.Group("/resumes", authMW)
	rs.Post("/", resumes.Upload)
	rs.Get("/", resumes.List)
	rs.Get("/:id", resumes.Get)
	rs.Get("/:id/profile", resumes.Profile)
	rs.Get("/:id/export.json", resumes.ExportJSON)
	rs.Get("/:id/export.csv", resumes.ExportCSV)
	rs.Get("/:id/file", resumes.Download)
	rs.Delete("/:id", resumes.Delete)
}
