package handler

import (
	"github.com/gofiber/fiber/v2"

	"appraisalapi/internal/service"
)

// Dependencies are the services and probes the routes are built from.
type Dependencies struct {
	Profiles   service.ProfileService
	Appraisals service.AppraisalService
	Checks     []Check
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, deps Dependencies) {
	app.Get("/health", HealthCheck(deps.Checks...))
	app.Get("/healthz", LivenessProbe())

	app.Post("/saveProfile", SaveProfile(deps.Profiles))
	app.Post("/submitAppraisal", SubmitAppraisal(deps.Appraisals))
	app.Get("/getAppraisals", GetAppraisals(deps.Appraisals))
}
