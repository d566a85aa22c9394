package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/edumate/controllers"
)

// Setup mounts the root status route and every /api route on app.
func Setup(app *fiber.App, h *controllers.Controller, verified fiber.Handler) {
	app.Get("/", h.Status)

	api := app.Group("/api")
	SetupVerificationRoutes(api, h)
	SetupAuthRoutes(api, h, verified)
	SetupAppointmentRoutes(api, h)
	SetupTeacherRoutes(api, h)
}
