package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/edumate/controllers"
)

// SetupAppointmentRoutes configures all appointment related routes
func SetupAppointmentRoutes(api fiber.Router, h *controllers.Controller) {
	api.Post("/appointments", h.CreateAppointment)
	api.Get("/my-appointments", h.MyAppointments)
	api.Put("/update-appointment-status", h.UpdateAppointmentStatus)
}
