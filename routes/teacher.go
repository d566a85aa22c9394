package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/edumate/controllers"
)

// SetupTeacherRoutes configures the public teacher directory
func SetupTeacherRoutes(api fiber.Router, h *controllers.Controller) {
	api.Get("/teachers", h.ListTeachers)
	api.Get("/teacher-profile/:id", h.TeacherProfile)
}
