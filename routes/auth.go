package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/edumate/controllers"
)

// SetupVerificationRoutes configures the email verification code routes
func SetupVerificationRoutes(api fiber.Router, h *controllers.Controller) {
	api.Post("/send-verification-code", h.SendVerificationCode)
	api.Post("/verify-code", h.VerifyCode)
}

// SetupAuthRoutes configures registration, login and profile routes.
// verified guards the register endpoints.
func SetupAuthRoutes(api fiber.Router, h *controllers.Controller, verified fiber.Handler) {
	api.Post("/teacher-register", verified, h.RegisterTeacher)
	api.Post("/student-register", verified, h.RegisterStudent)

	api.Post("/teacher-login", h.LoginTeacher)
	api.Post("/student-login", h.LoginStudent)

	api.Post("/profile", h.UpdateProfile)
}
