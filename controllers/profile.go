package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/meinhoongagan/edumate/services"
)

// UpdateProfile re-authenticates a teacher and replaces the profile fields.
func (h *Controller) UpdateProfile(c *fiber.Ctx) error {
	var input services.ProfileUpdate
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Update failed", err)
	}

	teacher, err := h.accounts.UpdateTeacherProfile(c.UserContext(), input)
	if errors.Is(err, services.ErrIncorrectPassword) {
		return c.JSON(messageResponse{Message: "Incorrect password"})
	}
	if err != nil {
		h.log.Error("profile update", zap.String("email", input.Email), zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Update failed", err)
	}
	return c.JSON(userResponse{Message: "Update successful", User: teacher.SessionUser()})
}
