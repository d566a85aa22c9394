package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/meinhoongagan/edumate/services"
)

// RegisterTeacher creates a teacher account from the profile in the body.
func (h *Controller) RegisterTeacher(c *fiber.Ctx) error {
	var input services.TeacherInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "User not created", err)
	}

	teacher, err := h.accounts.RegisterTeacher(c.UserContext(), input)
	if err != nil {
		h.log.Warn("teacher registration failed", zap.String("email", input.Email), zap.Error(err))
		return fail(c, fiber.StatusBadRequest, "User not created", err)
	}
	return c.Status(fiber.StatusCreated).JSON(teacher)
}

// RegisterStudent creates a student account from name, email and password.
func (h *Controller) RegisterStudent(c *fiber.Ctx) error {
	var input services.StudentInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "User not created", err)
	}

	student, err := h.accounts.RegisterStudent(c.UserContext(), input)
	if err != nil {
		h.log.Warn("student registration failed", zap.String("email", input.Email), zap.Error(err))
		return fail(c, fiber.StatusBadRequest, "User not created", err)
	}
	return c.Status(fiber.StatusCreated).JSON(student)
}

// LoginTeacher checks teacher credentials. A mismatch is reported with status
// 200 and a message, the way existing clients expect it.
func (h *Controller) LoginTeacher(c *fiber.Ctx) error {
	var input services.Credentials
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Login failed", err)
	}

	teacher, err := h.accounts.LoginTeacher(c.UserContext(), input)
	if err != nil {
		return h.loginFailed(c, err)
	}
	return c.JSON(userResponse{Message: "Login successful", User: teacher.SessionUser()})
}

func (h *Controller) LoginStudent(c *fiber.Ctx) error {
	var input services.Credentials
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Login failed", err)
	}

	student, err := h.accounts.LoginStudent(c.UserContext(), input)
	if err != nil {
		return h.loginFailed(c, err)
	}
	return c.JSON(userResponse{Message: "Login successful", User: student.SessionUser()})
}

func (h *Controller) loginFailed(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrInvalidCredentials) {
		return c.JSON(messageResponse{Message: "Wrong email or password"})
	}
	h.log.Error("login", zap.Error(err))
	return fail(c, fiber.StatusInternalServerError, "Login failed", err)
}
