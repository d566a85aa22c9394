package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/meinhoongagan/edumate/repository"
)

func (h *Controller) ListTeachers(c *fiber.Ctx) error {
	teachers, err := h.accounts.ListTeachers(c.UserContext())
	if err != nil {
		h.log.Error("list teachers", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Error fetching teachers", err)
	}
	return c.JSON(teachers)
}

// TeacherProfile returns one teacher. Ids that cannot exist are reported as not found.
func (h *Controller) TeacherProfile(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 0)
	if err != nil || id == 0 {
		return fail(c, fiber.StatusNotFound, "Teacher not found", nil)
	}

	teacher, err := h.accounts.GetTeacher(c.UserContext(), uint(id))
	if errors.Is(err, repository.ErrNotFound) {
		return fail(c, fiber.StatusNotFound, "Teacher not found", nil)
	}
	if err != nil {
		h.log.Error("teacher profile", zap.Uint64("teacher_id", id), zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Error fetching teacher profile", err)
	}
	return c.JSON(teacher)
}
