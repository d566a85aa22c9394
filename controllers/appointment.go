package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/meinhoongagan/edumate/models"
	"github.com/meinhoongagan/edumate/repository"
	"github.com/meinhoongagan/edumate/services"
)

type statusInput struct {
	AppointmentID uint   `json:"appointmentId"`
	Status        string `json:"status"`
}

// CreateAppointment books a pending appointment.
func (h *Controller) CreateAppointment(c *fiber.Ctx) error {
	var input services.AppointmentInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Appointment not created", err)
	}

	appointment, err := h.appointments.Create(c.UserContext(), input)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Appointment not created", err)
	}
	return c.Status(fiber.StatusCreated).JSON(appointment)
}

// MyAppointments lists by ?studentId or ?teacherId. studentId wins when both are given.
func (h *Controller) MyAppointments(c *fiber.Ctx) error {
	studentID, teacherID := c.Query("studentId"), c.Query("teacherId")
	if studentID == "" && teacherID == "" {
		return fail(c, fiber.StatusBadRequest, "Student ID or Teacher ID is required", nil)
	}

	var (
		appointments []models.Appointment
		err          error
	)
	if studentID != "" {
		id, perr := strconv.ParseUint(studentID, 10, 0)
		if perr != nil {
			return fail(c, fiber.StatusBadRequest, "Student ID or Teacher ID is required", perr)
		}
		appointments, err = h.appointments.ListForStudent(c.UserContext(), uint(id))
	} else {
		id, perr := strconv.ParseUint(teacherID, 10, 0)
		if perr != nil {
			return fail(c, fiber.StatusBadRequest, "Student ID or Teacher ID is required", perr)
		}
		appointments, err = h.appointments.ListForTeacher(c.UserContext(), uint(id))
	}
	if err != nil {
		h.log.Error("list appointments", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Could not fetch appointments", err)
	}
	return c.JSON(appointments)
}

func (h *Controller) UpdateAppointmentStatus(c *fiber.Ctx) error {
	var input statusInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Appointment ID and status are required", err)
	}

	appointment, err := h.appointments.UpdateStatus(c.UserContext(), input.AppointmentID, input.Status)
	if err != nil {
		var verr *services.ValidationError
		switch {
		case errors.As(err, &verr):
			return fail(c, fiber.StatusBadRequest, "Appointment ID and status are required", nil)
		case errors.Is(err, repository.ErrNotFound):
			return fail(c, fiber.StatusNotFound, "Appointment not found", nil)
		case errors.Is(err, models.ErrInvalidTransition):
			return fail(c, fiber.StatusConflict, "Status change not allowed", err)
		}
		h.log.Error("update appointment status", zap.Uint("appointment_id", input.AppointmentID), zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Could not update appointment status", err)
	}
	return c.JSON(appointment)
}
