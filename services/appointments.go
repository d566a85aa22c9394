package services

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/meinhoongagan/edumate/models"
	"github.com/meinhoongagan/edumate/repository"
)

type AppointmentInput struct {
	StudentID uint   `json:"studentId" validate:"required"`
	TeacherID uint   `json:"teacherId" validate:"required"`
	Date      string `json:"date" validate:"required"`
	Time      string `json:"time" validate:"required"`
}

type Appointments struct {
	repo     repository.AppointmentRepository
	strict   bool
	validate *validator.Validate
	log      *zap.Logger
}

// NewAppointments builds the appointment service. With strict set, status
// updates must follow Appointment.CheckTransition; otherwise any value is stored.
func NewAppointments(repo repository.AppointmentRepository, strict bool, log *zap.Logger) *Appointments {
	if log == nil {
		log = zap.NewNop()
	}
	return &Appointments{
		repo:     repo,
		strict:   strict,
		validate: newValidator(),
		log:      log,
	}
}

// Create books a slot. Referenced accounts are not checked and overlapping
// bookings are accepted.
func (s *Appointments) Create(ctx context.Context, in AppointmentInput) (*models.Appointment, error) {
	if err := check(s.validate, in); err != nil {
		return nil, err
	}
	appointment := &models.Appointment{
		StudentID: in.StudentID,
		TeacherID: in.TeacherID,
		Date:      in.Date,
		Time:      in.Time,
	}
	if err := s.repo.CreateAppointment(ctx, appointment); err != nil {
		return nil, err
	}
	s.log.Info("appointment created",
		zap.Uint("appointment_id", appointment.ID),
		zap.Uint("student_id", appointment.StudentID),
		zap.Uint("teacher_id", appointment.TeacherID),
	)
	return appointment, nil
}

func (s *Appointments) ListForStudent(ctx context.Context, studentID uint) ([]models.Appointment, error) {
	return s.repo.ListByStudent(ctx, studentID)
}

func (s *Appointments) ListForTeacher(ctx context.Context, teacherID uint) ([]models.Appointment, error) {
	return s.repo.ListByTeacher(ctx, teacherID)
}

func (s *Appointments) UpdateStatus(ctx context.Context, id uint, status string) (*models.Appointment, error) {
	if id == 0 || status == "" {
		return nil, invalid(errors.New("appointment id and status are required"))
	}
	newStatus := models.AppointmentStatus(status)

	var guard repository.StatusCheck
	if s.strict {
		guard = func(current *models.Appointment) error {
			return current.CheckTransition(newStatus)
		}
	}
	appointment, err := s.repo.UpdateStatus(ctx, id, newStatus, guard)
	if err != nil {
		return nil, err
	}
	s.log.Info("appointment status changed",
		zap.Uint("appointment_id", appointment.ID),
		zap.String("status", status),
	)
	return appointment, nil
}
