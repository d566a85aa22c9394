// Package repository persists accounts and appointments.
package repository

import (
	"context"
	"errors"

	"github.com/meinhoongagan/edumate/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate key")
)

type AccountRepository interface {
	CreateTeacher(ctx context.Context, t *models.Teacher) error
	FindTeacherByEmail(ctx context.Context, email string) (*models.Teacher, error)
	FindTeacherByID(ctx context.Context, id uint) (*models.Teacher, error)
	ListTeachers(ctx context.Context) ([]models.Teacher, error)
	SaveTeacher(ctx context.Context, t *models.Teacher) error

	CreateStudent(ctx context.Context, s *models.Student) error
	FindStudentByEmail(ctx context.Context, email string) (*models.Student, error)
	FindStudentByID(ctx context.Context, id uint) (*models.Student, error)
}

// StatusCheck inspects the current row before a status overwrite. Returning an
// error aborts the update.
type StatusCheck func(current *models.Appointment) error

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, a *models.Appointment) error
	// ListByStudent returns the student's appointments with Teacher populated.
	ListByStudent(ctx context.Context, studentID uint) ([]models.Appointment, error)
	// ListByTeacher returns the teacher's appointments with Student populated.
	ListByTeacher(ctx context.Context, teacherID uint) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, id uint, status models.AppointmentStatus, check StatusCheck) (*models.Appointment, error)
}
