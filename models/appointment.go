package models

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusRejected  AppointmentStatus = "rejected"
)

// ErrInvalidTransition is returned by CheckTransition when strict status rules reject a change.
var ErrInvalidTransition = errors.New("invalid status transition")

type Appointment struct {
	ID        uint              `json:"_id" gorm:"primaryKey"`
	StudentID uint              `json:"studentId" gorm:"index"`
	Student   *Student          `json:"student,omitempty" gorm:"foreignKey:StudentID"`
	TeacherID uint              `json:"teacherId" gorm:"index"`
	Teacher   *Teacher          `json:"teacher,omitempty" gorm:"foreignKey:TeacherID"`
	Date      string            `json:"date"`
	Time      string            `json:"time"`
	Status    AppointmentStatus `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusPending
	}
	return nil
}

// Known reports whether s is one of the enumerated statuses.
func (s AppointmentStatus) Known() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusRejected:
		return true
	}
	return false
}

// CheckTransition validates a status change under strict rules:
// pending may move to confirmed or rejected, and rewriting the current status is a no-op.
func (a *Appointment) CheckTransition(newStatus AppointmentStatus) error {
	if !newStatus.Known() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, newStatus)
	}
	if a.Status == newStatus {
		return nil
	}
	switch a.Status {
	case StatusPending, "":
		if newStatus != StatusConfirmed && newStatus != StatusRejected {
			return fmt.Errorf("%w: from pending to %s", ErrInvalidTransition, newStatus)
		}
	default:
		return fmt.Errorf("%w: no transitions allowed from %s", ErrInvalidTransition, a.Status)
	}
	return nil
}
