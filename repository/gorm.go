package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/meinhoongagan/edumate/models"
)

// GormStore implements both repositories on top of a gorm connection.
type GormStore struct {
	db *gorm.DB
}

var (
	_ AccountRepository     = (*GormStore)(nil)
	_ AppointmentRepository = (*GormStore)(nil)
)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	default:
		return err
	}
}

func (s *GormStore) CreateTeacher(ctx context.Context, t *models.Teacher) error {
	return translate(s.db.WithContext(ctx).Create(t).Error)
}

func (s *GormStore) FindTeacherByEmail(ctx context.Context, email string) (*models.Teacher, error) {
	var t models.Teacher
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&t).Error; err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

func (s *GormStore) FindTeacherByID(ctx context.Context, id uint) (*models.Teacher, error) {
	var t models.Teacher
	if err := s.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

func (s *GormStore) ListTeachers(ctx context.Context) ([]models.Teacher, error) {
	teachers := []models.Teacher{}
	if err := s.db.WithContext(ctx).Order("id").Find(&teachers).Error; err != nil {
		return nil, translate(err)
	}
	return teachers, nil
}

func (s *GormStore) SaveTeacher(ctx context.Context, t *models.Teacher) error {
	return translate(s.db.WithContext(ctx).Save(t).Error)
}

func (s *GormStore) CreateStudent(ctx context.Context, st *models.Student) error {
	return translate(s.db.WithContext(ctx).Create(st).Error)
}

func (s *GormStore) FindStudentByEmail(ctx context.Context, email string) (*models.Student, error) {
	var st models.Student
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&st).Error; err != nil {
		return nil, translate(err)
	}
	return &st, nil
}

func (s *GormStore) FindStudentByID(ctx context.Context, id uint) (*models.Student, error) {
	var st models.Student
	if err := s.db.WithContext(ctx).First(&st, id).Error; err != nil {
		return nil, translate(err)
	}
	return &st, nil
}

func (s *GormStore) CreateAppointment(ctx context.Context, a *models.Appointment) error {
	return translate(s.db.WithContext(ctx).Create(a).Error)
}

func (s *GormStore) ListByStudent(ctx context.Context, studentID uint) ([]models.Appointment, error) {
	appointments := []models.Appointment{}
	err := s.db.WithContext(ctx).Preload("Teacher").
		Where("student_id = ?", studentID).Order("id").
		Find(&appointments).Error
	if err != nil {
		return nil, translate(err)
	}
	return appointments, nil
}

func (s *GormStore) ListByTeacher(ctx context.Context, teacherID uint) ([]models.Appointment, error) {
	appointments := []models.Appointment{}
	err := s.db.WithContext(ctx).Preload("Student").
		Where("teacher_id = ?", teacherID).Order("id").
		Find(&appointments).Error
	if err != nil {
		return nil, translate(err)
	}
	return appointments, nil
}

func (s *GormStore) UpdateStatus(ctx context.Context, id uint, status models.AppointmentStatus, check StatusCheck) (*models.Appointment, error) {
	var appointment models.Appointment
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the row so concurrent checks see a consistent prior status.
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&appointment, id).Error; err != nil {
			return err
		}
		if check != nil {
			if err := check(&appointment); err != nil {
				return err
			}
		}
		if err := tx.Model(&appointment).Update("status", status).Error; err != nil {
			return err
		}
		appointment.Status = status
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}
	return &appointment, nil
}
