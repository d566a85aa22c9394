package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/meinhoongagan/edumate/models"
)

// MemoryStore keeps everything in process memory. It backs DB_DRIVER=memory and
// the handler tests, and mirrors the unique-email and not-found behaviour of GormStore.
type MemoryStore struct {
	mu           sync.RWMutex
	nextID       uint
	teachers     map[uint]models.Teacher
	students     map[uint]models.Student
	appointments map[uint]models.Appointment
	now          func() time.Time
}

var (
	_ AccountRepository     = (*MemoryStore)(nil)
	_ AppointmentRepository = (*MemoryStore)(nil)
)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		teachers:     make(map[uint]models.Teacher),
		students:     make(map[uint]models.Student),
		appointments: make(map[uint]models.Appointment),
		now:          time.Now,
	}
}

func (m *MemoryStore) id() uint {
	m.nextID++
	return m.nextID
}

func (m *MemoryStore) CreateTeacher(_ context.Context, t *models.Teacher) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.teachers {
		if existing.Email == t.Email {
			return fmt.Errorf("%w: teachers.email %q", ErrDuplicate, t.Email)
		}
	}
	t.ID = m.id()
	t.CreatedAt = m.now()
	t.UpdatedAt = t.CreatedAt
	m.teachers[t.ID] = *t
	return nil
}

func (m *MemoryStore) FindTeacherByEmail(_ context.Context, email string) (*models.Teacher, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, t := range m.teachers {
		if t.Email == email {
			return &t, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) FindTeacherByID(_ context.Context, id uint) (*models.Teacher, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.teachers[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &t, nil
}

func (m *MemoryStore) ListTeachers(_ context.Context) ([]models.Teacher, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	teachers := make([]models.Teacher, 0, len(m.teachers))
	for _, t := range m.teachers {
		teachers = append(teachers, t)
	}
	sort.Slice(teachers, func(i, j int) bool { return teachers[i].ID < teachers[j].ID })
	return teachers, nil
}

func (m *MemoryStore) SaveTeacher(_ context.Context, t *models.Teacher) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, existing := range m.teachers {
		if id != t.ID && existing.Email == t.Email {
			return fmt.Errorf("%w: teachers.email %q", ErrDuplicate, t.Email)
		}
	}
	if t.ID == 0 {
		t.ID = m.id()
		t.CreatedAt = m.now()
	}
	t.UpdatedAt = m.now()
	m.teachers[t.ID] = *t
	return nil
}

func (m *MemoryStore) CreateStudent(_ context.Context, s *models.Student) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.students {
		if existing.Email == s.Email {
			return fmt.Errorf("%w: students.email %q", ErrDuplicate, s.Email)
		}
	}
	s.ID = m.id()
	s.CreatedAt = m.now()
	s.UpdatedAt = s.CreatedAt
	m.students[s.ID] = *s
	return nil
}

func (m *MemoryStore) FindStudentByEmail(_ context.Context, email string) (*models.Student, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.students {
		if s.Email == email {
			return &s, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) FindStudentByID(_ context.Context, id uint) (*models.Student, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.students[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (m *MemoryStore) CreateAppointment(_ context.Context, a *models.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a.Status == "" {
		a.Status = models.StatusPending
	}
	a.ID = m.id()
	a.CreatedAt = m.now()
	a.UpdatedAt = a.CreatedAt
	stored := *a
	stored.Student, stored.Teacher = nil, nil
	m.appointments[a.ID] = stored
	return nil
}

func (m *MemoryStore) ListByStudent(_ context.Context, studentID uint) ([]models.Appointment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.list(func(a models.Appointment) (bool, models.Appointment) {
		if a.StudentID != studentID {
			return false, a
		}
		if t, ok := m.teachers[a.TeacherID]; ok {
			a.Teacher = &t
		}
		return true, a
	}), nil
}

func (m *MemoryStore) ListByTeacher(_ context.Context, teacherID uint) ([]models.Appointment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.list(func(a models.Appointment) (bool, models.Appointment) {
		if a.TeacherID != teacherID {
			return false, a
		}
		if s, ok := m.students[a.StudentID]; ok {
			a.Student = &s
		}
		return true, a
	}), nil
}

func (m *MemoryStore) list(pick func(models.Appointment) (bool, models.Appointment)) []models.Appointment {
	out := []models.Appointment{}
	for _, a := range m.appointments {
		if ok, populated := pick(a); ok {
			out = append(out, populated)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *MemoryStore) UpdateStatus(_ context.Context, id uint, status models.AppointmentStatus, check StatusCheck) (*models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.appointments[id]
	if !ok {
		return nil, ErrNotFound
	}
	if check != nil {
		current := a
		if err := check(&current); err != nil {
			return nil, err
		}
	}
	a.Status = status
	a.UpdatedAt = m.now()
	m.appointments[id] = a
	return &a, nil
}
