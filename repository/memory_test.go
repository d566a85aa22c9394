package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meinhoongagan/edumate/models"
)

func TestMemoryStore_TeacherEmailIsUnique(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.CreateTeacher(ctx, &models.Teacher{Name: "Bob", Email: "bob@x.com"}))
	err := store.CreateTeacher(ctx, &models.Teacher{Name: "Other Bob", Email: "bob@x.com"})
	assert.ErrorIs(t, err, ErrDuplicate)

	// students live in their own collection
	require.NoError(t, store.CreateStudent(ctx, &models.Student{Name: "Bob", Email: "bob@x.com"}))
	err = store.CreateStudent(ctx, &models.Student{Name: "Bob", Email: "bob@x.com"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestMemoryStore_FindMissing(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.FindTeacherByEmail(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.FindTeacherByID(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.FindStudentByEmail(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.FindStudentByID(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.UpdateStatus(ctx, 42, models.StatusConfirmed, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_SaveTeacherKeepsIdentity(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	teacher := &models.Teacher{Name: "Bob", Email: "bob@x.com", Subject: "Maths"}
	require.NoError(t, store.CreateTeacher(ctx, teacher))

	teacher.Subject = "Physics"
	require.NoError(t, store.SaveTeacher(ctx, teacher))

	got, err := store.FindTeacherByID(ctx, teacher.ID)
	require.NoError(t, err)
	assert.Equal(t, "Physics", got.Subject)

	all, err := store.ListTeachers(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMemoryStore_AppointmentsArePopulated(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	teacher := &models.Teacher{Name: "Bob", Email: "bob@x.com"}
	student := &models.Student{Name: "Ann", Email: "ann@x.com"}
	require.NoError(t, store.CreateTeacher(ctx, teacher))
	require.NoError(t, store.CreateStudent(ctx, student))

	first := &models.Appointment{StudentID: student.ID, TeacherID: teacher.ID, Date: "2024-05-01", Time: "10:00"}
	second := &models.Appointment{StudentID: student.ID, TeacherID: teacher.ID, Date: "2024-05-01", Time: "10:00"}
	require.NoError(t, store.CreateAppointment(ctx, first))
	require.NoError(t, store.CreateAppointment(ctx, second))
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, models.StatusPending, first.Status)

	byStudent, err := store.ListByStudent(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, byStudent, 2)
	require.NotNil(t, byStudent[0].Teacher)
	assert.Equal(t, "Bob", byStudent[0].Teacher.Name)
	assert.Nil(t, byStudent[0].Student)

	byTeacher, err := store.ListByTeacher(ctx, teacher.ID)
	require.NoError(t, err)
	require.Len(t, byTeacher, 2)
	require.NotNil(t, byTeacher[1].Student)
	assert.Equal(t, "Ann", byTeacher[1].Student.Name)
	assert.Nil(t, byTeacher[1].Teacher)

	none, err := store.ListByStudent(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryStore_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	a := &models.Appointment{StudentID: 1, TeacherID: 2, Date: "d", Time: "t"}
	require.NoError(t, store.CreateAppointment(ctx, a))

	updated, err := store.UpdateStatus(ctx, a.ID, "whatever", nil)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentStatus("whatever"), updated.Status)

	blocked := errors.New("blocked")
	_, err = store.UpdateStatus(ctx, a.ID, models.StatusConfirmed, func(current *models.Appointment) error {
		assert.Equal(t, models.AppointmentStatus("whatever"), current.Status)
		return blocked
	})
	assert.ErrorIs(t, err, blocked)

	list, err := store.ListByStudent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.AppointmentStatus("whatever"), list[0].Status)
}
