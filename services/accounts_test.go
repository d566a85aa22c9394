package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/meinhoongagan/edumate/models"
	"github.com/meinhoongagan/edumate/repository"
)

type fakeImages struct {
	calls int
	err   error
}

func (f *fakeImages) Store(_ context.Context, image string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	if image == "" {
		return "", nil
	}
	return "https://img.example.com/" + image, nil
}

func newAccounts(t *testing.T) (*Accounts, *repository.MemoryStore, *fakeImages) {
	t.Helper()
	store := repository.NewMemoryStore()
	images := &fakeImages{}
	accounts, err := NewAccounts(store, images, bcrypt.MinCost, nil)
	require.NoError(t, err)
	return accounts, store, images
}

func TestRegisterStudent_HashesPassword(t *testing.T) {
	accounts, store, _ := newAccounts(t)
	ctx := context.Background()

	student, err := accounts.RegisterStudent(ctx, StudentInput{Name: "Ann", Email: "ann@x.com", Password: "pw"})
	require.NoError(t, err)
	assert.NotZero(t, student.ID)
	assert.NotEqual(t, "pw", student.Password)

	stored, err := store.FindStudentByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("pw")))
}

func TestRegister_SaltsEachRecord(t *testing.T) {
	accounts, _, _ := newAccounts(t)
	ctx := context.Background()

	a, err := accounts.RegisterStudent(ctx, StudentInput{Name: "Ann", Email: "ann@x.com", Password: "same"})
	require.NoError(t, err)
	b, err := accounts.RegisterStudent(ctx, StudentInput{Name: "Bea", Email: "bea@x.com", Password: "same"})
	require.NoError(t, err)
	assert.NotEqual(t, a.Password, b.Password)
}

func TestRegister_ValidationErrors(t *testing.T) {
	accounts, _, _ := newAccounts(t)
	ctx := context.Background()

	_, err := accounts.RegisterStudent(ctx, StudentInput{Email: "ann@x.com"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, err.Error(), "name is required")
	assert.Contains(t, err.Error(), "password is required")

	_, err = accounts.RegisterTeacher(ctx, TeacherInput{Name: "Bob", Password: "pw"})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, err.Error(), "email is required")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	accounts, _, _ := newAccounts(t)
	ctx := context.Background()

	_, err := accounts.RegisterTeacher(ctx, TeacherInput{Name: "Bob", Email: "bob@x.com", Password: "pw"})
	require.NoError(t, err)
	_, err = accounts.RegisterTeacher(ctx, TeacherInput{Name: "Bob", Email: "bob@x.com", Password: "pw"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestRegisterTeacher_StoresImage(t *testing.T) {
	accounts, _, images := newAccounts(t)

	teacher, err := accounts.RegisterTeacher(context.Background(), TeacherInput{
		Name: "Bob", Email: "bob@x.com", Password: "pw", Subject: "Maths", Experience: 4, Image: "bob.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://img.example.com/bob.png", teacher.Image)
	assert.Equal(t, models.Experience(4), teacher.Experience)
	assert.Equal(t, 1, images.calls)
}

func TestRegisterTeacher_ImageFailureAbortsCreation(t *testing.T) {
	accounts, store, images := newAccounts(t)
	images.err = errors.New("cloudinary down")

	_, err := accounts.RegisterTeacher(context.Background(), TeacherInput{Name: "Bob", Email: "bob@x.com", Password: "pw", Image: "x"})
	assert.ErrorContains(t, err, "cloudinary down")

	_, err = store.FindTeacherByEmail(context.Background(), "bob@x.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestLogin_UniformFailure(t *testing.T) {
	accounts, _, _ := newAccounts(t)
	ctx := context.Background()

	_, err := accounts.RegisterStudent(ctx, StudentInput{Name: "Ann", Email: "ann@x.com", Password: "pw"})
	require.NoError(t, err)

	_, unknown := accounts.LoginStudent(ctx, Credentials{Email: "nobody@x.com", Password: "pw"})
	_, wrong := accounts.LoginStudent(ctx, Credentials{Email: "ann@x.com", Password: "nope"})
	assert.ErrorIs(t, unknown, ErrInvalidCredentials)
	assert.ErrorIs(t, wrong, ErrInvalidCredentials)
	assert.Equal(t, unknown.Error(), wrong.Error())

	student, err := accounts.LoginStudent(ctx, Credentials{Email: "ann@x.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "Ann", student.Name)
}

func TestLoginTeacher(t *testing.T) {
	accounts, _, _ := newAccounts(t)
	ctx := context.Background()

	_, err := accounts.RegisterTeacher(ctx, TeacherInput{Name: "Bob", Email: "bob@x.com", Password: "pw"})
	require.NoError(t, err)

	teacher, err := accounts.LoginTeacher(ctx, Credentials{Email: "bob@x.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "Bob", teacher.Name)

	// a student account with the same email is a different identity
	_, err = accounts.LoginStudent(ctx, Credentials{Email: "bob@x.com", Password: "pw"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateTeacherProfile(t *testing.T) {
	accounts, store, _ := newAccounts(t)
	ctx := context.Background()

	_, err := accounts.RegisterTeacher(ctx, TeacherInput{
		Name: "Bob", Email: "bob@x.com", Password: "pw", Subject: "Maths", Contact: "555", Location: "Noida",
	})
	require.NoError(t, err)

	_, err = accounts.UpdateTeacherProfile(ctx, ProfileUpdate{
		Email: "bob@x.com", Password: "wrong",
		TeacherProfile: models.TeacherProfile{Name: "Robert"},
	})
	assert.ErrorIs(t, err, ErrIncorrectPassword)

	_, err = accounts.UpdateTeacherProfile(ctx, ProfileUpdate{Email: "ghost@x.com", Password: "pw"})
	assert.ErrorIs(t, err, ErrIncorrectPassword)

	updated, err := accounts.UpdateTeacherProfile(ctx, ProfileUpdate{
		Email: "bob@x.com", Password: "pw",
		TeacherProfile: models.TeacherProfile{Name: "Robert", Subject: "Physics", Experience: 7},
	})
	require.NoError(t, err)
	assert.Equal(t, "Robert", updated.Name)

	stored, err := store.FindTeacherByEmail(ctx, "bob@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Physics", stored.Subject)
	assert.Equal(t, models.Experience(7), stored.Experience)
	// every mutable field is overwritten, including ones left empty
	assert.Empty(t, stored.Contact)
	assert.Empty(t, stored.Location)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("pw")))
}
