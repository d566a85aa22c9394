package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/meinhoongagan/edumate/media"
	"github.com/meinhoongagan/edumate/models"
	"github.com/meinhoongagan/edumate/repository"
)

type TeacherInput struct {
	Name        string            `json:"name" validate:"required"`
	Email       string            `json:"email" validate:"required"`
	Password    string            `json:"password" validate:"required"`
	Subject     string            `json:"subject"`
	Experience  models.Experience `json:"experience"`
	Location    string            `json:"location"`
	Contact     string            `json:"contact"`
	Description string            `json:"description"`
	Image       string            `json:"image"`
}

type StudentInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileUpdate re-authenticates with Email and Password and then replaces
// every profile field.
type ProfileUpdate struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	models.TeacherProfile
}

type Accounts struct {
	repo      repository.AccountRepository
	images    media.ImageStore
	cost      int
	dummyHash []byte
	validate  *validator.Validate
	log       *zap.Logger
}

func NewAccounts(repo repository.AccountRepository, images media.ImageStore, cost int, log *zap.Logger) (*Accounts, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if images == nil {
		images = media.Passthrough{}
	}
	// Compared against when the email is unknown so both login failures take the same time.
	dummy, err := bcrypt.GenerateFromPassword([]byte("edumate-no-such-account"), cost)
	if err != nil {
		return nil, fmt.Errorf("prepare dummy hash: %w", err)
	}
	return &Accounts{
		repo:      repo,
		images:    images,
		cost:      cost,
		dummyHash: dummy,
		validate:  newValidator(),
		log:       log,
	}, nil
}

func (a *Accounts) hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), a.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

func passwordMatches(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func created(err error) error {
	if errors.Is(err, repository.ErrDuplicate) {
		return invalid(fmt.Errorf("email already registered: %w", err))
	}
	return err
}

func (a *Accounts) RegisterTeacher(ctx context.Context, in TeacherInput) (*models.Teacher, error) {
	if err := check(a.validate, in); err != nil {
		return nil, err
	}
	hashed, err := a.hash(in.Password)
	if err != nil {
		return nil, err
	}
	image, err := a.images.Store(ctx, in.Image)
	if err != nil {
		return nil, err
	}
	teacher := &models.Teacher{
		Name:        in.Name,
		Email:       in.Email,
		Password:    hashed,
		Subject:     in.Subject,
		Experience:  in.Experience,
		Location:    in.Location,
		Contact:     in.Contact,
		Description: in.Description,
		Image:       image,
	}
	if err := a.repo.CreateTeacher(ctx, teacher); err != nil {
		return nil, created(err)
	}
	a.log.Info("teacher registered", zap.Uint("teacher_id", teacher.ID))
	return teacher, nil
}

func (a *Accounts) RegisterStudent(ctx context.Context, in StudentInput) (*models.Student, error) {
	if err := check(a.validate, in); err != nil {
		return nil, err
	}
	hashed, err := a.hash(in.Password)
	if err != nil {
		return nil, err
	}
	student := &models.Student{Name: in.Name, Email: in.Email, Password: hashed}
	if err := a.repo.CreateStudent(ctx, student); err != nil {
		return nil, created(err)
	}
	a.log.Info("student registered", zap.Uint("student_id", student.ID))
	return student, nil
}

// authenticate applies the same failure for unknown accounts and bad passwords.
func (a *Accounts) authenticate(err error, hash, password string) error {
	if errors.Is(err, repository.ErrNotFound) {
		_ = bcrypt.CompareHashAndPassword(a.dummyHash, []byte(password))
		return ErrInvalidCredentials
	}
	if err != nil {
		return err
	}
	if !passwordMatches(hash, password) {
		return ErrInvalidCredentials
	}
	return nil
}

func (a *Accounts) LoginTeacher(ctx context.Context, in Credentials) (*models.Teacher, error) {
	teacher, err := a.repo.FindTeacherByEmail(ctx, in.Email)
	hash := ""
	if teacher != nil {
		hash = teacher.Password
	}
	if err := a.authenticate(err, hash, in.Password); err != nil {
		return nil, err
	}
	return teacher, nil
}

func (a *Accounts) LoginStudent(ctx context.Context, in Credentials) (*models.Student, error) {
	student, err := a.repo.FindStudentByEmail(ctx, in.Email)
	hash := ""
	if student != nil {
		hash = student.Password
	}
	if err := a.authenticate(err, hash, in.Password); err != nil {
		return nil, err
	}
	return student, nil
}

func (a *Accounts) UpdateTeacherProfile(ctx context.Context, in ProfileUpdate) (*models.Teacher, error) {
	teacher, err := a.repo.FindTeacherByEmail(ctx, in.Email)
	hash := ""
	if teacher != nil {
		hash = teacher.Password
	}
	if err := a.authenticate(err, hash, in.Password); err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return nil, ErrIncorrectPassword
		}
		return nil, err
	}

	profile := in.TeacherProfile
	if profile.Image, err = a.images.Store(ctx, profile.Image); err != nil {
		return nil, err
	}
	profile.Apply(teacher)
	if err := a.repo.SaveTeacher(ctx, teacher); err != nil {
		return nil, err
	}
	a.log.Info("teacher profile updated", zap.Uint("teacher_id", teacher.ID))
	return teacher, nil
}

func (a *Accounts) ListTeachers(ctx context.Context) ([]models.Teacher, error) {
	return a.repo.ListTeachers(ctx)
}

func (a *Accounts) GetTeacher(ctx context.Context, id uint) (*models.Teacher, error) {
	return a.repo.FindTeacherByID(ctx, id)
}
