package models

const (
	AccountTypeTeacher = "teacher"
	AccountTypeStudent = "student"
)

// TeacherSession is the user object returned by a teacher login or profile
// update. Every profile field is present even when empty. The client rebuilds
// its session from it; no token is issued.
type TeacherSession struct {
	ID          uint       `json:"_id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Type        string     `json:"type"`
	Subject     string     `json:"subject"`
	Experience  Experience `json:"experience"`
	Location    string     `json:"location"`
	Contact     string     `json:"contact"`
	Description string     `json:"description"`
	Image       string     `json:"image"`
}

// StudentSession is the user object returned by a student login.
type StudentSession struct {
	ID    uint   `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Type  string `json:"type"`
}

func (t *Teacher) SessionUser() TeacherSession {
	return TeacherSession{
		ID:          t.ID,
		Name:        t.Name,
		Email:       t.Email,
		Type:        AccountTypeTeacher,
		Subject:     t.Subject,
		Experience:  t.Experience,
		Location:    t.Location,
		Contact:     t.Contact,
		Description: t.Description,
		Image:       t.Image,
	}
}

func (s *Student) SessionUser() StudentSession {
	return StudentSession{
		ID:    s.ID,
		Name:  s.Name,
		Email: s.Email,
		Type:  AccountTypeStudent,
	}
}
