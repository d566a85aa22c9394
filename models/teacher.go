package models

import "time"

type Teacher struct {
	ID          uint       `json:"_id" gorm:"primaryKey"`
	Name        string     `json:"name"`
	Email       string     `json:"email" gorm:"uniqueIndex;not null"`
	Password    string     `json:"-" gorm:"not null"`
	Subject     string     `json:"subject"`
	Experience  Experience `json:"experience"`
	Location    string     `json:"location"`
	Contact     string     `json:"contact"`
	Description string     `json:"description"`
	Image       string     `json:"image,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// TeacherProfile holds the mutable descriptive fields of a teacher account.
type TeacherProfile struct {
	Name        string     `json:"name"`
	Subject     string     `json:"subject"`
	Experience  Experience `json:"experience"`
	Location    string     `json:"location"`
	Contact     string     `json:"contact"`
	Description string     `json:"description"`
	Image       string     `json:"image"`
}

// Apply overwrites every mutable field of t with the values in p.
func (p TeacherProfile) Apply(t *Teacher) {
	t.Name = p.Name
	t.Subject = p.Subject
	t.Experience = p.Experience
	t.Location = p.Location
	t.Contact = p.Contact
	t.Description = p.Description
	t.Image = p.Image
}
