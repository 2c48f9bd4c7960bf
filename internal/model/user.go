package model

import (
	"time"
)

// LearnerData is the extensible record every account carries.
// It has no fields yet; learner-specific attributes land here.
type LearnerData struct{}

// InstructorData is the extensible record carried only by instructor accounts.
type InstructorData struct{}

type User struct {
	ID           string    `db:"id" json:"userUID"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	IsInstructor bool      `db:"is_instructor" json:"isInstructor"`
	CreatedAt    time.Time `db:"created_at" json:"-"`

	// Computed fields (not in database), derived from IsInstructor
	LearnerData    LearnerData     `db:"-" json:"learnerData"`
	InstructorData *InstructorData `db:"-" json:"instructorData"`
}

// EnsureRoleData populates the role records from the stored flag.
// InstructorData is non-nil exactly when IsInstructor is set.
func (u *User) EnsureRoleData() {
	u.LearnerData = LearnerData{}
	if u.IsInstructor {
		u.InstructorData = &InstructorData{}
	} else {
		u.InstructorData = nil
	}
}
