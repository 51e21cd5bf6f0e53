package api

import (
	"time"

	"github.com/google/uuid"
)

// Credentials are sent to the auth endpoints. Name is only used on register.
type Credentials struct {
	Email    string `json:"email" yaml:"email"`
	Password string `json:"password" yaml:"password"`
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
}

// User is the account object returned by register and login.
type User struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatar_url"`
}

// AuthResponse is the body of a successful register or login call.
type AuthResponse struct {
	User User `json:"user"`
}

// Event is an event open for registration.
type Event struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	Description      *string    `json:"description"`
	Location         *string    `json:"location"`
	StartDate        *time.Time `json:"startDate"`
	EndDate          *time.Time `json:"endDate"`
	RegistrationOpen bool       `json:"registrationOpen"`
}

// Submission is the event registration payload. ResumeURL is always sent and
// is null when the resume was left blank.
type Submission struct {
	FirstName                 string  `json:"firstName"`
	LastName                  string  `json:"lastName"`
	Email                     string  `json:"email"`
	TShirtSize                string  `json:"tshirtSize"`
	Division                  string  `json:"division"`
	ExpectedGraduationYear    int     `json:"expectedGraduationYear"`
	University                string  `json:"university"`
	ResumeURL                 *string `json:"resumeUrl"`
	AcknowledgedIDRequirement bool    `json:"acknowledgedIdRequirement"`
	AcknowledgedFilming       bool    `json:"acknowledgedFilming"`
	AcknowledgedTeamMerge     bool    `json:"acknowledgedTeamMerge"`
	InterestedInFinancialAid  bool    `json:"interestedInFinancialAid"`
}

// Participant is a stored registration as reported by the backend.
type Participant struct {
	ID                        uuid.UUID `json:"id"`
	EventID                   uuid.UUID `json:"eventId"`
	FirstName                 string    `json:"firstName"`
	LastName                  string    `json:"lastName"`
	Email                     string    `json:"email"`
	TShirtSize                string    `json:"tshirtSize"`
	Division                  string    `json:"division"`
	ExpectedGraduationYear    int       `json:"expectedGraduationYear"`
	University                string    `json:"university"`
	ResumeURL                 *string   `json:"resumeUrl"`
	AcknowledgedIDRequirement bool      `json:"acknowledgedIdRequirement"`
	AcknowledgedFilming       bool      `json:"acknowledgedFilming"`
	AcknowledgedTeamMerge     bool      `json:"acknowledgedTeamMerge"`
	InterestedInFinancialAid  bool      `json:"interestedInFinancialAid"`
}

// Health is the backend health check body.
type Health struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
