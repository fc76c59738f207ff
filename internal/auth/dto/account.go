package dto

import (
	"time"
)

type AccountOutput struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	LastName    string    `json:"last_name"`
	PhoneNumber string    `json:"phone_number"`
	Country     string    `json:"country"`
	Verified    bool      `json:"verified"`
	CreatedAt   time.Time `json:"created_at"`
}

// ExternalLoginOutput tells the client which branch the Google flow took:
// either a profile-completion token, or a verification challenge.
type ExternalLoginOutput struct {
	NeedsProfileCompletion bool   `json:"needs_profile_completion"`
	TempToken              string `json:"tempToken"`
	Phone                  string `json:"phone,omitempty"`
}
