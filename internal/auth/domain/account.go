package domain

import "time"

// Account is a guardian account. Phone, PIN, country and birthdate are
// mandatory except for accounts created through Google sign-in that have not
// completed their profile yet.
//
// The PIN is stored and compared in plaintext. Hashing it would break the
// login response, which returns the PIN so the client can offer profile
// switching without a second fetch.
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	LastName     string
	PhoneNumber  string
	Pin          string
	Country      string
	Birthdate    time.Time
	Verified     bool
	Active       bool
	GoogleID     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RestrictedProfile is a child-facing profile owned by exactly one guardian.
// Its PIN is unique only within that guardian's profile set.
type RestrictedProfile struct {
	ID        string
	AccountID string
	Name      string
	Avatar    string
	Pin       string
}

// RestrictedContext is the access context handed to a child profile after a
// successful PIN check. It lives for as long as the guardian session does.
type RestrictedContext struct {
	ProfileID   string
	Name        string
	Avatar      string
	PlaylistIDs []string
}

// ExternalProfile carries the claims asserted by the external identity
// provider after it has authenticated the user.
type ExternalProfile struct {
	Subject    string
	Email      string
	GivenName  string
	FamilyName string
}
