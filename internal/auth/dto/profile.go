package dto

// ExternalLoginInput carries the identity-provider claims for the Google
// sign-in flow, as resolved by the OAuth callback.
type ExternalLoginInput struct {
	Subject    string `json:"subject"`
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
}

// CompleteProfileInput fills the fields a Google-created account is missing
// before it can enter phone verification.
type CompleteProfileInput struct {
	PhoneNumber string `json:"phone_number"`
	Pin         string `json:"pin"`
	Country     string `json:"country"`
	Birthdate   string `json:"birthdate"`
}

type RestrictedProfileOutput struct {
	ProfileID   string   `json:"profile_id"`
	Name        string   `json:"name"`
	Avatar      string   `json:"avatar"`
	PlaylistIDs []string `json:"playlist_ids"`
}
