package dto

type VerifyInput struct {
	TempToken string `json:"tempToken"`
	Code      string `json:"code"`
}

type ResendInput struct {
	Token string `json:"token"`
}

// SessionOutput completes the login: the long-lived session token plus the
// guardian's PIN, so the client can offer profile switching immediately.
type SessionOutput struct {
	Token string `json:"token"`
	Pin   string `json:"pin"`
}
