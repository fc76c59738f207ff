package dto

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ChallengeOutput is returned whenever a verification code was dispatched:
// after StartLogin, after ResendCode and after profile completion. The phone
// is masked to its last four digits.
type ChallengeOutput struct {
	Message   string `json:"message"`
	TempToken string `json:"tempToken,omitempty"`
	Phone     string `json:"phone"`
}
