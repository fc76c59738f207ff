package constant

// Token purposes carried in the "step" claim. A token issued for one stage
// must never be accepted at another.
const (
	StepVerificationRequired = "verification_required"
	StepProfileCompletion    = "profile_completion"
	StepSession              = "session"
)

// FullPermissions is the permission set granted to a guardian session.
var FullPermissions = []string{"create", "edit", "delete", "get"}

const (
	DefaultStepTokenExpiryMin    = 5
	DefaultSessionTokenExpiryMin = 1440
	SessionLedgerExpiryHours     = 24
	MinimumGuardianAge           = 18
	MaskedPhoneDigits            = 4
	UnusablePasswordBytes        = 16
)
