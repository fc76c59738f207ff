package domain

// Session is the decoded identity attached to a validated session token.
type Session struct {
	AccountID   string
	Email       string
	Name        string
	Permissions []string
}
