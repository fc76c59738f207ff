package domain

import (
	"context"
	"time"
)

type AccountRepository interface {
	GetByEmail(ctx context.Context, email string) (*Account, error)
	GetByID(ctx context.Context, id string) (*Account, error)
	GetByGoogleID(ctx context.Context, googleID string) (*Account, error)
	Create(ctx context.Context, account *Account) error
	Update(ctx context.Context, account *Account) error
	GetRestrictedProfileByPin(ctx context.Context, accountID, pin string) (*RestrictedProfile, error)
	ListPlaylistIDsByProfile(ctx context.Context, profileID string) ([]string, error)
}

// PhoneVerifier sends and checks one-time codes through an out-of-band
// channel. Implementations normalize numbers to international format before
// dispatch; callers pass them as stored.
type PhoneVerifier interface {
	SendCode(ctx context.Context, phoneNumber string) error
	CheckCode(ctx context.Context, phoneNumber, code string) (bool, error)
}

// RevocationRegistry records tokens that must be rejected even while their
// own expiry has not passed. Entries past their expiry may be treated as
// absent.
type RevocationRegistry interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// SessionLedger keeps at most one active entry per identity. A new login
// overwrites the previous entry.
type SessionLedger interface {
	Record(ctx context.Context, email string) error
	Clear(ctx context.Context, email string) error
}

type Mailer interface {
	SendConfirmationEmail(ctx context.Context, account *Account) error
}
