package session

import (
	"context"
	"time"

	"github.com/Memo977/KidsTube-Backendv2/internal/cache"
	"github.com/Memo977/KidsTube-Backendv2/pkg/constant"
	"github.com/google/uuid"
)

// Ledger tracks which identities currently hold an active session. It is
// bookkeeping only: session validation relies on token signature, expiry and
// the revocation registry, never on the ledger.
type Ledger struct {
	store cache.Client
}

func NewLedger(store cache.Client) *Ledger {
	return &Ledger{store: store}
}

// Record notes an active session for email, overwriting any previous entry.
func (l *Ledger) Record(ctx context.Context, email string) error {
	marker := uuid.NewString()
	ttl := time.Duration(constant.SessionLedgerExpiryHours) * time.Hour
	return l.store.Set(ctx, ledgerKey(email), marker, ttl)
}

func (l *Ledger) Clear(ctx context.Context, email string) error {
	return l.store.Delete(ctx, ledgerKey(email))
}

// Active reports whether email has a ledger entry. Used for auditing.
func (l *Ledger) Active(ctx context.Context, email string) (bool, error) {
	return l.store.Exists(ctx, ledgerKey(email))
}

func ledgerKey(email string) string {
	return "session:" + email
}
