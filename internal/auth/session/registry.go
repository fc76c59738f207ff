// Package session holds the two pieces of shared auth state: the revocation
// registry (logged-out tokens) and the session ledger (one active entry per
// identity). Both sit on a TTL key-value store, so a shared Redis keeps them
// correct across backend instances; the in-memory backend is single-instance
// only.
package session

import (
	"context"
	"time"

	"github.com/Memo977/KidsTube-Backendv2/internal/cache"
)

// Registry records revoked tokens until their own expiry passes. A revoked
// token that has also expired is rejected by expiry checking anyway, so the
// store lets entries lapse instead of deleting them explicitly.
type Registry struct {
	store cache.Client
}

func NewRegistry(store cache.Client) *Registry {
	return &Registry{store: store}
}

func (r *Registry) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		// Already past its own expiry; nothing to remember.
		return nil
	}
	return r.store.Set(ctx, revocationKey(token), "1", ttl)
}

func (r *Registry) IsRevoked(ctx context.Context, token string) (bool, error) {
	return r.store.Exists(ctx, revocationKey(token))
}

func revocationKey(token string) string {
	return "revoked:" + token
}
