package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	LoginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kidstube_login_attempts_total",
		Help: "Login attempts by outcome.",
	}, []string{"outcome"})

	CodeDispatches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kidstube_code_dispatches_total",
		Help: "Out-of-band code dispatches by outcome.",
	}, []string{"outcome"})

	RevokedTokens = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kidstube_revoked_tokens_total",
		Help: "Tokens added to the revocation registry.",
	})

	RestrictedLogins = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kidstube_restricted_logins_total",
		Help: "Restricted-profile PIN checks by outcome.",
	}, []string{"outcome"})
)
