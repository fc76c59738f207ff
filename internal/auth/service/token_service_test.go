package service

import (
	"testing"
	"time"

	"github.com/Memo977/KidsTube-Backendv2/internal/auth/domain"
	autherror "github.com/Memo977/KidsTube-Backendv2/internal/errors"
	"github.com/Memo977/KidsTube-Backendv2/pkg/constant"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAccount() *domain.Account {
	return &domain.Account{
		ID:          "acc-123",
		Email:       "a@x.com",
		Name:        "Ana",
		PhoneNumber: "5551234",
	}
}

func TestNewTokenService(t *testing.T) {
	tests := []struct {
		name           string
		secret         string
		stepMinutes    int
		sessionMinutes int
	}{
		{
			name:           "valid parameters",
			secret:         "secret-key",
			stepMinutes:    5,
			sessionMinutes: 1440,
		},
		{
			name:           "empty secret",
			secret:         "",
			stepMinutes:    10,
			sessionMinutes: 60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := NewTokenService(tt.secret, tt.stepMinutes, tt.sessionMinutes)

			assert.NotNil(t, ts)
			assert.Equal(t, tt.secret, ts.Secret)
			assert.Equal(t, time.Duration(tt.stepMinutes)*time.Minute, ts.StepTokenExpiry)
			assert.Equal(t, time.Duration(tt.sessionMinutes)*time.Minute, ts.SessionTokenExpiry)
		})
	}
}

func TestTokenService_IssueStepToken(t *testing.T) {
	ts := NewTokenService("test-secret", 5, 1440)
	account := testAccount()

	token, err := ts.IssueStepToken(account, constant.StepVerificationRequired)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims := &JWTCustomClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, account.ID, claims.UserID)
	assert.Equal(t, account.Email, claims.Email)
	assert.Equal(t, constant.StepVerificationRequired, claims.Step)
	assert.Empty(t, claims.Permissions)
}

func TestTokenService_IssueSessionToken(t *testing.T) {
	ts := NewTokenService("test-secret", 5, 1440)
	account := testAccount()

	before := time.Now()
	token, expiresAt, err := ts.IssueSessionToken(account)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.True(t, expiresAt.After(before.Add(ts.SessionTokenExpiry-time.Second)))

	claims, err := ts.VerifyToken(token, constant.StepSession)
	require.NoError(t, err)
	assert.Equal(t, account.ID, claims.UserID)
	assert.Equal(t, account.Email, claims.Email)
	assert.Equal(t, account.Name, claims.Name)
	assert.Equal(t, constant.FullPermissions, claims.Permissions)
}

func TestTokenService_VerifyToken_PurposeGuard(t *testing.T) {
	ts := NewTokenService("test-secret", 5, 1440)
	account := testAccount()

	stepToken, err := ts.IssueStepToken(account, constant.StepVerificationRequired)
	require.NoError(t, err)
	sessionToken, _, err := ts.IssueSessionToken(account)
	require.NoError(t, err)

	t.Run("step token rejected as session", func(t *testing.T) {
		_, err := ts.VerifyToken(stepToken, constant.StepSession)
		assert.ErrorIs(t, err, autherror.ErrTokenInvalid)
	})

	t.Run("session token rejected as step", func(t *testing.T) {
		_, err := ts.VerifyToken(sessionToken, constant.StepVerificationRequired)
		assert.ErrorIs(t, err, autherror.ErrTokenInvalid)
	})

	t.Run("profile completion distinct from verification", func(t *testing.T) {
		completionToken, err := ts.IssueStepToken(account, constant.StepProfileCompletion)
		require.NoError(t, err)

		_, err = ts.VerifyToken(completionToken, constant.StepVerificationRequired)
		assert.ErrorIs(t, err, autherror.ErrTokenInvalid)

		claims, err := ts.VerifyToken(completionToken, constant.StepProfileCompletion)
		require.NoError(t, err)
		assert.Equal(t, account.ID, claims.UserID)
	})
}

func TestTokenService_VerifyToken_Expired(t *testing.T) {
	// Negative TTL makes the token expired at issue time.
	ts := NewTokenService("test-secret", -1, 1440)
	account := testAccount()

	token, err := ts.IssueStepToken(account, constant.StepVerificationRequired)
	require.NoError(t, err)

	_, err = ts.VerifyToken(token, constant.StepVerificationRequired)
	assert.ErrorIs(t, err, autherror.ErrTokenExpired)
}

func TestTokenService_VerifyToken_BadSignature(t *testing.T) {
	ts := NewTokenService("test-secret", 5, 1440)
	other := NewTokenService("other-secret", 5, 1440)

	token, err := other.IssueStepToken(testAccount(), constant.StepVerificationRequired)
	require.NoError(t, err)

	_, err = ts.VerifyToken(token, constant.StepVerificationRequired)
	assert.ErrorIs(t, err, autherror.ErrTokenInvalid)

	_, err = ts.VerifyToken("not-a-token", constant.StepVerificationRequired)
	assert.ErrorIs(t, err, autherror.ErrTokenInvalid)
}

func TestTokenService_DecodeToken(t *testing.T) {
	account := testAccount()

	t.Run("decodes expired token", func(t *testing.T) {
		expired := NewTokenService("test-secret", 5, -1)
		token, _, err := expired.IssueSessionToken(account)
		require.NoError(t, err)

		claims, err := expired.DecodeToken(token)
		require.NoError(t, err)
		assert.Equal(t, account.Email, claims.Email)
		require.NotNil(t, claims.ExpiresAt)
		assert.True(t, claims.ExpiresAt.Before(time.Now()))
	})

	t.Run("rejects bad signature", func(t *testing.T) {
		ts := NewTokenService("test-secret", 5, 1440)
		other := NewTokenService("other-secret", 5, 1440)
		token, _, err := other.IssueSessionToken(account)
		require.NoError(t, err)

		_, err = ts.DecodeToken(token)
		assert.ErrorIs(t, err, autherror.ErrTokenInvalid)
	})
}
