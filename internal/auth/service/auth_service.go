package service

//go:generate mockgen -destination=../../mocks/mock_account_repository.go -package=mocks github.com/Memo977/KidsTube-Backendv2/internal/auth/domain AccountRepository,PhoneVerifier,RevocationRegistry,SessionLedger,Mailer

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/Memo977/KidsTube-Backendv2/internal/auth/domain"
	"github.com/Memo977/KidsTube-Backendv2/internal/auth/dto"
	autherror "github.com/Memo977/KidsTube-Backendv2/internal/errors"
	"github.com/Memo977/KidsTube-Backendv2/internal/logger"
	"github.com/Memo977/KidsTube-Backendv2/internal/metrics"
	"github.com/Memo977/KidsTube-Backendv2/pkg/constant"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthService coordinates the multi-step login flow: password check, code
// dispatch, code verification, session issue, revocation and the restricted
// profile PIN gate. All collaborators are injected so tests can substitute
// in-memory fakes.
type AuthService struct {
	repo     domain.AccountRepository
	tokens   TokenGenerator
	verifier domain.PhoneVerifier
	registry domain.RevocationRegistry
	ledger   domain.SessionLedger
	mailer   domain.Mailer
	log      *zap.Logger
}

func NewAuthService(
	repo domain.AccountRepository,
	tokens TokenGenerator,
	verifier domain.PhoneVerifier,
	registry domain.RevocationRegistry,
	ledger domain.SessionLedger,
	mailer domain.Mailer,
) *AuthService {
	return &AuthService{
		repo:     repo,
		tokens:   tokens,
		verifier: verifier,
		registry: registry,
		ledger:   ledger,
		mailer:   mailer,
		log:      logger.Named("auth"),
	}
}

// Register creates a guardian account in unconfirmed state and dispatches
// the confirmation email. Email delivery is best effort and never blocks
// registration.
func (s *AuthService) Register(ctx context.Context, input dto.RegisterInput) (*domain.Account, error) {
	if input.Email == "" || input.Password == "" || input.PhoneNumber == "" ||
		input.Pin == "" || input.Name == "" || input.LastName == "" || input.Birthdate == "" {
		return nil, fmt.Errorf("no valid data provided for user")
	}

	if input.Password != input.RepeatPassword {
		return nil, autherror.ErrPasswordMismatch
	}

	birthdate, err := time.Parse("2006-01-02", input.Birthdate)
	if err != nil {
		return nil, fmt.Errorf("invalid birthdate: %w", err)
	}

	if !isAtLeastYearsOld(birthdate, constant.MinimumGuardianAge) {
		return nil, autherror.ErrUnderage
	}

	existing, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", autherror.ErrStoreUnavailable, err)
	}
	if existing != nil {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	account := &domain.Account{
		ID:           uuid.NewString(),
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		Name:         input.Name,
		LastName:     input.LastName,
		PhoneNumber:  input.PhoneNumber,
		Pin:          input.Pin,
		Country:      input.Country,
		Birthdate:    birthdate,
		Verified:     false,
		Active:       false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("%w: %v", autherror.ErrStoreUnavailable, err)
	}

	if err := s.mailer.SendConfirmationEmail(ctx, account); err != nil {
		s.log.Warn("failed to send confirmation email",
			zap.String("account_id", account.ID), zap.Error(err))
	}

	return account, nil
}

// ConfirmEmail marks the account as verified, enabling password login.
func (s *AuthService) ConfirmEmail(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.repo.GetByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", autherror.ErrStoreUnavailable, err)
	}
	if account == nil {
		return nil, autherror.ErrAccountNotFound
	}

	account.Verified = true
	account.Active = true
	account.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("%w: %v", autherror.ErrStoreUnavailable, err)
	}
	return account, nil
}

// StartLogin verifies credentials and dispatches the verification code. The
// same error covers unknown email and wrong password so callers cannot probe
// for registered accounts.
func (s *AuthService) StartLogin(ctx context.Context, input dto.LoginInput) (*dto.ChallengeOutput, error) {
	account, err := s.repo.GetByEmail(ctx, input.Username)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", autherror.ErrStoreUnavailable, err)
	}

	if account == nil || bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(input.Password)) != nil {
		metrics.LoginAttempts.WithLabelValues("invalid_credentials").Inc()
		return nil, autherror.ErrInvalidCredentials
	}

	if !account.Verified {
		metrics.LoginAttempts.WithLabelValues("not_confirmed").Inc()
		return nil, autherror.ErrAccountNotConfirmed
	}

	return s.beginVerification(ctx, account)
}

// beginVerification dispatches a code and, only once the provider accepted
// the send, issues the step token for the code-verification stage.
func (s *AuthService) beginVerification(ctx context.Context, account *domain.Account) (*dto.ChallengeOutput, error) {
	if err := s.verifier.SendCode(ctx, account.PhoneNumber); err != nil {
		metrics.CodeDispatches.WithLabelValues("failed").Inc()
		s.log.Warn("verification code dispatch failed",
			zap.String("account_id", account.ID), zap.Error(err))
		return nil, autherror.ErrVerificationDispatchFailed
	}
	metrics.CodeDispatches.WithLabelValues("sent").Inc()

	tempToken, err := s.tokens.IssueStepToken(account, constant.StepVerificationRequired)
	if err != nil {
		return nil, err
	}

	return &dto.ChallengeOutput{
		Message:   "Verification code sent to your phone",
		TempToken: tempToken,
		Phone:     maskPhone(account.PhoneNumber),
	}, nil
}

// CompleteLogin checks the out-of-band code and issues the session token. A
// wrong code does not consume the step token, so the caller may retry until
// the token expires.
func (s *AuthService) CompleteLogin(ctx context.Context, input dto.VerifyInput) (*dto.SessionOutput, error) {
	claims, err := s.tokens.VerifyToken(input.TempToken, constant.StepVerificationRequired)
	if err != nil {
		return nil, err
	}

	account, err := s.repo.GetByEmail(ctx, claims.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", autherror.ErrStoreUnavailable, err)
	}
	if account == nil {
		return nil, autherror.ErrAccountNotFound
	}

	valid, err := s.verifier.CheckCode(ctx, account.PhoneNumber, input.Code)
	if err != nil || !valid {
		metrics.LoginAttempts.WithLabelValues("code_invalid").Inc()
		return nil, autherror.ErrCodeInvalid
	}

	token, _, err := s.tokens.IssueSessionToken(account)
	if err != nil {
		return nil, err
	}

	if err := s.ledger.Record(ctx, account.Email); err != nil {
		return nil, fmt.Errorf("%w: %v", autherror.ErrStoreUnavailable, err)
	}

	metrics.LoginAttempts.WithLabelValues("success").Inc()

	return &dto.SessionOutput{
		Token: token,
		Pin:   account.Pin,
	}, nil
}

// ResendCode re-dispatches the verification code for an outstanding step
// token. The token's expiry is left untouched.
func (s *AuthService) ResendCode(ctx context.Context, tempToken string) (*dto.ChallengeOutput, error) {
	claims, err := s.tokens.VerifyToken(tempToken, constant.StepVerificationRequired)
	if err != nil {
		return nil, err
	}

	account, err := s.repo.GetByEmail(ctx, claims.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", autherror.ErrStoreUnavailable, err)
	}
	if account == nil {
		return nil, autherror.ErrAccountNotFound
	}

	if err := s.verifier.SendCode(ctx, account.PhoneNumber); err != nil {
		metrics.CodeDispatches.WithLabelValues("failed").Inc()
		return nil, autherror.ErrVerificationDispatchFailed
	}
	metrics.CodeDispatches.WithLabelValues("sent").Inc()

	return &dto.ChallengeOutput{
		Message: "Verification code resent",
		Phone:   maskPhone(account.PhoneNumber),
	}, nil
}

// Logout revokes the token until its own expiry and clears the ledger entry.
// Expired tokens still pass: revoking them is harmless and clearing the
// ledger is still wanted. Logging out twice is a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.tokens.DecodeToken(token)
	if err != nil {
		return err
	}

	var ttl time.Duration
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}

	if err := s.registry.Revoke(ctx, token, ttl); err != nil {
		return fmt.Errorf("%w: %v", autherror.ErrStoreUnavailable, err)
	}
	metrics.RevokedTokens.Inc()

	if err := s.ledger.Clear(ctx, claims.Email); err != nil {
		s.log.Warn("failed to clear session ledger entry",
			zap.String("email", claims.Email), zap.Error(err))
	}

	return nil
}

// ValidateSession is the protected-route check: revocation first, then
// signature, expiry and purpose. It mutates nothing and is safe to call
// concurrently.
func (s *AuthService) ValidateSession(ctx context.Context, token string) (*domain.Session, error) {
	revoked, err := s.registry.IsRevoked(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", autherror.ErrStoreUnavailable, err)
	}
	if revoked {
		return nil, autherror.ErrTokenRevoked
	}

	claims, err := s.tokens.VerifyToken(token, constant.StepSession)
	if err != nil {
		return nil, err
	}

	return &domain.Session{
		AccountID:   claims.UserID,
		Email:       claims.Email,
		Name:        claims.Name,
		Permissions: claims.Permissions,
	}, nil
}

// ExternalLogin resolves the Google identity to an account and routes it to
// the right branch: profile completion for accounts still missing required
// fields, phone verification otherwise.
func (s *AuthService) ExternalLogin(ctx context.Context, input dto.ExternalLoginInput) (*dto.ExternalLoginOutput, error) {
	account, err := s.LinkExternalIdentity(ctx, input)
	if err != nil {
		return nil, err
	}

	if s.NeedsProfileCompletion(account) {
		tempToken, err := s.tokens.IssueStepToken(account, constant.StepProfileCompletion)
		if err != nil {
			return nil, err
		}
		return &dto.ExternalLoginOutput{
			NeedsProfileCompletion: true,
			TempToken:              tempToken,
		}, nil
	}

	challenge, err := s.beginVerification(ctx, account)
	if err != nil {
		return nil, err
	}
	return &dto.ExternalLoginOutput{
		TempToken: challenge.TempToken,
		Phone:     challenge.Phone,
	}, nil
}

// LinkExternalIdentity attaches the Google subject to an existing account,
// or creates a fresh one with an unusable random password so it can only log
// in through the external flow. Linking the same subject twice resolves to
// the same account.
func (s *AuthService) LinkExternalIdentity(ctx context.Context, input dto.ExternalLoginInput) (*domain.Account, error) {
	account, err := s.repo.GetByGoogleID(ctx, input.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", autherror.ErrStoreUnavailable, err)
	}
	if account != nil {
		return account, nil
	}

	account, err = s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", autherror.ErrStoreUnavailable, err)
	}

	if account != nil {
		if account.GoogleID == "" {
			account.GoogleID = input.Subject
			account.UpdatedAt = time.Now()
			if err := s.repo.Update(ctx, account); err != nil {
				return nil, fmt.Errorf("%w: %v", autherror.ErrStoreUnavailable, err)
			}
		}
		return account, nil
	}

	hashedPassword, err := unusablePasswordHash()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	account = &domain.Account{
		ID:           uuid.NewString(),
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Name:         input.GivenName,
		LastName:     input.FamilyName,
		GoogleID:     input.Subject,
		Verified:     false,
		Active:       false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("%w: %v", autherror.ErrStoreUnavailable, err)
	}
	return account, nil
}

// NeedsProfileCompletion reports whether a Google-linked account still lacks
// any of the mandatory profile fields or confirmation.
func (s *AuthService) NeedsProfileCompletion(account *domain.Account) bool {
	return account.GoogleID != "" &&
		(account.PhoneNumber == "" || account.Pin == "" || account.Country == "" ||
			account.Birthdate.IsZero() || !account.Verified)
}

// CompleteProfile fills the missing fields of a Google-created account,
// marks it verified, and funnels it into the same code-verification branch
// as a password login. Identity is already established by the step token, so
// no password check happens here.
func (s *AuthService) CompleteProfile(ctx context.Context, accountID string, input dto.CompleteProfileInput) (*dto.ChallengeOutput, error) {
	account, err := s.repo.GetByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", autherror.ErrStoreUnavailable, err)
	}
	if account == nil {
		return nil, autherror.ErrAccountNotFound
	}

	birthdate, err := time.Parse("2006-01-02", input.Birthdate)
	if err != nil {
		return nil, fmt.Errorf("invalid birthdate: %w", err)
	}

	account.PhoneNumber = input.PhoneNumber
	account.Pin = input.Pin
	account.Country = input.Country
	account.Birthdate = birthdate
	account.Verified = true
	account.Active = true
	account.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("%w: %v", autherror.ErrStoreUnavailable, err)
	}

	return s.beginVerification(ctx, account)
}

// AuthenticateRestrictedProfile gates child-profile access: a valid guardian
// session plus a PIN scoped to that guardian. A PIN that does not exist and
// a PIN owned by another guardian fail identically.
func (s *AuthService) AuthenticateRestrictedProfile(ctx context.Context, sessionToken, pin string) (*domain.RestrictedContext, error) {
	sess, err := s.ValidateSession(ctx, sessionToken)
	if err != nil {
		return nil, err
	}

	profile, err := s.repo.GetRestrictedProfileByPin(ctx, sess.AccountID, pin)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", autherror.ErrStoreUnavailable, err)
	}
	if profile == nil {
		metrics.RestrictedLogins.WithLabelValues("invalid_pin").Inc()
		return nil, autherror.ErrInvalidPin
	}

	playlists, err := s.repo.ListPlaylistIDsByProfile(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", autherror.ErrStoreUnavailable, err)
	}

	metrics.RestrictedLogins.WithLabelValues("success").Inc()

	return &domain.RestrictedContext{
		ProfileID:   profile.ID,
		Name:        profile.Name,
		Avatar:      profile.Avatar,
		PlaylistIDs: playlists,
	}, nil
}

func maskPhone(phoneNumber string) string {
	if len(phoneNumber) <= constant.MaskedPhoneDigits {
		return phoneNumber
	}
	return phoneNumber[len(phoneNumber)-constant.MaskedPhoneDigits:]
}

func isAtLeastYearsOld(birthdate time.Time, years int) bool {
	return !birthdate.After(time.Now().AddDate(-years, 0, 0))
}

// unusablePasswordHash produces a bcrypt hash of random bytes for accounts
// created through Google sign-in; password login is impossible for them.
func unusablePasswordHash() (string, error) {
	buf := make([]byte, constant.UnusablePasswordBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(hex.EncodeToString(buf)), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
