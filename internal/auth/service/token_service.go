package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/Memo977/KidsTube-Backendv2/internal/auth/service TokenGenerator

import (
	stderrors "errors"
	"fmt"
	"time"

	"github.com/Memo977/KidsTube-Backendv2/internal/auth/domain"
	autherror "github.com/Memo977/KidsTube-Backendv2/internal/errors"
	"github.com/Memo977/KidsTube-Backendv2/pkg/constant"
	"github.com/golang-jwt/jwt/v5"
)

type TokenGenerator interface {
	IssueStepToken(account *domain.Account, purpose string) (string, error)
	IssueSessionToken(account *domain.Account) (string, time.Time, error)
	VerifyToken(tokenString, expectedPurpose string) (*JWTCustomClaims, error)
	DecodeToken(tokenString string) (*JWTCustomClaims, error)
}

// TokenService signs and verifies both token profiles with one secret. The
// Step claim tags each token with its purpose so a step token can never pass
// where a session token is expected, and vice versa.
type TokenService struct {
	Secret             string
	StepTokenExpiry    time.Duration
	SessionTokenExpiry time.Duration
}

type JWTCustomClaims struct {
	jwt.RegisteredClaims
	UserID      string   `json:"user_id"`
	Email       string   `json:"email"`
	Name        string   `json:"name,omitempty"`
	Step        string   `json:"step"`
	Permissions []string `json:"permission,omitempty"`
}

func NewTokenService(secret string, stepMinutes, sessionMinutes int) *TokenService {
	return &TokenService{
		Secret:             secret,
		StepTokenExpiry:    time.Duration(stepMinutes) * time.Minute,
		SessionTokenExpiry: time.Duration(sessionMinutes) * time.Minute,
	}
}

// IssueStepToken creates a short-lived token marking partial authentication
// progress, tagged with the given purpose.
func (ts *TokenService) IssueStepToken(account *domain.Account, purpose string) (string, error) {
	now := time.Now()
	claims := JWTCustomClaims{
		UserID: account.ID,
		Email:  account.Email,
		Step:   purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.StepTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.Secret))
}

// IssueSessionToken creates the long-lived token for a fully authenticated
// guardian, carrying full permissions.
func (ts *TokenService) IssueSessionToken(account *domain.Account) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ts.SessionTokenExpiry)
	claims := JWTCustomClaims{
		UserID:      account.ID,
		Email:       account.Email,
		Name:        account.Name,
		Step:        constant.StepSession,
		Permissions: constant.FullPermissions,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.Secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// VerifyToken parses and validates a token, then guards its purpose claim.
func (ts *TokenService) VerifyToken(tokenString, expectedPurpose string) (*JWTCustomClaims, error) {
	claims := &JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, ts.keyFunc)
	if err != nil {
		if stderrors.Is(err, jwt.ErrTokenExpired) {
			return nil, autherror.ErrTokenExpired
		}
		return nil, autherror.ErrTokenInvalid
	}

	if !token.Valid || claims.Step != expectedPurpose {
		return nil, autherror.ErrTokenInvalid
	}

	return claims, nil
}

// DecodeToken checks the signature but ignores expiry. Logout uses it so an
// expired session token can still be revoked and its ledger entry cleared.
func (ts *TokenService) DecodeToken(tokenString string) (*JWTCustomClaims, error) {
	claims := &JWTCustomClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, ts.keyFunc, jwt.WithoutClaimsValidation())
	if err != nil {
		return nil, autherror.ErrTokenInvalid
	}
	return claims, nil
}

func (ts *TokenService) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return []byte(ts.Secret), nil
}
