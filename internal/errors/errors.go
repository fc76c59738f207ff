package errors

import (
	"errors"
)

var (
	ErrInvalidCredentials         = errors.New("invalid username or password")
	ErrAccountNotConfirmed        = errors.New("account has not been confirmed")
	ErrVerificationDispatchFailed = errors.New("error sending verification code")
	ErrCodeInvalid                = errors.New("invalid verification code")
	ErrTokenInvalid               = errors.New("invalid token")
	ErrTokenExpired               = errors.New("token expired")
	ErrTokenRevoked               = errors.New("token has been revoked")
	ErrInvalidPin                 = errors.New("invalid pin or profile not associated with this guardian")
	ErrAccountNotFound            = errors.New("account not found")
	ErrEmailAlreadyInUse          = errors.New("email already registered")
	ErrPasswordMismatch           = errors.New("passwords do not match")
	ErrUnderage                   = errors.New("guardian must be at least 18 years old")
	ErrStoreUnavailable           = errors.New("store unavailable")
)
