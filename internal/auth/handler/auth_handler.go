package handler

import (
	"errors"
	"strings"

	"github.com/Memo977/KidsTube-Backendv2/internal/auth/domain"
	"github.com/Memo977/KidsTube-Backendv2/internal/auth/dto"
	"github.com/Memo977/KidsTube-Backendv2/internal/auth/service"
	autherror "github.com/Memo977/KidsTube-Backendv2/internal/errors"
	"github.com/Memo977/KidsTube-Backendv2/pkg/constant"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService  *service.AuthService
	tokenService service.TokenGenerator
}

func NewAuthHandler(authService *service.AuthService, tokenService service.TokenGenerator) *AuthHandler {
	return &AuthHandler{authService: authService, tokenService: tokenService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	account, err := h.authService.Register(c.Context(), input)
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Set("Location", "/api/users/?id="+account.ID)
	return c.Status(fiber.StatusCreated).JSON(dto.AccountOutput{
		ID:          account.ID,
		Email:       account.Email,
		Name:        account.Name,
		LastName:    account.LastName,
		PhoneNumber: account.PhoneNumber,
		Country:     account.Country,
		Verified:    account.Verified,
		CreatedAt:   account.CreatedAt,
	})
}

func (h *AuthHandler) ConfirmEmail(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "ID parameter is required",
		})
	}

	if _, err := h.authService.ConfirmEmail(c.Context(), id); err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Email confirmed successfully",
	})
}

// Login is the first stage: credentials in, verification challenge out.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}
	if input.Username == "" || input.Password == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "Username and password are required",
		})
	}

	challenge, err := h.authService.StartLogin(c.Context(), input)
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(challenge)
}

// Verify is the second stage: step token plus SMS code in, session token and
// guardian PIN out.
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	var input dto.VerifyInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}
	if input.TempToken == "" || input.Code == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "Token and verification code are required",
		})
	}

	session, err := h.authService.CompleteLogin(c.Context(), input)
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(session)
}

func (h *AuthHandler) ResendCode(c *fiber.Ctx) error {
	var input dto.ResendInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}
	if input.Token == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "Token is required",
		})
	}

	challenge, err := h.authService.ResendCode(c.Context(), input.Token)
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(challenge)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token, ok := bearerToken(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authorization header required",
		})
	}

	if err := h.authService.Logout(c.Context(), token); err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Logged out successfully",
	})
}

// GoogleLogin receives the identity-provider claims resolved by the OAuth
// callback and routes the account to profile completion or verification.
func (h *AuthHandler) GoogleLogin(c *fiber.Ctx) error {
	var input dto.ExternalLoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}
	if input.Subject == "" || input.Email == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "Subject and email are required",
		})
	}

	out, err := h.authService.ExternalLogin(c.Context(), input)
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

// CompleteGoogleProfile requires the profile-completion step token issued by
// GoogleLogin; identity comes from the token, never from the body.
func (h *AuthHandler) CompleteGoogleProfile(c *fiber.Ctx) error {
	token, ok := bearerToken(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authorization header required",
		})
	}

	claims, err := h.tokenService.VerifyToken(token, constant.StepProfileCompletion)
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var input dto.CompleteProfileInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	challenge, err := h.authService.CompleteProfile(c.Context(), claims.UserID, input)
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(challenge)
}

// Me returns the identity behind the validated session. Mostly a smoke
// endpoint for clients to check a stored token.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	sess, ok := c.Locals(sessionLocalKey).(*domain.Session)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "session required",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"id":         sess.AccountID,
		"email":      sess.Email,
		"name":       sess.Name,
		"permission": sess.Permissions,
	})
}

// RestrictedProfile returns the restricted context resolved by the PIN
// middleware.
func (h *AuthHandler) RestrictedProfile(c *fiber.Ctx) error {
	rc, ok := c.Locals(restrictedLocalKey).(*domain.RestrictedContext)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "restricted profile required",
		})
	}

	return c.Status(fiber.StatusOK).JSON(dto.RestrictedProfileOutput{
		ProfileID:   rc.ProfileID,
		Name:        rc.Name,
		Avatar:      rc.Avatar,
		PlaylistIDs: rc.PlaylistIDs,
	})
}

func bearerToken(c *fiber.Ctx) (string, bool) {
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimPrefix(header, "Bearer ")
	return token, token != ""
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, autherror.ErrInvalidCredentials),
		errors.Is(err, autherror.ErrEmailAlreadyInUse),
		errors.Is(err, autherror.ErrPasswordMismatch),
		errors.Is(err, autherror.ErrUnderage):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, autherror.ErrAccountNotConfirmed):
		return fiber.StatusForbidden
	case errors.Is(err, autherror.ErrTokenInvalid),
		errors.Is(err, autherror.ErrTokenExpired),
		errors.Is(err, autherror.ErrTokenRevoked),
		errors.Is(err, autherror.ErrCodeInvalid),
		errors.Is(err, autherror.ErrInvalidPin):
		return fiber.StatusUnauthorized
	case errors.Is(err, autherror.ErrAccountNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, autherror.ErrStoreUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}
