package handler

import (
	"github.com/gofiber/fiber/v2"
)

const (
	sessionLocalKey    = "session"
	restrictedLocalKey = "restricted_profile"

	restrictedPinHeader = "X-Restricted-Pin"
)

// RequireSession guards guardian routes: Bearer token, revocation check,
// signature and expiry, all through ValidateSession.
func (h *AuthHandler) RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization header required",
			})
		}

		sess, err := h.authService.ValidateSession(c.Context(), token)
		if err != nil {
			return c.Status(statusForError(err)).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals(sessionLocalKey, sess)
		return c.Next()
	}
}

// RequireRestrictedProfile guards child routes: a valid guardian session
// plus the profile PIN in the X-Restricted-Pin header.
func (h *AuthHandler) RequireRestrictedProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		pin := c.Get(restrictedPinHeader)
		if pin == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "PIN required for restricted access",
			})
		}

		token, ok := bearerToken(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Guardian session required",
			})
		}

		rc, err := h.authService.AuthenticateRestrictedProfile(c.Context(), token, pin)
		if err != nil {
			return c.Status(statusForError(err)).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals(restrictedLocalKey, rc)
		return c.Next()
	}
}
