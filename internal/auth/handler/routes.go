package handler

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	// Public: registration and the multi-step login flow.
	app.Post("/api/users", h.Register)
	app.Get("/api/users/confirm", h.ConfirmEmail)
	app.Post("/api/session", h.Login)
	app.Post("/api/session/verify", h.Verify)
	app.Post("/api/session/resend-code", h.ResendCode)
	app.Delete("/api/session", h.Logout)

	// Google sign-in branch.
	app.Post("/api/session/google", h.GoogleLogin)
	app.Post("/api/session/google/complete-profile", h.CompleteGoogleProfile)

	// Guardian-only endpoints.
	admin := app.Group("/api/admin", h.RequireSession())
	admin.Get("/me", h.Me)

	// PIN-gated child endpoints.
	restricted := app.Group("/api/restricted", h.RequireRestrictedProfile())
	restricted.Get("/profile", h.RestrictedProfile)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
