package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, a *AuthHandler, ad *AdminHandler) {
	app.Post("/api/auth/sign-up", a.SignUp)
	app.Post("/api/auth/sign-in", a.SignIn)
	app.Post("/api/auth/sign-out", a.SignOut)
	app.Get("/api/auth/me", a.Me)
	app.Delete("/api/auth/account", a.DeleteAccount)
	app.Post("/api/auth/track-session", a.TrackSession)
	app.Post("/api/forgot-password", a.ForgotPassword)

	// Dashboard endpoints
	admin := app.Group("/api/admin")
	admin.Get("/users", ad.Users)
	admin.Get("/feedbacks", ad.Feedbacks)
	admin.Get("/metrics", ad.Metrics)
	admin.Get("/activity", ad.RecentActivity)
	admin.Post("/reset-sessions", ad.ResetSessions)
}
