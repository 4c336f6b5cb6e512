// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	controller "gatepassku_backend/internals/features/users/auth/controller"
	rateLimiter "gatepassku_backend/internals/middlewares"
)

// AuthRoutes: login publik (rate-limited ketat), logout & me di balik JWT.
func AuthRoutes(app *fiber.App, ctl *controller.AuthController, authMW fiber.Handler) {
	baseAuth := app.Group("/auth")

	// 🔓 Public
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), ctl.Login)

	// 🔒 Butuh token
	baseAuth.Post("/logout", authMW, ctl.Logout)
	baseAuth.Get("/me", authMW, ctl.Me)
}
