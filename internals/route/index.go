// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"gatepassku_backend/internals/configs"
	"gatepassku_backend/internals/constants"
	middlewares "gatepassku_backend/internals/middlewares"
	authmw "gatepassku_backend/internals/middlewares/auth"

	authController "gatepassku_backend/internals/features/users/auth/controller"
	authRoute "gatepassku_backend/internals/features/users/auth/route"
	authService "gatepassku_backend/internals/features/users/auth/service"

	gatepassController "gatepassku_backend/internals/features/visitors/gatepass/controller"
	gatepassRoute "gatepassku_backend/internals/features/visitors/gatepass/route"
	gatepassService "gatepassku_backend/internals/features/visitors/gatepass/service"

	gatelogController "gatepassku_backend/internals/features/visitors/gatelog/controller"
	gatelogRoute "gatepassku_backend/internals/features/visitors/gatelog/route"
	gatelogService "gatepassku_backend/internals/features/visitors/gatelog/service"
)

// Deps: semua service dibangun sekali di main lalu di-inject ke sini.
// Registry sengaja bukan global supaya test bisa bikin instance segar.
type Deps struct {
	Registry  *gatepassService.VisitorRegistry
	GateLogs  *gatelogService.GateLogStore
	Users     *authService.UserStore
	Blacklist *authService.TokenBlacklist
	Validate  *validator.Validate
}

func SetupRoutes(app *fiber.App, deps *Deps) {
	// rate limiter global
	app.Use(middlewares.GlobalRateLimiter())

	authMW := authmw.AuthJWT(authmw.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		BlacklistChecker:    deps.Blacklist.Contains,
		AllowCookieFallback: true,
	})

	authCtl := authController.NewAuthController(deps.Users, deps.Blacklist, deps.Validate)
	visitorCtl := gatepassController.NewVisitorController(deps.Registry, deps.Validate)
	gateCtl := gatepassController.NewGateController(deps.Registry, deps.GateLogs)
	logCtl := gatelogController.NewGateLogController(deps.GateLogs)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, authCtl, authMW)

	// ===================== STATS (semua role) =====================
	app.Get("/stats", authMW,
		authmw.OnlyRoles("", constants.AllRoles...),
		visitorCtl.Stats,
	)

	// ===================== PUBLIC (landing page tamu) =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	gatepassRoute.PublicRoutes(public, visitorCtl)

	// ===================== RECEPTION =====================
	log.Println("[INFO] Setting up RECEPTION group...")
	reception := app.Group("/api/r",
		authMW,
		authmw.OnlyRoles(constants.RoleErrorReception("manajemen visitor"), constants.ReceptionAndAbove...),
	)
	gatepassRoute.ReceptionRoutes(reception, visitorCtl)

	// ===================== GUARD =====================
	log.Println("[INFO] Setting up GUARD group...")
	guard := app.Group("/api/g",
		authMW,
		authmw.OnlyRoles(constants.RoleErrorGuard("operasi gerbang"), constants.GuardAndAbove...),
	)
	gatepassRoute.GuardRoutes(guard, gateCtl)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authMW,
		authmw.OnlyRoles(constants.RoleErrorAdmin("administrasi visitor"), constants.AdminOnly...),
	)
	gatepassRoute.AdminRoutes(admin, visitorCtl)
	gatelogRoute.AdminRoutes(admin, logCtl)
}
