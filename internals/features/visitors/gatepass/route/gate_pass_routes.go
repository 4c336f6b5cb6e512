// file: internals/features/visitors/gatepass/route/gate_pass_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"

	controller "gatepassku_backend/internals/features/visitors/gatepass/controller"
	rateLimiter "gatepassku_backend/internals/middlewares"
)

// PublicRoutes: landing page tamu, self-registration + lihat pass by id.
func PublicRoutes(r fiber.Router, ctl *controller.VisitorController) {
	r.Post("/visitors", rateLimiter.SelfRegisterRateLimiter(), ctl.Create)
	r.Get("/visitors/pass/:pass_id", ctl.GetByPassID)
}

// ReceptionRoutes: registrasi + list/search (reception & admin).
func ReceptionRoutes(r fiber.Router, ctl *controller.VisitorController) {
	r.Post("/visitors", ctl.Create)
	r.Get("/visitors", ctl.List)
}

// GuardRoutes: tiga entry point gerbang (guard & admin).
func GuardRoutes(r fiber.Router, ctl *controller.GateController) {
	r.Post("/visitors/checkin", ctl.CheckIn)
	r.Post("/visitors/checkout", ctl.CheckOut)
	r.Post("/qr-scan", ctl.Scan)
}

// AdminRoutes: operasi destruktif, admin saja.
func AdminRoutes(r fiber.Router, ctl *controller.VisitorController) {
	r.Delete("/visitors/:id", ctl.Delete)
}
