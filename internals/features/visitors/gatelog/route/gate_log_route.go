// file: internals/features/visitors/gatelog/route/gate_log_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	controller "gatepassku_backend/internals/features/visitors/gatelog/controller"
)

// AdminRoutes: audit gerbang hanya untuk admin.
func AdminRoutes(r fiber.Router, ctl *controller.GateLogController) {
	r.Get("/gate-logs", ctl.List)
}
