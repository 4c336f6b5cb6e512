// file: internals/features/visitors/gatepass/controller/gate_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	helper "gatepassku_backend/internals/helpers"

	d "gatepassku_backend/internals/features/visitors/gatepass/dto"
	service "gatepassku_backend/internals/features/visitors/gatepass/service"
	logModel "gatepassku_backend/internals/features/visitors/gatelog/model"
	logService "gatepassku_backend/internals/features/visitors/gatelog/service"
)

/* =========================
   Controller & Constructor
   ========================= */

// GateController: tiga entry point state machine (checkin, checkout,
// qr-scan). Semua kejadian dicatat ke GateLogStore, ditolak maupun sukses.
type GateController struct {
	Registry *service.VisitorRegistry
	Logs     *logService.GateLogStore
}

func NewGateController(reg *service.VisitorRegistry, logs *logService.GateLogStore) *GateController {
	return &GateController{Registry: reg, Logs: logs}
}

/* =========================
   Error → pesan petugas
   ========================= */

// pesan not-found & expired beda antara endpoint manual dan QR scan
// (kontrak pesan lama di panel guard)
type gateMessages struct {
	NotFound string
	Expired  string
}

func gateErrorResponse(err error, m gateMessages) (int, string) {
	var ve *service.ValidationError
	var te *service.InvalidTransitionError

	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest, ve.Msg
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, m.NotFound
	case errors.Is(err, service.ErrPassExpired):
		return http.StatusBadRequest, m.Expired
	case errors.As(err, &te):
		return http.StatusBadRequest, te.Msg
	}
	return http.StatusInternalServerError, err.Error()
}

func (ctl *GateController) handleGate(
	c *fiber.Ctx,
	action string,
	msgs gateMessages,
	op func(passID string) (service.GateResult, error),
) error {
	var req d.GatePassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()

	actor, _ := c.Locals("user_id").(string)

	res, err := op(req.PassID)
	if err != nil {
		code, msg := gateErrorResponse(err, msgs)
		ctl.Logs.Record(req.PassID, action, logModel.ResultDenied, msg, actor)
		return helper.JsonError(c, code, msg)
	}

	ctl.Logs.Record(req.PassID, action, logModel.ResultOK, res.Message, actor)
	return helper.JsonOK(c, res.Message, res.Visitor)
}

/* =========================
   Entry points
   ========================= */

func (ctl *GateController) CheckIn(c *fiber.Ctx) error {
	return ctl.handleGate(c, logModel.ActionCheckIn, gateMessages{
		NotFound: "Invalid Pass ID.",
		Expired:  "Gate pass is expired. Cannot be used again.",
	}, ctl.Registry.CheckIn)
}

func (ctl *GateController) CheckOut(c *fiber.Ctx) error {
	return ctl.handleGate(c, logModel.ActionCheckOut, gateMessages{
		NotFound: "Invalid Pass ID.",
		Expired:  "Gate pass is expired. Cannot be used again.",
	}, ctl.Registry.CheckOut)
}

func (ctl *GateController) Scan(c *fiber.Ctx) error {
	return ctl.handleGate(c, logModel.ActionScan, gateMessages{
		NotFound: "Invalid Pass ID in QR.",
		Expired:  "Gate pass is expired. Scan not allowed.",
	}, ctl.Registry.Scan)
}
