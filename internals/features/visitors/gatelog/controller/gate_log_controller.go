// file: internals/features/visitors/gatelog/controller/gate_log_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	helper "gatepassku_backend/internals/helpers"

	service "gatepassku_backend/internals/features/visitors/gatelog/service"
)

type GateLogController struct {
	Logs *service.GateLogStore
}

func NewGateLogController(logs *service.GateLogStore) *GateLogController {
	return &GateLogController{Logs: logs}
}

// List (admin): audit gerbang terbaru dulu, opsional ?pass_id= dan paging.
func (ctl *GateLogController) List(c *fiber.Ctx) error {
	passID := strings.TrimSpace(c.Query("pass_id"))

	if !helper.HasPagingParams(c) {
		data, _ := ctl.Logs.List(passID, 0, 0)
		return helper.JsonList(c, "OK", data, nil)
	}

	p := helper.ResolvePaging(c, 20, 100)
	data, total := ctl.Logs.List(passID, p.Offset, p.Limit)
	pagination := helper.BuildPaginationFromPage(int64(total), p.Page, p.PerPage)
	pagination.Count = len(data)

	return helper.JsonList(c, "OK", data, &pagination)
}
