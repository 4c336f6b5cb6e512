// file: internals/features/visitors/gatepass/controller/visitor_controller.go
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	helper "gatepassku_backend/internals/helpers"

	d "gatepassku_backend/internals/features/visitors/gatepass/dto"
	service "gatepassku_backend/internals/features/visitors/gatepass/service"
)

/* =========================
   Controller & Constructor
   ========================= */

type VisitorController struct {
	Registry *service.VisitorRegistry
	Validate *validator.Validate
}

func NewVisitorController(reg *service.VisitorRegistry, v *validator.Validate) *VisitorController {
	return &VisitorController{Registry: reg, Validate: v}
}

/* =========================
   Small helpers
   ========================= */

// --- domain error mapping ---
// notFoundMsg beda-beda per endpoint (kontrak pesan lama), sisanya seragam.
func writeDomainError(c *fiber.Ctx, err error, notFoundMsg string) error {
	var ve *service.ValidationError
	var te *service.InvalidTransitionError
	var re *service.RenderError

	switch {
	case errors.As(err, &ve):
		return helper.JsonError(c, http.StatusBadRequest, ve.Msg)
	case errors.Is(err, service.ErrNotFound):
		if notFoundMsg == "" {
			notFoundMsg = "Visitor not found"
		}
		return helper.JsonError(c, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, service.ErrPassExpired):
		return helper.JsonError(c, http.StatusBadRequest, "Gate pass is expired. Cannot be used again.")
	case errors.As(err, &te):
		return helper.JsonError(c, http.StatusBadRequest, te.Msg)
	case errors.As(err, &re):
		return helper.JsonError(c, http.StatusServiceUnavailable, "QR service unavailable. Please try again.")
	}
	return helper.JsonError(c, http.StatusInternalServerError, err.Error())
}

// validator error → 400 dengan pesan lama untuk field wajib
func writeValidateError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			if fe.Tag() == "required" {
				return helper.JsonError(c, http.StatusBadRequest, "Name, phone and whom to meet are required.")
			}
		}
	}
	return helper.JsonError(c, http.StatusBadRequest, err.Error())
}

/* =========================
   Create (reception / guest self-registration)
   ========================= */

func (ctl *VisitorController) Create(c *fiber.Ctx) error {
	var req d.CreateVisitorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if ctl.Validate != nil {
		if err := req.Validate(ctl.Validate); err != nil {
			return writeValidateError(c, err)
		}
	}

	visitor, err := ctl.Registry.Register(req.ToInput())
	if err != nil {
		return writeDomainError(c, err, "")
	}

	return helper.JsonCreated(c, "Visitor registered. Gate pass issued.", visitor)
}

/* =========================
   List (reception / admin)
   ========================= */

func (ctl *VisitorController) List(c *fiber.Ctx) error {
	var q d.ListVisitorsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	q.Normalize()

	data := ctl.Registry.List(q.ToFilter())

	// Tanpa page/per_page kembalikan semua (perilaku dashboard lama);
	// dengan paging, potong di sini (registry selalu urut id desc).
	if !helper.HasPagingParams(c) {
		return helper.JsonList(c, "OK", data, nil)
	}

	p := helper.ResolvePaging(c, 20, 100)
	total := int64(len(data))
	start := p.Offset
	if start > len(data) {
		start = len(data)
	}
	end := start + p.Limit
	if end > len(data) {
		end = len(data)
	}
	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	pagination.Count = end - start

	return helper.JsonList(c, "OK", data[start:end], &pagination)
}

/* =========================
   Guest: view by pass id (landing page)
   ========================= */

func (ctl *VisitorController) GetByPassID(c *fiber.Ctx) error {
	passID := strings.TrimSpace(c.Params("pass_id"))
	if passID == "" {
		return helper.JsonError(c, http.StatusBadRequest, "Pass ID required.")
	}

	visitor, err := ctl.Registry.FindByPassID(passID)
	if err != nil {
		return writeDomainError(c, err, "Invalid Gate Pass ID")
	}

	return helper.JsonOK(c, "OK", visitor)
}

/* =========================
   Delete (admin)
   ========================= */

func (ctl *VisitorController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
	if err != nil || id <= 0 {
		return helper.JsonError(c, http.StatusBadRequest, "Invalid visitor id")
	}

	if err := ctl.Registry.Delete(id); err != nil {
		return writeDomainError(c, err, "Visitor not found")
	}

	return helper.JsonDeleted(c, "Visitor deleted", fiber.Map{"id": id})
}

/* =========================
   Stats (semua role setelah login)
   ========================= */

func (ctl *VisitorController) Stats(c *fiber.Ctx) error {
	return helper.JsonOK(c, "OK", ctl.Registry.Stats())
}
