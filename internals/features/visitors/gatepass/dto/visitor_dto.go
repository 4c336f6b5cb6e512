// file: internals/features/visitors/gatepass/dto/visitor_dto.go
package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"

	service "gatepassku_backend/internals/features/visitors/gatepass/service"
)

/* =========================================================
   Requests: CREATE (reception panel & guest self-registration)
   ========================================================= */

type CreateVisitorRequest struct {
	Name      string `json:"name" validate:"required,max=120"`
	Phone     string `json:"phone" validate:"required,max=32"`
	ToMeet    string `json:"to_meet" validate:"required,max=120"`
	Dept      string `json:"department" validate:"omitempty,max=120"`
	Purpose   string `json:"purpose" validate:"omitempty,max=240"`
	VehicleNo string `json:"vehicle_no" validate:"omitempty,max=32"`
}

func (r *CreateVisitorRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	r.ToMeet = strings.TrimSpace(r.ToMeet)
	r.Dept = strings.TrimSpace(r.Dept)
	r.Purpose = strings.TrimSpace(r.Purpose)
	r.VehicleNo = strings.TrimSpace(r.VehicleNo)
}

func (r *CreateVisitorRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *CreateVisitorRequest) ToInput() service.RegisterInput {
	return service.RegisterInput{
		Name:      r.Name,
		Phone:     r.Phone,
		ToMeet:    r.ToMeet,
		Dept:      r.Dept,
		Purpose:   r.Purpose,
		VehicleNo: r.VehicleNo,
	}
}

/* =========================================================
   Requests: gate ops (checkin / checkout / qr-scan)
   ========================================================= */

type GatePassRequest struct {
	PassID string `json:"pass_id"`
}

func (r *GatePassRequest) Normalize() {
	r.PassID = strings.TrimSpace(r.PassID)
}

/* =========================================================
   Query: LIST
   ========================================================= */

type ListVisitorsQuery struct {
	Status string `query:"status"` // expected|in|out|all
	Today  string `query:"today"`  // "1"/"true"/"yes" → true
	Search string `query:"search"`
}

func (q *ListVisitorsQuery) Normalize() {
	q.Status = strings.ToLower(strings.TrimSpace(q.Status))
	q.Search = strings.TrimSpace(q.Search)
}

// TodayFlag menerima "1"/"true"/"yes" (case-insensitive) sebagai true,
// sisanya false (kontrak query param lama).
func (q *ListVisitorsQuery) TodayFlag() bool {
	switch strings.ToLower(strings.TrimSpace(q.Today)) {
	case "1", "true", "yes":
		return true
	}
	return false
}

func (q *ListVisitorsQuery) ToFilter() service.ListFilter {
	return service.ListFilter{
		Status: q.Status,
		Today:  q.TodayFlag(),
		Search: q.Search,
	}
}
