// file: internals/features/visitors/gatelog/model/gate_log_model.go
package model

import "github.com/google/uuid"

const (
	ActionCheckIn  = "checkin"
	ActionCheckOut = "checkout"
	ActionScan     = "scan"

	ResultOK     = "ok"
	ResultDenied = "denied"
)

// GateLogModel: satu kejadian di gerbang (berhasil maupun ditolak).
// Murni audit trail, tidak pernah memengaruhi state pass.
type GateLogModel struct {
	GateLogID        uuid.UUID `json:"id"`
	GateLogPassID    string    `json:"pass_id"`
	GateLogAction    string    `json:"action"` // checkin | checkout | scan
	GateLogResult    string    `json:"result"` // ok | denied
	GateLogMessage   string    `json:"message"`
	GateLogActor     string    `json:"actor"` // user id petugas, atau "public"
	GateLogCreatedAt string    `json:"created_at"`
}
