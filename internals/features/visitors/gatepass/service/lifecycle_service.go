// file: internals/features/visitors/gatepass/service/lifecycle_service.go
package service

import (
	"log"
	"strings"

	"gatepassku_backend/internals/features/visitors/gatepass/model"
	"gatepassku_backend/internals/helpers/clock"
)

/* =========================
   Pass lifecycle state machine

   expected → in → out (terminal; out sekaligus set expired).
   expired adalah guard lintas-state: sekali true, ketiga entry point
   menolak. Semua transisi read-check-mutate di bawah mutex registry,
   jadi dua operasi serentak di pass yang sama tidak bisa dua-duanya
   sukses.
   ========================= */

// GateResult: record terbaru + pesan untuk ditampilkan ke petugas.
type GateResult struct {
	Visitor model.VisitorModel
	Message string
}

// resolveForGate: guard bersama ketiga entry point.
// Urutan: pass id kosong → validation, tidak resolve → not found,
// sudah expired → expired. Dipanggil dengan lock sudah dipegang.
func (r *VisitorRegistry) resolveForGate(passID string) (*model.VisitorModel, error) {
	passID = strings.TrimSpace(passID)
	if passID == "" {
		return nil, newValidationError("Pass ID required.")
	}
	v, ok := r.byPass[passID]
	if !ok {
		return nil, ErrNotFound
	}
	if v.VisitorExpired {
		return nil, ErrPassExpired
	}
	return v, nil
}

// CheckIn: expected → in. Set check_in, bersihkan check_out.
func (r *VisitorRegistry) CheckIn(passID string) (GateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, err := r.resolveForGate(passID)
	if err != nil {
		return GateResult{}, err
	}

	switch v.VisitorStatus {
	case model.StatusIn:
		return GateResult{}, &InvalidTransitionError{Msg: "Visitor is already inside."}
	case model.StatusOut:
		return GateResult{}, &InvalidTransitionError{Msg: "Gate pass already used and visit completed."}
	}

	v.VisitorStatus = model.StatusIn
	v.VisitorCheckIn = clock.Timestamp()
	v.VisitorCheckOut = ""

	return GateResult{Visitor: *v, Message: "Check-in marked."}, nil
}

// CheckOut: in → out + expired. Pass hangus di sini.
func (r *VisitorRegistry) CheckOut(passID string) (GateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, err := r.resolveForGate(passID)
	if err != nil {
		return GateResult{}, err
	}

	if v.VisitorStatus != model.StatusIn {
		return GateResult{}, &InvalidTransitionError{Msg: "Visitor is not inside."}
	}

	v.VisitorStatus = model.StatusOut
	v.VisitorCheckOut = clock.Timestamp()
	v.VisitorExpired = true

	return GateResult{Visitor: *v, Message: "Check-out marked. Gate pass expired."}, nil
}

// Scan: auto-toggle satu tombol untuk guard.
// Scan pertama = check-in, scan kedua = check-out + expired,
// scan berikutnya ditolak ErrPassExpired.
func (r *VisitorRegistry) Scan(passID string) (GateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, err := r.resolveForGate(passID)
	if err != nil {
		return GateResult{}, err
	}

	switch v.VisitorStatus {
	case model.StatusIn:
		v.VisitorStatus = model.StatusOut
		v.VisitorCheckOut = clock.Timestamp()
		v.VisitorExpired = true
		return GateResult{Visitor: *v, Message: "Visitor checked-out via QR. Gate pass expired."}, nil

	case model.StatusExpected:
		v.VisitorStatus = model.StatusIn
		v.VisitorCheckIn = clock.Timestamp()
		v.VisitorCheckOut = ""
		return GateResult{Visitor: *v, Message: "Visitor checked-in via QR."}, nil

	default:
		// status out tapi expired belum ke-set. Di bawah invariant +
		// mutex cabang ini tidak tercapai; kalau sampai kejadian berarti
		// ada mutasi di luar state machine. Self-heal: paksa expired.
		log.Printf("[WARNING] pass %s status=out tanpa expired, dipaksa expired", v.VisitorPassID)
		v.VisitorExpired = true
		return GateResult{Visitor: *v, Message: "Gate pass already used. Now expired."}, nil
	}
}
