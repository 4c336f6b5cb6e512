// file: internals/features/visitors/gatepass/model/visitor_model.go
package model

/* ===================== Status enum ===================== */

// VisitorStatus: siklus hidup gate pass.
// expected (baru daftar) → in (sudah masuk) → out (sudah keluar).
// Flag expired terpisah: sekali true, semua transisi ditolak.
type VisitorStatus string

const (
	StatusExpected VisitorStatus = "expected"
	StatusIn       VisitorStatus = "in"
	StatusOut      VisitorStatus = "out"
)

func (s VisitorStatus) Valid() bool {
	switch s {
	case StatusExpected, StatusIn, StatusOut:
		return true
	}
	return false
}

/* ===================== Model ===================== */

// VisitorModel adalah satu record pengunjung + gate pass-nya.
// Nama field JSON mengikuti kontrak lama (dipakai frontend & pass tercetak),
// jadi jangan diubah tanpa migrasi di sisi klien.
type VisitorModel struct {
	VisitorID     int    `json:"id"`
	VisitorPassID string `json:"pass_id"`

	VisitorName      string `json:"name"`
	VisitorPhone     string `json:"phone"`
	VisitorToMeet    string `json:"to_meet"`
	VisitorDept      string `json:"department"`
	VisitorPurpose   string `json:"purpose"`
	VisitorVehicleNo string `json:"vehicle_no"`

	VisitorStatus    VisitorStatus `json:"status"`
	VisitorCreatedAt string        `json:"created_at"`
	VisitorCheckIn   string        `json:"check_in,omitempty"`
	VisitorCheckOut  string        `json:"check_out,omitempty"`

	// Data URL PNG (base64). QRThumb versi kecil untuk tabel list.
	VisitorQRImage string `json:"qr_image"`
	VisitorQRThumb string `json:"qr_thumb,omitempty"`

	// One-time use flag
	VisitorExpired bool `json:"expired"`
}
