// file: internals/features/visitors/gatepass/service/registry_service.go
package service

import (
	"sort"
	"strings"
	"sync"

	"gatepassku_backend/internals/features/visitors/gatepass/model"
	"gatepassku_backend/internals/helpers/clock"
)

/* =========================
   Registry & Constructor
   ========================= */

// VisitorRegistry adalah penyimpanan in-memory seluruh record visitor.
// Dibangun sekali saat proses start dan di-inject ke controller
// (tidak ada global mutable). Reset saat restart sesuai kontrak.
//
// Semua operasi read-modify-write dilindungi satu mutex: alokasi id,
// transisi lifecycle, dan delete tidak boleh saling menyalip.
type VisitorRegistry struct {
	mu       sync.Mutex
	visitors []*model.VisitorModel
	byID     map[int]*model.VisitorModel
	byPass   map[string]*model.VisitorModel
	nextID   int
	renderer PassRenderer
}

func NewVisitorRegistry(renderer PassRenderer) *VisitorRegistry {
	return &VisitorRegistry{
		byID:     make(map[int]*model.VisitorModel),
		byPass:   make(map[string]*model.VisitorModel),
		nextID:   1,
		renderer: renderer,
	}
}

/* =========================
   Register
   ========================= */

type RegisterInput struct {
	Name      string
	Phone     string
	ToMeet    string
	Dept      string
	Purpose   string
	VehicleNo string
}

// Register alokasi id + pass id, render QR, dan append record baru
// (status expected). Gagal render QR = registrasi batal utuh, id yang
// sempat teralokasi hangus (id tetap unik & naik, tidak harus rapat).
func (r *VisitorRegistry) Register(in RegisterInput) (model.VisitorModel, error) {
	name := strings.TrimSpace(in.Name)
	phone := strings.TrimSpace(in.Phone)
	toMeet := strings.TrimSpace(in.ToMeet)

	if name == "" || phone == "" || toMeet == "" {
		return model.VisitorModel{}, newValidationError("Name, phone and whom to meet are required.")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++

	passID := GeneratePassID(id)

	rendered, err := r.renderer.Render(passID)
	if err != nil {
		return model.VisitorModel{}, &RenderError{Err: err}
	}

	v := &model.VisitorModel{
		VisitorID:        id,
		VisitorPassID:    passID,
		VisitorName:      name,
		VisitorPhone:     phone,
		VisitorToMeet:    toMeet,
		VisitorDept:      strings.TrimSpace(in.Dept),
		VisitorPurpose:   strings.TrimSpace(in.Purpose),
		VisitorVehicleNo: strings.TrimSpace(in.VehicleNo),
		VisitorStatus:    model.StatusExpected,
		VisitorCreatedAt: clock.Timestamp(),
		VisitorQRImage:   rendered.Image,
		VisitorQRThumb:   rendered.Thumb,
		VisitorExpired:   false,
	}

	r.visitors = append(r.visitors, v)
	r.byID[id] = v
	r.byPass[passID] = v

	return *v, nil
}

/* =========================
   List / Lookup
   ========================= */

type ListFilter struct {
	Status string // expected|in|out|all ("" == all)
	Today  bool   // hanya yang created_at-nya hari ini
	Search string // substring case-insensitive: name / phone / pass_id
}

// List mengembalikan salinan record yang lolos semua filter (AND),
// terurut id menurun (terbaru dulu). Hasil kosong itu valid.
func (r *VisitorRegistry) List(f ListFilter) []model.VisitorModel {
	status := strings.ToLower(strings.TrimSpace(f.Status))
	search := strings.ToLower(strings.TrimSpace(f.Search))

	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.VisitorModel, 0, len(r.visitors))
	for _, v := range r.visitors {
		if status == "expected" || status == "in" || status == "out" {
			if string(v.VisitorStatus) != status {
				continue
			}
		}
		if f.Today && !clock.IsToday(v.VisitorCreatedAt) {
			continue
		}
		if search != "" && !matchesSearch(v, search) {
			continue
		}
		out = append(out, *v)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].VisitorID > out[j].VisitorID
	})
	return out
}

func matchesSearch(v *model.VisitorModel, lowered string) bool {
	return strings.Contains(strings.ToLower(v.VisitorName), lowered) ||
		strings.Contains(strings.ToLower(v.VisitorPhone), lowered) ||
		strings.Contains(strings.ToLower(v.VisitorPassID), lowered)
}

func (r *VisitorRegistry) FindByPassID(passID string) (model.VisitorModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.byPass[strings.TrimSpace(passID)]
	if !ok {
		return model.VisitorModel{}, ErrNotFound
	}
	return *v, nil
}

func (r *VisitorRegistry) FindByID(id int) (model.VisitorModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.byID[id]
	if !ok {
		return model.VisitorModel{}, ErrNotFound
	}
	return *v, nil
}

/* =========================
   Delete
   ========================= */

// Delete hapus record by id (admin). Pass id tidak didaur ulang;
// QR yang sudah tercetak jadi yatim dan tidak akan resolve lagi.
func (r *VisitorRegistry) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}

	delete(r.byID, id)
	delete(r.byPass, v.VisitorPassID)
	for i, cur := range r.visitors {
		if cur.VisitorID == id {
			r.visitors = append(r.visitors[:i], r.visitors[i+1:]...)
			break
		}
	}
	return nil
}

/* =========================
   Stats
   ========================= */

type StatsSnapshot struct {
	Total       int `json:"total"`
	InsideNow   int `json:"inside_now"`
	ExpectedNow int `json:"expected_now"`
	Today       int `json:"today"`
}

// Stats dihitung segar setiap panggilan (O(n), tanpa cache);
// registry bisa berubah kapan saja di antara dua panggilan.
func (r *VisitorRegistry) Stats() StatsSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := StatsSnapshot{Total: len(r.visitors)}
	for _, v := range r.visitors {
		switch v.VisitorStatus {
		case model.StatusIn:
			s.InsideNow++
		case model.StatusExpected:
			s.ExpectedNow++
		}
		if clock.IsToday(v.VisitorCreatedAt) {
			s.Today++
		}
	}
	return s
}
