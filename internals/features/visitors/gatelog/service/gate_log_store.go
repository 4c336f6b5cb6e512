// file: internals/features/visitors/gatelog/service/gate_log_store.go
package service

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"gatepassku_backend/internals/features/visitors/gatelog/model"
	"gatepassku_backend/internals/helpers/clock"
)

// GateLogStore: ring in-memory untuk audit gerbang. Kapasitas dibatasi
// supaya memory tidak tumbuh tanpa batas; yang tertua digusur duluan.
type GateLogStore struct {
	mu       sync.Mutex
	entries  []model.GateLogModel
	capacity int
}

func NewGateLogStore(capacity int) *GateLogStore {
	if capacity <= 0 {
		capacity = 1000
	}
	return &GateLogStore{capacity: capacity}
}

// Record menambah satu entry. Dipanggil controller setelah tiap operasi
// gerbang, sukses maupun ditolak.
func (s *GateLogStore) Record(passID, action, result, message, actor string) model.GateLogModel {
	if strings.TrimSpace(actor) == "" {
		actor = "public"
	}
	entry := model.GateLogModel{
		GateLogID:        uuid.New(),
		GateLogPassID:    strings.TrimSpace(passID),
		GateLogAction:    action,
		GateLogResult:    result,
		GateLogMessage:   message,
		GateLogActor:     actor,
		GateLogCreatedAt: clock.Timestamp(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, entry)
	if len(s.entries) > s.capacity {
		// geser sekali saja, bukan per-entry
		over := len(s.entries) - s.capacity
		s.entries = append(s.entries[:0], s.entries[over:]...)
	}
	return entry
}

// List mengembalikan entry terbaru dulu, opsional difilter pass_id.
// offset/limit untuk paging; limit <= 0 berarti semua.
func (s *GateLogStore) List(passID string, offset, limit int) ([]model.GateLogModel, int) {
	passID = strings.TrimSpace(passID)

	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := make([]model.GateLogModel, 0, len(s.entries))
	for i := len(s.entries) - 1; i >= 0; i-- { // newest first
		e := s.entries[i]
		if passID != "" && e.GateLogPassID != passID {
			continue
		}
		filtered = append(filtered, e)
	}

	total := len(filtered)
	if offset < 0 {
		offset = 0
	}
	if offset >= total {
		return []model.GateLogModel{}, total
	}
	end := total
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return filtered[offset:end], total
}

// Len: jumlah entry tersimpan saat ini (untuk test & health info).
func (s *GateLogStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
