// file: internals/features/visitors/gatepass/service/errors.go
package service

import (
	"errors"
	"fmt"
)

// Taksonomi error registry & state machine. Semua recoverable,
// controller yang memetakan ke status HTTP.
var (
	// ErrNotFound: pass_id / id tidak dikenal.
	ErrNotFound = errors.New("visitor not found")

	// ErrPassExpired: pass sudah dipakai penuh (one-time use).
	ErrPassExpired = errors.New("gate pass is expired")
)

// ValidationError: field wajib kosong / input tidak valid.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func newValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// InvalidTransitionError: aturan state machine dilanggar
// (double check-in, check-out sebelum masuk, dsb).
type InvalidTransitionError struct {
	Msg string
}

func (e *InvalidTransitionError) Error() string { return e.Msg }

// RenderError: kolaborator QR gagal. Infrastruktur, bukan salah input;
// registrasi dibatalkan utuh (tidak ada record setengah jadi).
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string { return "qr render failed: " + e.Err.Error() }
func (e *RenderError) Unwrap() error { return e.Err }
