// file: internals/features/visitors/gatepass/service/passid.go
package service

import (
	"fmt"

	"gatepassku_backend/internals/helpers/clock"
)

// Prefix pass id. Format lengkap "GATE-<tahun>-<seq 4 digit>" adalah
// kontrak yang tercetak di pass fisik, jangan diubah.
const passIDPrefix = "GATE"

// GeneratePassID membentuk pass id dari nomor urut registrasi.
// Sequence tidak pernah di-reset, jadi tahun + sequence selalu unik
// sepanjang umur registry (sequence 7 di 2024 → "GATE-2024-0007").
func GeneratePassID(seq int) string {
	return fmt.Sprintf("%s-%d-%04d", passIDPrefix, clock.Now().Year(), seq)
}
