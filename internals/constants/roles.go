package constants

import "fmt"

// Role tetap: hanya tiga peran di sistem gate pass
const (
	RoleAdmin     = "admin"
	RoleReception = "reception"
	RoleGuard     = "guard"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess    = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyReceptionCanAccess = "❌ Hanya reception atau admin yang boleh mengakses fitur %s."
	ErrOnlyGuardsCanAccess    = "❌ Hanya guard atau admin yang boleh mengakses fitur %s."
)

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorReception(feature string) string {
	return fmt.Sprintf(ErrOnlyReceptionCanAccess, feature)
}

func RoleErrorGuard(feature string) string {
	return fmt.Sprintf(ErrOnlyGuardsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleReception,
		RoleGuard,
	}

	ReceptionAndAbove = []string{
		RoleReception,
		RoleAdmin,
	}

	GuardAndAbove = []string{
		RoleGuard,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
