// file: internals/features/users/auth/model/user_model.go
package model

// UserModel: kredensial tetap (admin / reception / guard).
// Daftar user di-seed saat proses start dan tidak pernah berubah
// saat runtime, tidak ada register / ganti password.
type UserModel struct {
	UserID   string `json:"id"`
	UserName string `json:"name"` // display name, mis. "Main Gate Guard"
	UserRole string `json:"role"` // admin | reception | guard

	// bcrypt hash; plaintext dibuang setelah seeding
	PasswordHash []byte `json:"-"`
}
