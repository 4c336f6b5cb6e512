// file: internals/features/users/auth/service/user_store.go
package service

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"gatepassku_backend/internals/configs"
	"gatepassku_backend/internals/constants"
	"gatepassku_backend/internals/features/users/auth/model"
)

// ErrInvalidCredentials: id tidak dikenal ATAU password salah.
// Sengaja satu error supaya response login tidak membocorkan
// id mana yang valid.
var ErrInvalidCredentials = errors.New("invalid id or password")

// UserStore: daftar kredensial tetap, read-only setelah seeding.
type UserStore struct {
	byID map[string]*model.UserModel
}

type seedUser struct {
	id       string
	name     string
	role     string
	password string // default; bisa dioverride ENV
	envKey   string
}

// Tiga akun demo yang sama dengan sistem lama. Password default hanya
// untuk dev; di deployment wajib dioverride lewat ENV.
var seedUsers = []seedUser{
	{id: "admin1", name: "Main Admin", role: constants.RoleAdmin, password: "admin123", envKey: "GATE_ADMIN_PASSWORD"},
	{id: "reception1", name: "Front Desk", role: constants.RoleReception, password: "recept123", envKey: "GATE_RECEPTION_PASSWORD"},
	{id: "guard1", name: "Main Gate Guard", role: constants.RoleGuard, password: "guard123", envKey: "GATE_GUARD_PASSWORD"},
}

// SeedUserStore hash semua password saat start. Gagal hash = fatal
// di pemanggil (tanpa user, service tidak berguna).
func SeedUserStore() (*UserStore, error) {
	s := &UserStore{byID: make(map[string]*model.UserModel, len(seedUsers))}
	for _, su := range seedUsers {
		plain := configs.GetEnv(su.envKey, su.password)
		hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		s.byID[su.id] = &model.UserModel{
			UserID:       su.id,
			UserName:     su.name,
			UserRole:     su.role,
			PasswordHash: hash,
		}
	}
	return s, nil
}

func (s *UserStore) FindByID(id string) (model.UserModel, bool) {
	u, ok := s.byID[id]
	if !ok {
		return model.UserModel{}, false
	}
	return *u, true
}

// Authenticate cek id + password. Dipakai endpoint login saja.
func (s *UserStore) Authenticate(id, password string) (model.UserModel, error) {
	u, ok := s.byID[id]
	if !ok {
		return model.UserModel{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)); err != nil {
		return model.UserModel{}, ErrInvalidCredentials
	}
	return *u, nil
}
