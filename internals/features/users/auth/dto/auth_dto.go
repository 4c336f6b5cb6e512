// file: internals/features/users/auth/dto/auth_dto.go
package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

type LoginRequest struct {
	ID       string `json:"id" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=128"`
}

func (r *LoginRequest) Normalize() {
	r.ID = strings.TrimSpace(r.ID)
}

func (r *LoginRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

// LoginResponse: identitas user + access token. Field id/name/role
// mengikuti response login sistem lama.
type LoginResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	AccessToken string `json:"access_token"`
}
