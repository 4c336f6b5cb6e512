// file: internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"gatepassku_backend/internals/features/users/auth/model"
)

// ==========================
// Helpers (JWT claims)
// ==========================

func buildAccessClaims(user model.UserModel, now time.Time, ttl time.Duration) jwt.MapClaims {
	return jwt.MapClaims{
		"typ":       "access",
		"sub":       user.UserID,
		"id":        user.UserID,
		"user_name": user.UserName,
		"role":      user.UserRole,
		"iat":       now.Unix(),
		"exp":       now.Add(ttl).Unix(),
	}
}

// CreateAccessToken menerbitkan token HS256 untuk user yang sudah
// terautentikasi. Tidak ada refresh token. TTL 24 jam cukup untuk
// satu shift dan sistem memang reset tiap restart.
func CreateAccessToken(user model.UserModel, secret string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret is empty")
	}
	claims := buildAccessClaims(user, time.Now().UTC(), ttl)
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// TokenExpiry baca klaim exp tanpa verifikasi signature. Dipakai
// logout untuk tahu sampai kapan token harus ditahan di blacklist.
func TokenExpiry(rawToken string) time.Time {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, _, err := parser.ParseUnverified(rawToken, claims); err != nil {
		return time.Now().Add(24 * time.Hour) // konservatif: tahan sehari
	}
	if exp, ok := claims["exp"].(float64); ok {
		return time.Unix(int64(exp), 0)
	}
	return time.Now().Add(24 * time.Hour)
}
