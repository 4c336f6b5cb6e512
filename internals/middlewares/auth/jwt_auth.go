package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

type AuthJWTOpts struct {
	Secret              string
	BlacklistChecker    func(rawToken string) bool // return true if blacklisted
	AllowCookieFallback bool                       // pakai cookie access_token jika tidak ada Bearer
}

// AuthJWT memverifikasi access token dan mengisi locals:
// user_id, user_name, userRole, access_token (raw, untuk logout).
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret wajib diisi")
	}

	return func(c *fiber.Ctx) error {
		// 1) Ambil token: Authorization: Bearer xxx (atau cookie jika diizinkan)
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else if o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		// 2) Cek blacklist (token yang sudah logout)
		if o.BlacklistChecker != nil && o.BlacklistChecker(raw) {
			return fiber.NewError(fiber.StatusUnauthorized, "Token revoked")
		}

		// 3) Parse + verifikasi algoritma
		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}

		// token refresh tidak boleh dipakai sebagai access token
		if typ := strClaim(claims, "typ"); typ != "" && typ != "access" {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token type")
		}

		c.Locals("jwt_claims", claims)
		c.Locals("access_token", raw)

		if id := strClaim(claims, "id"); id != "" {
			c.Locals("user_id", id)
		} else if sub := strClaim(claims, "sub"); sub != "" {
			c.Locals("user_id", sub)
		}
		if name := strClaim(claims, "user_name"); name != "" {
			c.Locals("user_name", name)
		}
		if role := strClaim(claims, "role"); role != "" {
			c.Locals("userRole", role)
		}

		return c.Next()
	}
}

func strClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}
