// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"gatepassku_backend/internals/configs"
	helper "gatepassku_backend/internals/helpers"

	d "gatepassku_backend/internals/features/users/auth/dto"
	"gatepassku_backend/internals/features/users/auth/service"
)

type AuthController struct {
	Users     *service.UserStore
	Blacklist *service.TokenBlacklist
	Validate  *validator.Validate
}

func NewAuthController(users *service.UserStore, bl *service.TokenBlacklist, v *validator.Validate) *AuthController {
	return &AuthController{Users: users, Blacklist: bl, Validate: v}
}

/* =========================
   Login (public, rate-limited)
   ========================= */

func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req d.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Invalid input format")
	}
	req.Normalize()
	if err := req.Validate(ac.Validate); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "ID and password required.")
	}

	user, err := ac.Users.Authenticate(req.ID, req.Password)
	if err != nil {
		// satu pesan untuk id salah maupun password salah
		return helper.JsonError(c, http.StatusBadRequest, "Invalid ID or password.")
	}

	token, err := service.CreateAccessToken(user, configs.JWTSecret, configs.AccessTokenTTL)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Failed to issue token")
	}

	return helper.JsonOK(c, "Login success", d.LoginResponse{
		ID:          user.UserID,
		Name:        user.UserName,
		Role:        user.UserRole,
		AccessToken: token,
	})
}

/* =========================
   Logout (authenticated)
   ========================= */

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	raw, _ := c.Locals("access_token").(string)
	if raw == "" {
		return helper.JsonError(c, http.StatusUnauthorized, "No token to revoke")
	}

	ac.Blacklist.Add(raw, service.TokenExpiry(raw))
	return helper.JsonOK(c, "Logged out", nil)
}

/* =========================
   Me (authenticated)
   ========================= */

func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(string)
	if !ok {
		return helper.JsonError(c, http.StatusUnauthorized, "Invalid user ID in context")
	}

	user, found := ac.Users.FindByID(userID)
	if !found {
		return helper.JsonError(c, http.StatusNotFound, "User not found")
	}

	return helper.JsonOK(c, "OK", user)
}
