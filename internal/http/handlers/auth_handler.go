package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"userbase/internal/domain"
	applog "userbase/internal/log"
	"userbase/internal/services"
	"userbase/internal/validate"
)

type AuthHandler struct {
	Auth *services.AuthService
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}
	name, ok := validate.Name(req.Name)
	if !ok {
		return fail(c, fiber.StatusBadRequest, "name is required")
	}
	email, ok := validate.Email(req.Email)
	if !ok {
		return fail(c, fiber.StatusBadRequest, "enter a valid email")
	}
	if !validate.Password(req.Password) {
		return fail(c, fiber.StatusBadRequest, "password must be 6-72 characters")
	}

	res, err := h.Auth.Register(name, email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			applog.Security(c, "auth.register.conflict", map[string]any{"email": email})
			return fail(c, fiber.StatusBadRequest, "Email already registered")
		}
		return failErr(c, "auth.register.fail", err)
	}

	applog.Audit(c, "auth.register.success", map[string]any{"email": email, "user_id": res.User.ID})
	return c.Status(fiber.StatusCreated).JSON(res)
}

// POST /auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}
	// Format failures get the same answer as wrong credentials.
	email, ok := validate.Email(req.Email)
	if !ok || !validate.Password(req.Password) {
		applog.Security(c, "auth.login.fail", map[string]any{"email": req.Email, "reason": "bad_format"})
		return fail(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	res, err := h.Auth.Login(email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			applog.Security(c, "auth.login.fail", map[string]any{"email": email})
			return fail(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		return failErr(c, "auth.login.fail", err)
	}

	applog.Audit(c, "auth.login.success", map[string]any{"email": email, "user_id": res.User.ID})
	return c.JSON(res)
}

// GET /auth/profile (behind RequireAuth)
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(string)
	if userID == "" {
		return fail(c, fiber.StatusUnauthorized, "User not authenticated")
	}
	u, err := h.Auth.Profile(userID)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return fail(c, fiber.StatusUnauthorized, "User not found")
		}
		return failErr(c, "auth.profile.fail", err)
	}
	return c.JSON(u)
}
