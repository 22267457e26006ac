package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "userbase/internal/log"
	"userbase/internal/services"
	"userbase/internal/validate"
)

type UserHandler struct {
	Users *services.UserService
}

type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// GET /users
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.Users.ListAll()
	if err != nil {
		return failErr(c, "users.list.fail", err)
	}
	return c.JSON(users)
}

// GET /users/:id
func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, fiber.StatusBadRequest, "invalid user id")
	}
	u, err := h.Users.GetByID(id)
	if err != nil {
		return failErr(c, "users.get.fail", err)
	}
	return c.JSON(u)
}

// POST /users
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req createUserRequest
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

	u, err := h.Users.Create(name, email, req.Password)
	if err != nil {
		return failErr(c, "users.create.fail", err)
	}
	applog.Audit(c, "users.create", map[string]any{"user_id": u.ID})
	return c.Status(fiber.StatusCreated).JSON(u)
}

// PUT /users/:id
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, fiber.StatusBadRequest, "invalid user id")
	}
	var req updateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}

	in := services.UserUpdate{Password: req.Password}
	if req.Name != nil {
		name, ok := validate.Name(*req.Name)
		if !ok {
			return fail(c, fiber.StatusBadRequest, "name must not be empty")
		}
		in.Name = &name
	}
	if req.Email != nil {
		email, ok := validate.Email(*req.Email)
		if !ok {
			return fail(c, fiber.StatusBadRequest, "enter a valid email")
		}
		in.Email = &email
	}
	if req.Password != nil && !validate.Password(*req.Password) {
		return fail(c, fiber.StatusBadRequest, "password must be 6-72 characters")
	}

	u, err := h.Users.Update(id, in)
	if err != nil {
		return failErr(c, "users.update.fail", err)
	}
	applog.Audit(c, "users.update", map[string]any{"user_id": u.ID})
	return c.JSON(u)
}

// DELETE /users/:id
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return fail(c, fiber.StatusBadRequest, "invalid user id")
	}
	if err := h.Users.Remove(id); err != nil {
		return failErr(c, "users.delete.fail", err)
	}
	applog.Audit(c, "users.delete", map[string]any{"user_id": id})
	return c.JSON(fiber.Map{"deleted": true})
}
