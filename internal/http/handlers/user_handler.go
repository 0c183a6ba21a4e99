package handlers

import (
	"github.com/gofiber/fiber/v2"

	"junkdealer/internal/domain"
	"junkdealer/internal/log"
	"junkdealer/internal/services"
	"junkdealer/internal/validate"
)

type UserHandler struct {
	Auth *services.AuthService
}

func (h *UserHandler) Register(c *fiber.Ctx) error {
	var in services.NewAccount
	if !bind(c, &in) {
		return badRequest(c, "invalid JSON body")
	}
	u, err := h.Auth.Register(c.UserContext(), in)
	if err != nil {
		return fail(c, "auth.register", err)
	}
	log.Audit(c, "auth.register", map[string]any{"user_id": u.ID})
	return c.Status(fiber.StatusCreated).JSON(u)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *UserHandler) Login(c *fiber.Ctx) error {
	var in loginRequest
	if !bind(c, &in) {
		return badRequest(c, "invalid JSON body")
	}
	email, ok := validate.Email(in.Email)
	if !ok || in.Password == "" {
		return fail(c, "auth.login", services.ErrBadCreds)
	}
	u, err := h.Auth.Login(c.UserContext(), email, in.Password)
	if err != nil {
		return fail(c, "auth.login", err)
	}
	log.Audit(c, "auth.login.success", map[string]any{"user_id": u.ID})
	return c.JSON(u)
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return badRequest(c, "invalid id")
	}
	u, err := h.Auth.User(c.UserContext(), id)
	if err != nil {
		return fail(c, "user.get", err)
	}
	return respond(c, u, "user")
}

func (h *UserHandler) UpdateContact(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return badRequest(c, "invalid id")
	}
	var in domain.UserContact
	if !bind(c, &in) {
		return badRequest(c, "invalid JSON body")
	}
	u, err := h.Auth.UpdateContact(c.UserContext(), id, in)
	if err != nil {
		return fail(c, "user.update", err)
	}
	if u != nil {
		log.Audit(c, "user.update", map[string]any{"user_id": id})
	}
	return respond(c, u, "user")
}
