package handlers

import (
	"github.com/gofiber/fiber/v2"

	"junkdealer/internal/domain"
	"junkdealer/internal/services"
)

type NotificationHandler struct {
	Notes *services.NotificationService
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	uid, ok := idParam(c, "userId")
	if !ok {
		return badRequest(c, "invalid userId")
	}
	ns, err := h.Notes.List(c.UserContext(), uid)
	if err != nil {
		return fail(c, "notification.list", err)
	}
	return c.JSON(ns)
}

func (h *NotificationHandler) Unread(c *fiber.Ctx) error {
	uid, ok := idParam(c, "userId")
	if !ok {
		return badRequest(c, "invalid userId")
	}
	ns, err := h.Notes.Unread(c.UserContext(), uid)
	if err != nil {
		return fail(c, "notification.unread", err)
	}
	return c.JSON(ns)
}

func (h *NotificationHandler) Create(c *fiber.Ctx) error {
	var in domain.NewNotification
	if !bind(c, &in) {
		return badRequest(c, "invalid JSON body")
	}
	n, err := h.Notes.Create(c.UserContext(), in)
	if err != nil {
		return fail(c, "notification.create", err)
	}
	return c.Status(fiber.StatusCreated).JSON(n)
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return badRequest(c, "invalid id")
	}
	n, err := h.Notes.MarkRead(c.UserContext(), id)
	if err != nil {
		return fail(c, "notification.read", err)
	}
	return respond(c, n, "notification")
}

func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	uid, ok := idParam(c, "userId")
	if !ok {
		return badRequest(c, "invalid userId")
	}
	done, err := h.Notes.MarkAllRead(c.UserContext(), uid)
	if err != nil {
		return fail(c, "notification.read_all", err)
	}
	return c.JSON(fiber.Map{"updated": done})
}
