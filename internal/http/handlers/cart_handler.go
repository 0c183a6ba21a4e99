package handlers

import (
	"github.com/gofiber/fiber/v2"

	"junkdealer/internal/domain"
	"junkdealer/internal/services"
)

type CartHandler struct {
	Cart *services.CartService
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	uid, ok := idParam(c, "userId")
	if !ok {
		return badRequest(c, "invalid userId")
	}
	cv, err := h.Cart.View(c.UserContext(), uid)
	if err != nil {
		return fail(c, "cart.view", err)
	}
	return c.JSON(cv)
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	var in domain.NewCartItem
	if !bind(c, &in) {
		return badRequest(c, "invalid JSON body")
	}
	it, err := h.Cart.Add(c.UserContext(), in)
	if err != nil {
		return fail(c, "cart.add", err)
	}
	return c.Status(fiber.StatusCreated).JSON(it)
}

func (h *CartHandler) UpdateQty(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return badRequest(c, "invalid id")
	}
	var in struct {
		Quantity int `json:"quantity"`
	}
	if !bind(c, &in) {
		return badRequest(c, "invalid JSON body")
	}
	it, err := h.Cart.UpdateQty(c.UserContext(), id, in.Quantity)
	if err != nil {
		return fail(c, "cart.update", err)
	}
	return respond(c, it, "cart item")
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return badRequest(c, "invalid id")
	}
	removed, err := h.Cart.Remove(c.UserContext(), id)
	if err != nil {
		return fail(c, "cart.remove", err)
	}
	if !removed {
		return notFound(c, "cart item")
	}
	return c.JSON(fiber.Map{"removed": true})
}

func (h *CartHandler) Clear(c *fiber.Ctx) error {
	uid, ok := idParam(c, "userId")
	if !ok {
		return badRequest(c, "invalid userId")
	}
	cleared, err := h.Cart.Clear(c.UserContext(), uid)
	if err != nil {
		return fail(c, "cart.clear", err)
	}
	return c.JSON(fiber.Map{"cleared": cleared})
}
