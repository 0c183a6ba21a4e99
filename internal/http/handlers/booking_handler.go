package handlers

import (
	"github.com/gofiber/fiber/v2"

	"junkdealer/internal/domain"
	"junkdealer/internal/log"
	"junkdealer/internal/services"
)

type BookingHandler struct {
	Bookings *services.BookingService
}

func (h *BookingHandler) List(c *fiber.Ctx) error {
	bs, err := h.Bookings.List(c.UserContext())
	if err != nil {
		return fail(c, "booking.list", err)
	}
	return c.JSON(bs)
}

func (h *BookingHandler) ByUser(c *fiber.Ctx) error {
	uid, ok := idParam(c, "userId")
	if !ok {
		return badRequest(c, "invalid userId")
	}
	bs, err := h.Bookings.ListByUser(c.UserContext(), uid)
	if err != nil {
		return fail(c, "booking.list", err)
	}
	return c.JSON(bs)
}

func (h *BookingHandler) Get(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return badRequest(c, "invalid id")
	}
	b, err := h.Bookings.Get(c.UserContext(), id)
	if err != nil {
		return fail(c, "booking.get", err)
	}
	return respond(c, b, "booking")
}

func (h *BookingHandler) Create(c *fiber.Ctx) error {
	var in domain.NewBooking
	if !bind(c, &in) {
		return badRequest(c, "invalid JSON body")
	}
	b, err := h.Bookings.Create(c.UserContext(), in)
	if err != nil {
		return fail(c, "booking.create", err)
	}
	log.Audit(c, "booking.create", map[string]any{"booking_id": b.ID, "user_id": b.UserID})
	return c.Status(fiber.StatusCreated).JSON(b)
}

func (h *BookingHandler) UpdateStatus(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return badRequest(c, "invalid id")
	}
	var in struct {
		Status string `json:"status"`
	}
	if !bind(c, &in) {
		return badRequest(c, "invalid JSON body")
	}
	b, err := h.Bookings.UpdateStatus(c.UserContext(), id, in.Status)
	if err != nil {
		return fail(c, "booking.status", err)
	}
	if b != nil {
		log.Audit(c, "booking.status", map[string]any{"booking_id": id, "status": b.Status})
	}
	return respond(c, b, "booking")
}
