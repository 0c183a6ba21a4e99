package handlers

import (
	"github.com/gofiber/fiber/v2"

	"junkdealer/internal/domain"
	"junkdealer/internal/log"
	"junkdealer/internal/services"
	"junkdealer/internal/validate"
)

type DealerHandler struct {
	Catalog *services.CatalogService
}

func (h *DealerHandler) List(c *fiber.Ctx) error {
	city := ""
	if q := c.Query("city"); q != "" {
		var ok bool
		if city, ok = validate.City(q); !ok {
			log.Security(c, "validation.fail", map[string]any{"field": "city"})
			return badRequest(c, "invalid city")
		}
	}
	ds, err := h.Catalog.Dealers(c.UserContext(), city)
	if err != nil {
		return fail(c, "dealer.list", err)
	}
	return c.JSON(ds)
}

func (h *DealerHandler) Get(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return badRequest(c, "invalid id")
	}
	d, err := h.Catalog.Dealer(c.UserContext(), id)
	if err != nil {
		return fail(c, "dealer.get", err)
	}
	return respond(c, d, "dealer")
}

func (h *DealerHandler) Create(c *fiber.Ctx) error {
	var in domain.NewDealer
	if !bind(c, &in) {
		return badRequest(c, "invalid JSON body")
	}
	d, err := h.Catalog.CreateDealer(c.UserContext(), in)
	if err != nil {
		return fail(c, "dealer.create", err)
	}
	log.Audit(c, "dealer.create", map[string]any{"dealer_id": d.ID})
	return c.Status(fiber.StatusCreated).JSON(d)
}
