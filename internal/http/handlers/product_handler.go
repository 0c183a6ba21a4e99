package handlers

import (
	"github.com/gofiber/fiber/v2"

	"junkdealer/internal/domain"
	"junkdealer/internal/log"
	"junkdealer/internal/services"
	"junkdealer/internal/validate"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

// List accepts ?category=<label> or ?seller=<id>.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	f := services.ProductFilter{Category: c.Query("category")}
	if q := c.Query("seller"); q != "" {
		id, ok := validate.ID(q)
		if !ok {
			log.Security(c, "validation.fail", map[string]any{"field": "seller"})
			return badRequest(c, "invalid seller")
		}
		f.SellerID = id
	}
	ps, err := h.Catalog.Products(c.UserContext(), f)
	if err != nil {
		return fail(c, "product.list", err)
	}
	return c.JSON(ps)
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "product"})
		return badRequest(c, "invalid id")
	}
	p, err := h.Catalog.Product(c.UserContext(), id)
	if err != nil {
		return fail(c, "product.get", err)
	}
	return respond(c, p, "product")
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in domain.NewProduct
	if !bind(c, &in) {
		return badRequest(c, "invalid JSON body")
	}
	p, err := h.Catalog.CreateProduct(c.UserContext(), in)
	if err != nil {
		return fail(c, "product.create", err)
	}
	log.Audit(c, "product.create", map[string]any{"product_id": p.ID, "seller_id": p.SellerID})
	return c.Status(fiber.StatusCreated).JSON(p)
}

func (h *ProductHandler) SetAvailability(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return badRequest(c, "invalid id")
	}
	var in struct {
		Available *bool `json:"available"`
	}
	if !bind(c, &in) || in.Available == nil {
		return badRequest(c, "available is required")
	}
	p, err := h.Catalog.SetAvailability(c.UserContext(), id, *in.Available)
	if err != nil {
		return fail(c, "product.availability", err)
	}
	return respond(c, p, "product")
}
