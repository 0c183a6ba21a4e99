package handlers

import (
	"github.com/gofiber/fiber/v2"

	"junkdealer/internal/domain"
	"junkdealer/internal/log"
	"junkdealer/internal/services"
	"junkdealer/internal/validate"
)

type CategoryHandler struct {
	Catalog *services.CatalogService
}

// List serves every category, or the children of ?parent=.
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	var parent *int64
	if q := c.Query("parent"); q != "" {
		id, ok := validate.ID(q)
		if !ok {
			log.Security(c, "validation.fail", map[string]any{"field": "parent"})
			return badRequest(c, "invalid parent")
		}
		parent = &id
	}
	cats, err := h.Catalog.Categories(c.UserContext(), parent)
	if err != nil {
		return fail(c, "category.list", err)
	}
	return c.JSON(cats)
}

func (h *CategoryHandler) Get(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return badRequest(c, "invalid id")
	}
	cat, err := h.Catalog.Category(c.UserContext(), id)
	if err != nil {
		return fail(c, "category.get", err)
	}
	return respond(c, cat, "category")
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in domain.NewCategory
	if !bind(c, &in) {
		return badRequest(c, "invalid JSON body")
	}
	cat, err := h.Catalog.CreateCategory(c.UserContext(), in)
	if err != nil {
		return fail(c, "category.create", err)
	}
	log.Audit(c, "category.create", map[string]any{"category_id": cat.ID})
	return c.Status(fiber.StatusCreated).JSON(cat)
}

func (h *CategoryHandler) UpdatePrice(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return badRequest(c, "invalid id")
	}
	var in struct {
		Price string `json:"price"`
	}
	if !bind(c, &in) {
		return badRequest(c, "invalid JSON body")
	}
	cat, err := h.Catalog.UpdatePrice(c.UserContext(), id, in.Price)
	if err != nil {
		return fail(c, "category.price", err)
	}
	if cat != nil {
		log.Audit(c, "category.price", map[string]any{"category_id": id, "price": *cat.CurrentPrice})
	}
	return respond(c, cat, "category")
}

func (h *CategoryHandler) Prices(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return badRequest(c, "invalid id")
	}
	hist, err := h.Catalog.PriceHistory(c.UserContext(), id)
	if err != nil {
		return fail(c, "category.prices", err)
	}
	return c.JSON(hist)
}
