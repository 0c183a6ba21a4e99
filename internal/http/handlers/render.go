package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"junkdealer/internal/log"
	"junkdealer/internal/services"
	"junkdealer/internal/storage"
	"junkdealer/internal/validate"
)

const genericError = "Something went wrong. Please try again."

// respond writes v as JSON, or a 404 when v is a nil pointer from a lookup.
func respond[T any](c *fiber.Ctx, v *T, what string) error {
	if v == nil {
		return notFound(c, what)
	}
	return c.JSON(v)
}

func notFound(c *fiber.Ctx, what string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": what + " not found"})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

// idParam reads a positive integer path parameter.
func idParam(c *fiber.Ctx, name string) (int64, bool) {
	return validate.ID(c.Params(name))
}

func bind(c *fiber.Ctx, v any) bool {
	return c.BodyParser(v) == nil
}

// fail maps service and store errors onto status codes. Anything it does not
// recognise is logged and answered with a generic 500.
func fail(c *fiber.Ctx, action string, err error) error {
	var ve validator.ValidationErrors
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation failed", "fields": validate.Errors(ve)})
	case errors.Is(err, storage.ErrDuplicateUser):
		log.Security(c, action+".duplicate", nil)
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, storage.ErrUnknownParent),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidQty),
		errors.Is(err, services.ErrInvalidPrice):
		return badRequest(c, err.Error())
	case errors.Is(err, services.ErrUnknownUser),
		errors.Is(err, services.ErrUnknownCategory),
		errors.Is(err, services.ErrUnknownProduct):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrUnavailable):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrBadCreds):
		log.Security(c, action+".fail", nil)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}
	log.Error(c, action, err, nil)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": genericError})
}

// ErrorHandler answers errors that escape a handler. Client errors keep their
// message; server errors never expose internal text.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	if code < fiber.StatusInternalServerError {
		return c.Status(code).JSON(fiber.Map{"error": fe.Message})
	}
	log.Error(c, "server.error", err, nil)
	return c.Status(code).JSON(fiber.Map{"error": genericError})
}
