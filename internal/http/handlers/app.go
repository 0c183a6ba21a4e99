package handlers

import (
	"io"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"junkdealer/internal/log"
)

// Limits sets the request rate caps. Zero values fall back to the defaults.
type Limits struct {
	Global       int
	GlobalWindow time.Duration
	Login        int
	LoginWindow  time.Duration
}

func (l Limits) withDefaults() Limits {
	if l.Global <= 0 {
		l.Global = 60
	}
	if l.GlobalWindow <= 0 {
		l.GlobalWindow = time.Minute
	}
	if l.Login <= 0 {
		l.Login = 5
	}
	if l.LoginWindow <= 0 {
		l.LoginWindow = 10 * time.Minute
	}
	return l
}

// NewApp builds the JSON API with its middleware chain and every route.
func NewApp(d *Deps, lim Limits) *fiber.App {
	lim = lim.withDefaults()
	app := fiber.New(fiber.Config{
		AppName:      "junkdealer",
		BodyLimit:    1 << 20, // 1 MiB
		ErrorHandler: ErrorHandler,
	})

	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	// Latency only; the access line itself is written by log.Access.
	app.Use(logger.New(logger.Config{
		Format: "${latency}",
		Output: io.Discard,
		Done: func(c *fiber.Ctx, latency []byte) {
			log.Access(c, strings.TrimSpace(string(latency)))
		},
	}))
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        lim.Global,
		Expiration: lim.GlobalWindow,
		Next:       func(c *fiber.Ctx) bool { return c.Path() == "/healthz" },
		LimitReached: func(c *fiber.Ctx) error {
			log.Security(c, "rate.global.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
		},
	}))

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", d.UserHandler.Register)
	auth.Post("/login", limiter.New(limiter.Config{
		Max:          lim.Login,
		Expiration:   lim.LoginWindow,
		KeyGenerator: func(c *fiber.Ctx) string { return c.IP() + "|login" },
		LimitReached: func(c *fiber.Ctx) error {
			log.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too many attempts, please try again later"})
		},
	}), d.UserHandler.Login)

	api.Get("/users/:id", d.UserHandler.Get)
	api.Patch("/users/:id", d.UserHandler.UpdateContact)

	api.Get("/categories", d.CategoryHandler.List)
	api.Post("/categories", d.CategoryHandler.Create)
	api.Get("/categories/:id", d.CategoryHandler.Get)
	api.Patch("/categories/:id/price", d.CategoryHandler.UpdatePrice)
	api.Get("/categories/:id/prices", d.CategoryHandler.Prices)

	api.Get("/dealers", d.DealerHandler.List)
	api.Post("/dealers", d.DealerHandler.Create)
	api.Get("/dealers/:id", d.DealerHandler.Get)

	api.Get("/products", d.ProductHandler.List)
	api.Post("/products", d.ProductHandler.Create)
	api.Get("/products/:id", d.ProductHandler.Get)
	api.Patch("/products/:id/availability", d.ProductHandler.SetAvailability)

	// /user/:userId routes go first so "user" is never parsed as an id.
	api.Get("/bookings", d.BookingHandler.List)
	api.Post("/bookings", d.BookingHandler.Create)
	api.Get("/bookings/user/:userId", d.BookingHandler.ByUser)
	api.Get("/bookings/:id", d.BookingHandler.Get)
	api.Patch("/bookings/:id/status", d.BookingHandler.UpdateStatus)

	api.Post("/cart", d.CartHandler.Add)
	api.Delete("/cart/user/:userId", d.CartHandler.Clear)
	api.Get("/cart/:userId", d.CartHandler.View)
	api.Patch("/cart/:id", d.CartHandler.UpdateQty)
	api.Delete("/cart/:id", d.CartHandler.Remove)

	api.Post("/notifications", d.NotificationHandler.Create)
	api.Patch("/notifications/user/:userId/read-all", d.NotificationHandler.MarkAllRead)
	api.Get("/notifications/:userId", d.NotificationHandler.List)
	api.Get("/notifications/:userId/unread", d.NotificationHandler.Unread)
	api.Patch("/notifications/:id/read", d.NotificationHandler.MarkRead)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	})
	return app
}
