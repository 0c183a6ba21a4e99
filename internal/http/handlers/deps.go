package handlers

import (
	"junkdealer/internal/services"
	"junkdealer/internal/storage"
)

type Deps struct {
	UserHandler         *UserHandler
	CategoryHandler     *CategoryHandler
	DealerHandler       *DealerHandler
	ProductHandler      *ProductHandler
	BookingHandler      *BookingHandler
	CartHandler         *CartHandler
	NotificationHandler *NotificationHandler
}

// NewDeps wires every handler to the given store, whichever backing it is.
func NewDeps(store storage.Store) *Deps {
	authSvc := services.NewAuthService(store)
	catalogSvc := services.NewCatalogService(store, store, store)
	bookingSvc := services.NewBookingService(store, store, store, store)
	cartSvc := services.NewCartService(store, store)
	noteSvc := services.NewNotificationService(store)

	return &Deps{
		UserHandler:         &UserHandler{Auth: authSvc},
		CategoryHandler:     &CategoryHandler{Catalog: catalogSvc},
		DealerHandler:       &DealerHandler{Catalog: catalogSvc},
		ProductHandler:      &ProductHandler{Catalog: catalogSvc},
		BookingHandler:      &BookingHandler{Bookings: bookingSvc},
		CartHandler:         &CartHandler{Cart: cartSvc},
		NotificationHandler: &NotificationHandler{Notes: noteSvc},
	}
}
