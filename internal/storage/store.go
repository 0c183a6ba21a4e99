// Package storage defines the data-access contract shared by every backing store.
//
// Lookups return (nil, nil) when the record does not exist: absence is not an
// error. Update operations return (nil, nil) for unknown ids and never create
// records. Returned records are copies owned by the caller.
package storage

import (
	"context"
	"errors"
	"time"

	"junkdealer/internal/domain"
)

var (
	// ErrDuplicateUser is returned when a username or email is already taken.
	ErrDuplicateUser = errors.New("username or email already registered")
	// ErrUnknownParent is returned when a category references a parent that does not exist.
	ErrUnknownParent = errors.New("parent category does not exist")
)

type UserStore interface {
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	CreateUser(ctx context.Context, in domain.NewUser) (*domain.User, error)
	UpdateUserContact(ctx context.Context, id int64, c domain.UserContact) (*domain.User, error)
}

type CategoryStore interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListCategoriesByParent(ctx context.Context, parentID int64) ([]domain.Category, error)
	GetCategory(ctx context.Context, id int64) (*domain.Category, error)
	GetCategoryByName(ctx context.Context, name string) (*domain.Category, error)
	CreateCategory(ctx context.Context, in domain.NewCategory) (*domain.Category, error)
	// UpdateCategoryPrice sets the current price and appends a price history entry.
	UpdateCategoryPrice(ctx context.Context, id int64, price string) (*domain.Category, error)
	ListPriceHistory(ctx context.Context, categoryID int64) ([]domain.PriceHistory, error)
}

type BookingStore interface {
	ListBookings(ctx context.Context) ([]domain.Booking, error)
	ListBookingsByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
	GetBooking(ctx context.Context, id int64) (*domain.Booking, error)
	CreateBooking(ctx context.Context, in domain.NewBooking) (*domain.Booking, error)
	UpdateBookingStatus(ctx context.Context, id int64, status string) (*domain.Booking, error)
}

type DealerStore interface {
	ListDealers(ctx context.Context) ([]domain.Dealer, error)
	ListDealersByCity(ctx context.Context, city string) ([]domain.Dealer, error)
	GetDealer(ctx context.Context, id int64) (*domain.Dealer, error)
	CreateDealer(ctx context.Context, in domain.NewDealer) (*domain.Dealer, error)
}

type ProductStore interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListProductsByCategory(ctx context.Context, category string) ([]domain.Product, error)
	ListProductsBySeller(ctx context.Context, sellerID int64) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	CreateProduct(ctx context.Context, in domain.NewProduct) (*domain.Product, error)
	UpdateProductAvailability(ctx context.Context, id int64, available bool) (*domain.Product, error)
}

type CartStore interface {
	ListCartItems(ctx context.Context, userID int64) ([]domain.CartItem, error)
	AddToCart(ctx context.Context, in domain.NewCartItem) (*domain.CartItem, error)
	UpdateCartItemQuantity(ctx context.Context, id int64, quantity int) (*domain.CartItem, error)
	// RemoveFromCart reports whether an item was deleted.
	RemoveFromCart(ctx context.Context, id int64) (bool, error)
	// ClearCart reports true even when the user had nothing in the cart.
	ClearCart(ctx context.Context, userID int64) (bool, error)
}

type NotificationStore interface {
	ListNotifications(ctx context.Context, userID int64) ([]domain.Notification, error)
	ListUnreadNotifications(ctx context.Context, userID int64) ([]domain.Notification, error)
	CreateNotification(ctx context.Context, in domain.NewNotification) (*domain.Notification, error)
	MarkNotificationRead(ctx context.Context, id int64) (*domain.Notification, error)
	MarkAllNotificationsRead(ctx context.Context, userID int64) (bool, error)
}

// Store is the full contract. Exactly one implementation is active per process.
type Store interface {
	UserStore
	CategoryStore
	BookingStore
	DealerStore
	ProductStore
	CartStore
	NotificationStore
}

// Now is the timestamp stores stamp on new records. Microsecond precision keeps
// values identical after a round trip through either database.
func Now() time.Time { return time.Now().UTC().Truncate(time.Microsecond) }
