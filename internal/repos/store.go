package repos

import (
	"context"

	"github.com/jmoiron/sqlx"

	"junkdealer/internal/domain"
	"junkdealer/internal/storage"
)

var _ storage.Store = (*Store)(nil)

// Store serves the storage contract from a relational database by delegating
// to one repo per table group.
type Store struct {
	Users         *UserRepo
	Categories    *CategoryRepo
	Bookings      *BookingRepo
	Dealers       *DealerRepo
	Products      *ProductRepo
	Cart          *CartRepo
	Notifications *NotificationRepo
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{
		Users:         NewUserRepo(db),
		Categories:    NewCategoryRepo(db),
		Bookings:      NewBookingRepo(db),
		Dealers:       NewDealerRepo(db),
		Products:      NewProductRepo(db),
		Cart:          NewCartRepo(db),
		Notifications: NewNotificationRepo(db),
	}
}

func (s *Store) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.Users.ByID(ctx, id)
}
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.Users.ByEmail(ctx, email)
}
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.Users.ByUsername(ctx, username)
}
func (s *Store) CreateUser(ctx context.Context, in domain.NewUser) (*domain.User, error) {
	return s.Users.Create(ctx, in)
}
func (s *Store) UpdateUserContact(ctx context.Context, id int64, c domain.UserContact) (*domain.User, error) {
	return s.Users.UpdateContact(ctx, id, c)
}

func (s *Store) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.Categories.List(ctx)
}
func (s *Store) ListCategoriesByParent(ctx context.Context, parentID int64) ([]domain.Category, error) {
	return s.Categories.ListByParent(ctx, parentID)
}
func (s *Store) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	return s.Categories.Get(ctx, id)
}
func (s *Store) GetCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	return s.Categories.ByName(ctx, name)
}
func (s *Store) CreateCategory(ctx context.Context, in domain.NewCategory) (*domain.Category, error) {
	return s.Categories.Create(ctx, in)
}
func (s *Store) UpdateCategoryPrice(ctx context.Context, id int64, price string) (*domain.Category, error) {
	return s.Categories.UpdatePrice(ctx, id, price)
}
func (s *Store) ListPriceHistory(ctx context.Context, categoryID int64) ([]domain.PriceHistory, error) {
	return s.Categories.PriceHistory(ctx, categoryID)
}

func (s *Store) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.Bookings.List(ctx)
}
func (s *Store) ListBookingsByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return s.Bookings.ListByUser(ctx, userID)
}
func (s *Store) GetBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.Bookings.Get(ctx, id)
}
func (s *Store) CreateBooking(ctx context.Context, in domain.NewBooking) (*domain.Booking, error) {
	return s.Bookings.Create(ctx, in)
}
func (s *Store) UpdateBookingStatus(ctx context.Context, id int64, status string) (*domain.Booking, error) {
	return s.Bookings.UpdateStatus(ctx, id, status)
}

func (s *Store) ListDealers(ctx context.Context) ([]domain.Dealer, error) {
	return s.Dealers.List(ctx)
}
func (s *Store) ListDealersByCity(ctx context.Context, city string) ([]domain.Dealer, error) {
	return s.Dealers.ListByCity(ctx, city)
}
func (s *Store) GetDealer(ctx context.Context, id int64) (*domain.Dealer, error) {
	return s.Dealers.Get(ctx, id)
}
func (s *Store) CreateDealer(ctx context.Context, in domain.NewDealer) (*domain.Dealer, error) {
	return s.Dealers.Create(ctx, in)
}

func (s *Store) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.Products.List(ctx)
}
func (s *Store) ListProductsByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return s.Products.ListByCategory(ctx, category)
}
func (s *Store) ListProductsBySeller(ctx context.Context, sellerID int64) ([]domain.Product, error) {
	return s.Products.ListBySeller(ctx, sellerID)
}
func (s *Store) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return s.Products.Get(ctx, id)
}
func (s *Store) CreateProduct(ctx context.Context, in domain.NewProduct) (*domain.Product, error) {
	return s.Products.Create(ctx, in)
}
func (s *Store) UpdateProductAvailability(ctx context.Context, id int64, available bool) (*domain.Product, error) {
	return s.Products.UpdateAvailability(ctx, id, available)
}

func (s *Store) ListCartItems(ctx context.Context, userID int64) ([]domain.CartItem, error) {
	return s.Cart.Items(ctx, userID)
}
func (s *Store) AddToCart(ctx context.Context, in domain.NewCartItem) (*domain.CartItem, error) {
	return s.Cart.Add(ctx, in)
}
func (s *Store) UpdateCartItemQuantity(ctx context.Context, id int64, quantity int) (*domain.CartItem, error) {
	return s.Cart.UpdateQty(ctx, id, quantity)
}
func (s *Store) RemoveFromCart(ctx context.Context, id int64) (bool, error) {
	return s.Cart.Remove(ctx, id)
}
func (s *Store) ClearCart(ctx context.Context, userID int64) (bool, error) {
	return s.Cart.Clear(ctx, userID)
}

func (s *Store) ListNotifications(ctx context.Context, userID int64) ([]domain.Notification, error) {
	return s.Notifications.ListByUser(ctx, userID)
}
func (s *Store) ListUnreadNotifications(ctx context.Context, userID int64) ([]domain.Notification, error) {
	return s.Notifications.ListUnread(ctx, userID)
}
func (s *Store) CreateNotification(ctx context.Context, in domain.NewNotification) (*domain.Notification, error) {
	return s.Notifications.Create(ctx, in)
}
func (s *Store) MarkNotificationRead(ctx context.Context, id int64) (*domain.Notification, error) {
	return s.Notifications.MarkRead(ctx, id)
}
func (s *Store) MarkAllNotificationsRead(ctx context.Context, userID int64) (bool, error) {
	return s.Notifications.MarkAllRead(ctx, userID)
}
