package services_test

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"junkdealer/internal/domain"
	"junkdealer/internal/repos"
	"junkdealer/internal/services"
	"junkdealer/internal/storage"
	"junkdealer/internal/storage/memstore"
)

// eachStore runs fn against a baseline memstore and a freshly seeded SQLite database.
func eachStore(t *testing.T, fn func(t *testing.T, st storage.Store)) {
	t.Run("memory", func(t *testing.T) { fn(t, memstore.New()) })
	t.Run("sqlite", func(t *testing.T) {
		db, err := repos.OpenDB(repos.DriverSQLite, ":memory:")
		require.NoError(t, err)
		t.Cleanup(func() { _ = db.Close() })
		require.NoError(t, repos.Seed(context.Background(), db))
		fn(t, repos.NewStore(db))
	})
}

func register(t *testing.T, st storage.Store, username string) (*services.AuthService, *domain.User) {
	t.Helper()
	auth := services.NewAuthService(st)
	auth.Cost = bcrypt.MinCost
	u, err := auth.Register(context.Background(), services.NewAccount{
		Username: username, Email: username + "@example.com", Password: "Secret#123",
		FirstName: "Asha", LastName: "Rao",
	})
	require.NoError(t, err)
	return auth, u
}

func TestAuth_RegisterAndLogin(t *testing.T) {
	eachStore(t, func(t *testing.T, st storage.Store) {
		ctx := context.Background()
		auth, u := register(t, st, "asha")
		assert.NotEqual(t, "Secret#123", u.Hash)
		assert.True(t, u.IsActive)

		got, err := auth.Login(ctx, "ASHA@example.com", "Secret#123")
		require.NoError(t, err)
		assert.Equal(t, u.ID, got.ID)

		_, err = auth.Login(ctx, "asha@example.com", "wrong")
		assert.ErrorIs(t, err, services.ErrBadCreds)
		_, err = auth.Login(ctx, "nobody@example.com", "Secret#123")
		assert.ErrorIs(t, err, services.ErrBadCreds)

		_, err = auth.Register(ctx, services.NewAccount{
			Username: "asha", Email: "other@example.com", Password: "Secret#123", FirstName: "A", LastName: "R",
		})
		assert.ErrorIs(t, err, storage.ErrDuplicateUser)

		_, err = auth.Register(ctx, services.NewAccount{
			Username: "weak", Email: "weak@example.com", Password: "password", FirstName: "W", LastName: "K",
		})
		var ve validator.ValidationErrors
		assert.ErrorAs(t, err, &ve)
	})
}

func TestAuth_UpdateContact(t *testing.T) {
	eachStore(t, func(t *testing.T, st storage.Store) {
		auth, u := register(t, st, "ravi")
		city := "Pune"
		got, err := auth.UpdateContact(context.Background(), u.ID, domain.UserContact{City: &city})
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Pune", *got.City)
		assert.Equal(t, "Asha", got.FirstName)

		got, err = auth.UpdateContact(context.Background(), 9999, domain.UserContact{City: &city})
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestBooking_CreateAndStatusNotify(t *testing.T) {
	eachStore(t, func(t *testing.T, st storage.Store) {
		ctx := context.Background()
		_, u := register(t, st, "meena")
		svc := services.NewBookingService(st, st, st, st)
		notes := services.NewNotificationService(st)

		cat := int64(5)
		w := "12.5"
		b, err := svc.Create(ctx, domain.NewBooking{UserID: u.ID, ServiceType: domain.ServicePickup, CategoryID: &cat, EstimatedWeight: &w})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPending, b.Status)
		assert.Equal(t, "12.50", *b.EstimatedWeight)

		unread, err := notes.Unread(ctx, u.ID)
		require.NoError(t, err)
		require.Len(t, unread, 1)
		assert.Equal(t, "Booking received", unread[0].Title)
		assert.Equal(t, domain.NotifyInfo, unread[0].Type)

		upd, err := svc.UpdateStatus(ctx, b.ID, domain.StatusConfirmed)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusConfirmed, upd.Status)
		assert.Equal(t, b.CreatedAt, upd.CreatedAt)

		all, err := notes.List(ctx, u.ID)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, domain.NotifySuccess, all[1].Type)

		_, err = svc.UpdateStatus(ctx, b.ID, "shipped")
		assert.ErrorIs(t, err, services.ErrInvalidStatus)

		missing, err := svc.UpdateStatus(ctx, 9999, domain.StatusCancelled)
		require.NoError(t, err)
		assert.Nil(t, missing)

		_, err = svc.Create(ctx, domain.NewBooking{UserID: 9999, ServiceType: domain.ServiceDropoff})
		assert.ErrorIs(t, err, services.ErrUnknownUser)

		bad := int64(999)
		_, err = svc.Create(ctx, domain.NewBooking{UserID: u.ID, ServiceType: domain.ServiceDropoff, CategoryID: &bad})
		assert.ErrorIs(t, err, services.ErrUnknownCategory)
	})
}

func TestCart_ViewTotals(t *testing.T) {
	eachStore(t, func(t *testing.T, st storage.Store) {
		ctx := context.Background()
		cart := services.NewCartService(st, st)
		catalog := services.NewCatalogService(st, st, st)

		_, err := cart.Add(ctx, domain.NewCartItem{UserID: 7, ProductID: 2, Quantity: 2})
		require.NoError(t, err)
		_, err = cart.Add(ctx, domain.NewCartItem{UserID: 7, ProductID: 4})
		require.NoError(t, err)

		cv, err := cart.View(ctx, 7)
		require.NoError(t, err)
		require.Len(t, cv.Items, 2)
		assert.Equal(t, "998.00", cv.Items[0].Subtotal)
		assert.Equal(t, 1, cv.Items[1].Item.Quantity)
		assert.Equal(t, "1797.00", cv.Total)

		_, err = catalog.SetAvailability(ctx, 3, false)
		require.NoError(t, err)
		_, err = cart.Add(ctx, domain.NewCartItem{UserID: 7, ProductID: 3})
		assert.ErrorIs(t, err, services.ErrUnavailable)
		_, err = cart.Add(ctx, domain.NewCartItem{UserID: 7, ProductID: 999})
		assert.ErrorIs(t, err, services.ErrUnknownProduct)

		_, err = cart.UpdateQty(ctx, cv.Items[0].Item.ID, 0)
		assert.ErrorIs(t, err, services.ErrInvalidQty)

		ok, err := cart.Clear(ctx, 7)
		require.NoError(t, err)
		assert.True(t, ok)
		cv, err = cart.View(ctx, 7)
		require.NoError(t, err)
		assert.Empty(t, cv.Items)
		assert.Equal(t, "0.00", cv.Total)
	})
}

func TestCart_TotalsAreExact(t *testing.T) {
	eachStore(t, func(t *testing.T, st storage.Store) {
		ctx := context.Background()
		cart := services.NewCartService(st, st)
		catalog := services.NewCatalogService(st, st, st)
		_, u := register(t, st, "meera")

		dear, err := catalog.CreateProduct(ctx, domain.NewProduct{
			SellerID: u.ID, Title: "Bronze bell", Price: "99999999.99", Category: "decor", Condition: "good",
		})
		require.NoError(t, err)
		dime, err := catalog.CreateProduct(ctx, domain.NewProduct{
			SellerID: u.ID, Title: "Bottle cap", Price: "0.1", Category: "decor", Condition: "poor",
		})
		require.NoError(t, err)

		_, err = cart.Add(ctx, domain.NewCartItem{UserID: u.ID, ProductID: dear.ID, Quantity: 50})
		require.NoError(t, err)
		_, err = cart.Add(ctx, domain.NewCartItem{UserID: u.ID, ProductID: dime.ID, Quantity: 3})
		require.NoError(t, err)

		cv, err := cart.View(ctx, u.ID)
		require.NoError(t, err)
		require.Len(t, cv.Items, 2)
		assert.Equal(t, "4999999999.50", cv.Items[0].Subtotal)
		assert.Equal(t, "0.30", cv.Items[1].Subtotal)
		assert.Equal(t, "4999999999.80", cv.Total)

		_, err = catalog.CreateProduct(ctx, domain.NewProduct{
			SellerID: u.ID, Title: "Gold bar", Price: "100000000000", Category: "decor", Condition: "new",
		})
		var ve validator.ValidationErrors
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "price", ve[0].Field())
		_, err = catalog.UpdatePrice(ctx, 5, "123456789")
		assert.ErrorIs(t, err, services.ErrInvalidPrice)
	})
}

func TestCatalog_PricesAndFilters(t *testing.T) {
	eachStore(t, func(t *testing.T, st storage.Store) {
		ctx := context.Background()
		catalog := services.NewCatalogService(st, st, st)

		parent := int64(2)
		kids, err := catalog.Categories(ctx, &parent)
		require.NoError(t, err)
		var ids []int64
		for _, c := range kids {
			ids = append(ids, c.ID)
		}
		assert.Equal(t, []int64{5, 6, 7, 8}, ids)

		c, err := catalog.UpdatePrice(ctx, 5, "650")
		require.NoError(t, err)
		assert.Equal(t, "650.00", *c.CurrentPrice)

		hist, err := catalog.PriceHistory(ctx, 5)
		require.NoError(t, err)
		require.Len(t, hist, 1)
		assert.Equal(t, "650.00", hist[0].Price)

		_, err = catalog.PriceHistory(ctx, 999)
		assert.ErrorIs(t, err, services.ErrUnknownCategory)
		_, err = catalog.UpdatePrice(ctx, 5, "-1")
		assert.ErrorIs(t, err, services.ErrInvalidPrice)

		ds, err := catalog.Dealers(ctx, "Delhi")
		require.NoError(t, err)
		require.Len(t, ds, 1)
		assert.Equal(t, []int64{2, 3, 4}, ds[0].Specialties)

		ps, err := catalog.Products(ctx, services.ProductFilter{Category: "decor"})
		require.NoError(t, err)
		require.Len(t, ps, 1)
		assert.Equal(t, "Metal Art Sculpture", ps[0].Title)
	})
}

func TestNotifications_MarkAllRead(t *testing.T) {
	eachStore(t, func(t *testing.T, st storage.Store) {
		ctx := context.Background()
		notes := services.NewNotificationService(st)
		for _, title := range []string{"a", "b"} {
			_, err := notes.Create(ctx, domain.NewNotification{UserID: 3, Title: title, Message: "m", Type: domain.NotifyInfo})
			require.NoError(t, err)
		}
		_, err := notes.Create(ctx, domain.NewNotification{UserID: 3, Title: "x", Message: "m", Type: "loud"})
		var ve validator.ValidationErrors
		assert.ErrorAs(t, err, &ve)

		ok, err := notes.MarkAllRead(ctx, 3)
		require.NoError(t, err)
		assert.True(t, ok)
		unread, err := notes.Unread(ctx, 3)
		require.NoError(t, err)
		assert.Empty(t, unread)
		all, err := notes.List(ctx, 3)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})
}
