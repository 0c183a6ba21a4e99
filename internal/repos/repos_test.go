package repos_test

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"junkdealer/internal/domain"
	"junkdealer/internal/repos"
	"junkdealer/internal/storage"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repos.OpenDB(repos.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func strp(s string) *string { return &s }
func idp(id int64) *int64   { return &id }

func newUser(name string) domain.NewUser {
	return domain.NewUser{Username: name, Email: name + "@example.com", Hash: "x", FirstName: "F", LastName: "L"}
}

func TestUserRepo_CreateLookupAndUniqueness(t *testing.T) {
	ctx := context.Background()
	r := repos.NewUserRepo(memdb(t))

	u, err := r.Create(ctx, newUser("nisha"))
	require.NoError(t, err)
	assert.True(t, u.IsActive)

	got, err := r.ByEmail(ctx, "NISHA@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, u.ID, got.ID)
	assert.True(t, u.CreatedAt.Equal(got.CreatedAt))

	_, err = r.Create(ctx, newUser("nisha"))
	assert.ErrorIs(t, err, storage.ErrDuplicateUser)
	dup := newUser("other")
	dup.Email = "Nisha@Example.com"
	_, err = r.Create(ctx, dup)
	assert.ErrorIs(t, err, storage.ErrDuplicateUser)

	missing, err := r.ByUsername(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)

	upd, err := r.UpdateContact(ctx, u.ID, domain.UserContact{Phone: strp("+91 1")})
	require.NoError(t, err)
	assert.Equal(t, "+91 1", *upd.Phone)
	assert.Equal(t, "F", upd.FirstName)

	upd, err = r.UpdateContact(ctx, 999, domain.UserContact{Phone: strp("+91 1")})
	require.NoError(t, err)
	assert.Nil(t, upd)
}

func TestCategoryRepo_ParentsAndPrices(t *testing.T) {
	ctx := context.Background()
	db := memdb(t)
	require.NoError(t, repos.Seed(ctx, db))
	r := repos.NewCategoryRepo(db)

	kids, err := r.ListByParent(ctx, 2)
	require.NoError(t, err)
	var ids []int64
	for _, c := range kids {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []int64{5, 6, 7, 8}, ids)

	_, err = r.Create(ctx, domain.NewCategory{Name: "Orphan", ParentID: idp(999)})
	assert.ErrorIs(t, err, storage.ErrUnknownParent)

	c, err := r.Create(ctx, domain.NewCategory{Name: "Chargers", ParentID: idp(1), CurrentPrice: strp("3")})
	require.NoError(t, err)
	assert.Greater(t, c.ID, int64(15))
	assert.Equal(t, "3.00", *c.CurrentPrice)
	assert.Equal(t, "kg", c.PriceUnit)
	assert.True(t, c.IsActive)

	got, err := r.ByName(ctx, "Chargers")
	require.NoError(t, err)
	assert.Equal(t, c, got)

	none, err := r.UpdatePrice(ctx, 999, "1")
	require.NoError(t, err)
	assert.Nil(t, none)

	_, err = r.UpdatePrice(ctx, 5, "630")
	require.NoError(t, err)
	upd, err := r.UpdatePrice(ctx, 5, "640.5")
	require.NoError(t, err)
	assert.Equal(t, "640.50", *upd.CurrentPrice)

	hist, err := r.PriceHistory(ctx, 5)
	require.NoError(t, err)
	require.Len(t, hist, 2)
	assert.Equal(t, "630.00", hist[0].Price)
	assert.Equal(t, "640.50", hist[1].Price)

	hist, err = r.PriceHistory(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, hist)
}

func TestBookingRepo_StatusOnlyChangesStatus(t *testing.T) {
	ctx := context.Background()
	r := repos.NewBookingRepo(memdb(t))

	b, err := r.Create(ctx, domain.NewBooking{
		UserID: 4, ServiceType: domain.ServiceDropoff, CategoryID: idp(3),
		EstimatedWeight: strp("7"), ScheduledTime: strp("10:00"), Notes: strp("gate 2"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, b.Status)
	assert.Equal(t, "7.00", *b.EstimatedWeight)
	assert.Nil(t, b.Address)

	upd, err := r.UpdateStatus(ctx, b.ID, domain.StatusConfirmed)
	require.NoError(t, err)
	want := *b
	want.Status = domain.StatusConfirmed
	assert.Equal(t, &want, upd)

	none, err := r.UpdateStatus(ctx, 999, domain.StatusConfirmed)
	require.NoError(t, err)
	assert.Nil(t, none)

	mine, err := r.ListByUser(ctx, 4)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
	others, err := r.ListByUser(ctx, 5)
	require.NoError(t, err)
	assert.NotNil(t, others)
	assert.Empty(t, others)
}

func TestDealerRepo_SpecialtiesKeepOrder(t *testing.T) {
	ctx := context.Background()
	r := repos.NewDealerRepo(memdb(t))

	d, err := r.Create(ctx, domain.NewDealer{
		Name: "Scrap Kings", Address: "1 Dock Rd", Phone: "+91 2", City: "Chennai",
		Rating: strp("4.2"), Specialties: []int64{3, 1, 2},
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 1, 2}, d.Specialties)
	assert.Equal(t, "4.20", *d.Rating)

	plain, err := r.Create(ctx, domain.NewDealer{Name: "Solo", Address: "2 Rd", Phone: "+91 3", City: "Chennai"})
	require.NoError(t, err)
	assert.NotNil(t, plain.Specialties)
	assert.Empty(t, plain.Specialties)

	ds, err := r.ListByCity(ctx, "Chennai")
	require.NoError(t, err)
	require.Len(t, ds, 2)
	assert.Equal(t, []int64{3, 1, 2}, ds[0].Specialties)

	none, err := r.Get(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestProductRepo_ImagesAndAvailability(t *testing.T) {
	ctx := context.Background()
	r := repos.NewProductRepo(memdb(t))

	p, err := r.Create(ctx, domain.NewProduct{
		SellerID: 9, Title: "Tyre Swing", Price: "350", Category: "garden", Condition: "good",
		Images: []string{"/b.jpg", "/a.jpg"}, IsRecycled: true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"/b.jpg", "/a.jpg"}, p.Images)
	assert.Equal(t, "350.00", p.Price)
	assert.True(t, p.IsAvailable)

	upd, err := r.UpdateAvailability(ctx, p.ID, false)
	require.NoError(t, err)
	assert.False(t, upd.IsAvailable)
	assert.Equal(t, p.Images, upd.Images)

	none, err := r.UpdateAvailability(ctx, 999, false)
	require.NoError(t, err)
	assert.Nil(t, none)

	bySeller, err := r.ListBySeller(ctx, 9)
	require.NoError(t, err)
	assert.Len(t, bySeller, 1)
	byCat, err := r.ListByCategory(ctx, "furniture")
	require.NoError(t, err)
	assert.Empty(t, byCat)
}

func TestCartRepo_ClearOnlyTouchesOneUser(t *testing.T) {
	ctx := context.Background()
	r := repos.NewCartRepo(memdb(t))

	var first *domain.CartItem
	for i := 0; i < 3; i++ {
		it, err := r.Add(ctx, domain.NewCartItem{UserID: 1, ProductID: int64(i + 1)})
		require.NoError(t, err)
		assert.Equal(t, 1, it.Quantity)
		if first == nil {
			first = it
		}
	}
	other, err := r.Add(ctx, domain.NewCartItem{UserID: 2, ProductID: 1, Quantity: 4})
	require.NoError(t, err)

	ok, err := r.Remove(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = r.Remove(ctx, first.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = r.Clear(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = r.Clear(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	left, err := r.Items(ctx, 2)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, other.ID, left[0].ID)
	assert.Equal(t, 4, left[0].Quantity)

	upd, err := r.UpdateQty(ctx, other.ID, 9)
	require.NoError(t, err)
	assert.Equal(t, 9, upd.Quantity)
	none, err := r.UpdateQty(ctx, 999, 2)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestNotificationRepo_UnreadFiltersOnReadFlag(t *testing.T) {
	ctx := context.Background()
	r := repos.NewNotificationRepo(memdb(t))

	a, err := r.Create(ctx, domain.NewNotification{UserID: 1, Title: "a", Message: "m", Type: domain.NotifyInfo})
	require.NoError(t, err)
	_, err = r.Create(ctx, domain.NewNotification{UserID: 1, Title: "b", Message: "m", Type: domain.NotifyWarning})
	require.NoError(t, err)

	read, err := r.MarkRead(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, read.IsRead)

	unread, err := r.ListUnread(ctx, 1)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, "b", unread[0].Title)

	ok, err := r.MarkAllRead(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	unread, err = r.ListUnread(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, unread)

	all, err := r.ListByUser(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	none, err := r.MarkRead(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestSeed_ResetsBaseline(t *testing.T) {
	ctx := context.Background()
	db := memdb(t)
	st := repos.NewStore(db)

	require.NoError(t, repos.Seed(ctx, db))
	_, err := st.CreateCategory(ctx, domain.NewCategory{Name: "Extra"})
	require.NoError(t, err)
	require.NoError(t, repos.Seed(ctx, db))

	cats, err := st.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, cats, 15)
	ds, err := st.ListDealers(ctx)
	require.NoError(t, err)
	assert.Len(t, ds, 3)

	demo, err := st.GetUserByEmail(ctx, "demo@example.com")
	require.NoError(t, err)
	require.NotNil(t, demo)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(demo.Hash), []byte(storage.DemoPassword)))

	ps, err := st.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, ps, 4)
	for i, p := range ps {
		assert.Equal(t, int64(i+1), p.ID)
		assert.Equal(t, demo.ID, p.SellerID)
		assert.Equal(t, []string{"/api/placeholder/400/300"}, p.Images)
	}
}
