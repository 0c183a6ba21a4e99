package memstore

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"junkdealer/internal/domain"
	"junkdealer/internal/storage"
)

func TestNew_LoadsBaseline(t *testing.T) {
	ctx := context.Background()
	st := New()

	cats, err := st.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, cats, 15)

	kids, err := st.ListCategoriesByParent(ctx, 1)
	require.NoError(t, err)
	var ids []int64
	for _, c := range kids {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []int64{9, 14, 15}, ids)

	c, err := st.CreateCategory(ctx, domain.NewCategory{Name: "E-waste"})
	require.NoError(t, err)
	assert.Equal(t, int64(baselineNextID), c.ID)

	b, err := st.CreateBooking(ctx, domain.NewBooking{UserID: 1, ServiceType: domain.ServicePickup})
	require.NoError(t, err)
	assert.Equal(t, int64(baselineNextID+1), b.ID, "identity counter is shared across entity types")
}

func TestNew_InstancesAreIndependent(t *testing.T) {
	ctx := context.Background()
	a, b := New(), New()
	_, err := a.UpdateCategoryPrice(ctx, 5, "700")
	require.NoError(t, err)

	got, err := b.GetCategory(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "620.00", *got.CurrentPrice)

	x, err := a.CreateNotification(ctx, domain.NewNotification{UserID: 1, Title: "t", Message: "m", Type: domain.NotifyInfo})
	require.NoError(t, err)
	y, err := b.CreateNotification(ctx, domain.NewNotification{UserID: 1, Title: "t", Message: "m", Type: domain.NotifyInfo})
	require.NoError(t, err)
	// a spent id 100 on the price history entry; b has its own counter
	assert.Equal(t, int64(baselineNextID+1), x.ID)
	assert.Equal(t, int64(baselineNextID), y.ID)
}

func TestReturnedRecordsAreCopies(t *testing.T) {
	ctx := context.Background()
	st := New()

	d, err := st.GetDealer(ctx, 1)
	require.NoError(t, err)
	d.Specialties[0] = 99
	*d.Email = "changed@example.com"

	again, err := st.GetDealer(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, again.Specialties)
	assert.Equal(t, "contact@greenrecyclers.com", *again.Email)

	imgs := []string{"/x.jpg"}
	p, err := st.CreateProduct(ctx, domain.NewProduct{SellerID: 1, Title: "Bin", Price: "5", Category: "garden", Condition: "new", Images: imgs})
	require.NoError(t, err)
	imgs[0] = "/mutated.jpg"
	got, err := st.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"/x.jpg"}, got.Images)
}

func TestUpdatesOnUnknownIDsCreateNothing(t *testing.T) {
	ctx := context.Background()
	st := NewEmpty()

	u, err := st.UpdateUserContact(ctx, 42, domain.UserContact{})
	require.NoError(t, err)
	assert.Nil(t, u)
	c, err := st.UpdateCategoryPrice(ctx, 42, "1")
	require.NoError(t, err)
	assert.Nil(t, c)
	b, err := st.UpdateBookingStatus(ctx, 42, domain.StatusCancelled)
	require.NoError(t, err)
	assert.Nil(t, b)
	p, err := st.UpdateProductAvailability(ctx, 42, false)
	require.NoError(t, err)
	assert.Nil(t, p)
	ci, err := st.UpdateCartItemQuantity(ctx, 42, 2)
	require.NoError(t, err)
	assert.Nil(t, ci)
	n, err := st.MarkNotificationRead(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, n)

	assert.Empty(t, st.s.categories)
	assert.Empty(t, st.s.prices)
	assert.Empty(t, st.s.bookings)
}

func TestUniquenessAndParents(t *testing.T) {
	ctx := context.Background()
	st := NewEmpty()

	_, err := st.CreateUser(ctx, domain.NewUser{Username: "raj", Email: "raj@example.com", Hash: "h", FirstName: "R", LastName: "K"})
	require.NoError(t, err)
	_, err = st.CreateUser(ctx, domain.NewUser{Username: "raj2", Email: "RAJ@example.com", Hash: "h", FirstName: "R", LastName: "K"})
	assert.ErrorIs(t, err, storage.ErrDuplicateUser)

	parent := int64(77)
	_, err = st.CreateCategory(ctx, domain.NewCategory{Name: "Orphan", ParentID: &parent})
	assert.ErrorIs(t, err, storage.ErrUnknownParent)
}

func TestConcurrentCreatesGetDistinctIDs(t *testing.T) {
	ctx := context.Background()
	st := NewEmpty()
	const n = 50
	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			it, err := st.AddToCart(ctx, domain.NewCartItem{UserID: int64(i%3 + 1), ProductID: 1})
			if err == nil {
				ids <- it.ID
			}
		}(i)
	}
	wg.Wait()
	close(ids)
	seen := map[int64]bool{}
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}
