// Package memstore is the map-backed storage.Store used for offline runs and tests.
package memstore

import (
	"context"
	"slices"
	"sync"
	"time"

	"junkdealer/internal/domain"
	"junkdealer/internal/storage"
)

var _ storage.Store = (*Store)(nil)

// baselineNextID is where identity assignment resumes after the baseline
// records, which use literal ids.
const baselineNextID = 100

type state struct {
	users         map[int64]domain.User
	categories    map[int64]domain.Category
	prices        map[int64]domain.PriceHistory
	bookings      map[int64]domain.Booking
	dealers       map[int64]domain.Dealer
	products      map[int64]domain.Product
	cartItems     map[int64]domain.CartItem
	notifications map[int64]domain.Notification
}

func newState() state {
	return state{
		users:         map[int64]domain.User{},
		categories:    map[int64]domain.Category{},
		prices:        map[int64]domain.PriceHistory{},
		bookings:      map[int64]domain.Booking{},
		dealers:       map[int64]domain.Dealer{},
		products:      map[int64]domain.Product{},
		cartItems:     map[int64]domain.CartItem{},
		notifications: map[int64]domain.Notification{},
	}
}

// Store keeps every entity in its own map. One counter, shared by all entity
// types, hands out identities; it and the maps are guarded by mu.
type Store struct {
	mu     sync.RWMutex
	s      state
	nextID int64
	now    func() time.Time
}

// New returns a store preloaded with the baseline categories, dealers and products.
func New() *Store {
	st := NewEmpty()
	created := st.now()
	for _, c := range storage.BaselineCategories() {
		st.s.categories[c.ID] = c
	}
	for _, d := range storage.BaselineDealers() {
		st.s.dealers[d.ID] = d
	}
	for _, p := range storage.BaselineProducts(1) {
		p.CreatedAt = created
		st.s.products[p.ID] = p
	}
	st.nextID = baselineNextID
	return st
}

// NewEmpty returns a store with no records; ids start at 1.
func NewEmpty() *Store {
	return &Store{s: newState(), nextID: 1, now: storage.Now}
}

// id must be called with mu held for writing.
func (st *Store) id() int64 {
	id := st.nextID
	st.nextID++
	return id
}

func cloneStr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneID(p *int64) *int64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneTime(p *time.Time) *time.Time {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func byID[T any](m map[int64]T, keep func(T) bool, clone func(T) T) []T {
	ids := make([]int64, 0, len(m))
	for id, v := range m {
		if keep == nil || keep(v) {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, clone(m[id]))
	}
	return out
}

func get[T any](m map[int64]T, id int64, clone func(T) T) *T {
	v, ok := m[id]
	if !ok {
		return nil
	}
	c := clone(v)
	return &c
}

func find[T any](m map[int64]T, match func(T) bool, clone func(T) T) *T {
	var best *T
	var bestID int64
	for id, v := range m {
		if match(v) && (best == nil || id < bestID) {
			c := clone(v)
			best, bestID = &c, id
		}
	}
	return best
}

// ---------- Users ----------

func cloneUser(u domain.User) domain.User {
	u.Phone, u.Address, u.City = cloneStr(u.Phone), cloneStr(u.Address), cloneStr(u.City)
	return u
}

func (st *Store) GetUser(_ context.Context, id int64) (*domain.User, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return get(st.s.users, id, cloneUser), nil
}

func (st *Store) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	key := domain.EmailKey(email)
	return find(st.s.users, func(u domain.User) bool { return u.Email == key }, cloneUser), nil
}

func (st *Store) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return find(st.s.users, func(u domain.User) bool { return u.Username == username }, cloneUser), nil
}

func (st *Store) CreateUser(_ context.Context, in domain.NewUser) (*domain.User, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	email := domain.EmailKey(in.Email)
	for _, u := range st.s.users {
		if u.Username == in.Username || u.Email == email {
			return nil, storage.ErrDuplicateUser
		}
	}
	u := domain.User{
		ID:        st.id(),
		Username:  in.Username,
		Email:     email,
		Hash:      in.Hash,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Phone:     cloneStr(in.Phone),
		Address:   cloneStr(in.Address),
		City:      cloneStr(in.City),
		IsActive:  true,
		CreatedAt: st.now(),
	}
	st.s.users[u.ID] = u
	out := cloneUser(u)
	return &out, nil
}

func (st *Store) UpdateUserContact(_ context.Context, id int64, c domain.UserContact) (*domain.User, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	u, ok := st.s.users[id]
	if !ok {
		return nil, nil
	}
	u = cloneUser(u)
	u.ApplyContact(domain.UserContact{
		FirstName: cloneStr(c.FirstName),
		LastName:  cloneStr(c.LastName),
		Phone:     cloneStr(c.Phone),
		Address:   cloneStr(c.Address),
		City:      cloneStr(c.City),
	})
	st.s.users[id] = u
	out := cloneUser(u)
	return &out, nil
}

// ---------- Categories ----------

func cloneCategory(c domain.Category) domain.Category {
	c.Description, c.Icon = cloneStr(c.Description), cloneStr(c.Icon)
	c.ParentID, c.CurrentPrice = cloneID(c.ParentID), cloneStr(c.CurrentPrice)
	return c
}

func clonePrice(p domain.PriceHistory) domain.PriceHistory { return p }

func (st *Store) ListCategories(_ context.Context) ([]domain.Category, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return byID(st.s.categories, nil, cloneCategory), nil
}

func (st *Store) ListCategoriesByParent(_ context.Context, parentID int64) ([]domain.Category, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return byID(st.s.categories, func(c domain.Category) bool {
		return c.ParentID != nil && *c.ParentID == parentID
	}, cloneCategory), nil
}

func (st *Store) GetCategory(_ context.Context, id int64) (*domain.Category, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return get(st.s.categories, id, cloneCategory), nil
}

func (st *Store) GetCategoryByName(_ context.Context, name string) (*domain.Category, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return find(st.s.categories, func(c domain.Category) bool { return c.Name == name }, cloneCategory), nil
}

func (st *Store) CreateCategory(_ context.Context, in domain.NewCategory) (*domain.Category, error) {
	if err := in.Normalize(); err != nil {
		return nil, err
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	if in.ParentID != nil {
		if _, ok := st.s.categories[*in.ParentID]; !ok {
			return nil, storage.ErrUnknownParent
		}
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	c := domain.Category{
		ID:           st.id(),
		Name:         in.Name,
		Description:  cloneStr(in.Description),
		Icon:         cloneStr(in.Icon),
		ParentID:     cloneID(in.ParentID),
		CurrentPrice: cloneStr(in.CurrentPrice),
		PriceUnit:    in.PriceUnit,
		IsActive:     active,
	}
	st.s.categories[c.ID] = c
	out := cloneCategory(c)
	return &out, nil
}

func (st *Store) UpdateCategoryPrice(_ context.Context, id int64, price string) (*domain.Category, error) {
	p, err := domain.Decimal2(price)
	if err != nil {
		return nil, err
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	c, ok := st.s.categories[id]
	if !ok {
		return nil, nil
	}
	c = cloneCategory(c)
	c.CurrentPrice = &p
	st.s.categories[id] = c
	h := domain.PriceHistory{ID: st.id(), CategoryID: id, Price: p, Date: st.now()}
	st.s.prices[h.ID] = h
	out := cloneCategory(c)
	return &out, nil
}

func (st *Store) ListPriceHistory(_ context.Context, categoryID int64) ([]domain.PriceHistory, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	out := byID(st.s.prices, func(p domain.PriceHistory) bool { return p.CategoryID == categoryID }, clonePrice)
	slices.SortStableFunc(out, func(a, b domain.PriceHistory) int { return a.Date.Compare(b.Date) })
	return out, nil
}

// ---------- Bookings ----------

func cloneBooking(b domain.Booking) domain.Booking {
	b.CategoryID, b.EstimatedWeight = cloneID(b.CategoryID), cloneStr(b.EstimatedWeight)
	b.ScheduledDate, b.ScheduledTime = cloneTime(b.ScheduledDate), cloneStr(b.ScheduledTime)
	b.Address, b.Phone, b.Notes = cloneStr(b.Address), cloneStr(b.Phone), cloneStr(b.Notes)
	return b
}

func (st *Store) ListBookings(_ context.Context) ([]domain.Booking, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return byID(st.s.bookings, nil, cloneBooking), nil
}

func (st *Store) ListBookingsByUser(_ context.Context, userID int64) ([]domain.Booking, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return byID(st.s.bookings, func(b domain.Booking) bool { return b.UserID == userID }, cloneBooking), nil
}

func (st *Store) GetBooking(_ context.Context, id int64) (*domain.Booking, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return get(st.s.bookings, id, cloneBooking), nil
}

func (st *Store) CreateBooking(_ context.Context, in domain.NewBooking) (*domain.Booking, error) {
	if err := in.Normalize(); err != nil {
		return nil, err
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	b := cloneBooking(domain.Booking{
		ID:              st.id(),
		UserID:          in.UserID,
		ServiceType:     in.ServiceType,
		CategoryID:      in.CategoryID,
		EstimatedWeight: in.EstimatedWeight,
		ScheduledDate:   in.ScheduledDate,
		ScheduledTime:   in.ScheduledTime,
		Address:         in.Address,
		Phone:           in.Phone,
		Status:          domain.StatusPending,
		Notes:           in.Notes,
		CreatedAt:       st.now(),
	})
	st.s.bookings[b.ID] = b
	out := cloneBooking(b)
	return &out, nil
}

func (st *Store) UpdateBookingStatus(_ context.Context, id int64, status string) (*domain.Booking, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	b, ok := st.s.bookings[id]
	if !ok {
		return nil, nil
	}
	b = cloneBooking(b)
	b.Status = status
	st.s.bookings[id] = b
	out := cloneBooking(b)
	return &out, nil
}

// ---------- Dealers ----------

func cloneDealer(d domain.Dealer) domain.Dealer {
	d.Email, d.Rating = cloneStr(d.Email), cloneStr(d.Rating)
	d.Specialties = append([]int64{}, d.Specialties...)
	return d
}

func (st *Store) ListDealers(_ context.Context) ([]domain.Dealer, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return byID(st.s.dealers, nil, cloneDealer), nil
}

func (st *Store) ListDealersByCity(_ context.Context, city string) ([]domain.Dealer, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return byID(st.s.dealers, func(d domain.Dealer) bool { return d.City == city }, cloneDealer), nil
}

func (st *Store) GetDealer(_ context.Context, id int64) (*domain.Dealer, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return get(st.s.dealers, id, cloneDealer), nil
}

func (st *Store) CreateDealer(_ context.Context, in domain.NewDealer) (*domain.Dealer, error) {
	if err := in.Normalize(); err != nil {
		return nil, err
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	d := cloneDealer(domain.Dealer{
		ID:          st.id(),
		Name:        in.Name,
		Address:     in.Address,
		Phone:       in.Phone,
		Email:       in.Email,
		City:        in.City,
		Rating:      in.Rating,
		IsActive:    active,
		Specialties: in.Specialties,
	})
	st.s.dealers[d.ID] = d
	out := cloneDealer(d)
	return &out, nil
}

// ---------- Products ----------

func cloneProduct(p domain.Product) domain.Product {
	p.Description, p.Location = cloneStr(p.Description), cloneStr(p.Location)
	p.Images = append([]string{}, p.Images...)
	return p
}

func (st *Store) ListProducts(_ context.Context) ([]domain.Product, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return byID(st.s.products, nil, cloneProduct), nil
}

func (st *Store) ListProductsByCategory(_ context.Context, category string) ([]domain.Product, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return byID(st.s.products, func(p domain.Product) bool { return p.Category == category }, cloneProduct), nil
}

func (st *Store) ListProductsBySeller(_ context.Context, sellerID int64) ([]domain.Product, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return byID(st.s.products, func(p domain.Product) bool { return p.SellerID == sellerID }, cloneProduct), nil
}

func (st *Store) GetProduct(_ context.Context, id int64) (*domain.Product, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return get(st.s.products, id, cloneProduct), nil
}

func (st *Store) CreateProduct(_ context.Context, in domain.NewProduct) (*domain.Product, error) {
	if err := in.Normalize(); err != nil {
		return nil, err
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	p := cloneProduct(domain.Product{
		ID:          st.id(),
		SellerID:    in.SellerID,
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Condition:   in.Condition,
		Images:      in.Images,
		Location:    in.Location,
		IsAvailable: true,
		IsRecycled:  in.IsRecycled,
		CreatedAt:   st.now(),
	})
	st.s.products[p.ID] = p
	out := cloneProduct(p)
	return &out, nil
}

func (st *Store) UpdateProductAvailability(_ context.Context, id int64, available bool) (*domain.Product, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	p, ok := st.s.products[id]
	if !ok {
		return nil, nil
	}
	p = cloneProduct(p)
	p.IsAvailable = available
	st.s.products[id] = p
	out := cloneProduct(p)
	return &out, nil
}

// ---------- Cart ----------

func cloneCartItem(c domain.CartItem) domain.CartItem { return c }

func (st *Store) ListCartItems(_ context.Context, userID int64) ([]domain.CartItem, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return byID(st.s.cartItems, func(c domain.CartItem) bool { return c.UserID == userID }, cloneCartItem), nil
}

func (st *Store) AddToCart(_ context.Context, in domain.NewCartItem) (*domain.CartItem, error) {
	in.Normalize()
	st.mu.Lock()
	defer st.mu.Unlock()
	c := domain.CartItem{
		ID:        st.id(),
		UserID:    in.UserID,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		AddedAt:   st.now(),
	}
	st.s.cartItems[c.ID] = c
	return &c, nil
}

func (st *Store) UpdateCartItemQuantity(_ context.Context, id int64, quantity int) (*domain.CartItem, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	c, ok := st.s.cartItems[id]
	if !ok {
		return nil, nil
	}
	c.Quantity = quantity
	st.s.cartItems[id] = c
	return &c, nil
}

func (st *Store) RemoveFromCart(_ context.Context, id int64) (bool, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.s.cartItems[id]; !ok {
		return false, nil
	}
	delete(st.s.cartItems, id)
	return true, nil
}

func (st *Store) ClearCart(_ context.Context, userID int64) (bool, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	for id, c := range st.s.cartItems {
		if c.UserID == userID {
			delete(st.s.cartItems, id)
		}
	}
	return true, nil
}

// ---------- Notifications ----------

func cloneNotification(n domain.Notification) domain.Notification { return n }

func (st *Store) ListNotifications(_ context.Context, userID int64) ([]domain.Notification, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return byID(st.s.notifications, func(n domain.Notification) bool { return n.UserID == userID }, cloneNotification), nil
}

func (st *Store) ListUnreadNotifications(_ context.Context, userID int64) ([]domain.Notification, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return byID(st.s.notifications, func(n domain.Notification) bool {
		return n.UserID == userID && !n.IsRead
	}, cloneNotification), nil
}

func (st *Store) CreateNotification(_ context.Context, in domain.NewNotification) (*domain.Notification, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	n := domain.Notification{
		ID:        st.id(),
		UserID:    in.UserID,
		Title:     in.Title,
		Message:   in.Message,
		Type:      in.Type,
		CreatedAt: st.now(),
	}
	st.s.notifications[n.ID] = n
	return &n, nil
}

func (st *Store) MarkNotificationRead(_ context.Context, id int64) (*domain.Notification, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	n, ok := st.s.notifications[id]
	if !ok {
		return nil, nil
	}
	n.IsRead = true
	st.s.notifications[id] = n
	return &n, nil
}

func (st *Store) MarkAllNotificationsRead(_ context.Context, userID int64) (bool, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	for id, n := range st.s.notifications {
		if n.UserID == userID {
			n.IsRead = true
			st.s.notifications[id] = n
		}
	}
	return true, nil
}
