package repos

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"junkdealer/internal/domain"
	"junkdealer/internal/storage"
)

type CartRepo struct{ db *sqlx.DB }

func NewCartRepo(db *sqlx.DB) *CartRepo { return &CartRepo{db: db} }

const cartCols = `id,user_id,product_id,quantity,added_at`

func (r *CartRepo) Items(ctx context.Context, userID int64) ([]domain.CartItem, error) {
	out, err := many[domain.CartItem](ctx, r.db, `SELECT `+cartCols+` FROM cart_items WHERE user_id=? ORDER BY id`, userID)
	for i := range out {
		out[i].AddedAt = out[i].AddedAt.UTC()
	}
	return out, errors.Wrap(err, "list cart items")
}

func (r *CartRepo) Get(ctx context.Context, id int64) (*domain.CartItem, error) {
	c, err := one[domain.CartItem](ctx, r.db, `SELECT `+cartCols+` FROM cart_items WHERE id=?`, id)
	if c != nil {
		c.AddedAt = c.AddedAt.UTC()
	}
	return c, errors.Wrap(err, "get cart item")
}

func (r *CartRepo) Add(ctx context.Context, in domain.NewCartItem) (*domain.CartItem, error) {
	in.Normalize()
	c := domain.CartItem{UserID: in.UserID, ProductID: in.ProductID, Quantity: in.Quantity, AddedAt: storage.Now()}
	id, err := insertID(ctx, r.db, `INSERT INTO cart_items(user_id,product_id,quantity,added_at) VALUES(?,?,?,?)`,
		c.UserID, c.ProductID, c.Quantity, c.AddedAt)
	if err != nil {
		return nil, errors.Wrap(err, "insert cart item")
	}
	c.ID = id
	return &c, nil
}

func (r *CartRepo) UpdateQty(ctx context.Context, id int64, qty int) (*domain.CartItem, error) {
	n, err := exec(ctx, r.db, `UPDATE cart_items SET quantity=? WHERE id=?`, qty, id)
	if err != nil {
		return nil, errors.Wrap(err, "update cart item quantity")
	}
	if n == 0 {
		return nil, nil
	}
	return r.Get(ctx, id)
}

func (r *CartRepo) Remove(ctx context.Context, id int64) (bool, error) {
	n, err := exec(ctx, r.db, `DELETE FROM cart_items WHERE id=?`, id)
	if err != nil {
		return false, errors.Wrap(err, "remove cart item")
	}
	return n > 0, nil
}

// Clear empties the user's cart. An already empty cart is still a success.
func (r *CartRepo) Clear(ctx context.Context, userID int64) (bool, error) {
	if _, err := exec(ctx, r.db, `DELETE FROM cart_items WHERE user_id=?`, userID); err != nil {
		return false, errors.Wrap(err, "clear cart")
	}
	return true, nil
}
