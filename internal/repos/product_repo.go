package repos

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"junkdealer/internal/domain"
	"junkdealer/internal/storage"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `id,seller_id,title,description,price,category,condition,location,is_available,is_recycled,created_at`

// withImages loads the ordered image list of every product in ps.
func (r *ProductRepo) withImages(ctx context.Context, ps []domain.Product) ([]domain.Product, error) {
	if len(ps) == 0 {
		return ps, nil
	}
	ids := make([]int64, len(ps))
	idx := make(map[int64]int, len(ps))
	for i := range ps {
		ids[i] = ps[i].ID
		idx[ps[i].ID] = i
		ps[i].Images = []string{}
		ps[i].CreatedAt = ps[i].CreatedAt.UTC()
	}
	query, args, err := sqlx.In(`
		SELECT product_id, url FROM product_images
		WHERE product_id IN (?) ORDER BY product_id, position`, ids)
	if err != nil {
		return nil, err
	}
	var rows []struct {
		ProductID int64  `db:"product_id"`
		URL       string `db:"url"`
	}
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, err
	}
	for _, row := range rows {
		p := &ps[idx[row.ProductID]]
		p.Images = append(p.Images, row.URL)
	}
	return ps, nil
}

func (r *ProductRepo) list(ctx context.Context, where string, args ...any) ([]domain.Product, error) {
	out, err := many[domain.Product](ctx, r.db, `SELECT `+productCols+` FROM products `+where+` ORDER BY id`, args...)
	if err != nil {
		return nil, err
	}
	return r.withImages(ctx, out)
}

func (r *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	out, err := r.list(ctx, "")
	return out, errors.Wrap(err, "list products")
}

func (r *ProductRepo) ListByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	out, err := r.list(ctx, `WHERE category=?`, category)
	return out, errors.Wrap(err, "list products by category")
}

func (r *ProductRepo) ListBySeller(ctx context.Context, sellerID int64) ([]domain.Product, error) {
	out, err := r.list(ctx, `WHERE seller_id=?`, sellerID)
	return out, errors.Wrap(err, "list products by seller")
}

func (r *ProductRepo) Get(ctx context.Context, id int64) (*domain.Product, error) {
	p, err := one[domain.Product](ctx, r.db, `SELECT `+productCols+` FROM products WHERE id=?`, id)
	if err != nil || p == nil {
		return nil, errors.Wrap(err, "get product")
	}
	ps, err := r.withImages(ctx, []domain.Product{*p})
	if err != nil {
		return nil, errors.Wrap(err, "get product")
	}
	return &ps[0], nil
}

func (r *ProductRepo) Create(ctx context.Context, in domain.NewProduct) (*domain.Product, error) {
	if err := in.Normalize(); err != nil {
		return nil, err
	}
	var id int64
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var err error
		id, err = r.insert(ctx, tx, in)
		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "insert product")
	}
	return r.Get(ctx, id)
}

func (r *ProductRepo) insert(ctx context.Context, db sqlx.ExtContext, in domain.NewProduct) (int64, error) {
	id, err := insertID(ctx, db, `
		INSERT INTO products(seller_id,title,description,price,category,condition,location,is_available,is_recycled,created_at)
		VALUES(?,?,?,?,?,?,?,?,?,?)`,
		in.SellerID, in.Title, in.Description, in.Price, in.Category, in.Condition, in.Location,
		true, in.IsRecycled, storage.Now())
	if err != nil {
		return 0, err
	}
	for pos, url := range in.Images {
		if _, err := exec(ctx, db, `INSERT INTO product_images(product_id,position,url) VALUES(?,?,?)`,
			id, pos, url); err != nil {
			return 0, err
		}
	}
	return id, nil
}

func (r *ProductRepo) UpdateAvailability(ctx context.Context, id int64, available bool) (*domain.Product, error) {
	n, err := exec(ctx, r.db, `UPDATE products SET is_available=? WHERE id=?`, available, id)
	if err != nil {
		return nil, errors.Wrap(err, "update product availability")
	}
	if n == 0 {
		return nil, nil
	}
	return r.Get(ctx, id)
}
