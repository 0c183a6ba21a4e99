package repos

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"junkdealer/internal/domain"
	"junkdealer/internal/storage"
)

type CategoryRepo struct{ db *sqlx.DB }

func NewCategoryRepo(db *sqlx.DB) *CategoryRepo { return &CategoryRepo{db: db} }

const categoryCols = `id,name,description,icon,parent_id,current_price,price_unit,is_active`

func (r *CategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	out, err := many[domain.Category](ctx, r.db, `SELECT `+categoryCols+` FROM categories ORDER BY id`)
	return out, errors.Wrap(err, "list categories")
}

func (r *CategoryRepo) ListByParent(ctx context.Context, parentID int64) ([]domain.Category, error) {
	out, err := many[domain.Category](ctx, r.db,
		`SELECT `+categoryCols+` FROM categories WHERE parent_id=? ORDER BY id`, parentID)
	return out, errors.Wrap(err, "list categories by parent")
}

func (r *CategoryRepo) Get(ctx context.Context, id int64) (*domain.Category, error) {
	c, err := one[domain.Category](ctx, r.db, `SELECT `+categoryCols+` FROM categories WHERE id=?`, id)
	return c, errors.Wrap(err, "get category")
}

func (r *CategoryRepo) ByName(ctx context.Context, name string) (*domain.Category, error) {
	c, err := one[domain.Category](ctx, r.db,
		`SELECT `+categoryCols+` FROM categories WHERE name=? ORDER BY id LIMIT 1`, name)
	return c, errors.Wrap(err, "get category by name")
}

func (r *CategoryRepo) Create(ctx context.Context, in domain.NewCategory) (*domain.Category, error) {
	if err := in.Normalize(); err != nil {
		return nil, err
	}
	var out *domain.Category
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var err error
		out, err = r.insert(ctx, tx, 0, in)
		return err
	})
	return out, err
}

// insert stores a category; a non-zero id is used verbatim (baseline seeding).
func (r *CategoryRepo) insert(ctx context.Context, db sqlx.ExtContext, id int64, in domain.NewCategory) (*domain.Category, error) {
	if in.ParentID != nil {
		var n int
		if err := sqlx.GetContext(ctx, db, &n, db.Rebind(`SELECT COUNT(*) FROM categories WHERE id=?`), *in.ParentID); err != nil {
			return nil, errors.Wrap(err, "check parent category")
		}
		if n == 0 {
			return nil, storage.ErrUnknownParent
		}
	}
	c := domain.Category{
		Name:         in.Name,
		Description:  in.Description,
		Icon:         in.Icon,
		ParentID:     in.ParentID,
		CurrentPrice: in.CurrentPrice,
		PriceUnit:    in.PriceUnit,
		IsActive:     in.IsActive == nil || *in.IsActive,
	}
	var err error
	if id > 0 {
		c.ID = id
		_, err = exec(ctx, db, `
			INSERT INTO categories(id,name,description,icon,parent_id,current_price,price_unit,is_active)
			VALUES(?,?,?,?,?,?,?,?)`,
			c.ID, c.Name, c.Description, c.Icon, c.ParentID, c.CurrentPrice, c.PriceUnit, c.IsActive)
	} else {
		c.ID, err = insertID(ctx, db, `
			INSERT INTO categories(name,description,icon,parent_id,current_price,price_unit,is_active)
			VALUES(?,?,?,?,?,?,?)`,
			c.Name, c.Description, c.Icon, c.ParentID, c.CurrentPrice, c.PriceUnit, c.IsActive)
	}
	if err != nil {
		return nil, errors.Wrap(err, "insert category")
	}
	return &c, nil
}

func (r *CategoryRepo) UpdatePrice(ctx context.Context, id int64, price string) (*domain.Category, error) {
	p, err := domain.Decimal2(price)
	if err != nil {
		return nil, err
	}
	found := false
	err = withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		n, err := exec(ctx, tx, `UPDATE categories SET current_price=? WHERE id=?`, p, id)
		if err != nil || n == 0 {
			return err
		}
		found = true
		_, err = insertID(ctx, tx, `INSERT INTO price_history(category_id,price,date) VALUES(?,?,?)`,
			id, p, storage.Now())
		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "update category price")
	}
	if !found {
		return nil, nil
	}
	return r.Get(ctx, id)
}

func (r *CategoryRepo) PriceHistory(ctx context.Context, categoryID int64) ([]domain.PriceHistory, error) {
	out, err := many[domain.PriceHistory](ctx, r.db, `
		SELECT id,category_id,price,date FROM price_history
		WHERE category_id=? ORDER BY date, id`, categoryID)
	for i := range out {
		out[i].Date = out[i].Date.UTC()
	}
	return out, errors.Wrap(err, "list price history")
}
