package repos

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"junkdealer/internal/domain"
	applog "junkdealer/internal/log"
	"junkdealer/internal/storage"
)

// Seed replaces users, categories, dealers and products with the baseline data
// and a demo account. Bookings, carts and notifications are left alone.
// Everything happens in one transaction.
func Seed(ctx context.Context, db *sqlx.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(storage.DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "hash demo password")
	}
	cats := NewCategoryRepo(db)
	users := NewUserRepo(db)

	var demo *domain.User
	err = withTx(ctx, db, func(tx *sqlx.Tx) error {
		for _, table := range []string{"product_images", "products", "dealer_specialties", "dealers", "categories", "users"} {
			if _, err := exec(ctx, tx, `DELETE FROM `+table); err != nil {
				return errors.Wrapf(err, "clear %s", table)
			}
		}
		for _, c := range storage.BaselineCategories() {
			in := domain.NewCategory{
				Name: c.Name, Description: c.Description, Icon: c.Icon, ParentID: c.ParentID,
				CurrentPrice: c.CurrentPrice, PriceUnit: c.PriceUnit, IsActive: &c.IsActive,
			}
			if _, err := cats.insert(ctx, tx, c.ID, in); err != nil {
				return errors.Wrapf(err, "seed category %d", c.ID)
			}
		}
		for _, d := range storage.BaselineDealers() {
			if err := seedDealer(ctx, tx, d); err != nil {
				return errors.Wrapf(err, "seed dealer %d", d.ID)
			}
		}
		var err error
		if demo, err = users.create(ctx, tx, storage.DemoUser(string(hash))); err != nil {
			return errors.Wrap(err, "seed demo user")
		}
		for _, p := range storage.BaselineProducts(demo.ID) {
			if err := seedProduct(ctx, tx, p); err != nil {
				return errors.Wrapf(err, "seed product %d", p.ID)
			}
		}
		if db.DriverName() == DriverPostgres {
			for _, table := range []string{"categories", "dealers", "products"} {
				if _, err := tx.ExecContext(ctx,
					`SELECT setval(pg_get_serial_sequence('`+table+`','id'), (SELECT MAX(id) FROM `+table+`))`); err != nil {
					return errors.Wrapf(err, "advance %s sequence", table)
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	applog.Info(nil, "db.seed", map[string]any{
		"categories": len(storage.BaselineCategories()),
		"dealers":    len(storage.BaselineDealers()),
		"products":   len(storage.BaselineProducts(demo.ID)),
		"demo_user":  demo.Username,
	})
	return nil
}

func seedDealer(ctx context.Context, db sqlx.ExtContext, d domain.Dealer) error {
	if _, err := exec(ctx, db, `
		INSERT INTO dealers(id,name,address,phone,email,city,rating,is_active) VALUES(?,?,?,?,?,?,?,?)`,
		d.ID, d.Name, d.Address, d.Phone, d.Email, d.City, d.Rating, d.IsActive); err != nil {
		return err
	}
	for pos, cat := range d.Specialties {
		if _, err := exec(ctx, db, `INSERT INTO dealer_specialties(dealer_id,position,category_id) VALUES(?,?,?)`,
			d.ID, pos, cat); err != nil {
			return err
		}
	}
	return nil
}

func seedProduct(ctx context.Context, db sqlx.ExtContext, p domain.Product) error {
	if _, err := exec(ctx, db, `
		INSERT INTO products(id,seller_id,title,description,price,category,condition,location,is_available,is_recycled,created_at)
		VALUES(?,?,?,?,?,?,?,?,?,?,?)`,
		p.ID, p.SellerID, p.Title, p.Description, p.Price, p.Category, p.Condition, p.Location,
		p.IsAvailable, p.IsRecycled, storage.Now()); err != nil {
		return err
	}
	for pos, url := range p.Images {
		if _, err := exec(ctx, db, `INSERT INTO product_images(product_id,position,url) VALUES(?,?,?)`,
			p.ID, pos, url); err != nil {
			return err
		}
	}
	return nil
}
