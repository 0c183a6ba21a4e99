package repos

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"junkdealer/internal/domain"
)

type DealerRepo struct{ db *sqlx.DB }

func NewDealerRepo(db *sqlx.DB) *DealerRepo { return &DealerRepo{db: db} }

const dealerCols = `id,name,address,phone,email,city,rating,is_active`

// withSpecialties loads the ordered specialty list of every dealer in ds.
func (r *DealerRepo) withSpecialties(ctx context.Context, ds []domain.Dealer) ([]domain.Dealer, error) {
	if len(ds) == 0 {
		return ds, nil
	}
	ids := make([]int64, len(ds))
	idx := make(map[int64]int, len(ds))
	for i := range ds {
		ids[i] = ds[i].ID
		idx[ds[i].ID] = i
		ds[i].Specialties = []int64{}
	}
	query, args, err := sqlx.In(`
		SELECT dealer_id, category_id FROM dealer_specialties
		WHERE dealer_id IN (?) ORDER BY dealer_id, position`, ids)
	if err != nil {
		return nil, err
	}
	var rows []struct {
		DealerID   int64 `db:"dealer_id"`
		CategoryID int64 `db:"category_id"`
	}
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, err
	}
	for _, row := range rows {
		d := &ds[idx[row.DealerID]]
		d.Specialties = append(d.Specialties, row.CategoryID)
	}
	return ds, nil
}

func (r *DealerRepo) List(ctx context.Context) ([]domain.Dealer, error) {
	out, err := many[domain.Dealer](ctx, r.db, `SELECT `+dealerCols+` FROM dealers ORDER BY id`)
	if err == nil {
		out, err = r.withSpecialties(ctx, out)
	}
	return out, errors.Wrap(err, "list dealers")
}

func (r *DealerRepo) ListByCity(ctx context.Context, city string) ([]domain.Dealer, error) {
	out, err := many[domain.Dealer](ctx, r.db, `SELECT `+dealerCols+` FROM dealers WHERE city=? ORDER BY id`, city)
	if err == nil {
		out, err = r.withSpecialties(ctx, out)
	}
	return out, errors.Wrap(err, "list dealers by city")
}

func (r *DealerRepo) Get(ctx context.Context, id int64) (*domain.Dealer, error) {
	d, err := one[domain.Dealer](ctx, r.db, `SELECT `+dealerCols+` FROM dealers WHERE id=?`, id)
	if err != nil || d == nil {
		return nil, errors.Wrap(err, "get dealer")
	}
	ds, err := r.withSpecialties(ctx, []domain.Dealer{*d})
	if err != nil {
		return nil, errors.Wrap(err, "get dealer")
	}
	return &ds[0], nil
}

func (r *DealerRepo) Create(ctx context.Context, in domain.NewDealer) (*domain.Dealer, error) {
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
		return nil, errors.Wrap(err, "insert dealer")
	}
	return r.Get(ctx, id)
}

func (r *DealerRepo) insert(ctx context.Context, db sqlx.ExtContext, in domain.NewDealer) (int64, error) {
	active := in.IsActive == nil || *in.IsActive
	id, err := insertID(ctx, db, `
		INSERT INTO dealers(name,address,phone,email,city,rating,is_active)
		VALUES(?,?,?,?,?,?,?)`,
		in.Name, in.Address, in.Phone, in.Email, in.City, in.Rating, active)
	if err != nil {
		return 0, err
	}
	for pos, cat := range in.Specialties {
		if _, err := exec(ctx, db, `INSERT INTO dealer_specialties(dealer_id,position,category_id) VALUES(?,?,?)`,
			id, pos, cat); err != nil {
			return 0, err
		}
	}
	return id, nil
}
