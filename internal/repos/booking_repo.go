package repos

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"junkdealer/internal/domain"
	"junkdealer/internal/storage"
)

type BookingRepo struct{ db *sqlx.DB }

func NewBookingRepo(db *sqlx.DB) *BookingRepo { return &BookingRepo{db: db} }

const bookingCols = `id,user_id,service_type,category_id,estimated_weight,scheduled_date,scheduled_time,
	address,phone,status,notes,created_at`

func bookingUTC(b *domain.Booking) {
	b.CreatedAt = b.CreatedAt.UTC()
	if b.ScheduledDate != nil {
		d := b.ScheduledDate.UTC()
		b.ScheduledDate = &d
	}
}

func (r *BookingRepo) List(ctx context.Context) ([]domain.Booking, error) {
	out, err := many[domain.Booking](ctx, r.db, `SELECT `+bookingCols+` FROM bookings ORDER BY id`)
	for i := range out {
		bookingUTC(&out[i])
	}
	return out, errors.Wrap(err, "list bookings")
}

func (r *BookingRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	out, err := many[domain.Booking](ctx, r.db,
		`SELECT `+bookingCols+` FROM bookings WHERE user_id=? ORDER BY id`, userID)
	for i := range out {
		bookingUTC(&out[i])
	}
	return out, errors.Wrap(err, "list bookings by user")
}

func (r *BookingRepo) Get(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := one[domain.Booking](ctx, r.db, `SELECT `+bookingCols+` FROM bookings WHERE id=?`, id)
	if b != nil {
		bookingUTC(b)
	}
	return b, errors.Wrap(err, "get booking")
}

func (r *BookingRepo) Create(ctx context.Context, in domain.NewBooking) (*domain.Booking, error) {
	if err := in.Normalize(); err != nil {
		return nil, err
	}
	b := domain.Booking{
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
		CreatedAt:       storage.Now(),
	}
	id, err := insertID(ctx, r.db, `
		INSERT INTO bookings(user_id,service_type,category_id,estimated_weight,scheduled_date,scheduled_time,
		                     address,phone,status,notes,created_at)
		VALUES(?,?,?,?,?,?,?,?,?,?,?)`,
		b.UserID, b.ServiceType, b.CategoryID, b.EstimatedWeight, b.ScheduledDate, b.ScheduledTime,
		b.Address, b.Phone, b.Status, b.Notes, b.CreatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "insert booking")
	}
	return r.Get(ctx, id)
}

func (r *BookingRepo) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Booking, error) {
	n, err := exec(ctx, r.db, `UPDATE bookings SET status=? WHERE id=?`, status, id)
	if err != nil {
		return nil, errors.Wrap(err, "update booking status")
	}
	if n == 0 {
		return nil, nil
	}
	return r.Get(ctx, id)
}
