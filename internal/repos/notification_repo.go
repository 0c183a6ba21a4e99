package repos

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"junkdealer/internal/domain"
	"junkdealer/internal/storage"
)

type NotificationRepo struct{ db *sqlx.DB }

func NewNotificationRepo(db *sqlx.DB) *NotificationRepo { return &NotificationRepo{db: db} }

const notificationCols = `id,user_id,title,message,type,is_read,created_at`

func (r *NotificationRepo) list(ctx context.Context, where string, args ...any) ([]domain.Notification, error) {
	out, err := many[domain.Notification](ctx, r.db,
		`SELECT `+notificationCols+` FROM notifications WHERE `+where+` ORDER BY id`, args...)
	for i := range out {
		out[i].CreatedAt = out[i].CreatedAt.UTC()
	}
	return out, err
}

func (r *NotificationRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Notification, error) {
	out, err := r.list(ctx, `user_id=?`, userID)
	return out, errors.Wrap(err, "list notifications")
}

func (r *NotificationRepo) ListUnread(ctx context.Context, userID int64) ([]domain.Notification, error) {
	out, err := r.list(ctx, `user_id=? AND is_read=?`, userID, false)
	return out, errors.Wrap(err, "list unread notifications")
}

func (r *NotificationRepo) Get(ctx context.Context, id int64) (*domain.Notification, error) {
	n, err := one[domain.Notification](ctx, r.db, `SELECT `+notificationCols+` FROM notifications WHERE id=?`, id)
	if n != nil {
		n.CreatedAt = n.CreatedAt.UTC()
	}
	return n, errors.Wrap(err, "get notification")
}

func (r *NotificationRepo) Create(ctx context.Context, in domain.NewNotification) (*domain.Notification, error) {
	n := domain.Notification{UserID: in.UserID, Title: in.Title, Message: in.Message, Type: in.Type, CreatedAt: storage.Now()}
	id, err := insertID(ctx, r.db, `
		INSERT INTO notifications(user_id,title,message,type,is_read,created_at) VALUES(?,?,?,?,?,?)`,
		n.UserID, n.Title, n.Message, n.Type, n.IsRead, n.CreatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "insert notification")
	}
	n.ID = id
	return &n, nil
}

func (r *NotificationRepo) MarkRead(ctx context.Context, id int64) (*domain.Notification, error) {
	n, err := exec(ctx, r.db, `UPDATE notifications SET is_read=? WHERE id=?`, true, id)
	if err != nil {
		return nil, errors.Wrap(err, "mark notification read")
	}
	if n == 0 {
		return nil, nil
	}
	return r.Get(ctx, id)
}

func (r *NotificationRepo) MarkAllRead(ctx context.Context, userID int64) (bool, error) {
	if _, err := exec(ctx, r.db, `UPDATE notifications SET is_read=? WHERE user_id=?`, true, userID); err != nil {
		return false, errors.Wrap(err, "mark all notifications read")
	}
	return true, nil
}
