package domain

import "time"

const (
	NotifyInfo    = "info"
	NotifySuccess = "success"
	NotifyWarning = "warning"
	NotifyError   = "error"
)

type Notification struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"userId"`
	Title     string    `db:"title" json:"title"`
	Message   string    `db:"message" json:"message"`
	Type      string    `db:"type" json:"type"` // info | success | warning | error
	IsRead    bool      `db:"is_read" json:"isRead"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

type NewNotification struct {
	UserID  int64  `json:"userId" validate:"required,gt=0"`
	Title   string `json:"title" validate:"required,max=100"`
	Message string `json:"message" validate:"required,max=1000"`
	Type    string `json:"type" validate:"required,oneof=info success warning error"`
}
