package domain

import "time"

const (
	ServicePickup  = "pickup"
	ServiceDropoff = "dropoff"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

type Booking struct {
	ID              int64      `db:"id" json:"id"`
	UserID          int64      `db:"user_id" json:"userId"`
	ServiceType     string     `db:"service_type" json:"serviceType"`
	CategoryID      *int64     `db:"category_id" json:"categoryId"`
	EstimatedWeight *string    `db:"estimated_weight" json:"estimatedWeight"`
	ScheduledDate   *time.Time `db:"scheduled_date" json:"scheduledDate"`
	ScheduledTime   *string    `db:"scheduled_time" json:"scheduledTime"`
	Address         *string    `db:"address" json:"address"`
	Phone           *string    `db:"phone" json:"phone"`
	Status          string     `db:"status" json:"status"`
	Notes           *string    `db:"notes" json:"notes"`
	CreatedAt       time.Time  `db:"created_at" json:"createdAt"`
}

// NewBooking has no status: every booking starts as pending.
type NewBooking struct {
	UserID          int64      `json:"userId" validate:"required,gt=0"`
	ServiceType     string     `json:"serviceType" validate:"required,service_type"`
	CategoryID      *int64     `json:"categoryId" validate:"omitempty,gt=0"`
	EstimatedWeight *string    `json:"estimatedWeight" validate:"omitempty,decimal"`
	ScheduledDate   *time.Time `json:"scheduledDate"`
	ScheduledTime   *string    `json:"scheduledTime" validate:"omitempty,max=20"`
	Address         *string    `json:"address" validate:"omitempty,max=200"`
	Phone           *string    `json:"phone" validate:"omitempty,max=20"`
	Notes           *string    `json:"notes" validate:"omitempty,max=1000"`
}

func ValidBookingStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}
