package services

import (
	"context"
	"fmt"

	"junkdealer/internal/domain"
	applog "junkdealer/internal/log"
	"junkdealer/internal/storage"
	"junkdealer/internal/validate"
)

type BookingService struct {
	Bookings storage.BookingStore
	Users    storage.UserStore
	Cats     storage.CategoryStore
	Notes    storage.NotificationStore
}

func NewBookingService(b storage.BookingStore, u storage.UserStore, c storage.CategoryStore, n storage.NotificationStore) *BookingService {
	return &BookingService{Bookings: b, Users: u, Cats: c, Notes: n}
}

func (s *BookingService) List(ctx context.Context) ([]domain.Booking, error) {
	return s.Bookings.ListBookings(ctx)
}

func (s *BookingService) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return s.Bookings.ListBookingsByUser(ctx, userID)
}

func (s *BookingService) Get(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.Bookings.GetBooking(ctx, id)
}

// Create stores a pending booking for an existing user and tells the user it arrived.
func (s *BookingService) Create(ctx context.Context, in domain.NewBooking) (*domain.Booking, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	u, err := s.Users.GetUser(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUnknownUser
	}
	if in.CategoryID != nil {
		c, err := s.Cats.GetCategory(ctx, *in.CategoryID)
		if err != nil {
			return nil, err
		}
		if c == nil {
			return nil, ErrUnknownCategory
		}
	}
	b, err := s.Bookings.CreateBooking(ctx, in)
	if err != nil {
		return nil, err
	}
	s.notify(ctx, b.UserID, "Booking received",
		fmt.Sprintf("Your %s booking #%d has been received and is pending confirmation.", b.ServiceType, b.ID),
		domain.NotifyInfo)
	return b, nil
}

var statusNotice = map[string]string{
	domain.StatusPending:   domain.NotifyInfo,
	domain.StatusConfirmed: domain.NotifySuccess,
	domain.StatusCompleted: domain.NotifySuccess,
	domain.StatusCancelled: domain.NotifyWarning,
}

// UpdateStatus returns (nil, nil) for an unknown booking.
func (s *BookingService) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Booking, error) {
	if !domain.ValidBookingStatus(status) {
		return nil, ErrInvalidStatus
	}
	b, err := s.Bookings.UpdateBookingStatus(ctx, id, status)
	if err != nil || b == nil {
		return nil, err
	}
	s.notify(ctx, b.UserID, "Booking "+status,
		fmt.Sprintf("Your booking #%d is now %s.", b.ID, status), statusNotice[status])
	return b, nil
}

// notify is best effort: the booking change already happened.
func (s *BookingService) notify(ctx context.Context, userID int64, title, msg, kind string) {
	_, err := s.Notes.CreateNotification(ctx, domain.NewNotification{UserID: userID, Title: title, Message: msg, Type: kind})
	if err != nil {
		applog.Error(nil, "notification.create", err, map[string]any{"user_id": userID})
	}
}
