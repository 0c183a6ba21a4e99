package services

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"junkdealer/internal/domain"
	"junkdealer/internal/storage"
	"junkdealer/internal/validate"
)

// NewAccount is the sign-up request. The password never reaches the store.
type NewAccount struct {
	Username  string  `json:"username" validate:"required,username"`
	Email     string  `json:"email" validate:"required,email,max=100"`
	Password  string  `json:"password" validate:"required,password"`
	FirstName string  `json:"firstName" validate:"required,max=50"`
	LastName  string  `json:"lastName" validate:"required,max=50"`
	Phone     *string `json:"phone" validate:"omitempty,max=20"`
	Address   *string `json:"address" validate:"omitempty,max=200"`
	City      *string `json:"city" validate:"omitempty,max=50"`
}

type AuthService struct {
	Users storage.UserStore
	Cost  int
}

func NewAuthService(users storage.UserStore) *AuthService {
	return &AuthService{Users: users, Cost: bcrypt.DefaultCost}
}

func (s *AuthService) Register(ctx context.Context, in NewAccount) (*domain.User, error) {
	in.Email = strings.TrimSpace(in.Email)
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.Cost)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}
	return s.Users.CreateUser(ctx, domain.NewUser{
		Username:  in.Username,
		Email:     in.Email,
		Hash:      string(hash),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Phone:     in.Phone,
		Address:   in.Address,
		City:      in.City,
	})
}

// Login returns ErrBadCreds for an unknown email, a wrong password or an
// inactive account alike.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	u, err := s.Users.GetUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, err
	}
	if u == nil || !u.IsActive {
		return nil, ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return nil, ErrBadCreds
	}
	return u, nil
}

func (s *AuthService) User(ctx context.Context, id int64) (*domain.User, error) {
	return s.Users.GetUser(ctx, id)
}

func (s *AuthService) UpdateContact(ctx context.Context, id int64, c domain.UserContact) (*domain.User, error) {
	if err := validate.Struct(c); err != nil {
		return nil, err
	}
	return s.Users.UpdateUserContact(ctx, id, c)
}
