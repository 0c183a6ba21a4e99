package domain

import (
	"strings"
	"time"
)

type User struct {
	ID        int64     `db:"id" json:"id"`
	Username  string    `db:"username" json:"username"`
	Email     string    `db:"email" json:"email"`
	Hash      string    `db:"password_hash" json:"-"`
	FirstName string    `db:"first_name" json:"firstName"`
	LastName  string    `db:"last_name" json:"lastName"`
	Phone     *string   `db:"phone" json:"phone"`
	Address   *string   `db:"address" json:"address"`
	City      *string   `db:"city" json:"city"`
	IsActive  bool      `db:"is_active" json:"isActive"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// NewUser is the create input for a user. Hash must already be a bcrypt hash;
// the stores never see plaintext passwords.
type NewUser struct {
	Username  string  `json:"username" validate:"required,username"`
	Email     string  `json:"email" validate:"required,email,max=100"`
	Hash      string  `json:"-" validate:"required"`
	FirstName string  `json:"firstName" validate:"required,max=50"`
	LastName  string  `json:"lastName" validate:"required,max=50"`
	Phone     *string `json:"phone" validate:"omitempty,max=20"`
	Address   *string `json:"address" validate:"omitempty,max=200"`
	City      *string `json:"city" validate:"omitempty,max=50"`
}

// EmailKey is the form in which both stores keep and look up emails, so
// uniqueness and lookups ignore case the same way everywhere.
func EmailKey(email string) string { return strings.ToLower(strings.TrimSpace(email)) }

// UserContact holds the profile fields a user may change after sign-up.
// Nil fields are left untouched.
type UserContact struct {
	FirstName *string `json:"firstName" validate:"omitempty,min=1,max=50"`
	LastName  *string `json:"lastName" validate:"omitempty,min=1,max=50"`
	Phone     *string `json:"phone" validate:"omitempty,max=20"`
	Address   *string `json:"address" validate:"omitempty,max=200"`
	City      *string `json:"city" validate:"omitempty,max=50"`
}

func (u *User) ApplyContact(c UserContact) {
	if c.FirstName != nil {
		u.FirstName = *c.FirstName
	}
	if c.LastName != nil {
		u.LastName = *c.LastName
	}
	if c.Phone != nil {
		u.Phone = c.Phone
	}
	if c.Address != nil {
		u.Address = c.Address
	}
	if c.City != nil {
		u.City = c.City
	}
}
