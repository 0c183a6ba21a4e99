package repos

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"junkdealer/internal/domain"
	"junkdealer/internal/storage"
)

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

const userCols = `id,username,email,password_hash,first_name,last_name,phone,address,city,is_active,created_at`

func userUTC(u *domain.User) *domain.User {
	if u != nil {
		u.CreatedAt = u.CreatedAt.UTC()
	}
	return u
}

func (r *UserRepo) ByID(ctx context.Context, id int64) (*domain.User, error) {
	u, err := one[domain.User](ctx, r.DB, `SELECT `+userCols+` FROM users WHERE id=?`, id)
	return userUTC(u), errors.Wrap(err, "get user")
}

func (r *UserRepo) ByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := one[domain.User](ctx, r.DB, `SELECT `+userCols+` FROM users WHERE email=?`, domain.EmailKey(email))
	return userUTC(u), errors.Wrap(err, "get user by email")
}

func (r *UserRepo) ByUsername(ctx context.Context, username string) (*domain.User, error) {
	u, err := one[domain.User](ctx, r.DB, `SELECT `+userCols+` FROM users WHERE username=?`, username)
	return userUTC(u), errors.Wrap(err, "get user by username")
}

func (r *UserRepo) Create(ctx context.Context, in domain.NewUser) (*domain.User, error) {
	return r.create(ctx, r.DB, in)
}

func (r *UserRepo) create(ctx context.Context, db sqlx.ExtContext, in domain.NewUser) (*domain.User, error) {
	u := domain.User{
		Username:  in.Username,
		Email:     domain.EmailKey(in.Email),
		Hash:      in.Hash,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Phone:     in.Phone,
		Address:   in.Address,
		City:      in.City,
		IsActive:  true,
		CreatedAt: storage.Now(),
	}
	id, err := insertID(ctx, db, `
		INSERT INTO users(username,email,password_hash,first_name,last_name,phone,address,city,is_active,created_at)
		VALUES(?,?,?,?,?,?,?,?,?,?)`,
		u.Username, u.Email, u.Hash, u.FirstName, u.LastName, u.Phone, u.Address, u.City, u.IsActive, u.CreatedAt)
	if isUniqueViolation(err) {
		return nil, storage.ErrDuplicateUser
	}
	if err != nil {
		return nil, errors.Wrap(err, "insert user")
	}
	u.ID = id
	return &u, nil
}

func (r *UserRepo) UpdateContact(ctx context.Context, id int64, c domain.UserContact) (*domain.User, error) {
	u, err := r.ByID(ctx, id)
	if err != nil || u == nil {
		return nil, err
	}
	u.ApplyContact(c)
	n, err := exec(ctx, r.DB, `
		UPDATE users SET first_name=?, last_name=?, phone=?, address=?, city=? WHERE id=?`,
		u.FirstName, u.LastName, u.Phone, u.Address, u.City, id)
	if err != nil {
		return nil, errors.Wrap(err, "update user contact")
	}
	if n == 0 {
		return nil, nil
	}
	return r.ByID(ctx, id)
}
