package domain

import "time"

type Category struct {
	ID           int64   `db:"id" json:"id"`
	Name         string  `db:"name" json:"name"`
	Description  *string `db:"description" json:"description"`
	Icon         *string `db:"icon" json:"icon"`
	ParentID     *int64  `db:"parent_id" json:"parentId"`
	CurrentPrice *string `db:"current_price" json:"currentPrice"` // decimal, 2 places
	PriceUnit    string  `db:"price_unit" json:"priceUnit"`
	IsActive     bool    `db:"is_active" json:"isActive"`
}

type NewCategory struct {
	Name         string  `json:"name" validate:"required,max=100"`
	Description  *string `json:"description" validate:"omitempty,max=500"`
	Icon         *string `json:"icon" validate:"omitempty,max=100"`
	ParentID     *int64  `json:"parentId" validate:"omitempty,gt=0"`
	CurrentPrice *string `json:"currentPrice" validate:"omitempty,decimal"`
	PriceUnit    string  `json:"priceUnit" validate:"omitempty,max=20"`
	IsActive     *bool   `json:"isActive"`
}

type PriceHistory struct {
	ID         int64     `db:"id" json:"id"`
	CategoryID int64     `db:"category_id" json:"categoryId"`
	Price      string    `db:"price" json:"price"`
	Date       time.Time `db:"date" json:"date"`
}

type Dealer struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Address     string  `db:"address" json:"address"`
	Phone       string  `db:"phone" json:"phone"`
	Email       *string `db:"email" json:"email"`
	City        string  `db:"city" json:"city"`
	Rating      *string `db:"rating" json:"rating"` // decimal, 2 places
	IsActive    bool    `db:"is_active" json:"isActive"`
	Specialties []int64 `db:"-" json:"specialties"`
}

type NewDealer struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Address     string  `json:"address" validate:"required,max=200"`
	Phone       string  `json:"phone" validate:"required,max=20"`
	Email       *string `json:"email" validate:"omitempty,email"`
	City        string  `json:"city" validate:"required,max=50"`
	Rating      *string `json:"rating" validate:"omitempty,decimal=3"`
	IsActive    *bool   `json:"isActive"`
	Specialties []int64 `json:"specialties" validate:"dive,gt=0"`
}

type Product struct {
	ID          int64     `db:"id" json:"id"`
	SellerID    int64     `db:"seller_id" json:"sellerId"`
	Title       string    `db:"title" json:"title"`
	Description *string   `db:"description" json:"description"`
	Price       string    `db:"price" json:"price"`
	Category    string    `db:"category" json:"category"`
	Condition   string    `db:"condition" json:"condition"` // new | like-new | good | fair | poor
	Images      []string  `db:"-" json:"images"`
	Location    *string   `db:"location" json:"location"`
	IsAvailable bool      `db:"is_available" json:"isAvailable"`
	IsRecycled  bool      `db:"is_recycled" json:"isRecycled"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

type NewProduct struct {
	SellerID    int64    `json:"sellerId" validate:"required,gt=0"`
	Title       string   `json:"title" validate:"required,max=150"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	Price       string   `json:"price" validate:"required,decimal"`
	Category    string   `json:"category" validate:"required,max=50"`
	Condition   string   `json:"condition" validate:"required,condition"`
	Images      []string `json:"images" validate:"max=10,dive,required,max=500"`
	Location    *string  `json:"location" validate:"omitempty,max=100"`
	IsRecycled  bool     `json:"isRecycled"`
}
