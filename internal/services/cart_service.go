package services

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"junkdealer/internal/domain"
	"junkdealer/internal/storage"
	"junkdealer/internal/validate"
)

type CartService struct {
	Carts storage.CartStore
	Prods storage.ProductStore
}

func NewCartService(carts storage.CartStore, prods storage.ProductStore) *CartService {
	return &CartService{Carts: carts, Prods: prods}
}

func (s *CartService) Add(ctx context.Context, in domain.NewCartItem) (*domain.CartItem, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	p, err := s.Prods.GetProduct(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrUnknownProduct
	}
	if !p.IsAvailable {
		return nil, ErrUnavailable
	}
	return s.Carts.AddToCart(ctx, in)
}

type CartLine struct {
	Item     domain.CartItem `json:"item"`
	Product  *domain.Product `json:"product"`
	Subtotal string          `json:"subtotal"`
}

type CartView struct {
	Items []CartLine `json:"items"`
	Total string     `json:"total"`
}

// View joins the user's cart with current product data. Items whose product
// has since disappeared are listed with a nil product and count for nothing.
func (s *CartService) View(ctx context.Context, userID int64) (CartView, error) {
	items, err := s.Carts.ListCartItems(ctx, userID)
	if err != nil {
		return CartView{}, err
	}
	cv := CartView{Items: make([]CartLine, 0, len(items))}
	total := decimal.Zero
	for _, it := range items {
		line := CartLine{Item: it, Subtotal: decimal.Zero.StringFixed(2)}
		p, err := s.Prods.GetProduct(ctx, it.ProductID)
		if err != nil {
			return CartView{}, err
		}
		if p != nil {
			price, err := decimal.NewFromString(p.Price)
			if err != nil {
				return CartView{}, errors.Wrapf(err, "price of product %d", p.ID)
			}
			sub := price.Mul(decimal.NewFromInt(int64(it.Quantity)))
			line.Product, line.Subtotal = p, sub.StringFixed(2)
			total = total.Add(sub)
		}
		cv.Items = append(cv.Items, line)
	}
	cv.Total = total.StringFixed(2)
	return cv, nil
}

func (s *CartService) UpdateQty(ctx context.Context, id int64, qty int) (*domain.CartItem, error) {
	if qty < 1 || qty > 50 {
		return nil, ErrInvalidQty
	}
	return s.Carts.UpdateCartItemQuantity(ctx, id, qty)
}

func (s *CartService) Remove(ctx context.Context, id int64) (bool, error) {
	return s.Carts.RemoveFromCart(ctx, id)
}

func (s *CartService) Clear(ctx context.Context, userID int64) (bool, error) {
	return s.Carts.ClearCart(ctx, userID)
}
