package services

import (
	"context"

	"junkdealer/internal/domain"
	"junkdealer/internal/storage"
	"junkdealer/internal/validate"
)

type CatalogService struct {
	Cats        storage.CategoryStore
	DealerStore storage.DealerStore
	Prods       storage.ProductStore
}

func NewCatalogService(cats storage.CategoryStore, dealers storage.DealerStore, prods storage.ProductStore) *CatalogService {
	return &CatalogService{Cats: cats, DealerStore: dealers, Prods: prods}
}

// Categories lists every category, or only the children of parent when it is non-nil.
func (s *CatalogService) Categories(ctx context.Context, parent *int64) ([]domain.Category, error) {
	if parent != nil {
		return s.Cats.ListCategoriesByParent(ctx, *parent)
	}
	return s.Cats.ListCategories(ctx)
}

func (s *CatalogService) Category(ctx context.Context, id int64) (*domain.Category, error) {
	return s.Cats.GetCategory(ctx, id)
}

func (s *CatalogService) CreateCategory(ctx context.Context, in domain.NewCategory) (*domain.Category, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	return s.Cats.CreateCategory(ctx, in)
}

func (s *CatalogService) UpdatePrice(ctx context.Context, id int64, price string) (*domain.Category, error) {
	if !validate.Decimal(price) {
		return nil, ErrInvalidPrice
	}
	return s.Cats.UpdateCategoryPrice(ctx, id, price)
}

func (s *CatalogService) PriceHistory(ctx context.Context, categoryID int64) ([]domain.PriceHistory, error) {
	c, err := s.Cats.GetCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrUnknownCategory
	}
	return s.Cats.ListPriceHistory(ctx, categoryID)
}

func (s *CatalogService) Dealers(ctx context.Context, city string) ([]domain.Dealer, error) {
	if city != "" {
		return s.DealerStore.ListDealersByCity(ctx, city)
	}
	return s.DealerStore.ListDealers(ctx)
}

func (s *CatalogService) Dealer(ctx context.Context, id int64) (*domain.Dealer, error) {
	return s.DealerStore.GetDealer(ctx, id)
}

func (s *CatalogService) CreateDealer(ctx context.Context, in domain.NewDealer) (*domain.Dealer, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	return s.DealerStore.CreateDealer(ctx, in)
}

type ProductFilter struct {
	Category string
	SellerID int64
}

// Products applies at most one filter; the category label wins over the seller.
func (s *CatalogService) Products(ctx context.Context, f ProductFilter) ([]domain.Product, error) {
	switch {
	case f.Category != "":
		return s.Prods.ListProductsByCategory(ctx, f.Category)
	case f.SellerID > 0:
		return s.Prods.ListProductsBySeller(ctx, f.SellerID)
	default:
		return s.Prods.ListProducts(ctx)
	}
}

func (s *CatalogService) Product(ctx context.Context, id int64) (*domain.Product, error) {
	return s.Prods.GetProduct(ctx, id)
}

func (s *CatalogService) CreateProduct(ctx context.Context, in domain.NewProduct) (*domain.Product, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	return s.Prods.CreateProduct(ctx, in)
}

func (s *CatalogService) SetAvailability(ctx context.Context, id int64, available bool) (*domain.Product, error) {
	return s.Prods.UpdateProductAvailability(ctx, id, available)
}
