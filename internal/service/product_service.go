package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"inventory_management/internal/models"
	"inventory_management/internal/repository"
)

// Paging defaults and limits for product listings.
const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// ProductInput is the payload for creating a product.
type ProductInput struct {
	Name        string
	Type        string
	SKU         string
	ImageURL    *string
	Description *string
	Quantity    int
	Price       float64
}

// Pagination selects one page; zero values mean defaults.
type Pagination struct {
	Page    int
	PerPage int
}

// Offset is the number of rows skipped before the page starts.
func (p Pagination) Offset() int { return (p.Page - 1) * p.PerPage }

// ProductPage is a slice of products plus the unfiltered total.
type ProductPage struct {
	Products []models.Product
	Total    int64
	Page     int
	PerPage  int
}

type ProductService struct {
	repo              repository.Products
	lowStockThreshold int
	now               func() time.Time
}

func NewProductService(repo repository.Products, lowStockThreshold int) *ProductService {
	return &ProductService{repo: repo, lowStockThreshold: lowStockThreshold, now: time.Now}
}

// Create validates the input and stores a new product.
func (s *ProductService) Create(ctx context.Context, in ProductInput) (int64, error) {
	if err := validateProduct(in); err != nil {
		return 0, err
	}
	p := &models.Product{
		Name:        in.Name,
		Type:        in.Type,
		SKU:         in.SKU,
		ImageURL:    in.ImageURL,
		Description: in.Description,
		Quantity:    in.Quantity,
		Price:       in.Price,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return 0, ErrSKUTaken
		}
		return 0, fmt.Errorf("create product: %w", err)
	}
	return p.ID, nil
}

func (s *ProductService) Get(ctx context.Context, id int64) (*models.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// List returns the requested page and the total product count.
func (s *ProductService) List(ctx context.Context, pg Pagination) (ProductPage, error) {
	pg, err := normalizePagination(pg)
	if err != nil {
		return ProductPage{}, err
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return ProductPage{}, fmt.Errorf("list products: %w", err)
	}
	products, err := s.repo.List(ctx, pg.Offset(), pg.PerPage)
	if err != nil {
		return ProductPage{}, fmt.Errorf("list products: %w", err)
	}
	return ProductPage{Products: products, Total: total, Page: pg.Page, PerPage: pg.PerPage}, nil
}

// UpdateQuantity overwrites the stock level and stamps updated_at.
func (s *ProductService) UpdateQuantity(ctx context.Context, id int64, quantity int) (*models.Product, error) {
	if quantity < 0 {
		return nil, invalid("quantity", "must be greater than or equal to 0")
	}
	p, err := s.repo.UpdateQuantity(ctx, id, quantity, s.now().UTC())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("update quantity: %w", err)
	}
	return p, nil
}

func (s *ProductService) Stats(ctx context.Context) (models.InventoryStats, error) {
	st, err := s.repo.Stats(ctx, s.lowStockThreshold)
	if err != nil {
		return models.InventoryStats{}, fmt.Errorf("inventory stats: %w", err)
	}
	return st, nil
}

func normalizePagination(pg Pagination) (Pagination, error) {
	if pg.Page == 0 {
		pg.Page = DefaultPage
	}
	if pg.PerPage == 0 {
		pg.PerPage = DefaultPerPage
	}
	if pg.Page < 1 {
		return Pagination{}, invalid("page", "must be greater than or equal to 1")
	}
	if pg.PerPage < 1 || pg.PerPage > MaxPerPage {
		return Pagination{}, invalid("per_page", "must be between 1 and %d", MaxPerPage)
	}
	return pg, nil
}

func checkLength(field, v string, lo, hi int) error {
	if n := utf8.RuneCountInString(v); n < lo || n > hi {
		return invalid(field, "length must be between %d and %d", lo, hi)
	}
	return nil
}

func validateProduct(in ProductInput) error {
	if err := checkLength("name", in.Name, 1, 100); err != nil {
		return err
	}
	if err := checkLength("type", in.Type, 1, 50); err != nil {
		return err
	}
	if err := checkLength("sku", in.SKU, 1, 50); err != nil {
		return err
	}
	if in.Quantity < 0 {
		return invalid("quantity", "must be greater than or equal to 0")
	}
	if !(in.Price > 0) {
		return invalid("price", "must be greater than 0")
	}
	return nil
}
