package service

import (
	"context"

	"inventory_management/internal/config"
	"inventory_management/internal/models"
	"inventory_management/internal/repository"
)

type Authorization interface {
	SignUp(ctx context.Context, username, password string) (int64, error)
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ResolveToken(ctx context.Context, accessToken string) (*models.User, error)
}

// Products exposes inventory operations.
type Products interface {
	Create(ctx context.Context, in ProductInput) (int64, error)
	Get(ctx context.Context, id int64) (*models.Product, error)
	List(ctx context.Context, p Pagination) (ProductPage, error)
	UpdateQuantity(ctx context.Context, id int64, quantity int) (*models.Product, error)
	Stats(ctx context.Context) (models.InventoryStats, error)
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Products
}

func NewService(repos *repository.Repository, cfg *config.Config) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, cfg.Auth.SecretKey, cfg.Auth.TokenTTL),
		Products:      NewProductService(repos.Products, cfg.Inventory.LowStockThreshold),
	}
}
