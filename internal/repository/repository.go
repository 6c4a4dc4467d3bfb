package repository

import (
	"context"
	"time"

	"inventory_management/internal/models"

	"github.com/jmoiron/sqlx"
)

// Users is the credential store.
type Users interface {
	Create(ctx context.Context, u *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// Products is the product store.
type Products interface {
	Create(ctx context.Context, p *models.Product) error
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	List(ctx context.Context, offset, limit int) ([]models.Product, error)
	Count(ctx context.Context) (int64, error)
	UpdateQuantity(ctx context.Context, id int64, quantity int, at time.Time) (*models.Product, error)
	Stats(ctx context.Context, lowStockThreshold int) (models.InventoryStats, error)
}

type Repository struct {
	Users    Users
	Products Products
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Users:    NewUserRepository(db),
		Products: NewProductRepository(db),
	}
}
