package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"inventory_management/internal/models"

	"github.com/jmoiron/sqlx"
)

type ProductRepository struct {
	db *sqlx.DB
}

func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

var _ Products = (*ProductRepository)(nil)

const productColumns = `id, name, type, sku, image_url, description, quantity, price, created_at, updated_at`

const (
	insertProductSQL = `INSERT INTO products (name, type, sku, image_url, description, quantity, price, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`
	selectProductByIDSQL    = `SELECT ` + productColumns + ` FROM products WHERE id = ?`
	listProductsSQL         = `SELECT ` + productColumns + ` FROM products ORDER BY id LIMIT ? OFFSET ?`
	countProductsSQL        = `SELECT COUNT(*) FROM products`
	updateProductQtySQL     = `UPDATE products SET quantity = ?, updated_at = ? WHERE id = ? RETURNING ` + productColumns
	selectInventoryStatsSQL = `SELECT
		COUNT(*) AS total_products,
		COALESCE(SUM(CASE WHEN quantity < ? THEN 1 ELSE 0 END), 0) AS low_stock,
		COALESCE(SUM(price * quantity), 0) AS total_value
		FROM products`
)

// Create inserts p and sets p.ID. A taken SKU yields ErrDuplicate.
func (r *ProductRepository) Create(ctx context.Context, p *models.Product) error {
	err := r.db.QueryRowxContext(ctx, r.db.Rebind(insertProductSQL),
		p.Name, p.Type, p.SKU, p.ImageURL, p.Description, p.Quantity, p.Price, p.CreatedAt,
	).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert product sku %q: %w", p.SKU, ErrDuplicate)
		}
		return fmt.Errorf("insert product sku %q: %w", p.SKU, err)
	}
	return nil
}

// GetByID returns ErrNotFound if no product has the id.
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	var p models.Product
	if err := r.db.GetContext(ctx, &p, r.db.Rebind(selectProductByIDSQL), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select product %d: %w", id, err)
	}
	return &p, nil
}

// List returns one page of products ordered by id.
func (r *ProductRepository) List(ctx context.Context, offset, limit int) ([]models.Product, error) {
	out := make([]models.Product, 0, limit)
	if err := r.db.SelectContext(ctx, &out, r.db.Rebind(listProductsSQL), limit, offset); err != nil {
		return nil, fmt.Errorf("list products offset=%d limit=%d: %w", offset, limit, err)
	}
	return out, nil
}

func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.GetContext(ctx, &n, countProductsSQL); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// UpdateQuantity sets quantity and updated_at in one statement and returns
// the updated row, or ErrNotFound.
func (r *ProductRepository) UpdateQuantity(ctx context.Context, id int64, quantity int, at time.Time) (*models.Product, error) {
	var p models.Product
	err := r.db.QueryRowxContext(ctx, r.db.Rebind(updateProductQtySQL), quantity, at, id).StructScan(&p)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update product %d quantity: %w", id, err)
	}
	return &p, nil
}

// Stats aggregates the whole table; products with quantity below
// lowStockThreshold count as low stock.
func (r *ProductRepository) Stats(ctx context.Context, lowStockThreshold int) (models.InventoryStats, error) {
	var s models.InventoryStats
	if err := r.db.GetContext(ctx, &s, r.db.Rebind(selectInventoryStatsSQL), lowStockThreshold); err != nil {
		return models.InventoryStats{}, fmt.Errorf("inventory stats: %w", err)
	}
	s.LowStockThreshold = lowStockThreshold
	return s, nil
}
