package models

import "time"

// Product is a single inventory item.
type Product struct {
	ID          int64      `json:"id" db:"id"`
	Name        string     `json:"name" db:"name"`
	Type        string     `json:"type" db:"type"`
	SKU         string     `json:"sku" db:"sku"`
	ImageURL    *string    `json:"image_url" db:"image_url"`
	Description *string    `json:"description" db:"description"`
	Quantity    int        `json:"quantity" db:"quantity"`
	Price       float64    `json:"price" db:"price"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at" db:"updated_at"` // nil until the first quantity change
}

// InventoryStats is the dashboard summary over all products.
type InventoryStats struct {
	TotalProducts     int64   `json:"total_products" db:"total_products"`
	LowStock          int64   `json:"low_stock" db:"low_stock"`
	TotalValue        float64 `json:"total_value" db:"total_value"`
	LowStockThreshold int     `json:"low_stock_threshold" db:"-"`
}
