package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto con su stock inicial.
type CreateProductRequest struct {
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Price             decimal.Decimal `json:"price"`
	Quantity          int64           `json:"quantity"`
	Category          string          `json:"category"`
	LowStockThreshold *int64          `json:"low_stock_threshold,omitempty"`
	SupplierInfo      string          `json:"supplier_info,omitempty"`
	ImageURL          string          `json:"image_url,omitempty"`
}

// UpdateProductRequest entrada para la edición manual de un producto.
// Incluye el juego completo de campos; si Quantity difiere de la almacenada se
// registra un movimiento manual_update.
type UpdateProductRequest struct {
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Price             decimal.Decimal `json:"price"`
	Quantity          int64           `json:"quantity"`
	Category          string          `json:"category"`
	LowStockThreshold *int64          `json:"low_stock_threshold,omitempty"`
	SupplierInfo      string          `json:"supplier_info,omitempty"`
	ImageURL          string          `json:"image_url,omitempty"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID                string          `json:"id"`
	StoreID           string          `json:"store_id"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Price             decimal.Decimal `json:"price"`
	Quantity          int64           `json:"quantity"`
	Category          string          `json:"category"`
	LowStockThreshold int64           `json:"low_stock_threshold"`
	SupplierInfo      string          `json:"supplier_info,omitempty"`
	ImageURL          string          `json:"image_url,omitempty"`
	LowStock          bool            `json:"low_stock"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
