package dto

import "time"

// SaleRequest body para POST /api/products/:id/sale.
type SaleRequest struct {
	QuantitySold int64  `json:"quantity_sold"`
	Notes        string `json:"notes,omitempty"`
}

// RestockRequest body para POST /api/products/:id/restock.
type RestockRequest struct {
	QuantityRestocked int64  `json:"quantity_restocked"`
	Notes             string `json:"notes,omitempty"`
}

// MovementResponse entrada del libro de movimientos de un producto.
type MovementResponse struct {
	ID             string    `json:"id"`
	ProductID      string    `json:"product_id"`
	Type           string    `json:"type"`
	QuantityChange int64     `json:"quantity_change"`
	QuantityBefore int64     `json:"quantity_before"`
	QuantityAfter  int64     `json:"quantity_after"`
	Note           string    `json:"note,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	CreatedBy      string    `json:"created_by,omitempty"`
}

// MovementListResponse historial de movimientos, el más reciente primero.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
