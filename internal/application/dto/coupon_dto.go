package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCouponRequest entrada para crear un cupón.
type CreateCouponRequest struct {
	Code      string          `json:"code"`
	Type      string          `json:"type"` // percentage | fixed
	Value     decimal.Decimal `json:"value"`
	ExpiresAt time.Time       `json:"expires_at"`
	MaxUses   int             `json:"max_uses,omitempty"`
}

// AssignCouponRequest entrada para asignar un cupón a un usuario.
type AssignCouponRequest struct {
	UserID string `json:"user_id"`
}

// ApplyCouponRequest entrada para aplicar un código sobre un total.
type ApplyCouponRequest struct {
	Code  string          `json:"code"`
	Total decimal.Decimal `json:"total"`
}

// ApplyCouponResponse descuento resuelto para el total dado.
type ApplyCouponResponse struct {
	Code     string          `json:"code"`
	Discount decimal.Decimal `json:"discount"`
	NewTotal decimal.Decimal `json:"new_total"`
}

// CouponResponse salida de un cupón.
type CouponResponse struct {
	ID        string          `json:"id"`
	StoreID   string          `json:"store_id"`
	Code      string          `json:"code"`
	Type      string          `json:"type"`
	Value     decimal.Decimal `json:"value"`
	ExpiresAt time.Time       `json:"expires_at"`
	MaxUses   int             `json:"max_uses"`
	UsedCount int             `json:"used_count"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

// CouponListResponse lista paginada de cupones.
type CouponListResponse struct {
	Items []CouponResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
