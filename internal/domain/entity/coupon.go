package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de cupón.
const (
	CouponPercentage = "percentage" // Value es porcentaje sobre el total
	CouponFixed      = "fixed"      // Value es monto fijo a descontar
)

// Coupon representa un cupón de descuento de una tienda.
// Un cupón puede estar asignado a usuarios concretos (lista de asignación);
// sin asignaciones es público para cualquier usuario autenticado.
type Coupon struct {
	ID        string
	StoreID   string
	Code      string // único por tienda
	Type      string // percentage | fixed
	Value     decimal.Decimal
	ExpiresAt time.Time
	MaxUses   int   // 0 = ilimitado
	UsedCount int
	Status    string // active, disabled
	CreatedAt time.Time
}

// Expired indica si el cupón ya venció respecto a now.
func (c *Coupon) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

// Exhausted indica si el cupón agotó sus usos.
func (c *Coupon) Exhausted() bool {
	return c.MaxUses > 0 && c.UsedCount >= c.MaxUses
}

// Discount calcula el descuento aplicable sobre un total.
// El descuento nunca supera el total.
func (c *Coupon) Discount(total decimal.Decimal) decimal.Decimal {
	var d decimal.Decimal
	switch c.Type {
	case CouponPercentage:
		d = total.Mul(c.Value).Div(decimal.NewFromInt(100)).Round(2)
	case CouponFixed:
		d = c.Value
	default:
		return decimal.Zero
	}
	if d.GreaterThan(total) {
		return total
	}
	return d
}
