package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mercadito-app/mercadito-api/internal/domain/entity"
)

func TestCoupon_Discount(t *testing.T) {
	total := decimal.NewFromFloat(199.99)

	pct := &entity.Coupon{Type: entity.CouponPercentage, Value: decimal.NewFromInt(15)}
	assert.True(t, decimal.NewFromFloat(30.00).Equal(pct.Discount(total)),
		"15 por ciento de 199.99 redondeado a 2 decimales")

	fixed := &entity.Coupon{Type: entity.CouponFixed, Value: decimal.NewFromInt(20)}
	assert.True(t, decimal.NewFromInt(20).Equal(fixed.Discount(total)))

	capped := &entity.Coupon{Type: entity.CouponFixed, Value: decimal.NewFromInt(500)}
	assert.True(t, total.Equal(capped.Discount(total)), "el descuento nunca supera el total")

	unknown := &entity.Coupon{Type: "otro", Value: decimal.NewFromInt(10)}
	assert.True(t, unknown.Discount(total).IsZero())
}

func TestCoupon_Expired(t *testing.T) {
	now := time.Now()

	c := &entity.Coupon{ExpiresAt: now.Add(time.Hour)}
	assert.False(t, c.Expired(now))

	c.ExpiresAt = now.Add(-time.Hour)
	assert.True(t, c.Expired(now))

	// Sin fecha de expiración el cupón no vence.
	c.ExpiresAt = time.Time{}
	assert.False(t, c.Expired(now))
}

func TestCoupon_Exhausted(t *testing.T) {
	c := &entity.Coupon{MaxUses: 0, UsedCount: 100}
	assert.False(t, c.Exhausted(), "max_uses 0 significa ilimitado")

	c = &entity.Coupon{MaxUses: 3, UsedCount: 2}
	assert.False(t, c.Exhausted())

	c.UsedCount = 3
	assert.True(t, c.Exhausted())
}

func TestMovement_Consistent(t *testing.T) {
	ok := &entity.Movement{QuantityBefore: 10, QuantityChange: -3, QuantityAfter: 7}
	assert.True(t, ok.Consistent())

	bad := &entity.Movement{QuantityBefore: 10, QuantityChange: -3, QuantityAfter: 8}
	assert.False(t, bad.Consistent())
}

func TestProduct_LowStock(t *testing.T) {
	p := &entity.Product{Quantity: 6, LowStockThreshold: 5}
	assert.False(t, p.LowStock())

	p.Quantity = 5
	assert.True(t, p.LowStock(), "en el umbral cuenta como stock bajo")

	p.Quantity = 0
	assert.True(t, p.LowStock())
}

func TestValidCategory(t *testing.T) {
	assert.True(t, entity.ValidCategory("alimentos"))
	assert.True(t, entity.ValidCategory("otros"))
	assert.False(t, entity.ValidCategory("juguetes"))
	assert.False(t, entity.ValidCategory(""))
}
