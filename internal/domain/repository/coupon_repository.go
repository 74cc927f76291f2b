package repository

import "github.com/mercadito-app/mercadito-api/internal/domain/entity"

// CouponRepository define el puerto de persistencia para cupones y su lista de asignación.
// IncrementUsage debe ser atómico: devuelve ErrCouponExhausted sin modificar nada si los
// usos ya se agotaron, de modo que aplicaciones concurrentes nunca excedan MaxUses.
type CouponRepository interface {
	Create(coupon *entity.Coupon) error
	GetByID(id string) (*entity.Coupon, error)
	GetByCode(code string) (*entity.Coupon, error)
	ListByStore(storeID string, limit, offset int) ([]*entity.Coupon, error)
	Assign(couponID, userID string) error
	IsAssigned(couponID, userID string) (bool, error)
	HasAssignments(couponID string) (bool, error)
	IncrementUsage(couponID string) error
	Delete(id string) error
}
