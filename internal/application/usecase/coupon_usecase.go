package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mercadito-app/mercadito-api/internal/application/dto"
	"github.com/mercadito-app/mercadito-api/internal/domain"
	"github.com/mercadito-app/mercadito-api/internal/domain/entity"
	"github.com/mercadito-app/mercadito-api/internal/domain/repository"
)

// CouponUseCase implementa la gestión y aplicación de cupones de descuento.
type CouponUseCase struct {
	couponRepo repository.CouponRepository
}

// NewCouponUseCase construye el caso de uso de cupones.
func NewCouponUseCase(couponRepo repository.CouponRepository) *CouponUseCase {
	return &CouponUseCase{couponRepo: couponRepo}
}

// Create crea un cupón para la tienda. El código se normaliza a mayúsculas.
func (uc *CouponUseCase) Create(storeID string, in dto.CreateCouponRequest) (*dto.CouponResponse, error) {
	code := strings.ToUpper(strings.TrimSpace(in.Code))
	if code == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Type != entity.CouponPercentage && in.Type != entity.CouponFixed {
		return nil, domain.ErrInvalidInput
	}
	if !in.Value.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	// Un porcentaje mayor al 100% no tiene sentido.
	if in.Type == entity.CouponPercentage && in.Value.GreaterThan(decimal.NewFromInt(100)) {
		return nil, domain.ErrInvalidInput
	}
	if in.MaxUses < 0 {
		return nil, domain.ErrInvalidInput
	}
	coupon := &entity.Coupon{
		ID:        uuid.New().String(),
		StoreID:   storeID,
		Code:      code,
		Type:      in.Type,
		Value:     in.Value,
		ExpiresAt: in.ExpiresAt,
		MaxUses:   in.MaxUses,
		Status:    "active",
		CreatedAt: time.Now(),
	}
	if err := uc.couponRepo.Create(coupon); err != nil {
		return nil, err
	}
	return toCouponResponse(coupon), nil
}

// List lista los cupones de la tienda.
func (uc *CouponUseCase) List(storeID string, limit, offset int) (*dto.CouponListResponse, error) {
	list, err := uc.couponRepo.ListByStore(storeID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CouponResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCouponResponse(c))
	}
	return &dto.CouponListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Assign añade un usuario a la lista de asignación de un cupón de la tienda.
// En cuanto el cupón tiene asignaciones, deja de ser público.
func (uc *CouponUseCase) Assign(storeID, couponID, userID string) error {
	if userID == "" {
		return domain.ErrInvalidInput
	}
	coupon, err := uc.couponRepo.GetByID(couponID)
	if err != nil {
		return err
	}
	if coupon == nil {
		return domain.ErrNotFound
	}
	if coupon.StoreID != storeID {
		return domain.ErrForbidden
	}
	return uc.couponRepo.Assign(couponID, userID)
}

// Apply resuelve el descuento de un código sobre un total para el usuario dado.
// Valida vigencia, usos restantes y la lista de asignación, e incrementa el
// contador de usos al aplicar.
func (uc *CouponUseCase) Apply(userID string, in dto.ApplyCouponRequest) (*dto.ApplyCouponResponse, error) {
	code := strings.ToUpper(strings.TrimSpace(in.Code))
	if code == "" || in.Total.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	coupon, err := uc.couponRepo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if coupon == nil || coupon.Status != "active" {
		return nil, domain.ErrNotFound
	}
	if coupon.Expired(time.Now()) {
		return nil, domain.ErrCouponExpired
	}
	// Rechazo temprano; la garantía contra carreras la da el incremento
	// condicional del repositorio, que no consume usos de un cupón agotado.
	if coupon.Exhausted() {
		return nil, domain.ErrCouponExhausted
	}
	restricted, err := uc.couponRepo.HasAssignments(coupon.ID)
	if err != nil {
		return nil, err
	}
	if restricted {
		assigned, err := uc.couponRepo.IsAssigned(coupon.ID, userID)
		if err != nil {
			return nil, err
		}
		if !assigned {
			return nil, domain.ErrCouponNotAssigned
		}
	}
	if err := uc.couponRepo.IncrementUsage(coupon.ID); err != nil {
		return nil, err
	}
	discount := coupon.Discount(in.Total)
	return &dto.ApplyCouponResponse{
		Code:     coupon.Code,
		Discount: discount,
		NewTotal: in.Total.Sub(discount),
	}, nil
}

// Delete borra un cupón de la tienda.
func (uc *CouponUseCase) Delete(storeID, couponID string) error {
	coupon, err := uc.couponRepo.GetByID(couponID)
	if err != nil {
		return err
	}
	if coupon == nil {
		return domain.ErrNotFound
	}
	if coupon.StoreID != storeID {
		return domain.ErrForbidden
	}
	return uc.couponRepo.Delete(couponID)
}

func toCouponResponse(c *entity.Coupon) *dto.CouponResponse {
	return &dto.CouponResponse{
		ID:        c.ID,
		StoreID:   c.StoreID,
		Code:      c.Code,
		Type:      c.Type,
		Value:     c.Value,
		ExpiresAt: c.ExpiresAt,
		MaxUses:   c.MaxUses,
		UsedCount: c.UsedCount,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
	}
}
