package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mercadito-app/mercadito-api/internal/application/dto"
	"github.com/mercadito-app/mercadito-api/internal/application/usecase"
	"github.com/mercadito-app/mercadito-api/internal/domain"
	"github.com/mercadito-app/mercadito-api/internal/domain/entity"
)

const (
	testStoreID  = "11111111-1111-1111-1111-111111111111"
	testUserID   = "33333333-3333-3333-3333-333333333333"
	testCouponID = "55555555-5555-5555-5555-555555555555"
)

type mockCouponRepo struct{ mock.Mock }

func (m *mockCouponRepo) Create(c *entity.Coupon) error { return m.Called(c).Error(0) }
func (m *mockCouponRepo) GetByID(id string) (*entity.Coupon, error) {
	args := m.Called(id)
	c, _ := args.Get(0).(*entity.Coupon)
	return c, args.Error(1)
}
func (m *mockCouponRepo) GetByCode(code string) (*entity.Coupon, error) {
	args := m.Called(code)
	c, _ := args.Get(0).(*entity.Coupon)
	return c, args.Error(1)
}
func (m *mockCouponRepo) ListByStore(storeID string, limit, offset int) ([]*entity.Coupon, error) {
	args := m.Called(storeID, limit, offset)
	l, _ := args.Get(0).([]*entity.Coupon)
	return l, args.Error(1)
}
func (m *mockCouponRepo) Assign(couponID, userID string) error {
	return m.Called(couponID, userID).Error(0)
}
func (m *mockCouponRepo) IsAssigned(couponID, userID string) (bool, error) {
	args := m.Called(couponID, userID)
	return args.Bool(0), args.Error(1)
}
func (m *mockCouponRepo) HasAssignments(couponID string) (bool, error) {
	args := m.Called(couponID)
	return args.Bool(0), args.Error(1)
}
func (m *mockCouponRepo) IncrementUsage(couponID string) error { return m.Called(couponID).Error(0) }
func (m *mockCouponRepo) Delete(id string) error               { return m.Called(id).Error(0) }

func activeCoupon() *entity.Coupon {
	return &entity.Coupon{
		ID:        testCouponID,
		StoreID:   testStoreID,
		Code:      "VERANO10",
		Type:      entity.CouponPercentage,
		Value:     decimal.NewFromInt(10),
		ExpiresAt: time.Now().Add(24 * time.Hour),
		Status:    "active",
	}
}

func TestApply_PorcentajeSobreElTotal(t *testing.T) {
	repo := new(mockCouponRepo)
	repo.On("GetByCode", "VERANO10").Return(activeCoupon(), nil)
	repo.On("HasAssignments", testCouponID).Return(false, nil)
	repo.On("IncrementUsage", testCouponID).Return(nil)

	uc := usecase.NewCouponUseCase(repo)
	out, err := uc.Apply(testUserID, dto.ApplyCouponRequest{
		Code:  "verano10", // el código se normaliza a mayúsculas
		Total: decimal.NewFromInt(200),
	})

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(20).Equal(out.Discount))
	assert.True(t, decimal.NewFromInt(180).Equal(out.NewTotal))
	repo.AssertExpectations(t)
}

func TestApply_MontoFijoNoSuperaElTotal(t *testing.T) {
	coupon := activeCoupon()
	coupon.Type = entity.CouponFixed
	coupon.Value = decimal.NewFromInt(50)

	repo := new(mockCouponRepo)
	repo.On("GetByCode", "VERANO10").Return(coupon, nil)
	repo.On("HasAssignments", testCouponID).Return(false, nil)
	repo.On("IncrementUsage", testCouponID).Return(nil)

	uc := usecase.NewCouponUseCase(repo)
	out, err := uc.Apply(testUserID, dto.ApplyCouponRequest{
		Code:  "VERANO10",
		Total: decimal.NewFromInt(30), // menor al valor del cupón
	})

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(30).Equal(out.Discount), "el descuento se capa al total")
	assert.True(t, out.NewTotal.IsZero())
}

func TestApply_CuponVencido(t *testing.T) {
	coupon := activeCoupon()
	coupon.ExpiresAt = time.Now().Add(-time.Hour)

	repo := new(mockCouponRepo)
	repo.On("GetByCode", "VERANO10").Return(coupon, nil)

	uc := usecase.NewCouponUseCase(repo)
	_, err := uc.Apply(testUserID, dto.ApplyCouponRequest{Code: "VERANO10", Total: decimal.NewFromInt(100)})

	assert.ErrorIs(t, err, domain.ErrCouponExpired)
	repo.AssertNotCalled(t, "IncrementUsage", mock.Anything)
}

func TestApply_CuponAgotado(t *testing.T) {
	coupon := activeCoupon()
	coupon.MaxUses = 3
	coupon.UsedCount = 3

	repo := new(mockCouponRepo)
	repo.On("GetByCode", "VERANO10").Return(coupon, nil)

	uc := usecase.NewCouponUseCase(repo)
	_, err := uc.Apply(testUserID, dto.ApplyCouponRequest{Code: "VERANO10", Total: decimal.NewFromInt(100)})

	assert.ErrorIs(t, err, domain.ErrCouponExhausted)
}

func TestApply_CuponRestringidoSinAsignacion(t *testing.T) {
	repo := new(mockCouponRepo)
	repo.On("GetByCode", "VERANO10").Return(activeCoupon(), nil)
	repo.On("HasAssignments", testCouponID).Return(true, nil)
	repo.On("IsAssigned", testCouponID, testUserID).Return(false, nil)

	uc := usecase.NewCouponUseCase(repo)
	_, err := uc.Apply(testUserID, dto.ApplyCouponRequest{Code: "VERANO10", Total: decimal.NewFromInt(100)})

	assert.ErrorIs(t, err, domain.ErrCouponNotAssigned)
	repo.AssertNotCalled(t, "IncrementUsage", mock.Anything)
}

func TestApply_CuponRestringidoConAsignacion(t *testing.T) {
	repo := new(mockCouponRepo)
	repo.On("GetByCode", "VERANO10").Return(activeCoupon(), nil)
	repo.On("HasAssignments", testCouponID).Return(true, nil)
	repo.On("IsAssigned", testCouponID, testUserID).Return(true, nil)
	repo.On("IncrementUsage", testCouponID).Return(nil)

	uc := usecase.NewCouponUseCase(repo)
	out, err := uc.Apply(testUserID, dto.ApplyCouponRequest{Code: "VERANO10", Total: decimal.NewFromInt(100)})

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(10).Equal(out.Discount))
}

func TestApply_UsosAgotadosEnConcurrencia(t *testing.T) {
	// La lectura ve usos disponibles, pero otra aplicación concurrente consume el
	// último antes del incremento: el incremento condicional devuelve agotado y
	// no se entrega descuento.
	coupon := activeCoupon()
	coupon.MaxUses = 3
	coupon.UsedCount = 2

	repo := new(mockCouponRepo)
	repo.On("GetByCode", "VERANO10").Return(coupon, nil)
	repo.On("HasAssignments", testCouponID).Return(false, nil)
	repo.On("IncrementUsage", testCouponID).Return(domain.ErrCouponExhausted)

	uc := usecase.NewCouponUseCase(repo)
	out, err := uc.Apply(testUserID, dto.ApplyCouponRequest{Code: "VERANO10", Total: decimal.NewFromInt(100)})

	assert.ErrorIs(t, err, domain.ErrCouponExhausted)
	assert.Nil(t, out)
}

func TestApply_CodigoInexistente(t *testing.T) {
	repo := new(mockCouponRepo)
	repo.On("GetByCode", "NADA").Return(nil, nil)

	uc := usecase.NewCouponUseCase(repo)
	_, err := uc.Apply(testUserID, dto.ApplyCouponRequest{Code: "NADA", Total: decimal.NewFromInt(100)})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_ValidaTipoYValor(t *testing.T) {
	uc := usecase.NewCouponUseCase(new(mockCouponRepo))

	cases := []dto.CreateCouponRequest{
		{Code: "", Type: entity.CouponFixed, Value: decimal.NewFromInt(5)},
		{Code: "X", Type: "otro", Value: decimal.NewFromInt(5)},
		{Code: "X", Type: entity.CouponFixed, Value: decimal.Zero},
		{Code: "X", Type: entity.CouponPercentage, Value: decimal.NewFromInt(150)},
		{Code: "X", Type: entity.CouponFixed, Value: decimal.NewFromInt(5), MaxUses: -1},
	}
	for _, in := range cases {
		_, err := uc.Create(testStoreID, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestAssign_CuponDeOtraTienda_Forbidden(t *testing.T) {
	coupon := activeCoupon()
	coupon.StoreID = "99999999-9999-9999-9999-999999999999"

	repo := new(mockCouponRepo)
	repo.On("GetByID", testCouponID).Return(coupon, nil)

	uc := usecase.NewCouponUseCase(repo)
	err := uc.Assign(testStoreID, testCouponID, testUserID)

	assert.ErrorIs(t, err, domain.ErrForbidden)
	repo.AssertNotCalled(t, "Assign", mock.Anything, mock.Anything)
}
