package inventory_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mercadito-app/mercadito-api/internal/application/dto"
	"github.com/mercadito-app/mercadito-api/internal/application/inventory"
	"github.com/mercadito-app/mercadito-api/internal/domain"
	"github.com/mercadito-app/mercadito-api/internal/domain/entity"
	"github.com/mercadito-app/mercadito-api/internal/domain/repository"
)

const (
	storeID = "11111111-1111-1111-1111-111111111111"
	otherID = "22222222-2222-2222-2222-222222222222"
	userID  = "33333333-3333-3333-3333-333333333333"
	prodID  = "44444444-4444-4444-4444-444444444444"
)

// ──────────────────────────────────────────────────────────────────────────────
// Mocks
// ──────────────────────────────────────────────────────────────────────────────

type mockProductRepo struct{ mock.Mock }

func (m *mockProductRepo) Create(p *entity.Product) error { return m.Called(p).Error(0) }
func (m *mockProductRepo) GetByID(id string) (*entity.Product, error) {
	args := m.Called(id)
	p, _ := args.Get(0).(*entity.Product)
	return p, args.Error(1)
}
func (m *mockProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	args := m.Called(id)
	p, _ := args.Get(0).(*entity.Product)
	return p, args.Error(1)
}
func (m *mockProductRepo) Update(p *entity.Product) error { return m.Called(p).Error(0) }
func (m *mockProductRepo) UpdateQuantity(productID string, quantity int64) error {
	return m.Called(productID, quantity).Error(0)
}
func (m *mockProductRepo) ListByStore(storeID string, limit, offset int) ([]*entity.Product, error) {
	args := m.Called(storeID, limit, offset)
	l, _ := args.Get(0).([]*entity.Product)
	return l, args.Error(1)
}
func (m *mockProductRepo) ListLowStock(storeID string) ([]*entity.Product, error) {
	args := m.Called(storeID)
	l, _ := args.Get(0).([]*entity.Product)
	return l, args.Error(1)
}
func (m *mockProductRepo) Delete(id string) error { return m.Called(id).Error(0) }

type mockMovementRepo struct{ mock.Mock }

func (m *mockMovementRepo) Create(mv *entity.Movement) error { return m.Called(mv).Error(0) }
func (m *mockMovementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.Movement, error) {
	args := m.Called(productID, limit, offset)
	l, _ := args.Get(0).([]*entity.Movement)
	return l, args.Error(1)
}

type mockNotifier struct{ mock.Mock }

func (m *mockNotifier) NotifyLowStock(p *entity.Product) { m.Called(p) }

// fakeTxRunner ejecuta fn directamente con los repos dados, sin transacción real.
type fakeTxRunner struct {
	productRepo repository.ProductRepository
	movRepo     repository.MovementRepository
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
) error) error {
	return fn(f.productRepo, f.movRepo)
}

func newUseCase(pr *mockProductRepo, mr *mockMovementRepo, n *mockNotifier) *inventory.StockUseCase {
	return inventory.NewStockUseCase(&fakeTxRunner{productRepo: pr, movRepo: mr}, pr, mr, n)
}

func productWithStock(quantity int64) *entity.Product {
	return &entity.Product{
		ID:                prodID,
		StoreID:           storeID,
		Name:              "Yerba mate 1kg",
		Price:             decimal.NewFromFloat(12.50),
		Quantity:          quantity,
		Category:          "alimentos",
		LowStockThreshold: 5,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_RegistraProductoYMovimientoInicial(t *testing.T) {
	pr := new(mockProductRepo)
	mr := new(mockMovementRepo)
	n := new(mockNotifier)

	pr.On("Create", mock.AnythingOfType("*entity.Product")).Return(nil)
	mr.On("Create", mock.MatchedBy(func(mv *entity.Movement) bool {
		return mv.Type == entity.MovementInitial &&
			mv.StoreID == storeID &&
			mv.QuantityBefore == 0 &&
			mv.QuantityChange == 10 &&
			mv.QuantityAfter == 10 &&
			mv.CreatedBy == userID
	})).Return(nil)

	uc := newUseCase(pr, mr, n)
	out, err := uc.Create(context.Background(), storeID, userID, dto.CreateProductRequest{
		Name:     "Yerba mate 1kg",
		Price:    decimal.NewFromFloat(12.50),
		Quantity: 10,
		Category: "alimentos",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10), out.Quantity)
	assert.Equal(t, storeID, out.StoreID)
	assert.Equal(t, int64(5), out.LowStockThreshold, "umbral por defecto")
	pr.AssertExpectations(t)
	mr.AssertExpectations(t)
}

func TestCreate_RechazaDatosInvalidos(t *testing.T) {
	uc := newUseCase(new(mockProductRepo), new(mockMovementRepo), new(mockNotifier))

	cases := []dto.CreateProductRequest{
		{Name: "", Price: decimal.NewFromInt(5), Quantity: 1, Category: "ropa"},
		{Name: "Camisa", Price: decimal.NewFromInt(5), Quantity: 1, Category: "no-existe"},
		{Name: "Camisa", Price: decimal.Zero, Quantity: 1, Category: "ropa"},
		{Name: "Camisa", Price: decimal.NewFromInt(-3), Quantity: 1, Category: "ropa"},
		{Name: "Camisa", Price: decimal.NewFromInt(5), Quantity: -1, Category: "ropa"},
	}
	for _, in := range cases {
		_, err := uc.Create(context.Background(), storeID, userID, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Sale
// ──────────────────────────────────────────────────────────────────────────────

func TestSale_DescuentaStockYAnotaMovimiento(t *testing.T) {
	pr := new(mockProductRepo)
	mr := new(mockMovementRepo)
	n := new(mockNotifier)

	pr.On("GetForUpdate", prodID).Return(productWithStock(10), nil)
	pr.On("UpdateQuantity", prodID, int64(7)).Return(nil)
	mr.On("Create", mock.MatchedBy(func(mv *entity.Movement) bool {
		return mv.Type == entity.MovementSale &&
			mv.StoreID == storeID &&
			mv.QuantityChange == -3 &&
			mv.QuantityBefore == 10 &&
			mv.QuantityAfter == 7 &&
			mv.Note == "venta mostrador"
	})).Return(nil)

	uc := newUseCase(pr, mr, n)
	out, err := uc.Sale(context.Background(), storeID, userID, prodID, dto.SaleRequest{
		QuantitySold: 3,
		Notes:        "venta mostrador",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), out.Quantity)
	assert.False(t, out.LowStock)
	pr.AssertExpectations(t)
	mr.AssertExpectations(t)
	n.AssertNotCalled(t, "NotifyLowStock", mock.Anything)
}

func TestSale_StockInsuficiente_NoEscribeNada(t *testing.T) {
	pr := new(mockProductRepo)
	mr := new(mockMovementRepo)

	pr.On("GetForUpdate", prodID).Return(productWithStock(2), nil)

	uc := newUseCase(pr, mr, new(mockNotifier))
	_, err := uc.Sale(context.Background(), storeID, userID, prodID, dto.SaleRequest{QuantitySold: 5})

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	pr.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything)
	mr.AssertNotCalled(t, "Create", mock.Anything)
}

func TestSale_CantidadNoPositiva_Rechazada(t *testing.T) {
	uc := newUseCase(new(mockProductRepo), new(mockMovementRepo), new(mockNotifier))

	_, err := uc.Sale(context.Background(), storeID, userID, prodID, dto.SaleRequest{QuantitySold: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Sale(context.Background(), storeID, userID, prodID, dto.SaleRequest{QuantitySold: -4})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSale_NotaDemasiadoLarga_Rechazada(t *testing.T) {
	uc := newUseCase(new(mockProductRepo), new(mockMovementRepo), new(mockNotifier))

	_, err := uc.Sale(context.Background(), storeID, userID, prodID, dto.SaleRequest{
		QuantitySold: 1,
		Notes:        strings.Repeat("x", entity.MaxMovementNoteLen+1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSale_ProductoInexistente_NotFound(t *testing.T) {
	pr := new(mockProductRepo)
	pr.On("GetForUpdate", prodID).Return(nil, nil)

	uc := newUseCase(pr, new(mockMovementRepo), new(mockNotifier))
	_, err := uc.Sale(context.Background(), storeID, userID, prodID, dto.SaleRequest{QuantitySold: 1})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSale_ProductoDeOtraTienda_Forbidden(t *testing.T) {
	pr := new(mockProductRepo)
	pr.On("GetForUpdate", prodID).Return(productWithStock(10), nil)

	uc := newUseCase(pr, new(mockMovementRepo), new(mockNotifier))
	_, err := uc.Sale(context.Background(), otherID, userID, prodID, dto.SaleRequest{QuantitySold: 1})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestSale_StockBajoUmbral_Notifica(t *testing.T) {
	pr := new(mockProductRepo)
	mr := new(mockMovementRepo)
	n := new(mockNotifier)

	pr.On("GetForUpdate", prodID).Return(productWithStock(6), nil)
	pr.On("UpdateQuantity", prodID, int64(4)).Return(nil)
	mr.On("Create", mock.AnythingOfType("*entity.Movement")).Return(nil)
	n.On("NotifyLowStock", mock.MatchedBy(func(p *entity.Product) bool {
		return p.ID == prodID && p.Quantity == 4
	})).Return()

	uc := newUseCase(pr, mr, n)
	out, err := uc.Sale(context.Background(), storeID, userID, prodID, dto.SaleRequest{QuantitySold: 2})

	require.NoError(t, err)
	assert.True(t, out.LowStock)
	n.AssertExpectations(t)
}

// ──────────────────────────────────────────────────────────────────────────────
// Restock
// ──────────────────────────────────────────────────────────────────────────────

func TestRestock_IncrementaStockYAnotaMovimiento(t *testing.T) {
	pr := new(mockProductRepo)
	mr := new(mockMovementRepo)

	pr.On("GetForUpdate", prodID).Return(productWithStock(7), nil)
	pr.On("UpdateQuantity", prodID, int64(12)).Return(nil)
	mr.On("Create", mock.MatchedBy(func(mv *entity.Movement) bool {
		return mv.Type == entity.MovementRestock &&
			mv.StoreID == storeID &&
			mv.QuantityChange == 5 &&
			mv.QuantityBefore == 7 &&
			mv.QuantityAfter == 12
	})).Return(nil)

	uc := newUseCase(pr, mr, new(mockNotifier))
	out, err := uc.Restock(context.Background(), storeID, userID, prodID, dto.RestockRequest{QuantityRestocked: 5})

	require.NoError(t, err)
	assert.Equal(t, int64(12), out.Quantity)
	pr.AssertExpectations(t)
	mr.AssertExpectations(t)
}

func TestRestock_CantidadNoPositiva_Rechazada(t *testing.T) {
	uc := newUseCase(new(mockProductRepo), new(mockMovementRepo), new(mockNotifier))

	_, err := uc.Restock(context.Background(), storeID, userID, prodID, dto.RestockRequest{QuantityRestocked: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update (edición manual)
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_CantidadSinCambio_NoAnotaMovimiento(t *testing.T) {
	pr := new(mockProductRepo)
	mr := new(mockMovementRepo)

	pr.On("GetForUpdate", prodID).Return(productWithStock(10), nil)
	pr.On("Update", mock.AnythingOfType("*entity.Product")).Return(nil)

	uc := newUseCase(pr, mr, new(mockNotifier))
	out, err := uc.Update(context.Background(), storeID, userID, prodID, dto.UpdateProductRequest{
		Name:     "Yerba mate 1kg premium",
		Price:    decimal.NewFromFloat(14.00),
		Quantity: 10, // misma cantidad
		Category: "alimentos",
	})

	require.NoError(t, err)
	assert.Equal(t, "Yerba mate 1kg premium", out.Name)
	mr.AssertNotCalled(t, "Create", mock.Anything)
}

func TestUpdate_CantidadCambia_AnotaManualUpdate(t *testing.T) {
	pr := new(mockProductRepo)
	mr := new(mockMovementRepo)

	pr.On("GetForUpdate", prodID).Return(productWithStock(10), nil)
	pr.On("Update", mock.AnythingOfType("*entity.Product")).Return(nil)
	mr.On("Create", mock.MatchedBy(func(mv *entity.Movement) bool {
		return mv.Type == entity.MovementManualUpdate &&
			mv.StoreID == storeID &&
			mv.QuantityChange == -4 &&
			mv.QuantityBefore == 10 &&
			mv.QuantityAfter == 6
	})).Return(nil)

	uc := newUseCase(pr, mr, new(mockNotifier))
	out, err := uc.Update(context.Background(), storeID, userID, prodID, dto.UpdateProductRequest{
		Name:     "Yerba mate 1kg",
		Price:    decimal.NewFromFloat(12.50),
		Quantity: 6,
		Category: "alimentos",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(6), out.Quantity)
	mr.AssertExpectations(t)
}

func TestUpdate_BajoUmbralTrasEdicion_Notifica(t *testing.T) {
	pr := new(mockProductRepo)
	mr := new(mockMovementRepo)
	n := new(mockNotifier)

	pr.On("GetForUpdate", prodID).Return(productWithStock(10), nil)
	pr.On("Update", mock.AnythingOfType("*entity.Product")).Return(nil)
	mr.On("Create", mock.AnythingOfType("*entity.Movement")).Return(nil)
	n.On("NotifyLowStock", mock.Anything).Return()

	uc := newUseCase(pr, mr, n)
	_, err := uc.Update(context.Background(), storeID, userID, prodID, dto.UpdateProductRequest{
		Name:     "Yerba mate 1kg",
		Price:    decimal.NewFromFloat(12.50),
		Quantity: 3,
		Category: "alimentos",
	})

	require.NoError(t, err)
	n.AssertExpectations(t)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_AnotaMovimientoDeletion(t *testing.T) {
	pr := new(mockProductRepo)
	mr := new(mockMovementRepo)

	pr.On("GetForUpdate", prodID).Return(productWithStock(8), nil)
	pr.On("Delete", prodID).Return(nil)
	mr.On("Create", mock.MatchedBy(func(mv *entity.Movement) bool {
		return mv.Type == entity.MovementDeletion &&
			mv.StoreID == storeID &&
			mv.QuantityChange == -8 &&
			mv.QuantityBefore == 8 &&
			mv.QuantityAfter == 0
	})).Return(nil)

	uc := newUseCase(pr, mr, new(mockNotifier))
	err := uc.Delete(context.Background(), storeID, userID, prodID)

	require.NoError(t, err)
	pr.AssertExpectations(t)
	mr.AssertExpectations(t)
}

func TestDelete_ProductoDeOtraTienda_Forbidden(t *testing.T) {
	pr := new(mockProductRepo)
	pr.On("GetForUpdate", prodID).Return(productWithStock(8), nil)

	uc := newUseCase(pr, new(mockMovementRepo), new(mockNotifier))
	err := uc.Delete(context.Background(), otherID, userID, prodID)

	assert.ErrorIs(t, err, domain.ErrForbidden)
	pr.AssertNotCalled(t, "Delete", mock.Anything)
}

// ──────────────────────────────────────────────────────────────────────────────
// History
// ──────────────────────────────────────────────────────────────────────────────

func TestHistory_DisponibleParaProductoBorrado(t *testing.T) {
	pr := new(mockProductRepo)
	mr := new(mockMovementRepo)

	// El producto ya no existe, pero sus movimientos siguen en el libro.
	pr.On("GetByID", prodID).Return(nil, nil)
	mr.On("ListByProduct", prodID, 20, 0).Return([]*entity.Movement{
		{ID: "m2", ProductID: prodID, Type: entity.MovementDeletion, QuantityBefore: 8, QuantityChange: -8, QuantityAfter: 0},
		{ID: "m1", ProductID: prodID, Type: entity.MovementInitial, QuantityBefore: 0, QuantityChange: 8, QuantityAfter: 8},
	}, nil)

	uc := newUseCase(pr, mr, new(mockNotifier))
	out, err := uc.History(storeID, prodID, 20, 0)

	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, entity.MovementDeletion, out.Items[0].Type, "el más reciente primero")
}

func TestHistory_ProductoDeOtraTienda_Forbidden(t *testing.T) {
	pr := new(mockProductRepo)
	other := productWithStock(5)
	other.StoreID = otherID
	pr.On("GetByID", prodID).Return(other, nil)

	uc := newUseCase(pr, new(mockMovementRepo), new(mockNotifier))
	_, err := uc.History(storeID, prodID, 20, 0)

	assert.ErrorIs(t, err, domain.ErrForbidden)
}
