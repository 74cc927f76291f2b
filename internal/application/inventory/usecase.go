package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/mercadito-app/mercadito-api/internal/application/dto"
	"github.com/mercadito-app/mercadito-api/internal/domain"
	"github.com/mercadito-app/mercadito-api/internal/domain/entity"
	"github.com/mercadito-app/mercadito-api/internal/domain/repository"
)

// StockUseCase implementa el ciclo de vida del stock de productos: alta, edición,
// venta, reposición y baja. Toda mutación de cantidad bloquea la fila del producto
// (SELECT FOR UPDATE) y registra una entrada inmutable en el libro de movimientos
// dentro de la misma transacción.
type StockUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	movRepo     repository.MovementRepository
	notifier    LowStockNotifier
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	movRepo repository.MovementRepository,
	notifier LowStockNotifier,
) *StockUseCase {
	return &StockUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		movRepo:     movRepo,
		notifier:    notifier,
	}
}

func validateProductFields(name, category string, price decimal.Decimal, quantity int64, threshold *int64) error {
	if name == "" {
		return domain.ErrInvalidInput
	}
	if !entity.ValidCategory(category) {
		return domain.ErrInvalidInput
	}
	if !price.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if quantity < 0 {
		return domain.ErrInvalidInput
	}
	if threshold != nil && *threshold < 0 {
		return domain.ErrInvalidInput
	}
	return nil
}

func validateNote(note string) error {
	if len(note) > entity.MaxMovementNoteLen {
		return domain.ErrInvalidInput
	}
	return nil
}

// Create da de alta un producto con su stock inicial y registra el movimiento
// initial (0 → cantidad inicial) en la misma transacción.
func (uc *StockUseCase) Create(ctx context.Context, storeID, userID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := validateProductFields(in.Name, in.Category, in.Price, in.Quantity, in.LowStockThreshold); err != nil {
		return nil, err
	}
	threshold := int64(entity.DefaultLowStockThreshold)
	if in.LowStockThreshold != nil {
		threshold = *in.LowStockThreshold
	}
	now := time.Now()
	product := &entity.Product{
		ID:                uuid.New().String(),
		StoreID:           storeID,
		Name:              in.Name,
		Description:       in.Description,
		Price:             in.Price,
		Quantity:          in.Quantity,
		Category:          in.Category,
		LowStockThreshold: threshold,
		SupplierInfo:      in.SupplierInfo,
		ImageURL:          in.ImageURL,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.MovementRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		return movRepo.Create(&entity.Movement{
			ProductID:      product.ID,
			StoreID:        storeID,
			Type:           entity.MovementInitial,
			QuantityChange: in.Quantity,
			QuantityBefore: 0,
			QuantityAfter:  in.Quantity,
			CreatedAt:      now,
			CreatedBy:      userID,
		})
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update aplica la edición manual del juego completo de campos. Si la cantidad
// cambia, registra un movimiento manual_update con el delta; si no, no se
// escribe ninguna entrada. Re-evalúa el aviso de stock bajo tras la edición.
func (uc *StockUseCase) Update(ctx context.Context, storeID, userID, productID string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := validateProductFields(in.Name, in.Category, in.Price, in.Quantity, in.LowStockThreshold); err != nil {
		return nil, err
	}
	var updated *entity.Product
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.MovementRepository,
	) error {
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.StoreID != storeID {
			return domain.ErrForbidden
		}
		before := product.Quantity
		now := time.Now()

		product.Name = in.Name
		product.Description = in.Description
		product.Price = in.Price
		product.Quantity = in.Quantity
		product.Category = in.Category
		if in.LowStockThreshold != nil {
			product.LowStockThreshold = *in.LowStockThreshold
		}
		product.SupplierInfo = in.SupplierInfo
		product.ImageURL = in.ImageURL
		product.UpdatedAt = now

		if err := productRepo.Update(product); err != nil {
			return err
		}
		// Cantidad sin cambio: ninguna entrada en el libro.
		if in.Quantity != before {
			if err := movRepo.Create(&entity.Movement{
				ProductID:      product.ID,
				StoreID:        storeID,
				Type:           entity.MovementManualUpdate,
				QuantityChange: in.Quantity - before,
				QuantityBefore: before,
				QuantityAfter:  in.Quantity,
				CreatedAt:      now,
				CreatedBy:      userID,
			}); err != nil {
				return err
			}
		}
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	if updated.LowStock() {
		uc.notifier.NotifyLowStock(updated)
	}
	return toProductResponse(updated), nil
}

// Sale descuenta stock por una venta. Rechaza cantidades no positivas y ventas
// que excedan el stock disponible; en ese caso no se escribe nada.
func (uc *StockUseCase) Sale(ctx context.Context, storeID, userID, productID string, in dto.SaleRequest) (*dto.ProductResponse, error) {
	if in.QuantitySold <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := validateNote(in.Notes); err != nil {
		return nil, err
	}
	var updated *entity.Product
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.MovementRepository,
	) error {
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.StoreID != storeID {
			return domain.ErrForbidden
		}
		if in.QuantitySold > product.Quantity {
			return domain.ErrInsufficientStock
		}
		before := product.Quantity
		after := before - in.QuantitySold
		now := time.Now()

		if err := productRepo.UpdateQuantity(product.ID, after); err != nil {
			return err
		}
		if err := movRepo.Create(&entity.Movement{
			ProductID:      product.ID,
			StoreID:        storeID,
			Type:           entity.MovementSale,
			QuantityChange: -in.QuantitySold,
			QuantityBefore: before,
			QuantityAfter:  after,
			Note:           in.Notes,
			CreatedAt:      now,
			CreatedBy:      userID,
		}); err != nil {
			return err
		}
		product.Quantity = after
		product.UpdatedAt = now
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	if updated.LowStock() {
		uc.notifier.NotifyLowStock(updated)
	}
	return toProductResponse(updated), nil
}

// Restock incrementa stock por una reposición. Rechaza cantidades no positivas.
func (uc *StockUseCase) Restock(ctx context.Context, storeID, userID, productID string, in dto.RestockRequest) (*dto.ProductResponse, error) {
	if in.QuantityRestocked <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := validateNote(in.Notes); err != nil {
		return nil, err
	}
	var updated *entity.Product
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.MovementRepository,
	) error {
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.StoreID != storeID {
			return domain.ErrForbidden
		}
		before := product.Quantity
		after := before + in.QuantityRestocked
		now := time.Now()

		if err := productRepo.UpdateQuantity(product.ID, after); err != nil {
			return err
		}
		if err := movRepo.Create(&entity.Movement{
			ProductID:      product.ID,
			StoreID:        storeID,
			Type:           entity.MovementRestock,
			QuantityChange: in.QuantityRestocked,
			QuantityBefore: before,
			QuantityAfter:  after,
			Note:           in.Notes,
			CreatedAt:      now,
			CreatedBy:      userID,
		}); err != nil {
			return err
		}
		product.Quantity = after
		product.UpdatedAt = now
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(updated), nil
}

// Delete da de baja un producto: borra el registro y anota el movimiento deletion
// (cantidad actual → 0) en la misma transacción. El ProductID del movimiento queda
// apuntando a un producto ya inexistente: el historial sobrevive a la baja.
func (uc *StockUseCase) Delete(ctx context.Context, storeID, userID, productID string) error {
	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.MovementRepository,
	) error {
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.StoreID != storeID {
			return domain.ErrForbidden
		}
		if err := productRepo.Delete(product.ID); err != nil {
			return err
		}
		return movRepo.Create(&entity.Movement{
			ProductID:      product.ID,
			StoreID:        storeID,
			Type:           entity.MovementDeletion,
			QuantityChange: -product.Quantity,
			QuantityBefore: product.Quantity,
			QuantityAfter:  0,
			CreatedAt:      time.Now(),
			CreatedBy:      userID,
		})
	})
}

// GetByID obtiene un producto de la tienda.
func (uc *StockUseCase) GetByID(storeID, productID string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if product.StoreID != storeID {
		return nil, domain.ErrForbidden
	}
	return toProductResponse(product), nil
}

// List lista los productos de la tienda con paginación.
func (uc *StockUseCase) List(storeID string, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.productRepo.ListByStore(storeID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// LowStock lista los productos de la tienda en o por debajo de su umbral.
func (uc *StockUseCase) LowStock(storeID string) ([]dto.ProductResponse, error) {
	list, err := uc.productRepo.ListLowStock(storeID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// History devuelve el libro de movimientos de un producto, el más reciente primero.
// El historial sigue disponible después de borrar el producto; si el producto aún
// existe se verifica que pertenezca a la tienda.
func (uc *StockUseCase) History(storeID, productID string, limit, offset int) (*dto.MovementListResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product != nil && product.StoreID != storeID {
		return nil, domain.ErrForbidden
	}
	list, err := uc.movRepo.ListByProduct(productID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.MovementResponse{
			ID:             m.ID,
			ProductID:      m.ProductID,
			Type:           m.Type,
			QuantityChange: m.QuantityChange,
			QuantityBefore: m.QuantityBefore,
			QuantityAfter:  m.QuantityAfter,
			Note:           m.Note,
			CreatedAt:      m.CreatedAt,
			CreatedBy:      m.CreatedBy,
		})
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:                p.ID,
		StoreID:           p.StoreID,
		Name:              p.Name,
		Description:       p.Description,
		Price:             p.Price,
		Quantity:          p.Quantity,
		Category:          p.Category,
		LowStockThreshold: p.LowStockThreshold,
		SupplierInfo:      p.SupplierInfo,
		ImageURL:          p.ImageURL,
		LowStock:          p.LowStock(),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
