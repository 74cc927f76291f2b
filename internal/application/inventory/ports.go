package inventory

import (
	"context"

	"github.com/mercadito-app/mercadito-api/internal/domain/entity"
	"github.com/mercadito-app/mercadito-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza que la escritura de cantidad y la entrada del libro de movimientos sean atómicas.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error) error
}

// LowStockNotifier recibe el evento de stock bajo como observador explícito.
// Se emite después de confirmar la transacción, cuando la cantidad resultante
// queda en o por debajo del umbral del producto.
type LowStockNotifier interface {
	NotifyLowStock(product *entity.Product)
}
