package repository

import "github.com/mercadito-app/mercadito-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia para el libro de movimientos.
// El libro es append-only: no existen Update ni Delete.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	ListByProduct(productID string, limit, offset int) ([]*entity.Movement, error)
}
