package repository

import "github.com/mercadito-app/mercadito-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) para serializar
// las mutaciones de cantidad dentro de una transacción.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateQuantity(productID string, quantity int64) error
	ListByStore(storeID string, limit, offset int) ([]*entity.Product, error)
	ListLowStock(storeID string) ([]*entity.Product, error)
	Delete(id string) error
}
