package repository

import "github.com/mercadito-app/mercadito-api/internal/domain/entity"

// ListingRepository define el puerto de persistencia para anuncios clasificados.
type ListingRepository interface {
	Create(listing *entity.Listing) error
	GetByID(id string) (*entity.Listing, error)
	List(category string, limit, offset int) ([]*entity.Listing, error)
	Update(listing *entity.Listing) error
	UpdateStatus(id, status string) error
	Delete(id string) error
}
