package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mercadito-app/mercadito-api/internal/application/dto"
	"github.com/mercadito-app/mercadito-api/internal/domain"
	"github.com/mercadito-app/mercadito-api/internal/domain/entity"
	"github.com/mercadito-app/mercadito-api/internal/domain/repository"
)

// ListingUseCase implementa los anuncios clasificados entre usuarios.
type ListingUseCase struct {
	listingRepo repository.ListingRepository
}

// NewListingUseCase construye el caso de uso de anuncios.
func NewListingUseCase(listingRepo repository.ListingRepository) *ListingUseCase {
	return &ListingUseCase{listingRepo: listingRepo}
}

func validateListingFields(title, category string, price decimal.Decimal) error {
	if title == "" {
		return domain.ErrInvalidInput
	}
	if !entity.ValidCategory(category) {
		return domain.ErrInvalidInput
	}
	if !price.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	return nil
}

// Create publica un anuncio nuevo en estado activa.
func (uc *ListingUseCase) Create(userID string, in dto.CreateListingRequest) (*dto.ListingResponse, error) {
	if err := validateListingFields(in.Title, in.Category, in.Price); err != nil {
		return nil, err
	}
	now := time.Now()
	listing := &entity.Listing{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Status:      entity.ListingActiva,
		ImageURL:    in.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.listingRepo.Create(listing); err != nil {
		return nil, err
	}
	return toListingResponse(listing), nil
}

// GetByID obtiene un anuncio.
func (uc *ListingUseCase) GetByID(id string) (*dto.ListingResponse, error) {
	listing, err := uc.listingRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, nil
	}
	return toListingResponse(listing), nil
}

// List lista los anuncios activos, opcionalmente filtrados por categoría.
func (uc *ListingUseCase) List(category string, limit, offset int) (*dto.ListingListResponse, error) {
	if category != "" && !entity.ValidCategory(category) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.listingRepo.List(category, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ListingResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toListingResponse(l))
	}
	return &dto.ListingListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update edita un anuncio propio.
func (uc *ListingUseCase) Update(userID, id string, in dto.UpdateListingRequest) (*dto.ListingResponse, error) {
	if err := validateListingFields(in.Title, in.Category, in.Price); err != nil {
		return nil, err
	}
	listing, err := uc.listingRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, domain.ErrNotFound
	}
	if listing.UserID != userID {
		return nil, domain.ErrForbidden
	}
	listing.Title = in.Title
	listing.Description = in.Description
	listing.Price = in.Price
	listing.Category = in.Category
	listing.ImageURL = in.ImageURL
	listing.UpdatedAt = time.Now()
	if err := uc.listingRepo.Update(listing); err != nil {
		return nil, err
	}
	return toListingResponse(listing), nil
}

// MarkSold marca un anuncio propio como vendida.
func (uc *ListingUseCase) MarkSold(userID, id string) error {
	listing, err := uc.listingRepo.GetByID(id)
	if err != nil {
		return err
	}
	if listing == nil {
		return domain.ErrNotFound
	}
	if listing.UserID != userID {
		return domain.ErrForbidden
	}
	if listing.Status != entity.ListingActiva {
		return domain.ErrConflict
	}
	return uc.listingRepo.UpdateStatus(id, entity.ListingVendida)
}

// Delete borra un anuncio propio.
func (uc *ListingUseCase) Delete(userID, id string) error {
	listing, err := uc.listingRepo.GetByID(id)
	if err != nil {
		return err
	}
	if listing == nil {
		return domain.ErrNotFound
	}
	if listing.UserID != userID {
		return domain.ErrForbidden
	}
	return uc.listingRepo.Delete(id)
}

func toListingResponse(l *entity.Listing) *dto.ListingResponse {
	return &dto.ListingResponse{
		ID:          l.ID,
		UserID:      l.UserID,
		Title:       l.Title,
		Description: l.Description,
		Price:       l.Price,
		Category:    l.Category,
		Status:      l.Status,
		ImageURL:    l.ImageURL,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}
