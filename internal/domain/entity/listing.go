package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un anuncio clasificado.
const (
	ListingActiva   = "activa"
	ListingVendida  = "vendida"
	ListingExpirada = "expirada"
)

// Listing representa un anuncio clasificado publicado por un usuario.
type Listing struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Price       decimal.Decimal
	Category    string // misma enumeración que Product
	Status      string // activa, vendida, expirada
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
