package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías válidas de producto (enumeración fija del catálogo).
const (
	CategoryElectronica = "electronica"
	CategoryRopa        = "ropa"
	CategoryHogar       = "hogar"
	CategoryDeportes    = "deportes"
	CategoryLibros      = "libros"
	CategoryAlimentos   = "alimentos"
	CategoryOtros       = "otros"
)

// DefaultLowStockThreshold umbral de stock bajo cuando no se especifica.
const DefaultLowStockThreshold = 5

// ValidCategory indica si la categoría pertenece a la enumeración del catálogo.
func ValidCategory(c string) bool {
	switch c {
	case CategoryElectronica, CategoryRopa, CategoryHogar, CategoryDeportes,
		CategoryLibros, CategoryAlimentos, CategoryOtros:
		return true
	}
	return false
}

// Product representa un producto del catálogo de una tienda.
// Quantity es el stock actual (entero no negativo); cada cambio queda registrado
// como un Movement en el libro de movimientos.
type Product struct {
	ID                string
	StoreID           string
	Name              string
	Description       string
	Price             decimal.Decimal // precio de venta, siempre > 0
	Quantity          int64           // stock actual, nunca negativo
	Category          string          // enumeración fija (ver constantes)
	LowStockThreshold int64           // al llegar a este nivel se emite aviso de stock bajo
	SupplierInfo      string
	ImageURL          string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// LowStock indica si el stock actual está en o por debajo del umbral configurado.
func (p *Product) LowStock() bool {
	return p.Quantity <= p.LowStockThreshold
}
