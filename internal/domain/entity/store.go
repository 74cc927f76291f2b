package entity

import "time"

// Store representa una tienda del marketplace (unidad de multi-tenancy).
// Todos los recursos protegidos se consultan acotados por StoreID.
type Store struct {
	ID          string
	Name        string
	Slug        string // identificador legible único
	Description string
	Status      string // active, inactive
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
