package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin     = "admin"
	RoleVendedor  = "vendedor"
	RoleComprador = "comprador"
)

// User representa un usuario de la plataforma. Los vendedores pertenecen a una
// tienda (StoreID); los compradores pueden no tener tienda asociada.
type User struct {
	ID           string
	StoreID      string
	Email        string
	PasswordHash string
	Name         string
	Role         string // admin, vendedor, comprador
	Status       string // active, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
