package entity

import "time"

// Tipos de movimiento del libro de inventario.
const (
	MovementInitial      = "initial"       // alta de producto con stock inicial
	MovementSale         = "sale"          // venta (decrementa)
	MovementRestock      = "restock"       // reposición (incrementa)
	MovementManualUpdate = "manual_update" // edición manual de la cantidad
	MovementDeletion     = "deletion"      // baja del producto (stock a cero)
)

// MaxMovementNoteLen longitud máxima de la nota libre de un movimiento.
const MaxMovementNoteLen = 200

// ValidMovementType indica si el tipo pertenece a la enumeración.
func ValidMovementType(t string) bool {
	switch t {
	case MovementInitial, MovementSale, MovementRestock, MovementManualUpdate, MovementDeletion:
		return true
	}
	return false
}

// Movement es una entrada inmutable del libro de movimientos de inventario.
// Registra el antes/después de cada cambio de cantidad de un producto; nunca se
// actualiza ni se borra, y sobrevive a la eliminación del producto referenciado.
// Invariante: QuantityAfter = QuantityBefore + QuantityChange.
type Movement struct {
	ID             string
	ProductID      string
	StoreID        string // desnormalizado: la analítica por tienda no depende de que el producto exista
	Type           string // ver constantes Movement*
	QuantityChange int64  // delta con signo (QuantityAfter - QuantityBefore)
	QuantityBefore int64
	QuantityAfter  int64
	Note           string // texto libre opcional, máx. 200 caracteres
	CreatedAt      time.Time
	CreatedBy      string // UserID
}

// Consistent verifica el invariante aritmético de la entrada.
func (m *Movement) Consistent() bool {
	return m.QuantityAfter == m.QuantityBefore+m.QuantityChange
}
