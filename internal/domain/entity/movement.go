package entity

import "time"

// Direction dirección de un movimiento de stock (enumeración de dos variantes).
type Direction string

// Direcciones válidas. La mayúscula viene del contrato de la API (IN/OUT).
const (
	DirectionIN  Direction = "IN"
	DirectionOUT Direction = "OUT"
)

// Valid indica si la dirección es una de las dos variantes conocidas.
func (d Direction) Valid() bool {
	return d == DirectionIN || d == DirectionOUT
}

// Apply devuelve el stock resultante de aplicar quantity en esta dirección.
// Función pura: el motor la usa dentro de la transacción, después de
// re-verificar el stock bajo el bloqueo de fila.
func (d Direction) Apply(stock, quantity int64) int64 {
	if d == DirectionOUT {
		return stock - quantity
	}
	return stock + quantity
}

// Movement representa un movimiento de stock (entrada o salida).
// Inmutable una vez creado: el ledger es append-only y el stock del producto
// es un fold sobre esta bitácora, por eso no existe update ni delete.
type Movement struct {
	ID          string
	ProductID   string
	Direction   Direction
	Quantity    int64 // siempre > 0; el signo lo da Direction
	Source      string
	Destination string
	PIC         string // persona a cargo
	Note        string
	CreatedBy   string // UserID del actor
	CreatedAt   time.Time
}
