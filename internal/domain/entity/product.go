package entity

import "time"

// Product representa un producto del inventario.
// Stock es un valor cacheado derivado de los movimientos; solo lo muta el
// motor de ledger dentro de su protocolo transaccional. StockMin es un umbral
// informativo, no bloquea operaciones.
type Product struct {
	ID          string
	Code        string // código único, con significado externo
	Name        string
	CategoryID  string
	Unit        string // unidad de medida
	Stock       int64  // >= 0 entre transacciones confirmadas
	StockMin    int64
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
