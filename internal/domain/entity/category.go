package entity

import "time"

// Category representa una categoría de productos (datos de referencia).
type Category struct {
	ID        string
	Name      string
	Color     string // color de presentación en la UI
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
