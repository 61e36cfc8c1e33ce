package dto

import "time"

// CreateMovementRequest body para POST /api/movements.
// Quantity siempre positiva; el sentido lo da Direction (IN/OUT).
type CreateMovementRequest struct {
	ProductID   string `json:"product_id" validate:"required,uuid"`
	Direction   string `json:"direction" validate:"required,oneof=IN OUT"`
	Quantity    int64  `json:"quantity" validate:"required,gt=0"`
	Source      string `json:"source,omitempty"`
	Destination string `json:"destination,omitempty"`
	PIC         string `json:"pic,omitempty"`
	Note        string `json:"note,omitempty"`
	ActorID     string `json:"actor_id" validate:"required,uuid"`
}

// MovementResponse representación de un movimiento confirmado.
type MovementResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	Direction   string    `json:"direction"`
	Quantity    int64     `json:"quantity"`
	Source      string    `json:"source,omitempty"`
	Destination string    `json:"destination,omitempty"`
	PIC         string    `json:"pic,omitempty"`
	Note        string    `json:"note,omitempty"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// MovementListResponse listado paginado de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
