package dto

import "time"

// CreateProductRequest body para POST /api/products.
// Stock inicia en 0 y solo se mueve vía movimientos; no se acepta en el alta.
type CreateProductRequest struct {
	Code        string `json:"code" validate:"required"`
	Name        string `json:"name" validate:"required"`
	CategoryID  string `json:"category_id" validate:"required,uuid"`
	Unit        string `json:"unit,omitempty"`
	StockMin    int64  `json:"stock_min,omitempty" validate:"omitempty,min=0"`
	Description string `json:"description,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:id (campos opcionales).
// No existe campo de stock: ese valor pertenece al motor de ledger.
type UpdateProductRequest struct {
	Name        *string `json:"name,omitempty"`
	CategoryID  *string `json:"category_id,omitempty" validate:"omitempty,uuid"`
	Unit        *string `json:"unit,omitempty"`
	StockMin    *int64  `json:"stock_min,omitempty" validate:"omitempty,min=0"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// ProductResponse representación de un producto.
type ProductResponse struct {
	ID          string            `json:"id"`
	Code        string            `json:"code"`
	Name        string            `json:"name"`
	CategoryID  string            `json:"category_id"`
	Category    *CategoryResponse `json:"category,omitempty"`
	Unit        string            `json:"unit"`
	Stock       int64             `json:"stock"`
	StockMin    int64             `json:"stock_min"`
	Description string            `json:"description,omitempty"`
	IsActive    bool              `json:"is_active"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
