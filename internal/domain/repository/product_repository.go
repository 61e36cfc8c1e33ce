package repository

import (
	"context"

	"github.com/dzikriii24/dpd-backend/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Las implementaciones devuelven (nil, nil) cuando el producto no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByCode(ctx context.Context, code string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE). Solo
	// tiene sentido dentro de una transacción; es el punto de serialización
	// por producto del motor de ledger.
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	// Update actualiza los datos del producto. Nunca toca Stock: ese valor
	// se muta exclusivamente vía UpdateStock dentro del protocolo del ledger.
	Update(ctx context.Context, product *entity.Product) error
	UpdateStock(ctx context.Context, id string, stock int64) error
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	CountByCategory(ctx context.Context, categoryID string) (int64, error)
	Delete(ctx context.Context, id string) error
}
