package repository

import (
	"context"

	"github.com/dzikriii24/dpd-backend/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia para movimientos de stock.
// La bitácora es append-only: solo Create y lecturas, sin Update ni Delete.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	GetByID(ctx context.Context, id string) (*entity.Movement, error)
	// List devuelve movimientos ordenados por created_at DESC con id DESC como
	// desempate (orden determinista aunque colisionen timestamps). productID
	// vacío lista todos los productos.
	List(ctx context.Context, productID string, limit, offset int) ([]*entity.Movement, error)
	CountByProduct(ctx context.Context, productID string) (int64, error)
}
