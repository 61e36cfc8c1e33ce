package ledger

import (
	"context"

	"github.com/dzikriii24/dpd-backend/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción del almacén,
// pasando repositorios atados a esa tx. Garantiza atomicidad para el motor
// de ledger: si fn devuelve error o el Commit falla, todo se revierte.
//
// Las implementaciones clasifican los fallos transitorios (deadlock,
// serialización, timeout de lock) como domain.ErrConflict para que el caso
// de uso pueda reintentar la transacción completa.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
		userRepo repository.UserRepository,
	) error) error
}
