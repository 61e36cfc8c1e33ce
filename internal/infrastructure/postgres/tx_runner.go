package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dzikriii24/dpd-backend/internal/application/ledger"
	"github.com/dzikriii24/dpd-backend/internal/domain"
	"github.com/dzikriii24/dpd-backend/internal/domain/repository"
)

// Ensure TxRunner implements ledger.TxRunner.
var _ ledger.TxRunner = (*TxRunner)(nil)

const defaultLockTimeout = 3 * time.Second

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// Aplica SET LOCAL lock_timeout para que la espera del bloqueo de fila sea
// acotada: agotado el timeout el almacén falla con 55P03 y el caso de uso
// reintenta en vez de quedar encolado indefinidamente.
type TxRunner struct {
	pool        *pgxpool.Pool
	lockTimeout time.Duration
}

// NewTxRunner construye el runner con el pool y el timeout de lock.
func NewTxRunner(pool *pgxpool.Pool, lockTimeout time.Duration) *TxRunner {
	if lockTimeout <= 0 {
		lockTimeout = defaultLockTimeout
	}
	return &TxRunner{pool: pool, lockTimeout: lockTimeout}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Los fallos transitorios (deadlock, serialización,
// timeout de lock) se devuelven envueltos en domain.ErrConflict para que el
// caller reintente la transacción completa; si no se puede ni abrir la
// transacción se devuelve domain.ErrUnavailable.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", domain.ErrUnavailable)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	lockMillis := r.lockTimeout.Milliseconds()
	if _, err := tx.Exec(ctx, fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", lockMillis)); err != nil {
		return fmt.Errorf("set lock_timeout: %w", err)
	}

	movRepo := NewMovementRepository(tx)
	productRepo := NewProductRepository(tx)
	userRepo := NewUserRepository(tx)

	if err := fn(movRepo, productRepo, userRepo); err != nil {
		if isRetryableTxError(err) {
			return fmt.Errorf("tx conflict: %v: %w", err, domain.ErrConflict)
		}
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		if isRetryableTxError(err) {
			return fmt.Errorf("commit conflict: %v: %w", err, domain.ErrConflict)
		}
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
