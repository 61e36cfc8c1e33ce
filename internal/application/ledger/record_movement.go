package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dzikriii24/dpd-backend/internal/application/dto"
	"github.com/dzikriii24/dpd-backend/internal/domain"
	"github.com/dzikriii24/dpd-backend/internal/domain/entity"
	"github.com/dzikriii24/dpd-backend/internal/domain/repository"
)

const (
	defaultMaxAttempts  = 3
	defaultRetryBackoff = 50 * time.Millisecond
)

// RecordMovementUseCase registra movimientos de stock de forma transaccional.
// Toda la coordinación se delega al almacén: bloqueo de fila por producto
// (SELECT FOR UPDATE), re-verificación de stock bajo el bloqueo y escritura
// de movimiento + contador en la misma transacción. No mantiene locks en
// memoria, así que es seguro correr varias instancias contra un mismo almacén.
type RecordMovementUseCase struct {
	tx           TxRunner
	maxAttempts  int
	retryBackoff time.Duration
}

// NewRecordMovementUseCase construye el caso de uso con los valores por defecto.
func NewRecordMovementUseCase(tx TxRunner) *RecordMovementUseCase {
	return &RecordMovementUseCase{
		tx:           tx,
		maxAttempts:  defaultMaxAttempts,
		retryBackoff: defaultRetryBackoff,
	}
}

// WithRetry ajusta el número máximo de intentos y el backoff entre ellos.
func (uc *RecordMovementUseCase) WithRetry(maxAttempts int, backoff time.Duration) *RecordMovementUseCase {
	if maxAttempts > 0 {
		uc.maxAttempts = maxAttempts
	}
	if backoff > 0 {
		uc.retryBackoff = backoff
	}
	return uc
}

// Record valida la petición y aplica el movimiento con el protocolo atómico:
//
//  1. bloquear la fila del producto,
//  2. re-leer el stock bajo ese bloqueo,
//  3. rechazar OUT con quantity > stock (ErrInsufficientStock),
//  4. insertar el movimiento y actualizar el contador en la misma tx,
//  5. commit; ante conflicto transitorio se reintenta la transacción
//     completa hasta maxAttempts y luego se devuelve ErrConflict.
//
// La verificación de stock ocurre después de adquirir el bloqueo, nunca
// antes: dos OUT concurrentes que leyeran un stock viejo podrían pasar ambos
// una verificación previa al lock y dejar el contador negativo.
func (uc *RecordMovementUseCase) Record(ctx context.Context, in dto.CreateMovementRequest) (*dto.MovementResponse, error) {
	direction := entity.Direction(in.Direction)
	if !direction.Valid() || in.Quantity <= 0 || in.ProductID == "" || in.ActorID == "" {
		return nil, domain.ErrInvalidInput
	}

	var created *entity.Movement
	var err error
	for attempt := 1; attempt <= uc.maxAttempts; attempt++ {
		if attempt > 1 {
			// Backoff lineal entre reintentos, respetando la cancelación.
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt-1) * uc.retryBackoff):
			}
		}

		created = nil
		err = uc.tx.Run(ctx, func(
			movRepo repository.MovementRepository,
			productRepo repository.ProductRepository,
			userRepo repository.UserRepository,
		) error {
			actor, err := userRepo.GetByID(ctx, in.ActorID)
			if err != nil {
				return err
			}
			if actor == nil {
				return domain.ErrNotFound
			}

			product, err := productRepo.GetForUpdate(ctx, in.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}

			if direction == entity.DirectionOUT && in.Quantity > product.Stock {
				return domain.ErrInsufficientStock
			}
			newStock := direction.Apply(product.Stock, in.Quantity)

			mov := &entity.Movement{
				ID:          uuid.New().String(),
				ProductID:   product.ID,
				Direction:   direction,
				Quantity:    in.Quantity,
				Source:      in.Source,
				Destination: in.Destination,
				PIC:         in.PIC,
				Note:        in.Note,
				CreatedBy:   actor.ID,
				CreatedAt:   time.Now().UTC(),
			}
			if err := movRepo.Create(ctx, mov); err != nil {
				return err
			}
			if err := productRepo.UpdateStock(ctx, product.ID, newStock); err != nil {
				return err
			}
			created = mov
			return nil
		})

		if err == nil {
			return toMovementResponse(created), nil
		}
		if !errors.Is(err, domain.ErrConflict) {
			return nil, err
		}
	}
	// Reintentos agotados: el caller puede volver a enviar la petición.
	return nil, err
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		Direction:   string(m.Direction),
		Quantity:    m.Quantity,
		Source:      m.Source,
		Destination: m.Destination,
		PIC:         m.PIC,
		Note:        m.Note,
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt,
	}
}
