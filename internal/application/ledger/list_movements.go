package ledger

import (
	"context"

	"github.com/dzikriii24/dpd-backend/internal/application/dto"
	"github.com/dzikriii24/dpd-backend/internal/domain/repository"
)

// ListMovementsUseCase consulta la bitácora de movimientos. Solo lectura:
// sin bloqueos, tolera snapshots ligeramente desactualizados.
type ListMovementsUseCase struct {
	movRepo repository.MovementRepository
}

// NewListMovementsUseCase construye el caso de uso.
func NewListMovementsUseCase(movRepo repository.MovementRepository) *ListMovementsUseCase {
	return &ListMovementsUseCase{movRepo: movRepo}
}

// List devuelve movimientos, opcionalmente filtrados por producto, ordenados
// por fecha de creación descendente (desempate por id, determinista).
func (uc *ListMovementsUseCase) List(ctx context.Context, productID string, page dto.PageRequest) (*dto.MovementListResponse, error) {
	page.DefaultPage()
	list, err := uc.movRepo.List(ctx, productID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}
