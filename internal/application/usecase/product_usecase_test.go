package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dzikriii24/dpd-backend/internal/application/dto"
	"github.com/dzikriii24/dpd-backend/internal/application/usecase"
	"github.com/dzikriii24/dpd-backend/internal/domain"
	"github.com/dzikriii24/dpd-backend/internal/domain/entity"
)

func newProductFixture(t *testing.T) (*usecase.ProductUseCase, *fakeProductRepo, *fakeCategoryRepo, *fakeMovementRepo, string) {
	t.Helper()
	productRepo := newFakeProductRepo()
	categoryRepo := newFakeCategoryRepo()
	movRepo := &fakeMovementRepo{}
	categoryID := uuid.New().String()
	now := time.Now().UTC()
	categoryRepo.categories[categoryID] = &entity.Category{
		ID: categoryID, Name: "Materia Prima", Color: "#2563eb", IsActive: true,
		CreatedAt: now, UpdatedAt: now,
	}
	uc := usecase.NewProductUseCase(productRepo, categoryRepo, movRepo)
	return uc, productRepo, categoryRepo, movRepo, categoryID
}

func TestProduct_CreateConStockCero(t *testing.T) {
	uc, _, _, _, categoryID := newProductFixture(t)

	out, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Code: "MP-001", Name: "Harina de trigo", CategoryID: categoryID, Unit: "kg", StockMin: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), out.Stock, "el stock inicial siempre es 0, solo lo mueven los movimientos")
	assert.True(t, out.IsActive)
	require.NotNil(t, out.Category)
	assert.Equal(t, "Materia Prima", out.Category.Name)
}

func TestProduct_CreateCodigoDuplicado(t *testing.T) {
	uc, _, _, _, categoryID := newProductFixture(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateProductRequest{Code: "MP-001", Name: "Harina", CategoryID: categoryID})
	require.NoError(t, err)

	_, err = uc.Create(ctx, dto.CreateProductRequest{Code: "MP-001", Name: "Otra harina", CategoryID: categoryID})
	require.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProduct_CreateCategoriaInexistente(t *testing.T) {
	uc, _, _, _, _ := newProductFixture(t)

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Code: "MP-002", Name: "Azúcar", CategoryID: uuid.New().String(),
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// Update no puede tocar el stock: no existe campo para ello y el repo lo preserva.
func TestProduct_UpdateNoTocaStock(t *testing.T) {
	uc, productRepo, _, _, categoryID := newProductFixture(t)
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.CreateProductRequest{Code: "MP-001", Name: "Harina", CategoryID: categoryID})
	require.NoError(t, err)
	productRepo.products[out.ID].Stock = 42 // movido por el ledger

	name := "Harina integral"
	updated, err := uc.Update(ctx, out.ID, dto.UpdateProductRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Harina integral", updated.Name)
	assert.Equal(t, int64(42), productRepo.products[out.ID].Stock)
}

// Baja lógica: is_active=false vía Update, sin tocar la bitácora.
func TestProduct_BajaLogica(t *testing.T) {
	uc, productRepo, _, _, categoryID := newProductFixture(t)
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.CreateProductRequest{Code: "MP-001", Name: "Harina", CategoryID: categoryID})
	require.NoError(t, err)

	inactive := false
	_, err = uc.Update(ctx, out.ID, dto.UpdateProductRequest{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, productRepo.products[out.ID].IsActive)
}

func TestProduct_DeleteConMovimientosRechazado(t *testing.T) {
	uc, productRepo, _, movRepo, categoryID := newProductFixture(t)
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.CreateProductRequest{Code: "MP-001", Name: "Harina", CategoryID: categoryID})
	require.NoError(t, err)
	require.NoError(t, movRepo.Create(ctx, &entity.Movement{
		ID: uuid.New().String(), ProductID: out.ID, Direction: entity.DirectionIN,
		Quantity: 5, CreatedAt: time.Now().UTC(),
	}))

	err = uc.Delete(ctx, out.ID)
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Contains(t, productRepo.products, out.ID, "el producto con bitácora no se borra")
}

func TestProduct_DeleteSinMovimientos(t *testing.T) {
	uc, productRepo, _, _, categoryID := newProductFixture(t)
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.CreateProductRequest{Code: "MP-001", Name: "Harina", CategoryID: categoryID})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, out.ID))
	assert.NotContains(t, productRepo.products, out.ID)

	err = uc.Delete(ctx, out.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
