package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dzikriii24/dpd-backend/internal/application/dto"
	"github.com/dzikriii24/dpd-backend/internal/domain"
	"github.com/dzikriii24/dpd-backend/internal/domain/entity"
	"github.com/dzikriii24/dpd-backend/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. Stock se maneja
// exclusivamente vía movimientos: aquí nunca se escribe ese campo.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	movRepo      repository.MovementRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	movRepo repository.MovementRepository,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, movRepo: movRepo}
}

// Create crea un nuevo producto con stock 0 y activo.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Code == "" || in.Name == "" || in.CategoryID == "" {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.repo.GetByCode(ctx, in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now().UTC()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Code:        in.Code,
		Name:        in.Name,
		CategoryID:  in.CategoryID,
		Unit:        in.Unit,
		Stock:       0,
		StockMin:    in.StockMin,
		Description: in.Description,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	resp.Category = toCategoryResponse(category)
	return resp, nil
}

// GetByID obtiene un producto por ID con su categoría.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	resp := toProductResponse(product)
	if category, err := uc.categoryRepo.GetByID(ctx, product.CategoryID); err == nil && category != nil {
		resp.Category = toCategoryResponse(category)
	}
	return resp, nil
}

// Update actualiza datos del producto. IsActive=false funciona como baja
// lógica; el stock no es actualizable por esta vía.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.CategoryID != nil {
		category, err := uc.categoryRepo.GetByID(ctx, *in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
		product.CategoryID = *in.CategoryID
	}
	if in.Unit != nil {
		product.Unit = *in.Unit
	}
	if in.StockMin != nil {
		if *in.StockMin < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.StockMin = *in.StockMin
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	product.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación, adjuntando la categoría de cada uno.
func (uc *ProductUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	categories := make(map[string]*entity.Category)
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		resp := toProductResponse(p)
		category, ok := categories[p.CategoryID]
		if !ok {
			category, err = uc.categoryRepo.GetByID(ctx, p.CategoryID)
			if err != nil {
				return nil, err
			}
			categories[p.CategoryID] = category
		}
		if category != nil {
			resp.Category = toCategoryResponse(category)
		}
		items = append(items, *resp)
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina un producto sin movimientos. Si la bitácora ya lo referencia
// el borrado físico se rechaza con ErrConflict: el stock es un fold sobre los
// movimientos y debe seguir siendo reconstruible. Para retirar el producto
// del catálogo usar Update con is_active=false.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	count, err := uc.movRepo.CountByProduct(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrConflict
	}
	return uc.repo.Delete(ctx, id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Code:        p.Code,
		Name:        p.Name,
		CategoryID:  p.CategoryID,
		Unit:        p.Unit,
		Stock:       p.Stock,
		StockMin:    p.StockMin,
		Description: p.Description,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
