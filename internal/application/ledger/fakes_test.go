package ledger_test

import (
	"context"
	"fmt"
	"maps"
	"sort"
	"sync"

	"github.com/dzikriii24/dpd-backend/internal/domain"
	"github.com/dzikriii24/dpd-backend/internal/domain/entity"
	"github.com/dzikriii24/dpd-backend/internal/domain/repository"
)

// memStore almacén en memoria compartido por los repos fake.
type memStore struct {
	mu        sync.Mutex
	products  map[string]*entity.Product
	users     map[string]*entity.User
	movements []*entity.Movement
}

func newMemStore() *memStore {
	return &memStore{
		products: make(map[string]*entity.Product),
		users:    make(map[string]*entity.User),
	}
}

// memTxRunner emula el comportamiento transaccional del almacén real: un
// mutex hace las veces del bloqueo de fila y un snapshot del estado permite
// el rollback cuando fn falla. failures permite inyectar conflictos
// transitorios para probar los reintentos.
type memTxRunner struct {
	store    *memStore
	failures int
	attempts int
}

func (r *memTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.attempts++
	if r.failures > 0 {
		r.failures--
		return fmt.Errorf("deadlock simulado: %w", domain.ErrConflict)
	}

	// Snapshot para rollback: fn con error no deja escritura parcial.
	productsSnap := maps.Clone(r.store.products)
	movLen := len(r.store.movements)

	err := fn(&memMovementRepo{store: r.store}, &memProductRepo{store: r.store}, &memUserRepo{store: r.store})
	if err != nil {
		r.store.products = productsSnap
		r.store.movements = r.store.movements[:movLen]
		return err
	}
	return nil
}

// Los repos fake no toman el mutex: dentro de Run ya lo sostiene el runner y
// las lecturas directas de los tests son secuenciales.

type memProductRepo struct{ store *memStore }

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	cp := *p
	r.store.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) GetByCode(_ context.Context, code string) (*entity.Product, error) {
	for _, p := range r.store.products {
		if p.Code == code {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *memProductRepo) Update(_ context.Context, p *entity.Product) error {
	if existing, ok := r.store.products[p.ID]; ok {
		stock := existing.Stock
		cp := *p
		cp.Stock = stock // la columna stock no se toca en Update
		r.store.products[p.ID] = &cp
	}
	return nil
}

func (r *memProductRepo) UpdateStock(_ context.Context, id string, stock int64) error {
	p, ok := r.store.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	cp := *p
	cp.Stock = stock
	r.store.products[id] = &cp
	return nil
}

func (r *memProductRepo) List(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.store.products {
		cp := *p
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return paginate(list, limit, offset), nil
}

func (r *memProductRepo) CountByCategory(_ context.Context, categoryID string) (int64, error) {
	var n int64
	for _, p := range r.store.products {
		if p.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func (r *memProductRepo) Delete(_ context.Context, id string) error {
	delete(r.store.products, id)
	return nil
}

type memMovementRepo struct{ store *memStore }

func (r *memMovementRepo) Create(_ context.Context, m *entity.Movement) error {
	cp := *m
	r.store.movements = append(r.store.movements, &cp)
	return nil
}

func (r *memMovementRepo) GetByID(_ context.Context, id string) (*entity.Movement, error) {
	for _, m := range r.store.movements {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

// List replica el contrato del repo real: created_at DESC, id DESC.
func (r *memMovementRepo) List(_ context.Context, productID string, limit, offset int) ([]*entity.Movement, error) {
	var list []*entity.Movement
	for _, m := range r.store.movements {
		if productID != "" && m.ProductID != productID {
			continue
		}
		cp := *m
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].ID > list[j].ID
	})
	return paginate(list, limit, offset), nil
}

func (r *memMovementRepo) CountByProduct(_ context.Context, productID string) (int64, error) {
	var n int64
	for _, m := range r.store.movements {
		if m.ProductID == productID {
			n++
		}
	}
	return n, nil
}

type memUserRepo struct{ store *memStore }

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	cp := *u
	r.store.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.store.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func paginate[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
