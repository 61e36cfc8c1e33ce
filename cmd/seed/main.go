// Seeder de datos de demostración: un actor, dos categorías y tres productos.
// Uso: go run ./cmd/seed (lee la misma configuración que la API).
package main

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dzikriii24/dpd-backend/internal/domain"
	"github.com/dzikriii24/dpd-backend/internal/domain/entity"
	"github.com/dzikriii24/dpd-backend/internal/infrastructure/postgres"
	"github.com/dzikriii24/dpd-backend/pkg/config"
	"github.com/dzikriii24/dpd-backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)

	now := time.Now().UTC()

	admin := &entity.User{
		ID:        uuid.New().String(),
		Name:      "Admin Demo",
		Email:     "admin@demo.local",
		IsActive:  true,
		CreatedAt: now,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			log.Warn().Str("email", admin.Email).Msg("actor ya existe, omitiendo")
		} else {
			log.Fatal().Err(err).Msg("crear actor")
		}
	} else {
		log.Info().Str("id", admin.ID).Msg("actor creado")
	}

	categories := []*entity.Category{
		{ID: uuid.New().String(), Name: "Materia Prima", Color: "#2563eb", IsActive: true, CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New().String(), Name: "Producto Terminado", Color: "#16a34a", IsActive: true, CreatedAt: now, UpdatedAt: now},
	}
	for _, c := range categories {
		if err := categoryRepo.Create(ctx, c); err != nil {
			log.Fatal().Err(err).Str("name", c.Name).Msg("crear categoría")
		}
		log.Info().Str("id", c.ID).Str("name", c.Name).Msg("categoría creada")
	}

	products := []*entity.Product{
		{ID: uuid.New().String(), Code: "MP-001", Name: "Harina de trigo", CategoryID: categories[0].ID, Unit: "kg", StockMin: 20, IsActive: true, CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New().String(), Code: "MP-002", Name: "Azúcar refinada", CategoryID: categories[0].ID, Unit: "kg", StockMin: 10, IsActive: true, CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New().String(), Code: "PT-001", Name: "Pan de molde", CategoryID: categories[1].ID, Unit: "und", StockMin: 5, IsActive: true, CreatedAt: now, UpdatedAt: now},
	}
	for _, p := range products {
		if err := productRepo.Create(ctx, p); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				log.Warn().Str("code", p.Code).Msg("producto ya existe, omitiendo")
				continue
			}
			log.Fatal().Err(err).Str("code", p.Code).Msg("crear producto")
		}
		log.Info().Str("id", p.ID).Str("code", p.Code).Msg("producto creado")
	}

	log.Info().Msg("seed completado")
}
