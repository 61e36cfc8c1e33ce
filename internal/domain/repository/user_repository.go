package repository

import (
	"context"

	"github.com/dzikriii24/dpd-backend/internal/domain/entity"
)

// UserRepository define el puerto de lectura/alta de actores.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
}
