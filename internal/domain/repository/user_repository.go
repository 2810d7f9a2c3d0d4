package repository

import (
	"context"

	"nevoyage/internal/domain/entity"
)

type UserRepository interface {
	// Create inserts a user; a duplicate email fails the unique index and
	// surfaces as an already-exists error.
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
}
