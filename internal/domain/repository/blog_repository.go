package repository

import (
	"context"

	"nevoyage/internal/domain/entity"
)

type BlogCriteria struct {
	Tag       string
	Search    string
	Published *bool
}

type BlogRepository interface {
	Create(ctx context.Context, post *entity.BlogPost) error
	GetByID(ctx context.Context, id string) (*entity.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*entity.BlogPost, error)
	List(ctx context.Context, criteria BlogCriteria, sort string, page Page) ([]*entity.BlogPost, int64, error)
	Update(ctx context.Context, post *entity.BlogPost) error
	Delete(ctx context.Context, id string) error
}
