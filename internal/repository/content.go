package repository

import (
	"context"

	"beauty-parlour-api/internal/model"

	"gorm.io/gorm"
)

type ContentRepository interface {
	Create(ctx context.Context, content *model.Content) error
	ListActiveByType(ctx context.Context, contentType string) ([]*model.Content, error)
}

type contentRepoImpl struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepoImpl{
		db: db,
	}
}

func (r *contentRepoImpl) Create(ctx context.Context, content *model.Content) error {
	return r.db.WithContext(ctx).Create(content).Error
}

func (r *contentRepoImpl) ListActiveByType(ctx context.Context, contentType string) ([]*model.Content, error) {
	var items []*model.Content
	err := r.db.WithContext(ctx).
		Where("type = ?", contentType).
		Where("is_active = ?", true).
		Order("created_at desc").
		Find(&items).Error

	if err != nil {
		return nil, err
	}

	return items, nil
}
