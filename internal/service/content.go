package service

import (
	"context"
	"errors"
	"fmt"

	"beauty-parlour-api/internal/dto"
	"beauty-parlour-api/internal/model"
	"beauty-parlour-api/internal/repository"
)

var ErrInvalidContent = errors.New("invalid content")

type ContentService interface {
	ListBooks(ctx context.Context) ([]*model.Content, error)
	ListTutorials(ctx context.Context) ([]*model.Content, error)
	Add(ctx context.Context, req *dto.CreateContentRequest) (*model.Content, error)
}

type contentServiceImpl struct {
	contentRepo repository.ContentRepository
}

func NewContentService(contentRepo repository.ContentRepository) ContentService {
	return &contentServiceImpl{
		contentRepo: contentRepo,
	}
}

func (s *contentServiceImpl) ListBooks(ctx context.Context) ([]*model.Content, error) {
	return s.contentRepo.ListActiveByType(ctx, model.ContentTypeBook)
}

func (s *contentServiceImpl) ListTutorials(ctx context.Context) ([]*model.Content, error) {
	return s.contentRepo.ListActiveByType(ctx, model.ContentTypeTutorial)
}

func (s *contentServiceImpl) Add(ctx context.Context, req *dto.CreateContentRequest) (*model.Content, error) {
	if req.Type != model.ContentTypeBook && req.Type != model.ContentTypeTutorial {
		return nil, fmt.Errorf("%w: type must be book or tutorial", ErrInvalidContent)
	}
	if req.Title == "" || req.Link == "" {
		return nil, fmt.Errorf("%w: title and link are required", ErrInvalidContent)
	}

	content := &model.Content{
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
		Category:    req.Category,
		IsActive:    true,
	}

	if err := s.contentRepo.Create(ctx, content); err != nil {
		return nil, fmt.Errorf("create content: %w", err)
	}

	return content, nil
}
