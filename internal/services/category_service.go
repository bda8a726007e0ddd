package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/diarhyseni/real-estateapp/internal/models"
)

type CategoryStore interface {
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	GetCategoryByID(ctx context.Context, id string) (models.Category, error)
	GetCategoryByValue(ctx context.Context, value string) (models.Category, error)
	UpdateCategory(ctx context.Context, category models.Category) (models.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	GetAllCategories(ctx context.Context) ([]models.Category, error)
}

type CategoryService struct {
	CategoryRepo CategoryStore
	PropertyRepo PropertyStore
}

// GetCategories returns all categories with their property counts attached.
func (s *CategoryService) GetCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.CategoryRepo.GetAllCategories(ctx)
	if err != nil {
		return nil, err
	}
	for i := range categories {
		n, err := s.PropertyRepo.CountByCategory(ctx, categories[i].ID)
		if err != nil {
			return nil, err
		}
		categories[i].Count = &models.Count{Properties: n}
	}
	return categories, nil
}

func (s *CategoryService) GetCategoryByID(ctx context.Context, id string) (models.Category, error) {
	return s.CategoryRepo.GetCategoryByID(ctx, id)
}

// CreateCategory stores the value lowercased, which is how the public
// listing pages key their category links.
func (s *CategoryService) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	if err := normalizeCategory(&category); err != nil {
		return models.Category{}, err
	}
	if _, err := s.CategoryRepo.GetCategoryByValue(ctx, category.Value); err == nil {
		return models.Category{}, models.ErrDuplicateCategory
	} else if !errors.Is(err, models.ErrCategoryNotFound) {
		return models.Category{}, err
	}
	category.ID = uuid.NewString()
	return s.CategoryRepo.CreateCategory(ctx, category)
}

func (s *CategoryService) UpdateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	if err := normalizeCategory(&category); err != nil {
		return models.Category{}, err
	}
	existing, err := s.CategoryRepo.GetCategoryByValue(ctx, category.Value)
	if err == nil && existing.ID != category.ID {
		return models.Category{}, models.ErrDuplicateCategory
	} else if err != nil && !errors.Is(err, models.ErrCategoryNotFound) {
		return models.Category{}, err
	}
	return s.CategoryRepo.UpdateCategory(ctx, category)
}

// DeleteCategory removes the row only. Properties still pointing at it keep
// their category id and simply stop resolving a name.
func (s *CategoryService) DeleteCategory(ctx context.Context, id string) error {
	return s.CategoryRepo.DeleteCategory(ctx, id)
}

func normalizeCategory(category *models.Category) error {
	category.Name = strings.TrimSpace(category.Name)
	category.Value = strings.ToLower(strings.TrimSpace(category.Value))
	if category.Name == "" || category.Value == "" {
		return fmt.Errorf("%w: name and value are required", ErrValidation)
	}
	return nil
}
