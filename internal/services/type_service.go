package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/diarhyseni/real-estateapp/internal/models"
)

type TypeStore interface {
	CreateType(ctx context.Context, t models.Type) (models.Type, error)
	GetTypeByID(ctx context.Context, id string) (models.Type, error)
	GetTypeByValue(ctx context.Context, value string) (models.Type, error)
	UpdateType(ctx context.Context, t models.Type) (models.Type, error)
	DeleteType(ctx context.Context, id string) error
	GetAllTypes(ctx context.Context) ([]models.Type, error)
}

type TypeService struct {
	TypeRepo     TypeStore
	PropertyRepo PropertyStore
}

// GetTypes returns all types with property counts. A property counts toward
// a type when the type's tag appears in its statuses array, so a listing
// marked both SALE and RENT counts toward both.
func (s *TypeService) GetTypes(ctx context.Context) ([]models.Type, error) {
	types, err := s.TypeRepo.GetAllTypes(ctx)
	if err != nil {
		return nil, err
	}
	for i := range types {
		n, err := s.PropertyRepo.CountByStatusTag(ctx, types[i].Value)
		if err != nil {
			return nil, err
		}
		types[i].Count = &models.Count{Properties: n}
	}
	return types, nil
}

func (s *TypeService) GetTypeByID(ctx context.Context, id string) (models.Type, error) {
	return s.TypeRepo.GetTypeByID(ctx, id)
}

// CreateType stores the value uppercased to match the tags kept in property
// statuses arrays.
func (s *TypeService) CreateType(ctx context.Context, t models.Type) (models.Type, error) {
	if err := normalizeType(&t); err != nil {
		return models.Type{}, err
	}
	if _, err := s.TypeRepo.GetTypeByValue(ctx, t.Value); err == nil {
		return models.Type{}, models.ErrDuplicateType
	} else if !errors.Is(err, models.ErrTypeNotFound) {
		return models.Type{}, err
	}
	t.ID = uuid.NewString()
	return s.TypeRepo.CreateType(ctx, t)
}

func (s *TypeService) UpdateType(ctx context.Context, t models.Type) (models.Type, error) {
	if err := normalizeType(&t); err != nil {
		return models.Type{}, err
	}
	existing, err := s.TypeRepo.GetTypeByValue(ctx, t.Value)
	if err == nil && existing.ID != t.ID {
		return models.Type{}, models.ErrDuplicateType
	} else if err != nil && !errors.Is(err, models.ErrTypeNotFound) {
		return models.Type{}, err
	}
	return s.TypeRepo.UpdateType(ctx, t)
}

func (s *TypeService) DeleteType(ctx context.Context, id string) error {
	return s.TypeRepo.DeleteType(ctx, id)
}

func normalizeType(t *models.Type) error {
	t.Name = strings.TrimSpace(t.Name)
	t.Value = strings.ToUpper(strings.TrimSpace(t.Value))
	if t.Name == "" || t.Value == "" {
		return fmt.Errorf("%w: name and value are required", ErrValidation)
	}
	return nil
}
