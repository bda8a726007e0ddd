package services

import (
	"context"
	"errors"

	"github.com/diarhyseni/real-estateapp/internal/models"
)

type FavoriteStore interface {
	AddFavorite(ctx context.Context, userID, propertyID string) error
	RemoveFavorite(ctx context.Context, userID, propertyID string) error
	IsFavorite(ctx context.Context, userID, propertyID string) (bool, error)
	GetFavoritePropertyIDs(ctx context.Context, userID string) ([]string, error)
}

type FavoriteService struct {
	FavoriteRepo FavoriteStore
	PropertyRepo PropertyStore
}

// AddFavorite verifies the property exists before saving; saving twice is a
// no-op.
func (s *FavoriteService) AddFavorite(ctx context.Context, userID, propertyID string) error {
	if _, err := s.PropertyRepo.GetPropertyByID(ctx, propertyID); err != nil {
		return err
	}
	return s.FavoriteRepo.AddFavorite(ctx, userID, propertyID)
}

func (s *FavoriteService) RemoveFavorite(ctx context.Context, userID, propertyID string) error {
	return s.FavoriteRepo.RemoveFavorite(ctx, userID, propertyID)
}

// GetFavorites resolves the user's saved ids to full properties. Ids whose
// property has since been deleted are skipped.
func (s *FavoriteService) GetFavorites(ctx context.Context, userID string) ([]models.Property, error) {
	ids, err := s.FavoriteRepo.GetFavoritePropertyIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	properties := make([]models.Property, 0, len(ids))
	for _, id := range ids {
		p, err := s.PropertyRepo.GetPropertyByID(ctx, id)
		if err != nil {
			if errors.Is(err, models.ErrPropertyNotFound) {
				continue
			}
			return nil, err
		}
		properties = append(properties, p)
	}
	return properties, nil
}

func (s *FavoriteService) IsFavorite(ctx context.Context, userID, propertyID string) (bool, error) {
	return s.FavoriteRepo.IsFavorite(ctx, userID, propertyID)
}
