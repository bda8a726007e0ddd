package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/diarhyseni/real-estateapp/internal/listing"
	"github.com/diarhyseni/real-estateapp/internal/models"
)

// ErrValidation marks errors caused by a bad request body; handlers map it
// to a 400.
var ErrValidation = errors.New("validation failed")

// PropertyStore is the property slice of the repository layer. Services hold
// the interface so tests can swap in in-memory stores.
type PropertyStore interface {
	CreateProperty(ctx context.Context, p models.Property) (models.Property, error)
	GetPropertyByID(ctx context.Context, id string) (models.Property, error)
	UpdateProperty(ctx context.Context, p models.Property, expectedVersion int) (models.Property, error)
	DeleteProperty(ctx context.Context, id string) error
	GetProperties(ctx context.Context, q models.PropertyQuery) ([]models.Property, error)
	GetPropertiesByCategory(ctx context.Context, categoryID string) ([]models.Property, error)
	CountByStatusTag(ctx context.Context, tag string) (int, error)
	CountByCategory(ctx context.Context, categoryID string) (int, error)
}

type PropertyService struct {
	PropertyRepo PropertyStore
	TypeRepo     TypeStore
	CategoryRepo CategoryStore
}

// GetProperties runs the SQL-backed filters and then applies the
// m²-normalized area bounds in memory, since the stored area is in the unit
// the property was listed with. A status of EXCLUSIVE bypasses everything
// else, area bounds included.
func (s *PropertyService) GetProperties(ctx context.Context, q models.PropertyQuery) ([]models.Property, error) {
	if q.Status == "EXCLUSIVE" {
		return s.PropertyRepo.GetProperties(ctx, models.PropertyQuery{Status: "EXCLUSIVE"})
	}

	// The type filter accepts either a tag value (SALE) or a type id.
	if q.Type != "" {
		if t, err := s.TypeRepo.GetTypeByValue(ctx, q.Type); err == nil {
			q.Type = t.ID
		}
	}

	minArea, maxArea := q.MinArea, q.MaxArea
	q.MinArea, q.MaxArea = nil, nil

	properties, err := s.PropertyRepo.GetProperties(ctx, q)
	if err != nil {
		return nil, err
	}

	if minArea != nil || maxArea != nil {
		properties = listing.Apply(properties, listing.Filters{MinArea: minArea, MaxArea: maxArea})
	}
	return properties, nil
}

func (s *PropertyService) GetPropertyByID(ctx context.Context, id string) (models.Property, error) {
	return s.PropertyRepo.GetPropertyByID(ctx, id)
}

func (s *PropertyService) GetPropertiesByCategory(ctx context.Context, categoryID string) ([]models.Property, error) {
	return s.PropertyRepo.GetPropertiesByCategory(ctx, categoryID)
}

func (s *PropertyService) CreateProperty(ctx context.Context, input models.PropertyInput, userID string) (models.Property, error) {
	property, err := buildProperty(input)
	if err != nil {
		return models.Property{}, err
	}
	property.ID = uuid.NewString()
	property.UserID = userID
	property.Version = 1

	if _, err := s.CategoryRepo.GetCategoryByID(ctx, property.CategoryID); err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			return models.Property{}, fmt.Errorf("%w: unknown category %q", ErrValidation, property.CategoryID)
		}
		return models.Property{}, err
	}

	return s.PropertyRepo.CreateProperty(ctx, property)
}

// UpdateProperty replaces every updatable field, arrays wholesale — last
// write wins. When the payload carries a version, a concurrent edit since
// that version surfaces as ErrVersionConflict instead of silently
// overwriting.
func (s *PropertyService) UpdateProperty(ctx context.Context, id string, input models.PropertyInput) (models.Property, error) {
	property, err := buildProperty(input)
	if err != nil {
		return models.Property{}, err
	}
	property.ID = id

	return s.PropertyRepo.UpdateProperty(ctx, property, input.Version)
}

func (s *PropertyService) DeleteProperty(ctx context.Context, id string) error {
	return s.PropertyRepo.DeleteProperty(ctx, id)
}

// buildProperty validates the input and coerces it into a Property:
// required fields checked, numerics parsed from number-or-string, booleans
// defaulted to false by decoding, arrays never nil.
func buildProperty(input models.PropertyInput) (models.Property, error) {
	categoryID := input.CategoryID
	if categoryID == "" {
		categoryID = input.Category
	}

	var missing []string
	if strings.TrimSpace(input.Title) == "" {
		missing = append(missing, "title")
	}
	if categoryID == "" {
		missing = append(missing, "categoryId")
	}
	if strings.TrimSpace(input.Location) == "" {
		missing = append(missing, "location")
	}
	if input.Area == "" {
		missing = append(missing, "area")
	}
	if len(missing) > 0 {
		return models.Property{}, fmt.Errorf("%w: missing required fields: %s", ErrValidation, strings.Join(missing, ", "))
	}

	area, ok := input.Area.Float()
	if !ok {
		return models.Property{}, fmt.Errorf("%w: area must be a valid number", ErrValidation)
	}

	price, _ := input.Price.Float()

	currency := input.Currency
	if currency == "" {
		currency = "€"
	}
	areaUnit := input.AreaUnit
	if areaUnit == "" {
		areaUnit = "m2"
	}

	return models.Property{
		Title:              input.Title,
		Description:        input.Description,
		Price:              price,
		Currency:           currency,
		Location:           input.Location,
		Address:            input.Address,
		City:               input.City,
		Area:               area,
		AreaUnit:           areaUnit,
		Bedrooms:           input.Bedrooms.IntPtr(),
		Bathrooms:          input.Bathrooms.IntPtr(),
		Parking:            input.Parking.IntPtr(),
		HasBalcony:         input.HasBalcony,
		HasGarden:          input.HasGarden,
		HasPool:            input.HasPool,
		HasSecurity:        input.HasSecurity,
		HasAirConditioning: input.HasAirConditioning,
		HasHeating:         input.HasHeating,
		HasInternet:        input.HasInternet,
		HasElevator:        input.HasElevator,
		IsExclusive:        input.IsExclusive,
		Images:             orEmpty(input.Images),
		Characteristics:    orEmpty(input.Characteristics),
		NearbyPlaces:       orEmpty(input.NearbyPlaces),
		Statuses:           orEmpty(input.Statuses),
		Latitude:           input.Latitude,
		Longitude:          input.Longitude,
		GoogleMapsIframe:   input.GoogleMapsIframe,
		CategoryID:         categoryID,
		TypeID:             input.TypeID,
	}, nil
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
