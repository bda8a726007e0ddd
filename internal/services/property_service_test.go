package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/diarhyseni/real-estateapp/internal/models"
)

// fakePropertyStore keeps properties in a map and mirrors the repository's
// version handling, so service behavior can be exercised without a database.
type fakePropertyStore struct {
	properties map[string]models.Property
}

func newFakePropertyStore() *fakePropertyStore {
	return &fakePropertyStore{properties: make(map[string]models.Property)}
}

func (s *fakePropertyStore) CreateProperty(ctx context.Context, p models.Property) (models.Property, error) {
	s.properties[p.ID] = p
	return p, nil
}

func (s *fakePropertyStore) GetPropertyByID(ctx context.Context, id string) (models.Property, error) {
	p, ok := s.properties[id]
	if !ok {
		return models.Property{}, models.ErrPropertyNotFound
	}
	return p, nil
}

func (s *fakePropertyStore) UpdateProperty(ctx context.Context, p models.Property, expectedVersion int) (models.Property, error) {
	existing, ok := s.properties[p.ID]
	if !ok {
		return models.Property{}, models.ErrPropertyNotFound
	}
	if expectedVersion > 0 && expectedVersion != existing.Version {
		return models.Property{}, models.ErrVersionConflict
	}
	p.UserID = existing.UserID
	p.Version = existing.Version + 1
	p.CreatedAt = existing.CreatedAt
	s.properties[p.ID] = p
	return p, nil
}

func (s *fakePropertyStore) DeleteProperty(ctx context.Context, id string) error {
	if _, ok := s.properties[id]; !ok {
		return models.ErrPropertyNotFound
	}
	delete(s.properties, id)
	return nil
}

func (s *fakePropertyStore) GetProperties(ctx context.Context, q models.PropertyQuery) ([]models.Property, error) {
	out := make([]models.Property, 0, len(s.properties))
	for _, p := range s.properties {
		out = append(out, p)
	}
	return out, nil
}

func (s *fakePropertyStore) GetPropertiesByCategory(ctx context.Context, categoryID string) ([]models.Property, error) {
	var out []models.Property
	for _, p := range s.properties {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *fakePropertyStore) CountByStatusTag(ctx context.Context, tag string) (int, error) {
	n := 0
	for _, p := range s.properties {
		for _, t := range p.Statuses {
			if t == tag {
				n++
				break
			}
		}
	}
	return n, nil
}

func (s *fakePropertyStore) CountByCategory(ctx context.Context, categoryID string) (int, error) {
	n := 0
	for _, p := range s.properties {
		if p.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func validInput() models.PropertyInput {
	return models.PropertyInput{
		Title:      "Banesë në qendër",
		CategoryID: "cat-1",
		Location:   "Prishtinë",
		Area:       "85",
	}
}

func TestBuildPropertyMissingFields(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*models.PropertyInput)
		missing string
	}{
		{"no title", func(in *models.PropertyInput) { in.Title = "" }, "title"},
		{"no category", func(in *models.PropertyInput) { in.CategoryID = "" }, "categoryId"},
		{"no location", func(in *models.PropertyInput) { in.Location = "  " }, "location"},
		{"no area", func(in *models.PropertyInput) { in.Area = "" }, "area"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validInput()
			tc.mutate(&input)

			_, err := buildProperty(input)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.missing) {
				t.Fatalf("expected error to name %q, got %q", tc.missing, err)
			}
		})
	}
}

func TestBuildPropertyCategoryFallback(t *testing.T) {
	input := validInput()
	input.CategoryID = ""
	input.Category = "cat-2"

	p, err := buildProperty(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.CategoryID != "cat-2" {
		t.Fatalf("expected category cat-2, got %q", p.CategoryID)
	}
}

func TestBuildPropertyAreaMustBeNumeric(t *testing.T) {
	input := validInput()
	input.Area = "tetëdhjetë"

	_, err := buildProperty(input)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdatePropertyReplacesArraysWholesale(t *testing.T) {
	store := newFakePropertyStore()
	store.properties["p-1"] = models.Property{
		ID:              "p-1",
		Title:           "Banesë në qendër",
		CategoryID:      "cat-1",
		Location:        "Prishtinë",
		Area:            85,
		Images:          []string{"a.jpg", "b.jpg", "c.jpg"},
		Characteristics: []string{"ballkon", "ashensor"},
		Version:         1,
	}
	svc := &PropertyService{PropertyRepo: store}

	input := validInput()
	input.Images = []string{"d.jpg"}

	updated, err := svc.UpdateProperty(context.Background(), "p-1", input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(updated.Images) != 1 || updated.Images[0] != "d.jpg" {
		t.Fatalf("expected images replaced with [d.jpg], got %v", updated.Images)
	}
	// An omitted array clears the stored one rather than surviving the update.
	if len(updated.Characteristics) != 0 {
		t.Fatalf("expected characteristics cleared, got %v", updated.Characteristics)
	}

	stored, err := svc.GetPropertyByID(context.Background(), "p-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stored.Images) != 1 || stored.Images[0] != "d.jpg" {
		t.Fatalf("expected stored images [d.jpg], got %v", stored.Images)
	}
}

func TestUpdatePropertyVersionConflict(t *testing.T) {
	store := newFakePropertyStore()
	store.properties["p-1"] = models.Property{ID: "p-1", Version: 3}
	svc := &PropertyService{PropertyRepo: store}

	input := validInput()
	input.Version = 2

	_, err := svc.UpdateProperty(context.Background(), "p-1", input)
	if !errors.Is(err, models.ErrVersionConflict) {
		t.Fatalf("expected version conflict, got %v", err)
	}
}

func TestDeletePropertyThenGetReportsNotFound(t *testing.T) {
	store := newFakePropertyStore()
	store.properties["p-1"] = models.Property{ID: "p-1", Title: "Shtëpi në Pejë"}
	svc := &PropertyService{PropertyRepo: store}

	if err := svc.DeleteProperty(context.Background(), "p-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := svc.GetPropertyByID(context.Background(), "p-1")
	if !errors.Is(err, models.ErrPropertyNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}

	if err := svc.DeleteProperty(context.Background(), "p-1"); !errors.Is(err, models.ErrPropertyNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestBuildPropertyCoercion(t *testing.T) {
	input := validInput()
	input.Price = "sipas marrëveshjes"
	input.Bedrooms = "3"
	input.Bathrooms = "0"

	p, err := buildProperty(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Price != 0 {
		t.Fatalf("unparseable price should fall back to 0, got %v", p.Price)
	}
	if p.Currency != "€" {
		t.Fatalf("expected default currency, got %q", p.Currency)
	}
	if p.AreaUnit != "m2" {
		t.Fatalf("expected default area unit, got %q", p.AreaUnit)
	}
	if p.Bedrooms == nil || *p.Bedrooms != 3 {
		t.Fatalf("expected 3 bedrooms, got %v", p.Bedrooms)
	}
	if p.Bathrooms != nil {
		t.Fatalf("zero bathrooms should store as nil, got %d", *p.Bathrooms)
	}
	if p.Images == nil || p.Statuses == nil {
		t.Fatal("array fields must never be nil")
	}
}
