package listing

import (
	"testing"

	"github.com/diarhyseni/real-estateapp/internal/models"
)

func TestNormalizeAreaToM2(t *testing.T) {
	tests := []struct {
		area float64
		unit string
		want float64
	}{
		{1, "hektar", 10000},
		{1, "hektare", 10000},
		{1, "ha", 10000},
		{1, "Ha", 10000},
		{1, "h a.", 10000},
		{1, "ari", 100},
		{2.5, "ari", 250},
		{120, "m2", 120},
		{120, "", 120},
		{75, "m²", 75},
	}

	for _, tt := range tests {
		got := NormalizeAreaToM2(tt.area, tt.unit)
		if got != tt.want {
			t.Errorf("NormalizeAreaToM2(%v, %q) = %v, want %v", tt.area, tt.unit, got, tt.want)
		}
	}
}

func intPtr(n int) *int { return &n }

func floatPtr(f float64) *float64 { return &f }

func TestApplyAreaRangeNormalizesUnits(t *testing.T) {
	properties := []models.Property{
		{ID: "hektar", Area: 1, AreaUnit: "hektar"},
		{ID: "ari", Area: 1, AreaUnit: "ari"},
		{ID: "m2", Area: 1, AreaUnit: "m2"},
	}

	got := Apply(properties, Filters{MinArea: floatPtr(5000)})
	if len(got) != 1 || got[0].ID != "hektar" {
		t.Fatalf("expected only the hektar property above 5000 m², got %#v", got)
	}

	got = Apply(properties, Filters{MinArea: floatPtr(50), MaxArea: floatPtr(200)})
	if len(got) != 1 || got[0].ID != "ari" {
		t.Fatalf("expected only the ari property between 50 and 200 m², got %#v", got)
	}
}

func TestApplyBedrooms(t *testing.T) {
	properties := []models.Property{
		{ID: "a", Bedrooms: intPtr(2)},
		{ID: "b", Bedrooms: intPtr(4)},
		{ID: "c"},
	}

	got := Apply(properties, Filters{Bedrooms: "2"})
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("exact match: got %#v", got)
	}

	got = Apply(properties, Filters{Bedrooms: "3+"})
	if len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("minimum match: got %#v", got)
	}

	got = Apply(properties, Filters{Bedrooms: "any"})
	if len(got) != 3 {
		t.Fatalf("any should keep all, got %d", len(got))
	}
}

func TestApplyPriceAndSearch(t *testing.T) {
	properties := []models.Property{
		{ID: "a", Title: "Banesë në qendër", Address: "Rr. Ilir Konushevci", Price: 95000},
		{ID: "b", Title: "Shtëpi me oborr", Address: "Veternik", Price: 250000},
	}

	got := Apply(properties, Filters{MinPrice: floatPtr(100000)})
	if len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("price filter: got %#v", got)
	}

	got = Apply(properties, Filters{Search: "QENDËR"})
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("search should be case-insensitive over title, got %#v", got)
	}

	got = Apply(properties, Filters{Search: "veternik"})
	if len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("search should cover address, got %#v", got)
	}
}

func TestApplyParkingAndCity(t *testing.T) {
	properties := []models.Property{
		{ID: "a", City: "Prishtinë", Parking: intPtr(2)},
		{ID: "b", City: "Pejë"},
	}

	got := Apply(properties, Filters{HasParking: true})
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("parking filter: got %#v", got)
	}

	got = Apply(properties, Filters{City: "Pejë"})
	if len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("city filter: got %#v", got)
	}
}
