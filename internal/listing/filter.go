// Package listing holds the pure filter logic shared by every property
// listing endpoint, so area-unit conversion lives in exactly one place.
package listing

import (
	"strconv"
	"strings"

	"github.com/diarhyseni/real-estateapp/internal/models"
)

// NormalizeAreaToM2 converts an area value to square meters. Units are
// compared after lowercasing and stripping spaces and dots: "ari" is 100 m²,
// "hektar"/"hektare"/"ha" is 10000 m², anything else is taken as m² already.
func NormalizeAreaToM2(area float64, unit string) float64 {
	u := strings.ToLower(unit)
	u = strings.ReplaceAll(u, " ", "")
	u = strings.ReplaceAll(u, ".", "")
	switch u {
	case "ari":
		return area * 100
	case "hektar", "hektare", "ha":
		return area * 10000
	default:
		return area
	}
}

// Filters mirrors the options the listing pages offer on top of the base
// query result.
type Filters struct {
	MinPrice   *float64
	MaxPrice   *float64
	Bedrooms   string   // exact count ("3"), minimum ("3+"), or "" / "any"
	MinArea    *float64 // m²
	MaxArea    *float64 // m²
	HasParking bool
	City       string
	Search     string
}

// Apply filters a property slice in memory. Area bounds are matched against
// the m²-normalized area regardless of the unit the property was listed in.
func Apply(properties []models.Property, f Filters) []models.Property {
	out := make([]models.Property, 0, len(properties))
	for _, p := range properties {
		if matches(p, f) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p models.Property, f Filters) bool {
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}

	if !matchesBedrooms(p, f.Bedrooms) {
		return false
	}

	if f.MinArea != nil || f.MaxArea != nil {
		area := NormalizeAreaToM2(p.Area, p.AreaUnit)
		if f.MinArea != nil && area < *f.MinArea {
			return false
		}
		if f.MaxArea != nil && area > *f.MaxArea {
			return false
		}
	}

	if f.HasParking {
		if p.Parking == nil || *p.Parking <= 0 {
			return false
		}
	}

	if f.City != "" && p.City != f.City {
		return false
	}

	if f.Search != "" {
		s := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Title), s) &&
			!strings.Contains(strings.ToLower(p.Address), s) {
			return false
		}
	}

	return true
}

func matchesBedrooms(p models.Property, want string) bool {
	if want == "" || want == "any" {
		return true
	}
	have := 0
	if p.Bedrooms != nil {
		have = *p.Bedrooms
	}
	if strings.HasSuffix(want, "+") {
		min, err := strconv.Atoi(strings.TrimSuffix(want, "+"))
		if err != nil {
			return true
		}
		return have >= min
	}
	n, err := strconv.Atoi(want)
	if err != nil {
		return true
	}
	return have == n
}
