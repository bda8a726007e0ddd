package handlers

import (
	"net/http/httptest"
	"testing"
)

func TestParsePropertyQueryStatusAlias(t *testing.T) {
	cases := []struct {
		name  string
		query string
		want  string
	}{
		{"status only", "status=SALE", "SALE"},
		{"hasStatus only", "hasStatus=RENT", "RENT"},
		{"exclusive alias wins over status", "status=SALE&hasStatus=EXCLUSIVE", "EXCLUSIVE"},
		{"status wins over plain alias", "status=SALE&hasStatus=RENT", "SALE"},
		{"neither", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/api/properties?"+tc.query, nil)
			q := parsePropertyQuery(r)
			if q.Status != tc.want {
				t.Fatalf("expected status %q, got %q", tc.want, q.Status)
			}
		})
	}
}

func TestParsePropertyQueryNumericParams(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/properties?minPrice=50000&maxArea=120&bedrooms=3&bathrooms=junk", nil)
	q := parsePropertyQuery(r)

	if q.MinPrice == nil || *q.MinPrice != 50000 {
		t.Fatalf("expected minPrice 50000, got %v", q.MinPrice)
	}
	if q.MaxArea == nil || *q.MaxArea != 120 {
		t.Fatalf("expected maxArea 120, got %v", q.MaxArea)
	}
	if q.Bedrooms == nil || *q.Bedrooms != 3 {
		t.Fatalf("expected 3 bedrooms, got %v", q.Bedrooms)
	}
	if q.Bathrooms != nil {
		t.Fatalf("unparseable bathrooms should be dropped, got %d", *q.Bathrooms)
	}
}
