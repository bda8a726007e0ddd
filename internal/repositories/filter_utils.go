package repositories

import (
	"strings"

	"github.com/diarhyseni/real-estateapp/internal/models"
)

// statusPattern builds the LIKE pattern matching a tag inside the
// JSON-encoded statuses column.
func statusPattern(tag string) string {
	return `%"` + tag + `"%`
}

// buildPropertyWhere translates a listing query into a WHERE clause and its
// parameters. A status of EXCLUSIVE reduces the whole query to the exclusive
// flag, and SALE/RENT reduce it to a statuses match — every other filter is
// ignored in those cases, matching the public listing pages. Area bounds are
// deliberately absent: they need unit normalization and are applied in the
// service layer.
func buildPropertyWhere(q models.PropertyQuery) (string, []interface{}) {
	if q.Status == "EXCLUSIVE" {
		return " WHERE p.is_exclusive = TRUE", nil
	}
	if q.Status == "SALE" || q.Status == "RENT" {
		return " WHERE p.statuses LIKE ?", []interface{}{statusPattern(q.Status)}
	}

	var (
		conditions []string
		params     []interface{}
	)

	if q.Type != "" {
		conditions = append(conditions, "p.type_id = ?")
		params = append(params, q.Type)
	}
	if q.Category != "" {
		conditions = append(conditions, "p.category_id = ?")
		params = append(params, q.Category)
	}
	if q.MinPrice != nil {
		conditions = append(conditions, "p.price >= ?")
		params = append(params, *q.MinPrice)
	}
	if q.MaxPrice != nil {
		conditions = append(conditions, "p.price <= ?")
		params = append(params, *q.MaxPrice)
	}
	if q.Bedrooms != nil {
		conditions = append(conditions, "p.bedrooms = ?")
		params = append(params, *q.Bedrooms)
	}
	if q.Bathrooms != nil {
		conditions = append(conditions, "p.bathrooms = ?")
		params = append(params, *q.Bathrooms)
	}
	if q.Search != "" {
		conditions = append(conditions, "(LOWER(p.title) LIKE ? OR LOWER(p.description) LIKE ? OR LOWER(p.location) LIKE ?)")
		pattern := "%" + strings.ToLower(q.Search) + "%"
		params = append(params, pattern, pattern, pattern)
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), params
}
