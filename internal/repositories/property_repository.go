package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/diarhyseni/real-estateapp/internal/models"
)

var (
	ErrPropertyNotFound = models.ErrPropertyNotFound
	ErrVersionConflict  = models.ErrVersionConflict
)

type PropertyRepository struct {
	DB *sql.DB
}

// Array columns are stored as JSON text.
func encodeList(values []string) string {
	if values == nil {
		values = []string{}
	}
	b, _ := json.Marshal(values)
	return string(b)
}

func decodeList(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return []string{}
	}
	return values
}

const propertySelect = `
	SELECT p.id, p.title, p.description, p.price, p.currency, p.location, p.address, p.city,
	       p.area, p.area_unit, p.bedrooms, p.bathrooms, p.parking,
	       p.has_balcony, p.has_garden, p.has_pool, p.has_security,
	       p.has_air_conditioning, p.has_heating, p.has_internet, p.has_elevator,
	       p.is_exclusive, p.images, p.characteristics, p.nearby_places, p.statuses,
	       p.latitude, p.longitude, p.google_maps_iframe,
	       p.category_id, p.type_id, p.user_id, p.version, p.created_at, p.updated_at,
	       c.name, c.value,
	       t.value,
	       u.id, u.name, u.email, u.phone, u.image
	FROM properties p
	LEFT JOIN categories c ON p.category_id = c.id
	LEFT JOIN types t ON p.type_id = t.id
	LEFT JOIN users u ON p.user_id = u.id
`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProperty(row rowScanner) (models.Property, error) {
	var (
		p                  models.Property
		latitude           sql.NullString
		longitude          sql.NullString
		iframe             sql.NullString
		address            sql.NullString
		city               sql.NullString
		description        sql.NullString
		typeID             sql.NullString
		userID             sql.NullString
		images             string
		characteristics    string
		nearbyPlaces       string
		statuses           string
		categoryName       sql.NullString
		categoryValue      sql.NullString
		typeValue          sql.NullString
		ownerID            sql.NullString
		ownerName          sql.NullString
		ownerEmail         sql.NullString
		ownerPhone         sql.NullString
		ownerImage         sql.NullString
	)

	err := row.Scan(
		&p.ID, &p.Title, &description, &p.Price, &p.Currency, &p.Location, &address, &city,
		&p.Area, &p.AreaUnit, &p.Bedrooms, &p.Bathrooms, &p.Parking,
		&p.HasBalcony, &p.HasGarden, &p.HasPool, &p.HasSecurity,
		&p.HasAirConditioning, &p.HasHeating, &p.HasInternet, &p.HasElevator,
		&p.IsExclusive, &images, &characteristics, &nearbyPlaces, &statuses,
		&latitude, &longitude, &iframe,
		&p.CategoryID, &typeID, &userID, &p.Version, &p.CreatedAt, &p.UpdatedAt,
		&categoryName, &categoryValue,
		&typeValue,
		&ownerID, &ownerName, &ownerEmail, &ownerPhone, &ownerImage,
	)
	if err != nil {
		return models.Property{}, err
	}

	p.Description = description.String
	p.Address = address.String
	p.City = city.String
	p.Latitude = latitude.String
	p.Longitude = longitude.String
	p.GoogleMapsIframe = iframe.String
	p.TypeID = typeID.String
	p.UserID = userID.String
	p.Images = decodeList(images)
	p.Characteristics = decodeList(characteristics)
	p.NearbyPlaces = decodeList(nearbyPlaces)
	p.Statuses = decodeList(statuses)
	// A property may outlive its category. The deleted category's row is gone,
	// so the joined columns come back NULL and the property carries only the
	// stale category_id.
	if categoryName.Valid {
		p.Category = &models.Category{ID: p.CategoryID, Name: categoryName.String, Value: categoryValue.String}
	}
	p.Type = typeValue.String
	if ownerID.Valid {
		p.User = &models.UserSummary{
			ID:    ownerID.String,
			Name:  ownerName.String,
			Email: ownerEmail.String,
			Phone: ownerPhone.String,
			Image: ownerImage.String,
		}
	}

	return p, nil
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func (r *PropertyRepository) CreateProperty(ctx context.Context, p models.Property) (models.Property, error) {
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	query := `
		INSERT INTO properties
			(id, title, description, price, currency, location, address, city,
			 area, area_unit, bedrooms, bathrooms, parking,
			 has_balcony, has_garden, has_pool, has_security,
			 has_air_conditioning, has_heating, has_internet, has_elevator,
			 is_exclusive, images, characteristics, nearby_places, statuses,
			 latitude, longitude, google_maps_iframe,
			 category_id, type_id, user_id, version, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.DB.ExecContext(ctx, query,
		p.ID, p.Title, p.Description, p.Price, p.Currency, p.Location, p.Address, p.City,
		p.Area, p.AreaUnit, p.Bedrooms, p.Bathrooms, p.Parking,
		p.HasBalcony, p.HasGarden, p.HasPool, p.HasSecurity,
		p.HasAirConditioning, p.HasHeating, p.HasInternet, p.HasElevator,
		p.IsExclusive, encodeList(p.Images), encodeList(p.Characteristics),
		encodeList(p.NearbyPlaces), encodeList(p.Statuses),
		p.Latitude, p.Longitude, p.GoogleMapsIframe,
		p.CategoryID, nullable(p.TypeID), nullable(p.UserID), p.Version, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return models.Property{}, err
	}
	return r.GetPropertyByID(ctx, p.ID)
}

func (r *PropertyRepository) GetPropertyByID(ctx context.Context, id string) (models.Property, error) {
	row := r.DB.QueryRowContext(ctx, propertySelect+` WHERE p.id = ?`, id)
	p, err := scanProperty(row)
	if err == sql.ErrNoRows {
		return models.Property{}, ErrPropertyNotFound
	}
	if err != nil {
		return models.Property{}, err
	}
	return p, nil
}

// UpdateProperty replaces the row wholesale, array columns included. When the
// caller supplies a version the update only applies if it still matches, and
// a stale version surfaces as ErrVersionConflict.
func (r *PropertyRepository) UpdateProperty(ctx context.Context, p models.Property, expectedVersion int) (models.Property, error) {
	query := `
		UPDATE properties
		SET title = ?, description = ?, price = ?, currency = ?, location = ?, address = ?, city = ?,
		    area = ?, area_unit = ?, bedrooms = ?, bathrooms = ?, parking = ?,
		    has_balcony = ?, has_garden = ?, has_pool = ?, has_security = ?,
		    has_air_conditioning = ?, has_heating = ?, has_internet = ?, has_elevator = ?,
		    is_exclusive = ?, images = ?, characteristics = ?, nearby_places = ?, statuses = ?,
		    latitude = ?, longitude = ?, google_maps_iframe = ?,
		    category_id = ?, type_id = ?, version = version + 1, updated_at = ?
		WHERE id = ?
	`
	params := []interface{}{
		p.Title, p.Description, p.Price, p.Currency, p.Location, p.Address, p.City,
		p.Area, p.AreaUnit, p.Bedrooms, p.Bathrooms, p.Parking,
		p.HasBalcony, p.HasGarden, p.HasPool, p.HasSecurity,
		p.HasAirConditioning, p.HasHeating, p.HasInternet, p.HasElevator,
		p.IsExclusive, encodeList(p.Images), encodeList(p.Characteristics),
		encodeList(p.NearbyPlaces), encodeList(p.Statuses),
		p.Latitude, p.Longitude, p.GoogleMapsIframe,
		p.CategoryID, nullable(p.TypeID), time.Now(), p.ID,
	}
	if expectedVersion > 0 {
		query += ` AND version = ?`
		params = append(params, expectedVersion)
	}

	result, err := r.DB.ExecContext(ctx, query, params...)
	if err != nil {
		return models.Property{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.Property{}, err
	}
	if rowsAffected == 0 {
		if expectedVersion > 0 {
			if _, err := r.GetPropertyByID(ctx, p.ID); err == nil {
				return models.Property{}, ErrVersionConflict
			}
		}
		return models.Property{}, ErrPropertyNotFound
	}
	return r.GetPropertyByID(ctx, p.ID)
}

func (r *PropertyRepository) DeleteProperty(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM properties WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrPropertyNotFound
	}
	return nil
}

func (r *PropertyRepository) GetProperties(ctx context.Context, q models.PropertyQuery) ([]models.Property, error) {
	where, params := buildPropertyWhere(q)
	query := propertySelect + where + ` ORDER BY p.created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []models.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return properties, nil
}

func (r *PropertyRepository) GetPropertiesByCategory(ctx context.Context, categoryID string) ([]models.Property, error) {
	return r.GetProperties(ctx, models.PropertyQuery{Category: categoryID})
}

// CountByStatusTag counts properties carrying the tag in their statuses
// array. Type usage is tracked through that array, not the type_id key.
func (r *PropertyRepository) CountByStatusTag(ctx context.Context, tag string) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM properties WHERE statuses LIKE ?`, statusPattern(tag),
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PropertyRepository) CountByCategory(ctx context.Context, categoryID string) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM properties WHERE category_id = ?`, categoryID,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
