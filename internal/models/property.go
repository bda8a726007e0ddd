package models

import (
	"bytes"
	"strconv"
	"time"
)

type Property struct {
	ID                 string       `json:"id"`
	Title              string       `json:"title"`
	Description        string       `json:"description"`
	Price              float64      `json:"price"`
	Currency           string       `json:"currency"`
	Location           string       `json:"location"`
	Address            string       `json:"address"`
	City               string       `json:"city"`
	Area               float64      `json:"area"`
	AreaUnit           string       `json:"areaUnit"`
	Bedrooms           *int         `json:"bedrooms"`
	Bathrooms          *int         `json:"bathrooms"`
	Parking            *int         `json:"parking"`
	HasBalcony         bool         `json:"hasBalcony"`
	HasGarden          bool         `json:"hasGarden"`
	HasPool            bool         `json:"hasPool"`
	HasSecurity        bool         `json:"hasSecurity"`
	HasAirConditioning bool         `json:"hasAirConditioning"`
	HasHeating         bool         `json:"hasHeating"`
	HasInternet        bool         `json:"hasInternet"`
	HasElevator        bool         `json:"hasElevator"`
	IsExclusive        bool         `json:"isExclusive"`
	Images             []string     `json:"images"`
	Characteristics    []string     `json:"characteristics"`
	NearbyPlaces       []string     `json:"nearbyPlaces"`
	Statuses           []string     `json:"statuses"`
	Latitude           string       `json:"latitude"`
	Longitude          string       `json:"longitude"`
	GoogleMapsIframe   string       `json:"googleMapsIframe"`
	CategoryID         string       `json:"categoryId"`
	TypeID             string       `json:"typeId,omitempty"`
	UserID             string       `json:"userId,omitempty"`
	Category           *Category    `json:"category,omitempty"`
	Type               string       `json:"type,omitempty"`
	User               *UserSummary `json:"user,omitempty"`
	Version            int          `json:"version"`
	CreatedAt          time.Time    `json:"createdAt"`
	UpdatedAt          time.Time    `json:"updatedAt"`
}

// PropertyInput is the payload accepted on create and update. Numeric fields
// arrive either as JSON numbers or as strings, the way the admin forms submit
// them, so they are kept raw and coerced in the service layer.
type PropertyInput struct {
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Price              Number   `json:"price"`
	Currency           string   `json:"currency"`
	Location           string   `json:"location"`
	Address            string   `json:"address"`
	City               string   `json:"city"`
	Area               Number   `json:"area"`
	AreaUnit           string   `json:"areaUnit"`
	Bedrooms           Number   `json:"bedrooms"`
	Bathrooms          Number   `json:"bathrooms"`
	Parking            Number   `json:"parking"`
	HasBalcony         bool     `json:"hasBalcony"`
	HasGarden          bool     `json:"hasGarden"`
	HasPool            bool     `json:"hasPool"`
	HasSecurity        bool     `json:"hasSecurity"`
	HasAirConditioning bool     `json:"hasAirConditioning"`
	HasHeating         bool     `json:"hasHeating"`
	HasInternet        bool     `json:"hasInternet"`
	HasElevator        bool     `json:"hasElevator"`
	IsExclusive        bool     `json:"isExclusive"`
	Images             []string `json:"images"`
	Characteristics    []string `json:"characteristics"`
	NearbyPlaces       []string `json:"nearbyPlaces"`
	Statuses           []string `json:"statuses"`
	Latitude           string   `json:"latitude"`
	Longitude          string   `json:"longitude"`
	GoogleMapsIframe   string   `json:"googleMapsIframe"`
	CategoryID         string   `json:"categoryId"`
	Category           string   `json:"category"`
	TypeID             string   `json:"typeId"`
	Version            int      `json:"version"`
}

// PropertyQuery carries the listing filter parameters.
type PropertyQuery struct {
	Type      string
	Category  string
	Status    string
	Search    string
	MinPrice  *float64
	MaxPrice  *float64
	MinArea   *float64
	MaxArea   *float64
	Bedrooms  *int
	Bathrooms *int
}

// Number accepts a JSON number, a numeric string, or null.
type Number string

func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*n = ""
		return nil
	}
	if b[0] == '"' && len(b) >= 2 {
		b = b[1 : len(b)-1]
	}
	*n = Number(bytes.TrimSpace(b))
	return nil
}

func (n Number) IsZero() bool {
	return n == "" || n == "0"
}

// Float parses the raw value. The second return reports whether the value
// was present and parseable.
func (n Number) Float() (float64, bool) {
	if n == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// IntPtr returns the value as an *int, or nil when absent or zero.
func (n Number) IntPtr() *int {
	f, ok := n.Float()
	if !ok || f == 0 {
		return nil
	}
	v := int(f)
	return &v
}
