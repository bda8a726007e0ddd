package models

// Type is a listing status tag (SALE, RENT, EXCLUSIVE). Properties carry
// type values in their statuses array rather than through the type_id
// foreign key, so usage counts are computed against that array.
type Type struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Value string `json:"value"`
	Count *Count `json:"_count,omitempty"`
}
