package models

type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Value string `json:"value"`
	Count *Count `json:"_count,omitempty"`
}

type Count struct {
	Properties int `json:"properties"`
}
