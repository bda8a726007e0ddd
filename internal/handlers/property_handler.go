package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/diarhyseni/real-estateapp/internal/models"
	"github.com/diarhyseni/real-estateapp/internal/services"
)

type PropertyHandler struct {
	Service *services.PropertyService
}

// GetProperties lists properties filtered by the query string. minArea and
// maxArea are taken as square meters regardless of each listing's unit.
func (h *PropertyHandler) GetProperties(w http.ResponseWriter, r *http.Request) {
	q := parsePropertyQuery(r)
	properties, err := h.Service.GetProperties(r.Context(), q)
	if err != nil {
		http.Error(w, "Failed to fetch properties", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(properties)
}

func (h *PropertyHandler) GetPropertyByID(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	property, err := h.Service.GetPropertyByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrPropertyNotFound) {
			http.Error(w, "Property not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to fetch property", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(property)
}

func (h *PropertyHandler) GetPropertiesByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := r.URL.Query().Get(":id")
	properties, err := h.Service.GetPropertiesByCategory(r.Context(), categoryID)
	if err != nil {
		http.Error(w, "Failed to fetch properties", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(properties)
}

func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	var input models.PropertyInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	userID, _ := r.Context().Value("user_id").(string)

	property, err := h.Service.CreateProperty(r.Context(), input, userID)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Failed to create property", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(property)
}

func (h *PropertyHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	var input models.PropertyInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}

	property, err := h.Service.UpdateProperty(r.Context(), id, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, models.ErrPropertyNotFound):
			http.Error(w, "Property not found", http.StatusNotFound)
		case errors.Is(err, models.ErrVersionConflict):
			http.Error(w, "Property was modified by someone else", http.StatusConflict)
		default:
			http.Error(w, "Failed to update property", http.StatusInternalServerError)
		}
		return
	}
	json.NewEncoder(w).Encode(property)
}

func (h *PropertyHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	if err := h.Service.DeleteProperty(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrPropertyNotFound) {
			http.Error(w, "Property not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to delete property", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parsePropertyQuery(r *http.Request) models.PropertyQuery {
	values := r.URL.Query()

	q := models.PropertyQuery{
		Type:     values.Get("type"),
		Category: values.Get("category"),
		Search:   values.Get("search"),
	}
	// hasStatus is the alias the public pages use for status tags. An
	// EXCLUSIVE hasStatus wins over status, everything else defers to it.
	q.Status = values.Get("status")
	if hasStatus := values.Get("hasStatus"); hasStatus == "EXCLUSIVE" || q.Status == "" {
		if hasStatus != "" {
			q.Status = hasStatus
		}
	}

	q.MinPrice = floatParam(values.Get("minPrice"))
	q.MaxPrice = floatParam(values.Get("maxPrice"))
	q.MinArea = floatParam(values.Get("minArea"))
	q.MaxArea = floatParam(values.Get("maxArea"))
	q.Bedrooms = intParam(values.Get("bedrooms"))
	q.Bathrooms = intParam(values.Get("bathrooms"))

	return q
}

func floatParam(raw string) *float64 {
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &f
}

func intParam(raw string) *int {
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}
