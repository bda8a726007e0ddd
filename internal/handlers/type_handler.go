package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/diarhyseni/real-estateapp/internal/models"
	"github.com/diarhyseni/real-estateapp/internal/services"
)

type TypeHandler struct {
	Service *services.TypeService
}

func (h *TypeHandler) GetTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.Service.GetTypes(r.Context())
	if err != nil {
		http.Error(w, "Failed to fetch types", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(types)
}

func (h *TypeHandler) GetTypeByID(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	t, err := h.Service.GetTypeByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrTypeNotFound) {
			http.Error(w, "Type not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to fetch type", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(t)
}

func (h *TypeHandler) CreateType(w http.ResponseWriter, r *http.Request) {
	var t models.Type
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	created, err := h.Service.CreateType(r.Context(), t)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, models.ErrDuplicateType):
			http.Error(w, "Type with this value already exists", http.StatusConflict)
		default:
			http.Error(w, "Failed to create type", http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *TypeHandler) UpdateType(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	var t models.Type
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	t.ID = id

	updated, err := h.Service.UpdateType(r.Context(), t)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, models.ErrDuplicateType):
			http.Error(w, "Type with this value already exists", http.StatusConflict)
		case errors.Is(err, models.ErrTypeNotFound):
			http.Error(w, "Type not found", http.StatusNotFound)
		default:
			http.Error(w, "Failed to update type", http.StatusInternalServerError)
		}
		return
	}
	json.NewEncoder(w).Encode(updated)
}

func (h *TypeHandler) DeleteType(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	if err := h.Service.DeleteType(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrTypeNotFound) {
			http.Error(w, "Type not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to delete type", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
