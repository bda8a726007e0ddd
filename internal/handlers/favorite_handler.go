package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/diarhyseni/real-estateapp/internal/models"
	"github.com/diarhyseni/real-estateapp/internal/services"
)

type FavoriteHandler struct {
	Service *services.FavoriteService
}

func (h *FavoriteHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value("user_id").(string)
	properties, err := h.Service.GetFavorites(r.Context(), userID)
	if err != nil {
		http.Error(w, "Failed to fetch favorites", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(properties)
}

func (h *FavoriteHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value("user_id").(string)
	propertyID := r.URL.Query().Get(":id")

	if err := h.Service.AddFavorite(r.Context(), userID, propertyID); err != nil {
		if errors.Is(err, models.ErrPropertyNotFound) {
			http.Error(w, "Property not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to save favorite", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *FavoriteHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value("user_id").(string)
	propertyID := r.URL.Query().Get(":id")

	if err := h.Service.RemoveFavorite(r.Context(), userID, propertyID); err != nil {
		if errors.Is(err, models.ErrFavoriteNotFound) {
			http.Error(w, "Favorite not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to remove favorite", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *FavoriteHandler) IsFavorite(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value("user_id").(string)
	propertyID := r.URL.Query().Get(":id")

	saved, err := h.Service.IsFavorite(r.Context(), userID, propertyID)
	if err != nil {
		http.Error(w, "Failed to check favorite", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string]bool{"isFavorite": saved})
}
