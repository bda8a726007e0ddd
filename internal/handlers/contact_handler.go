package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/diarhyseni/real-estateapp/internal/models"
	"github.com/diarhyseni/real-estateapp/internal/services"
)

type ContactHandler struct {
	Service *services.ContactService
}

func (h *ContactHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var contact models.Contact
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	created, err := h.Service.CreateContact(r.Context(), contact)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Failed to submit contact request", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *ContactHandler) GetContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.Service.GetContacts(r.Context())
	if err != nil {
		http.Error(w, "Failed to fetch contacts", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(contacts)
}

func (h *ContactHandler) GetContactByID(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	contact, err := h.Service.GetContactByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrContactNotFound) {
			http.Error(w, "Contact not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to fetch contact", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(contact)
}

// UpdateContactStatus takes the contact id and new status from the body,
// which is how the back office submits status changes.
func (h *ContactHandler) UpdateContactStatus(w http.ResponseWriter, r *http.Request) {
	var req models.ContactStatusUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	if req.ID == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	contact, err := h.Service.UpdateStatus(r.Context(), req.ID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, models.ErrContactNotFound):
			http.Error(w, "Contact not found", http.StatusNotFound)
		default:
			http.Error(w, "Failed to update contact", http.StatusInternalServerError)
		}
		return
	}
	json.NewEncoder(w).Encode(contact)
}

func (h *ContactHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	if err := h.Service.DeleteContact(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrContactNotFound) {
			http.Error(w, "Contact not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to delete contact", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
