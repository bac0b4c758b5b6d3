package handlers

import (
	"net/http"

	"github.com/vwolf/portfolio-api/internal/models"
)

// CreateContact handles the public contact form.
func (a *API) CreateContact(w http.ResponseWriter, r *http.Request) {
	var in models.InsertContact
	if err := a.decode(r, &in); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid contact data")
		return
	}
	contact := a.store.CreateContact(r.Context(), in)
	respondJSON(w, http.StatusOK, contact)
}

// ListContacts returns every contact-form submission, newest first.
// Admin only.
func (a *API) ListContacts(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, a.store.ListContacts(r.Context()))
}

// ListVisits returns the raw visit log, newest first. Admin only.
func (a *API) ListVisits(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, a.store.ListVisits(r.Context()))
}
