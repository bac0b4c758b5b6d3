package handlers

import (
	"errors"
	"net/http"

	"github.com/vwolf/portfolio-api/internal/models"
	"github.com/vwolf/portfolio-api/internal/storage"
)

func (a *API) ListTechnologies(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, a.store.ListTechnologies(r.Context()))
}

func (a *API) GetTechnology(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid id")
		return
	}
	tech := a.store.GetTechnology(r.Context(), id)
	if tech == nil {
		respondMessage(w, http.StatusNotFound, "Technology not found")
		return
	}
	respondJSON(w, http.StatusOK, tech)
}

func (a *API) CreateTechnology(w http.ResponseWriter, r *http.Request) {
	var in models.InsertTechnology
	if err := a.decode(r, &in); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid technology data")
		return
	}
	respondJSON(w, http.StatusCreated, a.store.CreateTechnology(r.Context(), in))
}

func (a *API) UpdateTechnology(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var in models.InsertTechnology
	if err := a.decode(r, &in); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid technology data")
		return
	}
	tech, err := a.store.UpdateTechnology(r.Context(), id, in)
	if errors.Is(err, storage.ErrNotFound) {
		respondMessage(w, http.StatusNotFound, "Technology not found")
		return
	}
	respondJSON(w, http.StatusOK, tech)
}

func (a *API) DeleteTechnology(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid id")
		return
	}
	if err := a.store.DeleteTechnology(r.Context(), id); errors.Is(err, storage.ErrNotFound) {
		respondMessage(w, http.StatusNotFound, "Technology not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
