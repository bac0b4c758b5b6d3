package handlers

import (
	"errors"
	"net/http"

	"github.com/vwolf/portfolio-api/internal/models"
	"github.com/vwolf/portfolio-api/internal/storage"
)

func (a *API) ListTimelineItems(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, a.store.ListTimelineItems(r.Context()))
}

func (a *API) CreateTimelineItem(w http.ResponseWriter, r *http.Request) {
	var in models.InsertTimelineItem
	if err := a.decode(r, &in); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid timeline data")
		return
	}
	respondJSON(w, http.StatusCreated, a.store.CreateTimelineItem(r.Context(), in))
}

func (a *API) UpdateTimelineItem(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var in models.InsertTimelineItem
	if err := a.decode(r, &in); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid timeline data")
		return
	}
	item, err := a.store.UpdateTimelineItem(r.Context(), id, in)
	if errors.Is(err, storage.ErrNotFound) {
		respondMessage(w, http.StatusNotFound, "Timeline item not found")
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (a *API) DeleteTimelineItem(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid id")
		return
	}
	if err := a.store.DeleteTimelineItem(r.Context(), id); errors.Is(err, storage.ErrNotFound) {
		respondMessage(w, http.StatusNotFound, "Timeline item not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
