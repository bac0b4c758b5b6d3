package handlers

import (
	"errors"
	"net/http"

	"github.com/vwolf/portfolio-api/internal/models"
	"github.com/vwolf/portfolio-api/internal/storage"
)

func (a *API) ListProjects(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, a.store.ListProjects(r.Context()))
}

func (a *API) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid id")
		return
	}
	project := a.store.GetProject(r.Context(), id)
	if project == nil {
		respondMessage(w, http.StatusNotFound, "Project not found")
		return
	}
	respondJSON(w, http.StatusOK, project)
}

func (a *API) CreateProject(w http.ResponseWriter, r *http.Request) {
	var in models.InsertProject
	if err := a.decode(r, &in); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid project data")
		return
	}
	respondJSON(w, http.StatusCreated, a.store.CreateProject(r.Context(), in))
}

func (a *API) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var in models.InsertProject
	if err := a.decode(r, &in); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid project data")
		return
	}
	project, err := a.store.UpdateProject(r.Context(), id, in)
	if errors.Is(err, storage.ErrNotFound) {
		respondMessage(w, http.StatusNotFound, "Project not found")
		return
	}
	respondJSON(w, http.StatusOK, project)
}

func (a *API) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid id")
		return
	}
	if err := a.store.DeleteProject(r.Context(), id); errors.Is(err, storage.ErrNotFound) {
		respondMessage(w, http.StatusNotFound, "Project not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
