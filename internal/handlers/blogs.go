package handlers

import (
	"errors"
	"net/http"

	"github.com/vwolf/portfolio-api/internal/models"
	"github.com/vwolf/portfolio-api/internal/storage"
)

// ListBlogs returns every post, drafts included. The public client
// filters on published; the admin dashboard wants everything.
func (a *API) ListBlogs(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, a.store.ListBlogs(r.Context()))
}

func (a *API) CreateBlog(w http.ResponseWriter, r *http.Request) {
	var in models.InsertBlog
	if err := a.decode(r, &in); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid blog data")
		return
	}
	respondJSON(w, http.StatusCreated, a.store.CreateBlog(r.Context(), in))
}

func (a *API) UpdateBlog(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var in models.InsertBlog
	if err := a.decode(r, &in); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid blog data")
		return
	}
	blog, err := a.store.UpdateBlog(r.Context(), id, in)
	if errors.Is(err, storage.ErrNotFound) {
		respondMessage(w, http.StatusNotFound, "Blog not found")
		return
	}
	respondJSON(w, http.StatusOK, blog)
}

func (a *API) DeleteBlog(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid id")
		return
	}
	if err := a.store.DeleteBlog(r.Context(), id); errors.Is(err, storage.ErrNotFound) {
		respondMessage(w, http.StatusNotFound, "Blog not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
