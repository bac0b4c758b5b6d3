package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type updateSiteContentRequest struct {
	Value string `json:"value"`
}

// ListSiteContent returns the full content map, defaults included.
func (a *API) ListSiteContent(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, a.store.ListSiteContent(r.Context()))
}

// GetSiteContent returns {"value": ...} for a single key. Unknown keys
// yield an empty value rather than a 404, so the client can render a
// blank instead of erroring.
func (a *API) GetSiteContent(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	value := a.store.GetSiteContent(r.Context(), key)
	respondJSON(w, http.StatusOK, map[string]string{"value": value})
}

// UpdateSiteContent upserts the value for the key in the URL.
func (a *API) UpdateSiteContent(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	var req updateSiteContentRequest
	if err := a.decode(r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid content data")
		return
	}
	respondJSON(w, http.StatusOK, a.store.UpsertSiteContent(r.Context(), key, req.Value))
}
