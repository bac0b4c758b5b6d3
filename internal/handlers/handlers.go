// Package handlers maps HTTP verbs onto store operations. Handlers
// validate and short-circuit before touching the store, so a rejected
// request never leaves a partial mutation behind.
package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/sessions"

	"github.com/vwolf/portfolio-api/internal/auth"
	"github.com/vwolf/portfolio-api/internal/storage"
)

const sessionName = "portfolio_session"

// API bundles everything a handler needs: the store, the credential
// check, the cookie session store and the shared struct validator.
type API struct {
	store    *storage.Store
	creds    auth.CredentialValidator
	sessions sessions.Store
	validate *validator.Validate
	log      *slog.Logger
}

func New(store *storage.Store, creds auth.CredentialValidator, sessionStore sessions.Store, log *slog.Logger) *API {
	return &API{
		store:    store,
		creds:    creds,
		sessions: sessionStore,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      log,
	}
}

// decode unmarshals the request body into v and runs the declarative
// validation rules from its struct tags.
func (a *API) decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	if err := a.validate.Struct(v); err != nil {
		return fmt.Errorf("validate body: %w", err)
	}
	return nil
}

// urlID parses the {id} route parameter.
func urlID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}

func Health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
