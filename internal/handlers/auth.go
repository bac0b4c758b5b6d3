package handlers

import (
	"net/http"

	"github.com/vwolf/portfolio-api/internal/models"
)

// Login validates the submitted credentials and marks the session
// authenticated on success.
func (a *API) Login(w http.ResponseWriter, r *http.Request) {
	var creds models.LoginCredentials
	if err := a.decode(r, &creds); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if !a.creds.Validate(creds) {
		respondMessage(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	session, _ := a.sessions.Get(r, sessionName)
	session.Values["authenticated"] = true
	if err := session.Save(r, w); err != nil {
		a.log.Error("save session failed", "error", err)
		respondMessage(w, http.StatusInternalServerError, "Error logging in")
		return
	}
	respondMessage(w, http.StatusOK, "Login successful")
}

// Logout destroys the session.
func (a *API) Logout(w http.ResponseWriter, r *http.Request) {
	session, _ := a.sessions.Get(r, sessionName)
	session.Options.MaxAge = -1
	delete(session.Values, "authenticated")
	if err := session.Save(r, w); err != nil {
		a.log.Error("destroy session failed", "error", err)
		respondMessage(w, http.StatusInternalServerError, "Error logging out")
		return
	}
	respondMessage(w, http.StatusOK, "Logged out successfully")
}

// RequireAuth gates admin routes on an authenticated session. The
// handler body never runs for an anonymous caller.
func (a *API) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, _ := a.sessions.Get(r, sessionName)
		if ok, _ := session.Values["authenticated"].(bool); !ok {
			respondMessage(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}
