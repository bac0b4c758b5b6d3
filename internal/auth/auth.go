// Package auth abstracts the credential check behind an interface so
// the route layer never learns how credentials are stored. The site has
// exactly one administrator; hashed or multi-user storage can slot in
// later without touching the handlers.
package auth

import "github.com/vwolf/portfolio-api/internal/models"

// CredentialValidator reports whether a credential pair identifies the
// administrator.
type CredentialValidator interface {
	Validate(creds models.LoginCredentials) bool
}

// Static validates against a single fixed credential pair.
type Static struct {
	Username string
	Password string
}

func NewStatic(username, password string) *Static {
	return &Static{Username: username, Password: password}
}

func (s *Static) Validate(creds models.LoginCredentials) bool {
	return creds.Username == s.Username && creds.Password == s.Password
}
