package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vwolf/portfolio-api/internal/models"
)

// VisitRecorder is the slice of the store the tracker needs.
type VisitRecorder interface {
	TrackVisit(ctx context.Context, page string) models.Visit
}

// TrackVisits records every public page view: GET requests outside the
// API (and the health check). Fire-and-forget — no deduplication, no
// bot filtering, and the request proceeds regardless.
func TrackVisits(recorder VisitRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet &&
				!strings.HasPrefix(r.URL.Path, "/api") &&
				r.URL.Path != "/health" {
				recorder.TrackVisit(r.Context(), r.URL.Path)
			}
			next.ServeHTTP(w, r)
		})
	}
}
