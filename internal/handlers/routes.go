package handlers

import (
	"time"

	"github.com/go-chi/chi/v5"

	appmiddleware "github.com/vwolf/portfolio-api/internal/middleware"
)

// Routes builds the /api route tree: public reads, the contact form,
// session login, and the admin-gated mutation surface.
func (a *API) Routes() chi.Router {
	r := chi.NewRouter()

	// 5 login attempts per minute per IP
	loginLimiter := appmiddleware.NewRateLimiter(5, time.Minute)
	r.With(loginLimiter.Limit).Post("/login", a.Login)
	r.Post("/logout", a.Logout)
	r.Post("/contact", a.CreateContact)

	publicLimiter := appmiddleware.NewRateLimiter(30, time.Minute)
	r.Group(func(r chi.Router) {
		r.Use(publicLimiter.Limit)
		r.Get("/projects", a.ListProjects)
		r.Get("/projects/{id}", a.GetProject)
		r.Get("/technologies", a.ListTechnologies)
		r.Get("/technologies/{id}", a.GetTechnology)
		r.Get("/blogs", a.ListBlogs)
		r.Get("/timeline", a.ListTimelineItems)
		r.Get("/site-content", a.ListSiteContent)
		r.Get("/site-content/{key}", a.GetSiteContent)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(a.RequireAuth)

		r.Get("/contacts", a.ListContacts)
		r.Get("/visits", a.ListVisits)

		r.Post("/projects", a.CreateProject)
		r.Put("/projects/{id}", a.UpdateProject)
		r.Delete("/projects/{id}", a.DeleteProject)

		r.Post("/technologies", a.CreateTechnology)
		r.Put("/technologies/{id}", a.UpdateTechnology)
		r.Delete("/technologies/{id}", a.DeleteTechnology)

		r.Post("/blogs", a.CreateBlog)
		r.Put("/blogs/{id}", a.UpdateBlog)
		r.Delete("/blogs/{id}", a.DeleteBlog)

		r.Post("/timeline", a.CreateTimelineItem)
		r.Put("/timeline/{id}", a.UpdateTimelineItem)
		r.Delete("/timeline/{id}", a.DeleteTimelineItem)

		r.Put("/site-content/{key}", a.UpdateSiteContent)
	})

	return r
}
