package models

import "time"

// Contact is a message submitted through the public contact form.
type Contact struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// InsertContact is the contact-form payload.
type InsertContact struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,min=10"`
}

// Visit records a single public page view. Visits are append-only and
// written exclusively by the tracking middleware.
type Visit struct {
	ID        int       `json:"id"`
	Page      string    `json:"page"`
	Timestamp time.Time `json:"timestamp"`
}

type Project struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Tags        []string  `json:"tags"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
}

type InsertProject struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Image       string   `json:"image" validate:"required,url"`
	Tags        []string `json:"tags"`
	Category    string   `json:"category" validate:"required"`
}

// Technology is a tool or service shown in the stack section.
// Type is either "service" or "stack".
type Technology struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Icon        string    `json:"icon"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type InsertTechnology struct {
	Name        string `json:"name" validate:"required"`
	Type        string `json:"type" validate:"required,oneof=service stack"`
	Icon        string `json:"icon" validate:"required"`
	Description string `json:"description"`
}

type Blog struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Image     string    `json:"image"`
	Tags      []string  `json:"tags"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
}

type InsertBlog struct {
	Title     string   `json:"title" validate:"required"`
	Content   string   `json:"content" validate:"required"`
	Image     string   `json:"image" validate:"required,url"`
	Tags      []string `json:"tags"`
	Published bool     `json:"published"`
}

// SiteContent is a single editable text fragment, keyed by a
// dot-namespaced key such as "blog.title".
type SiteContent struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// TimelineItem is an entry on the career timeline. Type is one of
// "work", "education", "project" or "achievement". Dates are plain
// strings ("2023-05", "Jan 2023"); the store never interprets them.
type TimelineItem struct {
	ID           int       `json:"id"`
	Type         string    `json:"type"`
	Title        string    `json:"title"`
	Organization string    `json:"organization"`
	Location     string    `json:"location,omitempty"`
	StartDate    string    `json:"startDate"`
	EndDate      string    `json:"endDate,omitempty"`
	Description  string    `json:"description"`
	Technologies []string  `json:"technologies,omitempty"`
	Current      bool      `json:"current"`
	SortOrder    int       `json:"sortOrder"`
	CreatedAt    time.Time `json:"createdAt"`
}

type InsertTimelineItem struct {
	Type         string   `json:"type" validate:"required,oneof=work education project achievement"`
	Title        string   `json:"title" validate:"required"`
	Organization string   `json:"organization" validate:"required"`
	Location     string   `json:"location"`
	StartDate    string   `json:"startDate" validate:"required"`
	EndDate      string   `json:"endDate"`
	Description  string   `json:"description" validate:"required"`
	Technologies []string `json:"technologies"`
	Current      bool     `json:"current"`
	SortOrder    int      `json:"sortOrder"`
}

// LoginCredentials is the login payload. It is checked, never stored.
type LoginCredentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
