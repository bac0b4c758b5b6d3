// Package storage owns every entity collection of the portfolio site.
// Collections live in memory and are mirrored to one JSON file each in
// the data directory; every mutation rewrites all files.
//
// A single RWMutex guards the whole read-modify-write-flush cycle, so
// concurrent mutations cannot interleave between the map update and the
// disk write. Flush failures are logged and swallowed: the in-memory
// state stays authoritative until the next successful write.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/vwolf/portfolio-api/internal/models"
)

// ErrNotFound indicates that an update or delete targeted an id that is
// not present in its collection.
var ErrNotFound = errors.New("storage: not found")

const (
	fileContacts     = "contacts.json"
	fileVisits       = "visits.json"
	fileProjects     = "projects.json"
	fileTechnologies = "technologies.json"
	fileBlogs        = "blogs.json"
	fileSiteContent  = "site-content.json"
	fileTimeline     = "timeline.json"
)

// Store is the in-memory, file-backed owner of all entity collections.
type Store struct {
	mu      sync.RWMutex
	dataDir string
	log     *slog.Logger

	contacts     map[int]models.Contact
	visits       map[int]models.Visit
	projects     map[int]models.Project
	technologies map[int]models.Technology
	blogs        map[int]models.Blog
	siteContent  map[string]models.SiteContent
	timeline     map[int]models.TimelineItem

	nextContactID    int
	nextVisitID      int
	nextProjectID    int
	nextTechnologyID int
	nextBlogID       int
	nextTimelineID   int
}

// New loads every collection from dataDir, creating the directory if
// needed. Missing or unparsable files degrade to empty collections;
// a missing site-content file is seeded with the default set and
// written back immediately.
func New(dataDir string, log *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	s := &Store{
		dataDir:      dataDir,
		log:          log,
		contacts:     make(map[int]models.Contact),
		visits:       make(map[int]models.Visit),
		projects:     make(map[int]models.Project),
		technologies: make(map[int]models.Technology),
		blogs:        make(map[int]models.Blog),
		siteContent:  make(map[string]models.SiteContent),
		timeline:     make(map[int]models.TimelineItem),
	}
	s.load()
	return s, nil
}

func (s *Store) load() {
	s.nextContactID = loadCollection(s, fileContacts, s.contacts, func(c models.Contact) int { return c.ID })
	s.nextVisitID = loadCollection(s, fileVisits, s.visits, func(v models.Visit) int { return v.ID })
	s.nextProjectID = loadCollection(s, fileProjects, s.projects, func(p models.Project) int { return p.ID })
	s.nextTechnologyID = loadCollection(s, fileTechnologies, s.technologies, func(t models.Technology) int { return t.ID })
	s.nextBlogID = loadCollection(s, fileBlogs, s.blogs, func(b models.Blog) int { return b.ID })
	s.nextTimelineID = loadCollection(s, fileTimeline, s.timeline, func(t models.TimelineItem) int { return t.ID })

	var content []models.SiteContent
	if err := s.readFile(fileSiteContent, &content); err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("site content file unreadable, seeding defaults", "file", fileSiteContent, "error", err)
		}
		for _, c := range DefaultSiteContent {
			s.siteContent[c.Key] = c
		}
		s.flushLocked()
		return
	}
	for _, c := range content {
		s.siteContent[c.Key] = c
	}
}

// loadCollection parses one collection file into dst and returns the id
// counter seeded to max(existing ids)+1. Missing and corrupt files both
// leave the collection empty.
func loadCollection[T any](s *Store, name string, dst map[int]T, id func(T) int) int {
	next := 1
	var records []T
	if err := s.readFile(name, &records); err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("collection file unreadable, starting empty", "file", name, "error", err)
		}
		return next
	}
	for _, r := range records {
		dst[id(r)] = r
		if id(r) >= next {
			next = id(r) + 1
		}
	}
	return next
}

func (s *Store) readFile(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.dataDir, name))
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// Flush rewrites every collection file. It is called internally after
// each mutation and once more on graceful shutdown.
func (s *Store) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flushLocked()
}

func (s *Store) flushLocked() {
	s.writeFile(fileContacts, valuesByID(s.contacts, func(c models.Contact) int { return c.ID }))
	s.writeFile(fileVisits, valuesByID(s.visits, func(v models.Visit) int { return v.ID }))
	s.writeFile(fileProjects, valuesByID(s.projects, func(p models.Project) int { return p.ID }))
	s.writeFile(fileTechnologies, valuesByID(s.technologies, func(t models.Technology) int { return t.ID }))
	s.writeFile(fileBlogs, valuesByID(s.blogs, func(b models.Blog) int { return b.ID }))
	s.writeFile(fileTimeline, valuesByID(s.timeline, func(t models.TimelineItem) int { return t.ID }))

	content := make([]models.SiteContent, 0, len(s.siteContent))
	for _, c := range s.siteContent {
		content = append(content, c)
	}
	sort.Slice(content, func(i, j int) bool { return content[i].Key < content[j].Key })
	s.writeFile(fileSiteContent, content)
}

// writeFile serializes one collection. Errors are logged and swallowed:
// the request that triggered the flush has already mutated memory and
// must not fail because the disk copy is stale.
func (s *Store) writeFile(name string, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		s.log.Error("marshal collection failed", "file", name, "error", err)
		return
	}
	if err := os.WriteFile(filepath.Join(s.dataDir, name), data, 0o644); err != nil {
		s.log.Error("write collection failed", "file", name, "error", err)
	}
}

func valuesByID[T any](m map[int]T, id func(T) int) []T {
	out := make([]T, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return id(out[i]) < id(out[j]) })
	return out
}

// newestFirst orders a collection most-recent-first; ids break ties so
// records created within the same instant keep a stable order.
func newestFirst[T any](m map[int]T, at func(T) time.Time, id func(T) int) []T {
	out := make([]T, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		ti, tj := at(out[i]), at(out[j])
		if ti.Equal(tj) {
			return id(out[i]) > id(out[j])
		}
		return ti.After(tj)
	})
	return out
}

// --- contacts ---

// CreateContact stores a contact-form submission. Contacts are
// immutable once created.
func (s *Store) CreateContact(_ context.Context, in models.InsertContact) models.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()

	contact := models.Contact{
		ID:        s.nextContactID,
		Name:      in.Name,
		Email:     in.Email,
		Message:   in.Message,
		CreatedAt: time.Now(),
	}
	s.nextContactID++
	s.contacts[contact.ID] = contact
	s.flushLocked()
	return contact
}

// ListContacts returns all contacts, most recent first.
func (s *Store) ListContacts(_ context.Context) []models.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return newestFirst(s.contacts, func(c models.Contact) time.Time { return c.CreatedAt }, func(c models.Contact) int { return c.ID })
}

// --- visits ---

// TrackVisit appends a visit record for a public page view.
func (s *Store) TrackVisit(_ context.Context, page string) models.Visit {
	s.mu.Lock()
	defer s.mu.Unlock()

	visit := models.Visit{
		ID:        s.nextVisitID,
		Page:      page,
		Timestamp: time.Now(),
	}
	s.nextVisitID++
	s.visits[visit.ID] = visit
	s.flushLocked()
	return visit
}

// ListVisits returns all visits, most recent first.
func (s *Store) ListVisits(_ context.Context) []models.Visit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return newestFirst(s.visits, func(v models.Visit) time.Time { return v.Timestamp }, func(v models.Visit) int { return v.ID })
}

// --- projects ---

func (s *Store) CreateProject(_ context.Context, in models.InsertProject) models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	project := models.Project{
		ID:          s.nextProjectID,
		Title:       in.Title,
		Description: in.Description,
		Image:       in.Image,
		Tags:        in.Tags,
		Category:    in.Category,
		CreatedAt:   time.Now(),
	}
	s.nextProjectID++
	s.projects[project.ID] = project
	s.flushLocked()
	return project
}

// UpdateProject replaces every field except id and createdAt.
func (s *Store) UpdateProject(_ context.Context, id int, in models.InsertProject) (models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.projects[id]
	if !ok {
		return models.Project{}, ErrNotFound
	}
	project := models.Project{
		ID:          existing.ID,
		Title:       in.Title,
		Description: in.Description,
		Image:       in.Image,
		Tags:        in.Tags,
		Category:    in.Category,
		CreatedAt:   existing.CreatedAt,
	}
	s.projects[id] = project
	s.flushLocked()
	return project, nil
}

func (s *Store) DeleteProject(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[id]; !ok {
		return ErrNotFound
	}
	delete(s.projects, id)
	s.flushLocked()
	return nil
}

func (s *Store) ListProjects(_ context.Context) []models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return newestFirst(s.projects, func(p models.Project) time.Time { return p.CreatedAt }, func(p models.Project) int { return p.ID })
}

// GetProject returns nil when the id is absent.
func (s *Store) GetProject(_ context.Context, id int) *models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	project, ok := s.projects[id]
	if !ok {
		return nil
	}
	return &project
}

// --- technologies ---

func (s *Store) CreateTechnology(_ context.Context, in models.InsertTechnology) models.Technology {
	s.mu.Lock()
	defer s.mu.Unlock()

	tech := models.Technology{
		ID:          s.nextTechnologyID,
		Name:        in.Name,
		Type:        in.Type,
		Icon:        in.Icon,
		Description: in.Description,
		CreatedAt:   time.Now(),
	}
	s.nextTechnologyID++
	s.technologies[tech.ID] = tech
	s.flushLocked()
	return tech
}

func (s *Store) UpdateTechnology(_ context.Context, id int, in models.InsertTechnology) (models.Technology, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.technologies[id]
	if !ok {
		return models.Technology{}, ErrNotFound
	}
	tech := models.Technology{
		ID:          existing.ID,
		Name:        in.Name,
		Type:        in.Type,
		Icon:        in.Icon,
		Description: in.Description,
		CreatedAt:   existing.CreatedAt,
	}
	s.technologies[id] = tech
	s.flushLocked()
	return tech, nil
}

func (s *Store) DeleteTechnology(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.technologies[id]; !ok {
		return ErrNotFound
	}
	delete(s.technologies, id)
	s.flushLocked()
	return nil
}

func (s *Store) ListTechnologies(_ context.Context) []models.Technology {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return newestFirst(s.technologies, func(t models.Technology) time.Time { return t.CreatedAt }, func(t models.Technology) int { return t.ID })
}

func (s *Store) GetTechnology(_ context.Context, id int) *models.Technology {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tech, ok := s.technologies[id]
	if !ok {
		return nil
	}
	return &tech
}

// --- blogs ---

func (s *Store) CreateBlog(_ context.Context, in models.InsertBlog) models.Blog {
	s.mu.Lock()
	defer s.mu.Unlock()

	blog := models.Blog{
		ID:        s.nextBlogID,
		Title:     in.Title,
		Content:   in.Content,
		Image:     in.Image,
		Tags:      in.Tags,
		Published: in.Published,
		CreatedAt: time.Now(),
	}
	s.nextBlogID++
	s.blogs[blog.ID] = blog
	s.flushLocked()
	return blog
}

func (s *Store) UpdateBlog(_ context.Context, id int, in models.InsertBlog) (models.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.blogs[id]
	if !ok {
		return models.Blog{}, ErrNotFound
	}
	blog := models.Blog{
		ID:        existing.ID,
		Title:     in.Title,
		Content:   in.Content,
		Image:     in.Image,
		Tags:      in.Tags,
		Published: in.Published,
		CreatedAt: existing.CreatedAt,
	}
	s.blogs[id] = blog
	s.flushLocked()
	return blog, nil
}

func (s *Store) DeleteBlog(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.blogs[id]; !ok {
		return ErrNotFound
	}
	delete(s.blogs, id)
	s.flushLocked()
	return nil
}

// ListBlogs returns every blog, drafts included; the public client
// filters on published itself.
func (s *Store) ListBlogs(_ context.Context) []models.Blog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return newestFirst(s.blogs, func(b models.Blog) time.Time { return b.CreatedAt }, func(b models.Blog) int { return b.ID })
}

// --- timeline ---

func (s *Store) CreateTimelineItem(_ context.Context, in models.InsertTimelineItem) models.TimelineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := models.TimelineItem{
		ID:           s.nextTimelineID,
		Type:         in.Type,
		Title:        in.Title,
		Organization: in.Organization,
		Location:     in.Location,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		Description:  in.Description,
		Technologies: in.Technologies,
		Current:      in.Current,
		SortOrder:    in.SortOrder,
		CreatedAt:    time.Now(),
	}
	// An ongoing position has no end date.
	if item.Current {
		item.EndDate = ""
	}
	s.nextTimelineID++
	s.timeline[item.ID] = item
	s.flushLocked()
	return item
}

func (s *Store) UpdateTimelineItem(_ context.Context, id int, in models.InsertTimelineItem) (models.TimelineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.timeline[id]
	if !ok {
		return models.TimelineItem{}, ErrNotFound
	}
	item := models.TimelineItem{
		ID:           existing.ID,
		Type:         in.Type,
		Title:        in.Title,
		Organization: in.Organization,
		Location:     in.Location,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		Description:  in.Description,
		Technologies: in.Technologies,
		Current:      in.Current,
		SortOrder:    in.SortOrder,
		CreatedAt:    existing.CreatedAt,
	}
	if item.Current {
		item.EndDate = ""
	}
	s.timeline[id] = item
	s.flushLocked()
	return item, nil
}

func (s *Store) DeleteTimelineItem(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.timeline[id]; !ok {
		return ErrNotFound
	}
	delete(s.timeline, id)
	s.flushLocked()
	return nil
}

// ListTimelineItems returns the timeline ordered by sortOrder.
func (s *Store) ListTimelineItems(_ context.Context) []models.TimelineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.TimelineItem, 0, len(s.timeline))
	for _, item := range s.timeline {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder == out[j].SortOrder {
			return out[i].ID < out[j].ID
		}
		return out[i].SortOrder < out[j].SortOrder
	})
	return out
}

// --- site content ---

// UpsertSiteContent creates the key if absent, otherwise replaces its
// value. Calling it twice with the same pair is a no-op the second time
// apart from the flush.
func (s *Store) UpsertSiteContent(_ context.Context, key, value string) models.SiteContent {
	s.mu.Lock()
	defer s.mu.Unlock()

	content := models.SiteContent{Key: key, Value: value}
	s.siteContent[key] = content
	s.flushLocked()
	return content
}

// ListSiteContent returns every content record. Default keys missing
// from the live set (a persisted file predating a newly added default)
// are backfilled first, so the default set is always complete.
func (s *Store) ListSiteContent(_ context.Context) []models.SiteContent {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.backfillDefaultsLocked()
	out := make([]models.SiteContent, 0, len(s.siteContent))
	for _, c := range s.siteContent {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// GetSiteContent returns the value for key, the default value if the
// key is a default not yet in the live set, or "" for unknown keys.
func (s *Store) GetSiteContent(_ context.Context, key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.siteContent[key]; ok {
		return c.Value
	}
	for _, d := range DefaultSiteContent {
		if d.Key == key {
			s.siteContent[key] = d
			s.flushLocked()
			return d.Value
		}
	}
	return ""
}

func (s *Store) backfillDefaultsLocked() {
	added := false
	for _, d := range DefaultSiteContent {
		if _, ok := s.siteContent[d.Key]; !ok {
			s.siteContent[d.Key] = d
			added = true
		}
	}
	if added {
		s.flushLocked()
	}
}
