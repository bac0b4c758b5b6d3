package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vwolf/portfolio-api/internal/auth"
	"github.com/vwolf/portfolio-api/internal/models"
	"github.com/vwolf/portfolio-api/internal/storage"
)

const (
	testUser = "vwolf"
	testPass = "prueba"
)

func newTestServer(t *testing.T) (*httptest.Server, *storage.Store) {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := storage.New(t.TempDir(), log)
	require.NoError(t, err)

	api := New(store, auth.NewStatic(testUser, testPass), sessions.NewCookieStore([]byte("test-secret")), log)
	r := chi.NewRouter()
	r.Mount("/api", api.Routes())

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, store
}

func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

func doJSON(t *testing.T, client *http.Client, method, url string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := client.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func login(t *testing.T, client *http.Client, baseURL string) {
	t.Helper()
	resp := doJSON(t, client, http.MethodPost, baseURL+"/api/login",
		models.LoginCredentials{Username: testUser, Password: testPass})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	srv, _ := newTestServer(t)
	client := newClient(t)

	resp := doJSON(t, client, http.MethodPost, srv.URL+"/api/login",
		models.LoginCredentials{Username: testUser, Password: "wrong"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginRejectsMalformedBody(t *testing.T) {
	srv, _ := newTestServer(t)
	client := newClient(t)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/login", bytes.NewReader([]byte("{broken")))
	require.NoError(t, err)
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLogoutEndsSession(t *testing.T) {
	srv, _ := newTestServer(t)
	client := newClient(t)
	login(t, client, srv.URL)

	resp := doJSON(t, client, http.MethodPost, srv.URL+"/api/logout", nil)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, client, http.MethodGet, srv.URL+"/api/admin/contacts", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminGateBlocksAnonymousMutations(t *testing.T) {
	srv, store := newTestServer(t)
	client := newClient(t)

	resp := doJSON(t, client, http.MethodPost, srv.URL+"/api/admin/projects", models.InsertProject{
		Title:       "sneaky",
		Description: "should not exist",
		Image:       "https://example.com/x.png",
		Category:    "web",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Empty(t, store.ListProjects(context.Background()))
}

func TestContactFlow(t *testing.T) {
	srv, _ := newTestServer(t)
	client := newClient(t)

	resp := doJSON(t, client, http.MethodPost, srv.URL+"/api/contact", models.InsertContact{
		Name:    "Ana",
		Email:   "ana@x.com",
		Message: "Hello there, testing.",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	created := decodeBody[models.Contact](t, resp)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	// unauthenticated read of the inbox is rejected
	resp = doJSON(t, client, http.MethodGet, srv.URL+"/api/admin/contacts", nil)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	login(t, client, srv.URL)
	resp = doJSON(t, client, http.MethodGet, srv.URL+"/api/admin/contacts", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	contacts := decodeBody[[]models.Contact](t, resp)
	require.NotEmpty(t, contacts)
	assert.Equal(t, "Ana", contacts[0].Name)
}

func TestContactValidation(t *testing.T) {
	srv, _ := newTestServer(t)
	client := newClient(t)

	tests := []struct {
		name string
		in   models.InsertContact
	}{
		{"bad email", models.InsertContact{Name: "A", Email: "not-an-email", Message: "long enough message"}},
		{"short message", models.InsertContact{Name: "A", Email: "a@x.com", Message: "short"}},
		{"missing name", models.InsertContact{Email: "a@x.com", Message: "long enough message"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, client, http.MethodPost, srv.URL+"/api/contact", tt.in)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestProjectCRUD(t *testing.T) {
	srv, _ := newTestServer(t)
	client := newClient(t)
	login(t, client, srv.URL)

	in := models.InsertProject{
		Title:       "Portfolio",
		Description: "this site",
		Image:       "https://example.com/p.png",
		Tags:        []string{"go"},
		Category:    "web",
	}
	resp := doJSON(t, client, http.MethodPost, srv.URL+"/api/admin/projects", in)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody[models.Project](t, resp)

	// public read
	resp = doJSON(t, client, http.MethodGet, srv.URL+"/api/projects/"+itoa(created.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeBody[models.Project](t, resp)
	assert.Equal(t, created.Title, got.Title)

	in.Title = "Portfolio v2"
	resp = doJSON(t, client, http.MethodPut, srv.URL+"/api/admin/projects/"+itoa(created.ID), in)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeBody[models.Project](t, resp)
	assert.Equal(t, "Portfolio v2", updated.Title)
	assert.Equal(t, created.ID, updated.ID)

	resp = doJSON(t, client, http.MethodDelete, srv.URL+"/api/admin/projects/"+itoa(created.ID), nil)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, client, http.MethodGet, srv.URL+"/api/projects/"+itoa(created.ID), nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateAbsentProjectIs404(t *testing.T) {
	srv, _ := newTestServer(t)
	client := newClient(t)
	login(t, client, srv.URL)

	resp := doJSON(t, client, http.MethodPut, srv.URL+"/api/admin/projects/999", models.InsertProject{
		Title:       "ghost",
		Description: "none",
		Image:       "https://example.com/g.png",
		Category:    "web",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetProjectInvalidID(t *testing.T) {
	srv, _ := newTestServer(t)
	client := newClient(t)

	resp := doJSON(t, client, http.MethodGet, srv.URL+"/api/projects/abc", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTechnologyTypeEnum(t *testing.T) {
	srv, _ := newTestServer(t)
	client := newClient(t)
	login(t, client, srv.URL)

	resp := doJSON(t, client, http.MethodPost, srv.URL+"/api/admin/technologies", models.InsertTechnology{
		Name: "Postgres",
		Type: "database", // not in the enum
		Icon: "postgres",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, client, http.MethodPost, srv.URL+"/api/admin/technologies", models.InsertTechnology{
		Name: "Postgres",
		Type: "service",
		Icon: "postgres",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestBlogImageMustBeURL(t *testing.T) {
	srv, _ := newTestServer(t)
	client := newClient(t)
	login(t, client, srv.URL)

	resp := doJSON(t, client, http.MethodPost, srv.URL+"/api/admin/blogs", models.InsertBlog{
		Title:   "Post",
		Content: "body",
		Image:   "not a url",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSiteContentFlow(t *testing.T) {
	srv, _ := newTestServer(t)
	client := newClient(t)

	// mutation is gated
	resp := doJSON(t, client, http.MethodPut, srv.URL+"/api/admin/site-content/about.title",
		map[string]string{"value": "New Title"})
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	login(t, client, srv.URL)
	resp = doJSON(t, client, http.MethodPut, srv.URL+"/api/admin/site-content/about.title",
		map[string]string{"value": "New Title"})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// the new value is publicly visible
	resp = doJSON(t, client, http.MethodGet, srv.URL+"/api/site-content/about.title", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody[map[string]string](t, resp)
	assert.Equal(t, "New Title", body["value"])
}

func TestSiteContentUnknownKey(t *testing.T) {
	srv, _ := newTestServer(t)
	client := newClient(t)

	resp := doJSON(t, client, http.MethodGet, srv.URL+"/api/site-content/no.such.key", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody[map[string]string](t, resp)
	assert.Equal(t, "", body["value"])
}

func TestTimelineCRUD(t *testing.T) {
	srv, _ := newTestServer(t)
	client := newClient(t)
	login(t, client, srv.URL)

	resp := doJSON(t, client, http.MethodPost, srv.URL+"/api/admin/timeline", models.InsertTimelineItem{
		Type:         "work",
		Title:        "Engineer",
		Organization: "Acme",
		StartDate:    "2023-01",
		Description:  "building",
		Current:      true,
		SortOrder:    1,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody[models.TimelineItem](t, resp)
	assert.Empty(t, created.EndDate)

	resp = doJSON(t, client, http.MethodGet, srv.URL+"/api/timeline", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	items := decodeBody[[]models.TimelineItem](t, resp)
	require.Len(t, items, 1)

	resp = doJSON(t, client, http.MethodDelete, srv.URL+"/api/admin/timeline/"+itoa(created.ID), nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func itoa(id int) string {
	return strconv.Itoa(id)
}
