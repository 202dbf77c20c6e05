package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/steellight541/cinema-app/catalog"
	"github.com/steellight541/cinema-app/constants"
	"github.com/steellight541/cinema-app/handler"
	"github.com/steellight541/cinema-app/helper"
	"github.com/steellight541/cinema-app/model"
	"github.com/steellight541/cinema-app/realtime"
	"github.com/steellight541/cinema-app/router"
	"github.com/steellight541/cinema-app/store"
)

// stubCatalog resolves only the titles it was given.
type stubCatalog struct {
	movies map[string]catalog.Movie
	err    error
}

func (s *stubCatalog) SearchMovie(title string) (*catalog.Movie, error) {
	if s.err != nil {
		return nil, s.err
	}
	if m, ok := s.movies[title]; ok {
		return &m, nil
	}
	return nil, nil
}

func (s *stubCatalog) Suggestions(query string) ([]catalog.Suggestion, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []catalog.Suggestion{}, nil
}

func (s *stubCatalog) Popular() ([]catalog.Movie, error)  { return s.list() }
func (s *stubCatalog) Upcoming() ([]catalog.Movie, error) { return s.list() }

func (s *stubCatalog) Genres() ([]catalog.Genre, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []catalog.Genre{{ID: 28, Name: "Action"}}, nil
}

func (s *stubCatalog) MoviesByGenre(genreID int) ([]catalog.Movie, error) { return s.list() }

func (s *stubCatalog) list() ([]catalog.Movie, error) {
	if s.err != nil {
		return nil, s.err
	}
	movies := []catalog.Movie{}
	for _, m := range s.movies {
		movies = append(movies, m)
	}
	return movies, nil
}

var duneCatalog = &stubCatalog{movies: map[string]catalog.Movie{
	"Dune":    {ID: 438631, Title: "Dune", PosterPath: "/dune.jpg", Slug: "dune"},
	"Holiday": {ID: 9741, Title: "Holiday", PosterPath: "/holiday.jpg", Slug: "holiday"},
}}

// recorder captures broadcast events for assertions.
type recorder struct {
	mu     sync.Mutex
	events []realtime.Event
}

func (r *recorder) Broadcast(e realtime.Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

func (r *recorder) all() []realtime.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]realtime.Event{}, r.events...)
}

func (r *recorder) last(t *testing.T) realtime.Event {
	events := r.all()
	require.NotEmpty(t, events)
	return events[len(events)-1]
}

func newTestApp(t *testing.T, cat catalog.Service) (*fiber.App, *recorder) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DATA_DIR", t.TempDir())
	t.Setenv("SMTP_HOST", "")
	t.Setenv("SMTP_FROM", "")

	fs, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)

	rec := &recorder{}
	handler.Init(fs, cat, realtime.NewHub(), rec)

	app := fiber.New()
	router.SetupRoutes(app)
	return app, rec
}

func managerToken(t *testing.T) string {
	return tokenFor(t, 1, "manager", constants.ROLE_MANAGER)
}

func tokenFor(t *testing.T, id int, username, role string) string {
	token, err := helper.GenerateToken(model.User{ID: id, Username: username, Role: role})
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func createScreening(t *testing.T, app *fiber.App, title, date string, tickets int) model.Screening {
	resp := doJSON(t, app, fiber.MethodPost, "/api/screenings", managerToken(t), fiber.Map{
		"movieTitle":       title,
		"date":             date,
		"ticketsAvailable": tickets,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var created model.Screening
	decode(t, resp, &created)
	return created
}

var errCatalogDown = errors.New("catalog unreachable")
