package catalog

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gosimple/slug"
)

const defaultBaseURL = "https://api.themoviedb.org/3"

type Movie struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	PosterPath  string  `json:"poster_path"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
	Slug        string  `json:"slug,omitempty"`
}

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Suggestion is the trimmed shape returned to the scheduling UI.
type Suggestion struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
}

// Service is the catalog lookup surface the handlers depend on.
type Service interface {
	// SearchMovie resolves a title to the first search hit, or nil when
	// nothing matches. A non-nil error means the upstream call failed.
	SearchMovie(title string) (*Movie, error)
	Suggestions(query string) ([]Suggestion, error)
	Popular() ([]Movie, error)
	Upcoming() ([]Movie, error)
	Genres() ([]Genre, error)
	MoviesByGenre(genreID int) ([]Movie, error)
}

// Client talks to the TMDB v3 API.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientWithBaseURL is used by tests to point the client at a stub server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

func (c *Client) SearchMovie(title string) (*Movie, error) {
	if title == "" {
		return nil, fmt.Errorf("movie title is required for search")
	}
	var result struct {
		Results []Movie `json:"results"`
	}
	params := url.Values{"query": {title}, "page": {"1"}}
	if err := c.get("/search/movie", params, &result); err != nil {
		return nil, err
	}
	if len(result.Results) == 0 {
		return nil, nil
	}
	movie := result.Results[0]
	movie.Slug = slug.Make(movie.Title)
	return &movie, nil
}

func (c *Client) Suggestions(query string) ([]Suggestion, error) {
	if query == "" {
		return []Suggestion{}, nil
	}
	var result struct {
		Results []Movie `json:"results"`
	}
	params := url.Values{"query": {query}, "page": {"1"}}
	if err := c.get("/search/movie", params, &result); err != nil {
		return nil, err
	}
	suggestions := []Suggestion{}
	for _, m := range result.Results {
		suggestions = append(suggestions, Suggestion{
			ID:          m.ID,
			Title:       m.Title,
			ReleaseDate: m.ReleaseDate,
		})
		if len(suggestions) == 7 {
			break
		}
	}
	return suggestions, nil
}

func (c *Client) Popular() ([]Movie, error) {
	return c.movieList("/movie/popular", url.Values{"page": {"1"}})
}

func (c *Client) Upcoming() ([]Movie, error) {
	return c.movieList("/movie/upcoming", url.Values{"page": {"1"}})
}

func (c *Client) Genres() ([]Genre, error) {
	var result struct {
		Genres []Genre `json:"genres"`
	}
	if err := c.get("/genre/movie/list", url.Values{}, &result); err != nil {
		return nil, err
	}
	return result.Genres, nil
}

func (c *Client) MoviesByGenre(genreID int) ([]Movie, error) {
	params := url.Values{
		"sort_by":     {"popularity.desc"},
		"page":        {"1"},
		"with_genres": {strconv.Itoa(genreID)},
	}
	return c.movieList("/discover/movie", params)
}

func (c *Client) movieList(path string, params url.Values) ([]Movie, error) {
	var result struct {
		Results []Movie `json:"results"`
	}
	if err := c.get(path, params, &result); err != nil {
		return nil, err
	}
	return result.Results, nil
}

func (c *Client) get(path string, params url.Values, out any) error {
	params.Set("api_key", c.apiKey)
	params.Set("language", "en-US")

	resp, err := c.http.Get(c.baseURL + path + "?" + params.Encode())
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tmdb request %s failed with status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
