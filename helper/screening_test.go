package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/steellight541/cinema-app/catalog"
	"github.com/steellight541/cinema-app/model"
)

func TestNextScreeningID(t *testing.T) {
	assert.Equal(t, 1, NextScreeningID(nil))
	assert.Equal(t, 8, NextScreeningID([]model.Screening{{ID: 3}, {ID: 7}, {ID: 2}}))
	// ids are not reused after deletion: a gap does not lower the next id
	assert.Equal(t, 10, NextScreeningID([]model.Screening{{ID: 9}, {ID: 1}}))
}

func TestFindScreening(t *testing.T) {
	screenings := []model.Screening{{ID: 1}, {ID: 4}}
	assert.Equal(t, 1, FindScreening(screenings, 4))
	assert.Equal(t, -1, FindScreening(screenings, 2))
}

func TestFilterScreeningsByDate(t *testing.T) {
	screenings := []model.Screening{
		{ID: 1, Date: "2025-05-17T19:00:00Z"},
		{ID: 2, Date: "2025-05-17T21:30:00Z"},
		{ID: 3, Date: "2025-05-18T19:00:00Z"},
	}
	filtered := FilterScreeningsByDate(screenings, "2025-05-17")
	assert.Len(t, filtered, 2)
	assert.Equal(t, 1, filtered[0].ID)
	assert.Equal(t, 2, filtered[1].ID)
	assert.Empty(t, FilterScreeningsByDate(screenings, "2025-05-19"))
}

func TestHasMovieReservation(t *testing.T) {
	screenings := []model.Screening{
		{ID: 1, MovieID: 100},
		{ID: 2, MovieID: 100}, // other showing of the same movie
		{ID: 3, MovieID: 200},
	}

	assert.False(t, HasMovieReservation(screenings, nil, 100))
	assert.True(t, HasMovieReservation(screenings, []int{1}, 100))
	// the rule keys on the movie, not on the showing
	assert.True(t, HasMovieReservation(screenings, []int{2}, 100))
	assert.False(t, HasMovieReservation(screenings, []int{3}, 100))
	// a booked id whose screening has been deleted is ignored
	assert.False(t, HasMovieReservation(screenings, []int{99}, 100))
}

func TestApplyMovie(t *testing.T) {
	s := model.Screening{ID: 1, Date: "2025-06-01T20:00:00Z", TicketsAvailable: 5}
	ApplyMovie(&s, &catalog.Movie{ID: 438631, Title: "Dune", PosterPath: "/dune.jpg", Slug: "dune"})

	assert.Equal(t, 438631, s.MovieID)
	assert.Equal(t, "Dune", s.MovieTitle)
	assert.Equal(t, "/dune.jpg", s.MoviePosterPath)
	assert.Equal(t, "dune", s.MovieSlug)
	assert.Equal(t, 5, s.TicketsAvailable)
}
