package helper

import (
	"strings"

	"github.com/steellight541/cinema-app/catalog"
	"github.com/steellight541/cinema-app/model"
)

// NextScreeningID assigns max(existing ids) + 1, or 1 when the list is
// empty. Ids are never reused after deletion.
func NextScreeningID(screenings []model.Screening) int {
	max := 0
	for _, s := range screenings {
		if s.ID > max {
			max = s.ID
		}
	}
	return max + 1
}

// FindScreening returns the index of the screening with the given id, or -1.
func FindScreening(screenings []model.Screening, id int) int {
	for i := range screenings {
		if screenings[i].ID == id {
			return i
		}
	}
	return -1
}

// FilterScreeningsByDate keeps screenings whose ISO date string starts with
// date (YYYY-MM-DD). Deliberately a prefix match, not a timezone-aware range.
func FilterScreeningsByDate(screenings []model.Screening, date string) []model.Screening {
	filtered := []model.Screening{}
	for _, s := range screenings {
		if strings.HasPrefix(s.Date, date) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// HasMovieReservation reports whether any screening already booked by the
// user shows the given movie. The duplicate rule is keyed on the movie, so
// a different showtime of the same film still counts as a duplicate.
func HasMovieReservation(screenings []model.Screening, booked []int, movieID int) bool {
	for _, screeningID := range booked {
		idx := FindScreening(screenings, screeningID)
		if idx >= 0 && screenings[idx].MovieID == movieID {
			return true
		}
	}
	return false
}

// ApplyMovie overwrites a screening's denormalized movie snapshot.
func ApplyMovie(s *model.Screening, m *catalog.Movie) {
	s.MovieID = m.ID
	s.MovieTitle = m.Title
	s.MoviePosterPath = m.PosterPath
	s.MovieSlug = m.Slug
}
