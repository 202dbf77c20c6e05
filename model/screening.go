package model

// Screening is a scheduled showing of a movie with a ticket inventory.
// Movie fields are a denormalized snapshot of catalog data taken at
// create/update time; they are never re-validated against the catalog.
// Date keeps the submitted ISO 8601 string so the list date filter can
// do a plain prefix match on it.
type Screening struct {
	ID                      int    `gorm:"primaryKey" json:"id"`
	MovieID                 int    `json:"movieId"`
	MovieTitle              string `json:"movieTitle"`
	MoviePosterPath         string `json:"moviePosterPath"`
	MovieSlug               string `json:"movieSlug"`
	Date                    string `json:"date"`
	InitialTicketsAvailable int    `json:"initialTicketsAvailable"`
	TicketsAvailable        int    `json:"ticketsAvailable"`
}

type CreateScreeningInput struct {
	MovieTitle       string `json:"movieTitle" validate:"required"`
	Date             string `json:"date" validate:"required"`
	TicketsAvailable *int   `json:"ticketsAvailable" validate:"required,gte=0"`
}

// UpdateScreeningInput carries optional fields; movieTitle wins over movieId
// when both are supplied. A new capacity resets the remaining count too.
type UpdateScreeningInput struct {
	MovieTitle       string `json:"movieTitle"`
	MovieID          *int   `json:"movieId"`
	Date             string `json:"date"`
	TicketsAvailable *int   `json:"ticketsAvailable" validate:"omitempty,gte=0"`
}
