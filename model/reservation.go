package model

type ReserveInput struct {
	ScreeningID *int   `json:"screeningId" validate:"required"`
	Email       string `json:"email" validate:"required"`
}

// ReservationRecord is built at booking time and serialized into the
// QR proof of purchase. It is not persisted beyond the reservation index.
type ReservationRecord struct {
	ReservationRef  string `json:"reservationRef"`
	UserID          int    `json:"userId"`
	Username        string `json:"username"`
	ScreeningID     int    `json:"screeningId"`
	MovieID         int    `json:"movieId"`
	MovieTitle      string `json:"movieTitle"`
	MoviePosterPath string `json:"moviePosterPath"`
	ScreeningDate   string `json:"screeningDate"`
	ReservedAt      string `json:"reservedAt"`
}
