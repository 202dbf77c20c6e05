package store

import "github.com/steellight541/cinema-app/model"

// Store reads and writes the two record collections as whole snapshots.
// Callers load a full snapshot, mutate it in memory and write it back;
// serialization of concurrent mutations is the caller's concern.
type Store interface {
	LoadScreenings() ([]model.Screening, error)
	SaveScreenings([]model.Screening) error
	// The reservation index maps a user id to the ordered list of
	// screening ids that user has booked.
	LoadReservations() (map[string][]int, error)
	SaveReservations(map[string][]int) error
}
