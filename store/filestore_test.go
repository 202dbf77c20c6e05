package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steellight541/cinema-app/model"
)

func TestFileStoreLoadsEmptyCollections(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	screenings, err := fs.LoadScreenings()
	require.NoError(t, err)
	assert.Empty(t, screenings)

	reservations, err := fs.LoadReservations()
	require.NoError(t, err)
	assert.Empty(t, reservations)
}

func TestFileStoreScreeningsRoundTrip(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	in := []model.Screening{
		{ID: 1, MovieID: 653346, MovieTitle: "Kingdom of the Planet of the Apes", MoviePosterPath: "/gKkl37BQuKTanygYQG1pyYgLVgf.jpg", Date: "2025-05-20T19:00:00Z", InitialTicketsAvailable: 100, TicketsAvailable: 97},
		{ID: 2, MovieID: 438631, MovieTitle: "Dune", Date: "2025-06-01T20:00:00Z", InitialTicketsAvailable: 2, TicketsAvailable: 2},
	}
	require.NoError(t, fs.SaveScreenings(in))

	out, err := fs.LoadScreenings()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestFileStoreReservationsRoundTrip(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	in := map[string][]int{"1": {2, 5}, "7": {1}}
	require.NoError(t, fs.SaveReservations(in))

	out, err := fs.LoadReservations()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestFileStoreSaveReplacesSnapshot(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, fs.SaveScreenings([]model.Screening{{ID: 1}, {ID: 2}}))
	require.NoError(t, fs.SaveScreenings([]model.Screening{{ID: 3}}))

	out, err := fs.LoadScreenings()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 3, out[0].ID)
}
