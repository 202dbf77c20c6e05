package handler_test

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steellight541/cinema-app/handler"
	"github.com/steellight541/cinema-app/model"
)

func TestPurgePastScreenings(t *testing.T) {
	app, rec := newTestApp(t, duneCatalog)

	past := time.Now().Add(-48 * time.Hour).UTC().Format(time.RFC3339)
	future := time.Now().Add(48 * time.Hour).UTC().Format(time.RFC3339)
	createScreening(t, app, "Dune", past, 10)
	kept := createScreening(t, app, "Holiday", future, 10)

	handler.PurgePastScreenings()

	resp := doJSON(t, app, fiber.MethodGet, "/api/screenings", managerToken(t), nil)
	var listed []model.Screening
	decode(t, resp, &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, kept.ID, listed[0].ID)

	event := rec.last(t)
	payload := event.Payload.([]model.Screening)
	require.Len(t, payload, 1)
	assert.Equal(t, kept.ID, payload[0].ID)
}

func TestPurgeLeavesFreshStoreAlone(t *testing.T) {
	app, rec := newTestApp(t, duneCatalog)

	future := time.Now().Add(48 * time.Hour).UTC().Format(time.RFC3339)
	createScreening(t, app, "Dune", future, 10)
	before := len(rec.all())

	handler.PurgePastScreenings()

	// nothing removed, nothing broadcast
	assert.Len(t, rec.all(), before)
}
