package handler

import (
	"sync"

	"github.com/steellight541/cinema-app/catalog"
	"github.com/steellight541/cinema-app/realtime"
	"github.com/steellight541/cinema-app/store"
	"github.com/steellight541/cinema-app/utils"
)

var (
	db     store.Store
	tmdb   catalog.Service
	hub    *realtime.Hub
	events realtime.Broadcaster

	// storeMu serializes every load-mutate-persist section over the store,
	// closing the read-modify-write race between concurrent mutations.
	// Catalog lookups run before it; QR and email delivery run after it.
	storeMu sync.Mutex
)

func Init(s store.Store, c catalog.Service, h *realtime.Hub, b realtime.Broadcaster) {
	db = s
	tmdb = c
	hub = h
	events = b
}

// broadcastScreenings publishes the current screening list. It re-reads the
// store so the payload reflects exactly what was persisted; callers hold
// storeMu, which also keeps events ordered with their mutations.
func broadcastScreenings() {
	screenings, err := db.LoadScreenings()
	if err != nil {
		utils.Logger.Errorw("failed to load screenings for broadcast", "error", err)
		return
	}
	events.Broadcast(realtime.Event{
		Type:    realtime.EventScreeningsUpdated,
		Payload: screenings,
	})
}
