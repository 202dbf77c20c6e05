package handler

import (
	"github.com/gofiber/contrib/websocket"

	"github.com/steellight541/cinema-app/realtime"
	"github.com/steellight541/cinema-app/utils"
)

// ScreeningsWebsocket attaches a client to the fanout hub. The client gets
// the current screening list immediately, then every screenings_updated
// event until it disconnects or a write to it fails.
func ScreeningsWebsocket(c *websocket.Conn) {
	// storeMu is held from the snapshot load through registration. Mutations
	// broadcast while holding storeMu, so nothing can commit between the state
	// this client sees first and the point it starts receiving events.
	storeMu.Lock()
	screenings, err := db.LoadScreenings()
	if err != nil {
		storeMu.Unlock()
		utils.Logger.Errorw("failed to load screenings for new subscriber", "error", err)
		c.Close()
		return
	}
	err = hub.RegisterWithSnapshot(c, realtime.Event{
		Type:    realtime.EventScreeningsUpdated,
		Payload: screenings,
	})
	storeMu.Unlock()
	if err != nil {
		c.Close()
		return
	}
	defer func() {
		hub.Unregister(c)
		c.Close()
	}()

	// block until the peer goes away; inbound messages are ignored
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}
