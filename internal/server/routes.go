package server

import (
	"log"
	"net/http"
)

// HandleRoutes registers the spectator endpoints on mux.
func HandleRoutes(mux *http.ServeMux, hub *Hub) {
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		ServeWs(hub, w, r)
	})
	log.Println("Registered route: /ws")

	mux.HandleFunc("GET /api/match", func(w http.ResponseWriter, r *http.Request) {
		GetStandingsHandler(hub, w, r)
	})
	log.Println("Registered route: /api/match")
}

// GetStandingsHandler returns the latest standings message as JSON.
func GetStandingsHandler(hub *Hub, w http.ResponseWriter, r *http.Request) {
	standings := hub.Standings()
	if standings == nil {
		http.Error(w, "No standings yet", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(standings)
}
