package live

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
)

// Message types pushed to subscribed clients. The payload is always the
// full updated projection; clients re-render from it instead of chasing
// individual field changes.
const (
	TypeTournamentUpdated = "TOURNAMENT_UPDATED"
	TypeStandingsUpdated  = "STANDINGS_UPDATED"
	TypeRankingUpdated    = "RANKING_UPDATED"
)

// Message is the envelope sent over the websocket.
type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
	Date    string      `json:"date,omitempty"`
}

// Hub fans updated projections out to websocket clients. Clients subscribe
// to the room of one tournament date; ranking updates go to every room.
type Hub struct {
	register   chan *Client
	unregister chan *Client

	rooms  map[string]map[*Client]bool
	mu     sync.RWMutex
	logger *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		rooms:      make(map[string]map[*Client]bool),
		logger:     logger,
	}
}

// Run owns the room membership maps until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return ctx.Err()

		case client := <-h.register:
			h.mu.Lock()
			if _, ok := h.rooms[client.room]; !ok {
				h.rooms[client.room] = make(map[*Client]bool)
			}
			h.rooms[client.room][client] = true
			h.logger.Debug("live client registered",
				slog.String("room", client.room),
				slog.Int("room_size", len(h.rooms[client.room])))
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.rooms[client.room]; ok {
				if clients[client] {
					client.closeSend()
					delete(clients, client)
					if len(clients) == 0 {
						delete(h.rooms, client.room)
					}
				}
			}
			h.mu.Unlock()
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for room, clients := range h.rooms {
		for client := range clients {
			client.closeSend()
		}
		delete(h.rooms, room)
	}
}

// BroadcastToDate sends a message to every client subscribed to the date's
// room. A slow client drops the message rather than blocking the caller.
func (h *Hub) BroadcastToDate(date string, msg Message) {
	msg.Date = date
	raw, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("failed to marshal live message", slog.Any("error", err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	h.send(h.rooms[date], raw)
}

// BroadcastAll sends a message to every connected client, regardless of
// room. Used for annual ranking updates, which every page shows.
func (h *Hub) BroadcastAll(msg Message) {
	raw, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("failed to marshal live message", slog.Any("error", err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, clients := range h.rooms {
		h.send(clients, raw)
	}
}

func (h *Hub) send(clients map[*Client]bool, raw []byte) {
	for client := range clients {
		client.mu.Lock()
		if !client.closed {
			select {
			case client.send <- raw:
			default:
				h.logger.Warn("live client send buffer full, dropping message",
					slog.String("room", client.room))
			}
		}
		client.mu.Unlock()
	}
}
