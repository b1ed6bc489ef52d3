package sse

import (
	"encoding/json"
	"log/slog"

	"github.com/starchase/starchase-go/internal/model"
)

// Broadcaster turns game events into SSE messages on the session's hub.
// Its HandleEvent method is wired as the game controller's event sink.
type Broadcaster struct {
	hubManager *HubManager
	logger     *slog.Logger
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hubManager *HubManager, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hubManager: hubManager,
		logger:     logger.With(slog.String("component", "sse-broadcaster")),
	}
}

// eventBody is the JSON shape clients receive for every game event
type eventBody struct {
	SessionID string `json:"session_id"`
	PlayerID  string `json:"player_id,omitempty"`
	Timestamp string `json:"timestamp"`
	Payload   any    `json:"payload,omitempty"`
}

// HandleEvent broadcasts a game event to the session's clients. Sessions
// with no hub (nobody watching) are skipped silently.
func (b *Broadcaster) HandleEvent(event model.Event) {
	hub := b.hubManager.GetHub(event.SessionID)
	if hub == nil {
		return
	}

	data, err := json.Marshal(eventBody{
		SessionID: string(event.SessionID),
		PlayerID:  string(event.PlayerID),
		Timestamp: event.Timestamp.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		Payload:   event.Payload,
	})
	if err != nil {
		b.logger.Error("sse failed to encode event",
			slog.String("event", string(event.Type)),
			slog.Any("error", err))
		return
	}

	hub.BroadcastEvent(string(event.Type), string(data))
}
