// Package ws pushes live fight rosters to browsers over websockets
package ws

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/KirkDiggler/fight-tracker/internal/changefeed"
	"github.com/KirkDiggler/fight-tracker/internal/entities"
	"github.com/KirkDiggler/fight-tracker/internal/errors"
	"github.com/KirkDiggler/fight-tracker/internal/orchestrators/roster"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// RosterPath is the mux pattern the handler expects; fight_id is read from it
const RosterPath = "GET /v1/fights/{fight_id}/participants/ws"

// Frame types
const (
	FrameSnapshot = "snapshot"
	FrameError    = "error"
)

// Frame is one JSON message sent to the browser
type Frame struct {
	Type         string                  `json:"type"`
	FightID      string                  `json:"fight_id"`
	Sequence     uint64                  `json:"sequence,omitempty"`
	Participants []*entities.Participant `json:"participants,omitempty"`
	Error        string                  `json:"error,omitempty"`
}

// Config holds dependencies for the roster feed
type Config struct {
	Lister     roster.Lister
	Subscriber changefeed.Subscriber
	Debounce   time.Duration
	// CheckOrigin defaults to same-origin checking
	CheckOrigin func(r *http.Request) bool
}

// Validate ensures all required dependencies are present
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Lister == nil {
		vb.RequiredField("Lister")
	}
	if c.Subscriber == nil {
		vb.RequiredField("Subscriber")
	}
	return vb.Build()
}

// RosterHandler serves GET /v1/fights/{fight_id}/participants/ws?account_id=...
type RosterHandler struct {
	lister     roster.Lister
	subscriber changefeed.Subscriber
	debounce   time.Duration
	upgrader   websocket.Upgrader
}

// NewRosterHandler creates the websocket roster feed
func NewRosterHandler(cfg *Config) (*RosterHandler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &RosterHandler{
		lister:     cfg.Lister,
		subscriber: cfg.Subscriber,
		debounce:   cfg.Debounce,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     cfg.CheckOrigin,
		},
	}, nil
}

// Register mounts the handler on mux
func (h *RosterHandler) Register(mux *http.ServeMux) {
	mux.Handle(RosterPath, h)
}

// ServeHTTP upgrades the request and streams a snapshot on connect and after
// every change until either side closes
func (h *RosterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	fightID := r.PathValue("fight_id")
	if fightID == "" {
		http.Error(w, "fight_id is required", http.StatusBadRequest)
		return
	}
	viewer := r.URL.Query().Get("account_id")

	engine, err := roster.NewEngine(&roster.Config{
		Lister:          h.lister,
		Subscriber:      h.subscriber,
		FightID:         fightID,
		ViewerAccountID: viewer,
		Debounce:        h.debounce,
	})
	if err != nil {
		http.Error(w, err.Error(), errors.GetCode(err).HTTPStatus())
		return
	}

	// a hijacked connection's request context is not cancelled on disconnect;
	// the read pump cancels this one instead
	ctx, cancel := context.WithCancel(context.WithoutCancel(r.Context()))
	defer cancel()

	updates := make(chan []*entities.Participant, 1)
	engine.OnChange(func(p []*entities.Participant) {
		for {
			select {
			case updates <- p:
				return
			default:
			}
			select {
			case <-updates:
			default:
			}
		}
	})
	engine.OnError(func(err error) {
		slog.WarnContext(ctx, "roster refresh failed", "fight_id", fightID, "error", err)
	})

	// start before upgrading so a failed initial fetch is still a plain HTTP
	// error; the first roster waits in updates
	if err := engine.Start(ctx); err != nil {
		http.Error(w, err.Error(), errors.GetCode(err).HTTPStatus())
		return
	}
	defer func() { _ = engine.Close() }()

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader already wrote the HTTP error
		slog.DebugContext(ctx, "websocket upgrade failed", "error", err)
		return
	}
	defer func() { _ = conn.Close() }()

	slog.DebugContext(ctx, "roster socket opened", "fight_id", fightID, "viewer", viewer)

	go readPump(conn, cancel)
	writePump(ctx, conn, fightID, updates, engine.Done())

	slog.DebugContext(ctx, "roster socket closed", "fight_id", fightID, "viewer", viewer)
}

// readPump discards client messages and keeps the read deadline fresh; it
// cancels the connection context once the peer goes away
func readPump(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Debug("roster socket read error", "error", err)
			}
			return
		}
	}
}

func writePump(ctx context.Context, conn *websocket.Conn, fightID string, updates <-chan []*entities.Participant, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	var seq uint64
	for {
		select {
		case <-ctx.Done():
			return
		case <-done:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = conn.WriteJSON(Frame{Type: FrameError, FightID: fightID, Error: "roster feed ended"})
			_ = conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "roster feed ended"))
			return
		case p := <-updates:
			seq++
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(Frame{
				Type:         FrameSnapshot,
				FightID:      fightID,
				Sequence:     seq,
				Participants: p,
			}); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
