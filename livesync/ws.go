// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package livesync

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ServeWS handles GET /results/live. The client receives the current
// snapshot on connect and every newer snapshot after that. Messages from
// the client are ignored.
func (f *Feed) ServeWS(w http.ResponseWriter, r *http.Request) {
	current, err := f.Snapshot(r.Context())
	if err != nil {
		slog.Error("failed to load results for websocket", "error", err)
		http.Error(w, "Failed to load results", http.StatusServiceUnavailable)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}

	snapshots, cancel := f.hub.Subscribe()
	slog.Info("live results subscriber connected", "remote", r.RemoteAddr, "subscribers", f.hub.Subscribers())

	done := make(chan struct{})
	go readPump(conn, done)
	writePump(conn, current, snapshots, done)

	cancel()
	conn.Close()
	slog.Info("live results subscriber disconnected", "remote", r.RemoteAddr)
}

// readPump consumes control frames so pongs are processed, and closes
// done when the client goes away.
func readPump(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}

func writePump(conn *websocket.Conn, current Snapshot, snapshots <-chan Snapshot, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	lastVersion := current.Version
	if err := writeSnapshot(conn, current); err != nil {
		return
	}

	for {
		select {
		case <-done:
			return

		case s, ok := <-snapshots:
			if !ok {
				conn.SetWriteDeadline(time.Now().Add(writeWait))
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if s.Version <= lastVersion {
				continue
			}
			lastVersion = s.Version
			if err := writeSnapshot(conn, s); err != nil {
				return
			}

		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func writeSnapshot(conn *websocket.Conn, s Snapshot) error {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(s)
}
