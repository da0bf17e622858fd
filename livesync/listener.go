// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package livesync

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/danielhkuo/pickparty/db"
	"github.com/lib/pq"
)

const (
	minReconnectInterval = 10 * time.Second
	maxReconnectInterval = time.Minute
	listenerPingInterval = 90 * time.Second
)

// Listener refreshes a Feed whenever Postgres signals a change to the
// results table, so writes from other instances or direct SQL reach
// subscribers too.
type Listener struct {
	dsn  string
	feed *Feed
}

func NewListener(dsn string, feed *Feed) *Listener {
	return &Listener{dsn: dsn, feed: feed}
}

// Run listens until ctx is cancelled.
func (l *Listener) Run(ctx context.Context) error {
	listener := pq.NewListener(l.dsn, minReconnectInterval, maxReconnectInterval, logListenerEvent)
	defer listener.Close()

	if err := listener.Listen(db.ResultsChannel); err != nil {
		return fmt.Errorf("failed to listen on %s: %w", db.ResultsChannel, err)
	}
	slog.Info("results listener started", "channel", db.ResultsChannel)

	ticker := time.NewTicker(listenerPingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("results listener stopped")
			return nil

		case n := <-listener.Notify:
			// nil follows a reconnect; notifications may have been lost
			if n == nil {
				slog.Info("results listener reconnected, resyncing")
			} else {
				slog.Debug("results changed", "op", n.Extra)
			}
			if err := l.feed.Refresh(ctx); err != nil {
				slog.Error("failed to refresh results", "error", err)
			}

		case <-ticker.C:
			if err := listener.Ping(); err != nil {
				slog.Warn("results listener ping failed", "error", err)
			}
		}
	}
}

func logListenerEvent(ev pq.ListenerEventType, err error) {
	switch ev {
	case pq.ListenerEventConnected:
		slog.Debug("results listener connected")
	case pq.ListenerEventDisconnected:
		slog.Warn("results listener disconnected", "error", err)
	case pq.ListenerEventReconnected:
		slog.Info("results listener reconnected")
	case pq.ListenerEventConnectionAttemptFailed:
		slog.Warn("results listener connection attempt failed", "error", err)
	}
}
