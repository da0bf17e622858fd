// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package livesync

import (
	"sync"

	"github.com/danielhkuo/pickparty/models"
)

// Snapshot is the full set of announced results at one point in time.
// Version increases with every refresh.
type Snapshot struct {
	Version uint64          `json:"version"`
	Results []models.Result `json:"results"`
}

type subscriber struct {
	ch chan Snapshot
}

// Hub fans snapshots out to subscribers. Each subscriber holds at most one
// pending snapshot; a newer one replaces it, so slow readers skip
// intermediate states but always see the latest.
type Hub struct {
	mu   sync.Mutex
	subs map[*subscriber]struct{}
	last *Snapshot
}

func NewHub() *Hub {
	return &Hub{subs: make(map[*subscriber]struct{})}
}

// Subscribe registers a subscriber. The latest snapshot, if any, is
// delivered immediately. cancel must be called to release the
// subscription; it closes the channel and is safe to call twice.
func (h *Hub) Subscribe() (<-chan Snapshot, func()) {
	sub := &subscriber{ch: make(chan Snapshot, 1)}

	h.mu.Lock()
	h.subs[sub] = struct{}{}
	if h.last != nil {
		sub.ch <- *h.last
	}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, sub)
			close(sub.ch)
			h.mu.Unlock()
		})
	}
	return sub.ch, cancel
}

// Publish delivers s to every subscriber without blocking.
func (h *Hub) Publish(s Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()

	// Out-of-order refreshes must not roll subscribers back
	if h.last != nil && s.Version < h.last.Version {
		return
	}
	h.last = &s

	for sub := range h.subs {
		select {
		case sub.ch <- s:
		default:
			// Drop the stale pending snapshot, then send. Only Publish
			// writes and it holds the lock, so the second send cannot block.
			select {
			case <-sub.ch:
			default:
			}
			sub.ch <- s
		}
	}
}

// Subscribers returns the number of live subscriptions.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
