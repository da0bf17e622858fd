// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package livesync pushes result changes to connected clients.

# Pieces

  - Hub: fan-out of full result snapshots. One pending snapshot per
    subscriber, newest wins.
  - Feed: read-through cache of the results table. Every load, whether
    from Refresh or a read after invalidation, publishes to the Hub.
  - Listener: Postgres LISTEN on results_changed; each notification (and
    each reconnect) triggers a Refresh.
  - ServeWS: websocket endpoint streaming snapshots.

# Flow

	admin PUT /admin/results/winner
	  -> store.AnnounceResult
	  -> feed.Refresh            (write confirmed)
	  -> NOTIFY results_changed  (trigger)
	  -> listener -> feed.Refresh
	  -> hub.Publish -> every websocket

A subscriber that misses an intermediate snapshot still ends on the latest
one. Snapshots carry a version so clients can drop stale ones.

# Subscribing

	ch, cancel := hub.Subscribe()
	defer cancel()
	for s := range ch {
		...
	}
*/
package livesync
