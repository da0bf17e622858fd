// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package livesync

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/danielhkuo/pickparty/db"
	_ "github.com/lib/pq"
)

// Needs a real Postgres; set PICKPARTY_TEST_POSTGRES_URL to run.
func TestListenerRefreshesOnNotify(t *testing.T) {
	dsn := os.Getenv("PICKPARTY_TEST_POSTGRES_URL")
	if dsn == "" {
		t.Skip("PICKPARTY_TEST_POSTGRES_URL not set")
	}

	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer conn.Close()

	if err := db.CreateSchema(conn, db.Postgres); err != nil {
		t.Fatalf("CreateSchema() error = %v", err)
	}
	conn.Exec(`DELETE FROM results`)

	loader := &fakeLoader{}
	feed := NewFeed(loader, NewHub())
	ch, cancel := feed.Hub().Subscribe()
	defer cancel()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	go NewListener(dsn, feed).Run(ctx)

	// Give LISTEN time to register before writing
	time.Sleep(500 * time.Millisecond)

	_, err = conn.Exec(`INSERT INTO results (category, selection, announced_at) VALUES ('winner', 'seahawks', $1)`, time.Now().UTC())
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	defer conn.Exec(`DELETE FROM results`)

	select {
	case <-ch:
	case <-time.After(5 * time.Second):
		t.Fatal("No snapshot published after NOTIFY")
	}
	if loader.callCount() == 0 {
		t.Error("Expected the feed to reload")
	}
}
