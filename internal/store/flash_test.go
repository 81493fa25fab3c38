package store

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"carebase/internal/database"
)

func setupFlashTestDB(t *testing.T) (*FlashStore, *sql.DB) {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewFlashStore(db), db
}

func TestFlashAddPop(t *testing.T) {
	fs, _ := setupFlashTestDB(t)

	if err := fs.Add("tok-1", "success", "User added successfully!"); err != nil {
		t.Fatalf("add flash: %v", err)
	}
	if err := fs.Add("tok-1", "error", "Error: boom"); err != nil {
		t.Fatalf("add flash: %v", err)
	}
	if err := fs.Add("tok-2", "success", "other session"); err != nil {
		t.Fatalf("add flash: %v", err)
	}

	flashes, err := fs.Pop("tok-1")
	if err != nil {
		t.Fatalf("pop flashes: %v", err)
	}
	if len(flashes) != 2 {
		t.Fatalf("expected 2 flashes, got %d", len(flashes))
	}
	if flashes[0].Category != "success" || flashes[0].Message != "User added successfully!" {
		t.Errorf("flashes[0] = %+v", flashes[0])
	}
	if flashes[1].Category != "error" || flashes[1].Message != "Error: boom" {
		t.Errorf("flashes[1] = %+v", flashes[1])
	}

	// Popped messages are gone
	flashes, err = fs.Pop("tok-1")
	if err != nil {
		t.Fatalf("pop flashes again: %v", err)
	}
	if len(flashes) != 0 {
		t.Errorf("expected no flashes after pop, got %d", len(flashes))
	}

	// Other sessions are untouched
	flashes, err = fs.Pop("tok-2")
	if err != nil {
		t.Fatalf("pop other session: %v", err)
	}
	if len(flashes) != 1 {
		t.Errorf("expected 1 flash for other session, got %d", len(flashes))
	}
}

func TestFlashPopEmptySession(t *testing.T) {
	fs, _ := setupFlashTestDB(t)

	flashes, err := fs.Pop("nobody")
	if err != nil {
		t.Fatalf("pop flashes: %v", err)
	}
	if len(flashes) != 0 {
		t.Errorf("expected no flashes, got %d", len(flashes))
	}
}

// Uses a file-backed database so pooled connections share one store while
// a writer races the pop loop.
func TestFlashPopConcurrentAddLosesNothing(t *testing.T) {
	db, err := database.Open(filepath.Join(t.TempDir(), "flash.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	fs := NewFlashStore(db)

	const total = 50
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < total; i++ {
			if err := fs.Add("tok", "success", fmt.Sprintf("message %d", i)); err != nil {
				t.Errorf("add flash: %v", err)
				return
			}
		}
	}()

	// Pop repeatedly while the writer is running. Every queued message
	// must eventually come back exactly once.
	popped := 0
	for {
		flashes, err := fs.Pop("tok")
		if err != nil {
			t.Fatalf("pop flashes: %v", err)
		}
		popped += len(flashes)

		select {
		case <-done:
			flashes, err := fs.Pop("tok")
			if err != nil {
				t.Fatalf("final pop: %v", err)
			}
			popped += len(flashes)
			if popped != total {
				t.Errorf("popped %d messages, want %d", popped, total)
			}
			return
		default:
			time.Sleep(time.Millisecond)
		}
	}
}

func TestFlashDeleteStale(t *testing.T) {
	fs, db := setupFlashTestDB(t)

	if err := fs.Add("tok-fresh", "success", "recent"); err != nil {
		t.Fatalf("add flash: %v", err)
	}
	_, err := db.Exec(
		`INSERT INTO flashes (session_token, category, message, created_at)
		 VALUES (?, ?, ?, datetime('now', '-2 day'))`,
		"tok-old", "success", "stale",
	)
	if err != nil {
		t.Fatalf("insert stale flash: %v", err)
	}

	n, err := fs.DeleteStale()
	if err != nil {
		t.Fatalf("delete stale: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 stale flash deleted, got %d", n)
	}

	flashes, err := fs.Pop("tok-fresh")
	if err != nil {
		t.Fatalf("pop fresh: %v", err)
	}
	if len(flashes) != 1 {
		t.Errorf("fresh flash should survive, got %d", len(flashes))
	}
}
