package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchSourceSweepThenEvents(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "first.pdbqt"), []byte("ATOM"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	w := NewWatchSource(dir)
	if err := w.Open(context.Background()); err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	item, err := w.Next(ctx)
	if err != nil {
		t.Fatalf("Next (sweep): %v", err)
	}
	if item.Name != "first" {
		t.Fatalf("sweep item = %s, want first", item.Name)
	}

	// A file appearing after the sweep must be yielded by the watch.
	go func() {
		time.Sleep(50 * time.Millisecond)
		os.WriteFile(filepath.Join(dir, "second.pdbqt"), []byte("ATOM"), 0o644)
	}()

	item, err = w.Next(ctx)
	if err != nil {
		t.Fatalf("Next (watch): %v", err)
	}
	if item.Name != "second" {
		t.Fatalf("watch item = %s, want second", item.Name)
	}
}

func TestWatchSourceMoveInYieldsMoveOutDoesNot(t *testing.T) {
	outside := t.TempDir()
	dir := t.TempDir()
	staged := filepath.Join(outside, "moved.pdbqt")
	if err := os.WriteFile(staged, []byte("ATOM"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	w := NewWatchSource(dir)
	if err := w.Open(context.Background()); err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer w.Close()

	// A file moved into the directory arrives as a create event.
	inside := filepath.Join(dir, "moved.pdbqt")
	go func() {
		time.Sleep(50 * time.Millisecond)
		os.Rename(staged, inside)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	item, err := w.Next(ctx)
	if err != nil {
		t.Fatalf("Next (move in): %v", err)
	}
	if item.Name != "moved" {
		t.Fatalf("item = %s, want moved", item.Name)
	}

	// Moving a ligand away fires a rename for the old path; that must not
	// surface as a new work item pointing at a vanished file.
	if err := os.Rename(inside, staged); err != nil {
		t.Fatalf("rename out: %v", err)
	}

	shortCtx, shortCancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer shortCancel()
	if item, err := w.Next(shortCtx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected no item after move out, got %+v, err %v", item, err)
	}
}

func TestWatchSourceIgnoresNonLigands(t *testing.T) {
	dir := t.TempDir()
	w := NewWatchSource(dir)
	if err := w.Open(context.Background()); err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer w.Close()

	go func() {
		time.Sleep(50 * time.Millisecond)
		os.WriteFile(filepath.Join(dir, "ignored_docked.pdbqt"), nil, 0o644)
		os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o644)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	if _, err := w.Next(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded waiting on non-ligands, got %v", err)
	}
}
