package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/moldock/vinascreen/internal/domain"
	"github.com/moldock/vinascreen/internal/ports"
)

// WatchSource implements ports.LigandSource for watch mode: it first drains
// an initial directory sweep, then blocks on filesystem events and yields
// ligand files as they appear, until the context is canceled. Names already
// yielded are deduplicated, so an editor that writes and renames does not
// dock the same ligand twice.
type WatchSource struct {
	dir     string
	scanner *DirScanner
	watcher *fsnotify.Watcher
	seen    map[string]bool
}

// NewWatchSource creates a watch-mode source over the given ligand directory.
func NewWatchSource(dir string) *WatchSource {
	return &WatchSource{
		dir:     dir,
		scanner: NewDirScanner(dir),
		seen:    make(map[string]bool),
	}
}

// Open performs the initial sweep and registers the directory watch. The
// watch is registered before the sweep is consumed, so a file created during
// the sweep is not missed (it may be yielded by both paths; dedup absorbs
// that).
func (w *WatchSource) Open(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(w.dir); err != nil {
		watcher.Close()
		if _, statErr := os.Stat(w.dir); os.IsNotExist(statErr) {
			return domain.ErrLigandDirMissing
		}
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	if err := w.scanner.Open(ctx); err != nil {
		watcher.Close()
		return err
	}
	w.watcher = watcher
	return nil
}

// Next yields the next ligand: first from the initial sweep, then from
// create events (a move into the directory arrives as a create). Blocks
// until an item appears or ctx is canceled.
func (w *WatchSource) Next(ctx context.Context) (domain.WorkItem, error) {
	for {
		item, err := w.scanner.Next(ctx)
		if err == nil {
			if w.seen[item.Name] {
				continue
			}
			w.seen[item.Name] = true
			return item, nil
		}
		if err != ports.ErrNoMoreLigands {
			return domain.WorkItem{}, err
		}

		select {
		case <-ctx.Done():
			return domain.WorkItem{}, ctx.Err()
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return domain.WorkItem{}, ports.ErrNoMoreLigands
			}
			// Create covers both fresh files and files moved into the
			// directory; Rename fires for the path moved *away* and must
			// not be treated as a new ligand.
			if !ev.Has(fsnotify.Create) {
				continue
			}
			item, ok := Dockable(w.dir, baseName(ev.Name))
			if !ok || w.seen[item.Name] {
				continue
			}
			w.seen[item.Name] = true
			return item, nil
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return domain.WorkItem{}, ports.ErrNoMoreLigands
			}
			return domain.WorkItem{}, fmt.Errorf("watch %s: %w", w.dir, err)
		}
	}
}

func baseName(path string) string {
	return filepath.Base(path)
}

// Close stops the watch.
func (w *WatchSource) Close() error {
	if w.watcher == nil {
		return nil
	}
	return w.watcher.Close()
}
