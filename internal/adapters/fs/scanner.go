// Package fs provides the filesystem adapters: ligand discovery, the
// watch-mode source, and the tool-output transcript file.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/moldock/vinascreen/internal/domain"
	"github.com/moldock/vinascreen/internal/ports"
)

// DirScanner implements ports.LigandSource over a single directory listing.
// The listing is taken once at Open; the sequence is consumed lazily and is
// not restartable.
type DirScanner struct {
	dir     string
	pending []domain.WorkItem
}

// NewDirScanner creates a scanner over the given ligand directory.
func NewDirScanner(dir string) *DirScanner {
	return &DirScanner{dir: dir}
}

// Open lists the directory and keeps only dockable entries. Returns
// domain.ErrLigandDirMissing if the directory does not exist.
func (s *DirScanner) Open(ctx context.Context) error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.ErrLigandDirMissing
		}
		return err
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		item, ok := Dockable(s.dir, e.Name())
		if !ok {
			continue
		}
		s.pending = append(s.pending, item)
	}
	return nil
}

// Next pops the next discovered item, in directory-listing order.
func (s *DirScanner) Next(ctx context.Context) (domain.WorkItem, error) {
	if err := ctx.Err(); err != nil {
		return domain.WorkItem{}, err
	}
	if len(s.pending) == 0 {
		return domain.WorkItem{}, ports.ErrNoMoreLigands
	}
	item := s.pending[0]
	s.pending = s.pending[1:]
	return item, nil
}

// Close releases the scanner. The listing is in memory, so this is a no-op.
func (s *DirScanner) Close() error { return nil }

// Dockable reports whether a directory entry name is a ligand to dock:
// it must carry the ligand extension and must not carry the docked-output
// marker (so already-docked structures are never re-docked if the input and
// output directories are conflated).
func Dockable(dir, name string) (domain.WorkItem, bool) {
	if !strings.HasSuffix(name, domain.LigandExt) {
		return domain.WorkItem{}, false
	}
	if strings.Contains(name, domain.DockedMarker) {
		return domain.WorkItem{}, false
	}
	return domain.WorkItem{
		Name: strings.TrimSuffix(name, domain.LigandExt),
		Path: filepath.Join(dir, name),
	}, true
}
