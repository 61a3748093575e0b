package ports

import (
	"context"
	"io"

	"github.com/moldock/vinascreen/internal/domain"
)

// LigandSource yields work items for one batch run. The sequence is finite
// (in plain batch mode), lazily consumed, and not restartable.
type LigandSource interface {
	// Open prepares the source. Returns domain.ErrLigandDirMissing if the
	// input directory does not exist; no work can proceed in that case.
	Open(ctx context.Context) error

	// Next returns the next work item. Returns ErrNoMoreLigands when the
	// sequence is exhausted, or the context error once ctx is canceled.
	// Ordering is whatever the underlying listing yields; callers must not
	// assume lexical order.
	Next(ctx context.Context) (domain.WorkItem, error)

	// Close releases all resources held by the source.
	Close() error
}

// ErrNoMoreLigands indicates that the source is exhausted.
var ErrNoMoreLigands = io.EOF
