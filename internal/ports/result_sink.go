package ports

import (
	"context"

	"github.com/moldock/vinascreen/internal/domain"
)

// ResultSink appends result rows to the durable score table. Implementations
// must make every committed row durable (flush plus storage sync) before
// returning, so a crash between two items never loses a committed row.
type ResultSink interface {
	// Commit appends one row and forces it to stable storage.
	Commit(ctx context.Context, row domain.ResultRow) error

	// Close releases the underlying table.
	Close() error
}

// Transcript receives the raw tool output per ligand, mirroring what an
// operator would have seen running the tool by hand. Recreated at run start.
type Transcript interface {
	// Record appends the tool output for one successfully run ligand.
	Record(ligand, text string) error

	// RecordError appends the failure detail for one ligand.
	RecordError(ligand, detail string) error

	// Close releases the underlying file.
	Close() error
}
