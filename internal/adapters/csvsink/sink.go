// Package csvsink persists result rows to the durable CSV score table.
package csvsink

import (
	"context"
	"encoding/csv"
	"os"

	"github.com/moldock/vinascreen/internal/domain"
)

// Header columns of the score table.
var header = []string{"Ligand", "BestAffinity"}

// Sink implements ports.ResultSink over a CSV file. The table is recreated
// at run start, the header is written and made durable immediately, and
// every committed row is flushed and synced before Commit returns — a crash
// mid-batch leaves a valid, readable partial table.
type Sink struct {
	f *os.File
	w *csv.Writer
}

// Open creates (or truncates) the score table at path and writes the header.
// A failure here is a setup error: no batch can run without the table.
func Open(path string) (*Sink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	s := &Sink{f: f, w: csv.NewWriter(f)}
	if err := s.append(header); err != nil {
		f.Close()
		return nil, err
	}
	return s, nil
}

// Commit appends one row and forces it to stable storage.
func (s *Sink) Commit(ctx context.Context, row domain.ResultRow) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.append([]string{row.Ligand, row.BestAffinity})
}

func (s *Sink) append(record []string) error {
	if err := s.w.Write(record); err != nil {
		return err
	}
	s.w.Flush()
	if err := s.w.Error(); err != nil {
		return err
	}
	return s.f.Sync()
}

// Close releases the table file.
func (s *Sink) Close() error {
	return s.f.Close()
}
