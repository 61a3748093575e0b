package fs

import (
	"fmt"
	"os"
)

// TranscriptFile implements ports.Transcript over a plain text file. The
// file is truncated at run start and receives the raw tool output per
// ligand; each write is synced so the transcript is complete up to the
// in-flight item after a crash.
type TranscriptFile struct {
	f *os.File
}

// OpenTranscript creates (or truncates) the transcript file at path.
func OpenTranscript(path string) (*TranscriptFile, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &TranscriptFile{f: f}, nil
}

// Record appends the tool output for one ligand under a per-ligand header.
func (t *TranscriptFile) Record(ligand, text string) error {
	if _, err := fmt.Fprintf(t.f, "Docking results for %s:\n%s\n\n", ligand, text); err != nil {
		return err
	}
	return t.f.Sync()
}

// RecordError appends the failure detail for one ligand verbatim.
func (t *TranscriptFile) RecordError(ligand, detail string) error {
	if _, err := fmt.Fprintf(t.f, "Error docking %s: %s\n\n", ligand, detail); err != nil {
		return err
	}
	return t.f.Sync()
}

// Close releases the transcript file.
func (t *TranscriptFile) Close() error {
	return t.f.Close()
}
