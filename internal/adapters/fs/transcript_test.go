package fs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTranscriptRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "console.txt")

	tr, err := OpenTranscript(path)
	if err != nil {
		t.Fatalf("OpenTranscript: %v", err)
	}
	if err := tr.Record("lig1", "mode 1 ...\n"); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := tr.RecordError("lig2", "exit status 1: boom"); err != nil {
		t.Fatalf("RecordError: %v", err)
	}

	// Readable before Close: every write is synced.
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	text := string(b)
	if !strings.Contains(text, "Docking results for lig1:\nmode 1 ...\n") {
		t.Fatalf("missing lig1 output in %q", text)
	}
	if !strings.Contains(text, "Error docking lig2: exit status 1: boom") {
		t.Fatalf("missing lig2 error in %q", text)
	}
	if err := tr.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Reopening truncates: a new run starts with an empty transcript.
	tr2, err := OpenTranscript(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer tr2.Close()
	b, err = os.ReadFile(path)
	if err != nil {
		t.Fatalf("read after reopen: %v", err)
	}
	if len(b) != 0 {
		t.Fatalf("transcript not truncated, has %d bytes", len(b))
	}
}
