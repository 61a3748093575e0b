package cliconfig

import (
	"bytes"
	"strings"
	"testing"

	"github.com/moldock/vinascreen/pkg/log"
)

func TestResolveGridBlankDefaultsToZero(t *testing.T) {
	cfg := DefaultConfig()
	in := strings.NewReader("\n\n\n\n\n\n")
	var out bytes.Buffer

	if err := ResolveGrid(&cfg, in, &out, log.NewNoopLogger()); err != nil {
		t.Fatalf("ResolveGrid: %v", err)
	}

	if cfg.Grid.CenterX != 0 || cfg.Grid.SizeZ != 0 {
		t.Fatalf("blank inputs should resolve to 0.0, got %+v", cfg.Grid)
	}
	for _, name := range []string{"center_x", "size_z"} {
		if !cfg.GridResolved[name] {
			t.Fatalf("%s not marked resolved", name)
		}
	}
}

func TestResolveGridRejectsNonNumeric(t *testing.T) {
	cfg := DefaultConfig()
	// First parameter: two rejects, then a valid value. Rest blank.
	in := strings.NewReader("abc\n12,5\n-7.5\n\n\n\n\n\n")
	var out bytes.Buffer

	if err := ResolveGrid(&cfg, in, &out, log.NewNoopLogger()); err != nil {
		t.Fatalf("ResolveGrid: %v", err)
	}

	if cfg.Grid.CenterX != -7.5 {
		t.Fatalf("CenterX = %v, want -7.5", cfg.Grid.CenterX)
	}
	if n := strings.Count(out.String(), "Invalid input"); n != 2 {
		t.Fatalf("expected 2 re-prompt messages, got %d in %q", n, out.String())
	}
}

func TestResolveGridSkipsResolvedParams(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Grid.CenterX = 4.2
	for _, name := range []string{"center_x", "center_y", "center_z", "size_x", "size_y"} {
		cfg.GridResolved[name] = true
	}

	// Only size_z should be prompted for.
	in := strings.NewReader("10\n")
	var out bytes.Buffer
	if err := ResolveGrid(&cfg, in, &out, log.NewNoopLogger()); err != nil {
		t.Fatalf("ResolveGrid: %v", err)
	}

	if cfg.Grid.CenterX != 4.2 {
		t.Fatalf("preset CenterX overwritten: %v", cfg.Grid.CenterX)
	}
	if cfg.Grid.SizeZ != 10 {
		t.Fatalf("SizeZ = %v, want 10", cfg.Grid.SizeZ)
	}
	if strings.Contains(out.String(), "center_x") {
		t.Fatalf("prompted for already-resolved parameter: %q", out.String())
	}
}

func TestResolveGridNoPromptsWhenFullyResolved(t *testing.T) {
	cfg := DefaultConfig()
	for _, name := range []string{"center_x", "center_y", "center_z", "size_x", "size_y", "size_z"} {
		cfg.GridResolved[name] = true
	}

	var out bytes.Buffer
	if err := ResolveGrid(&cfg, strings.NewReader(""), &out, log.NewNoopLogger()); err != nil {
		t.Fatalf("ResolveGrid: %v", err)
	}
	if strings.Contains(out.String(), "Enter") {
		t.Fatalf("unexpected prompt: %q", out.String())
	}
}
