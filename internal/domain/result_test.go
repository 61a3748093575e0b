package domain

import (
	"errors"
	"math"
	"testing"
)

func TestDockingResultRow(t *testing.T) {
	tests := []struct {
		name   string
		result DockingResult
		want   ResultRow
	}{
		{
			name:   "scored",
			result: DockingResult{Ligand: "lig1", Outcome: Scored, Affinity: -8.2},
			want:   ResultRow{Ligand: "lig1", BestAffinity: "-8.2"},
		},
		{
			name:   "unparseable",
			result: DockingResult{Ligand: "lig2", Outcome: Unparseable},
			want:   ResultRow{Ligand: "lig2", BestAffinity: "N/A"},
		},
		{
			name:   "tool failed",
			result: DockingResult{Ligand: "lig3", Outcome: ToolFailed, Detail: "exit status 1"},
			want:   ResultRow{Ligand: "lig3", BestAffinity: "Error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.Row(); got != tt.want {
				t.Fatalf("Row() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestGridBoxArgs(t *testing.T) {
	g := GridBox{CenterX: 1.5, CenterY: -2, CenterZ: 0, SizeX: 20, SizeY: 20, SizeZ: 22.5}

	want := []string{
		"--center_x", "1.5",
		"--center_y", "-2",
		"--center_z", "0",
		"--size_x", "20",
		"--size_y", "20",
		"--size_z", "22.5",
	}
	got := g.Args()
	if len(got) != len(want) {
		t.Fatalf("len(Args()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Args()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestGridBoxValidate(t *testing.T) {
	var g GridBox
	if err := g.Validate(); err != nil {
		t.Fatalf("zero grid should be valid, got %v", err)
	}

	if err := g.Set("center_x", 3.5); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if g.CenterX != 3.5 {
		t.Fatalf("CenterX = %v, want 3.5", g.CenterX)
	}
	if err := g.Set("center_q", 1); err == nil {
		t.Fatal("expected error for unknown parameter")
	}

	g.SizeY = math.NaN()
	if err := g.Validate(); !errors.Is(err, ErrInvalidGrid) {
		t.Fatalf("expected ErrInvalidGrid for NaN, got %v", err)
	}
}
