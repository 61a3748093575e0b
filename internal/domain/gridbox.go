package domain

import (
	"fmt"
	"math"
	"strconv"
)

// GridBox is the search region for one batch run: the center of the box and
// its size along each axis, in angstroms. It is built once before docking
// starts and shared read-only by every invocation.
type GridBox struct {
	CenterX float64
	CenterY float64
	CenterZ float64
	SizeX   float64
	SizeY   float64
	SizeZ   float64
}

// GridParamNames lists the grid parameters in prompt order. The names double
// as flag names (dashes substituted for underscores) and as the tool's
// argument names.
var GridParamNames = []string{
	"center_x", "center_y", "center_z",
	"size_x", "size_y", "size_z",
}

// Validate reports an error if any parameter is NaN or infinite.
func (g GridBox) Validate() error {
	for name, v := range g.params() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidGrid, name)
		}
	}
	return nil
}

// Set assigns the named parameter. Unknown names are rejected so config
// plumbing cannot silently drop a value.
func (g *GridBox) Set(name string, value float64) error {
	switch name {
	case "center_x":
		g.CenterX = value
	case "center_y":
		g.CenterY = value
	case "center_z":
		g.CenterZ = value
	case "size_x":
		g.SizeX = value
	case "size_y":
		g.SizeY = value
	case "size_z":
		g.SizeZ = value
	default:
		return fmt.Errorf("unknown grid parameter %q", name)
	}
	return nil
}

func (g GridBox) params() map[string]float64 {
	return map[string]float64{
		"center_x": g.CenterX,
		"center_y": g.CenterY,
		"center_z": g.CenterZ,
		"size_x":   g.SizeX,
		"size_y":   g.SizeY,
		"size_z":   g.SizeZ,
	}
}

// Args returns the grid parameters as a flat tool argument list in the
// tool's expected order: --center_x <v> ... --size_z <v>.
func (g GridBox) Args() []string {
	values := []float64{g.CenterX, g.CenterY, g.CenterZ, g.SizeX, g.SizeY, g.SizeZ}
	args := make([]string, 0, 2*len(values))
	for i, name := range GridParamNames {
		args = append(args, "--"+name, formatParam(values[i]))
	}
	return args
}

// String renders the box as one audit-friendly line.
func (g GridBox) String() string {
	return fmt.Sprintf(
		"center_x=%s, center_y=%s, center_z=%s, size_x=%s, size_y=%s, size_z=%s",
		formatParam(g.CenterX), formatParam(g.CenterY), formatParam(g.CenterZ),
		formatParam(g.SizeX), formatParam(g.SizeY), formatParam(g.SizeZ),
	)
}

func formatParam(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
