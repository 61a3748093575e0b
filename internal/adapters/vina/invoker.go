// Package vina runs the external docking tool as a subprocess.
package vina

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"

	"github.com/moldock/vinascreen/internal/domain"
	"github.com/moldock/vinascreen/internal/ports"
)

// Invoker implements ports.DockingInvoker over os/exec. Each call runs the
// tool synchronously and captures merged stdout+stderr, the tool's only
// result channel.
type Invoker struct {
	bin            string
	receptor       string
	outputDir      string
	exhaustiveness int
	timeout        time.Duration
}

// Config holds the fixed, run-wide invocation parameters.
type Config struct {
	// Bin is the tool executable name or path.
	Bin string

	// Receptor is the fixed receptor structure path, constant for the batch.
	Receptor string

	// OutputDir is where docked structures are written.
	OutputDir string

	// Exhaustiveness is the tool's search-effort parameter.
	Exhaustiveness int

	// Timeout bounds one invocation; zero means no bound, matching the
	// historical behavior where a hung tool blocks the batch.
	Timeout time.Duration
}

// New creates an Invoker with the given fixed parameters.
func New(cfg Config) *Invoker {
	return &Invoker{
		bin:            cfg.Bin,
		receptor:       cfg.Receptor,
		outputDir:      cfg.OutputDir,
		exhaustiveness: cfg.Exhaustiveness,
		timeout:        cfg.Timeout,
	}
}

// Invoke runs the tool once for the given item. A non-zero exit, a start
// failure, or a timeout is reported as a failed Invocation; the error return
// is reserved for the caller's context being canceled.
func (v *Invoker) Invoke(ctx context.Context, item domain.WorkItem, grid domain.GridBox) (ports.Invocation, error) {
	runCtx := ctx
	if v.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, v.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, v.bin, v.Args(item, grid)...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() != nil {
			return ports.Invocation{}, ctx.Err()
		}
		return ports.Invocation{
			Output: string(out),
			Failed: true,
			Detail: failureDetail(runCtx, err, out),
		}, nil
	}
	return ports.Invocation{Output: string(out)}, nil
}

// Args builds the tool argument vector for one item: receptor, ligand,
// derived output path, the six grid parameters, and exhaustiveness.
func (v *Invoker) Args(item domain.WorkItem, grid domain.GridBox) []string {
	args := []string{
		"--receptor", v.receptor,
		"--ligand", item.Path,
		"--out", filepath.Join(v.outputDir, item.DockedFileName()),
	}
	args = append(args, grid.Args()...)
	return append(args, "--exhaustiveness", strconv.Itoa(v.exhaustiveness))
}

func failureDetail(runCtx context.Context, err error, out []byte) string {
	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return fmt.Sprintf("timed out: %v", err)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return fmt.Sprintf("exit status %d: %s", exitErr.ExitCode(), out)
	}
	return err.Error()
}
