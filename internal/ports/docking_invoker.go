package ports

import (
	"context"

	"github.com/moldock/vinascreen/internal/domain"
)

// Invocation is the captured outcome of one tool run. The tool's combined
// stdout+stderr text is the only result channel; no structured output is
// assumed.
type Invocation struct {
	// Output is the merged stdout+stderr of the tool.
	Output string

	// Failed is true when the tool exited non-zero or could not be started.
	Failed bool

	// Detail describes the failure (exit status plus any captured output).
	// Empty when Failed is false.
	Detail string
}

// DockingInvoker runs the external docking tool for one work item under the
// run-wide grid box. The call blocks for the duration of the tool run; a
// per-item failure is reported in the Invocation, not as an error. The error
// return is reserved for context cancellation.
type DockingInvoker interface {
	Invoke(ctx context.Context, item domain.WorkItem, grid domain.GridBox) (Invocation, error)
}
