// Package app contains the batch docking engine.
package app

import (
	"context"
	"fmt"

	"github.com/moldock/vinascreen/internal/domain"
	"github.com/moldock/vinascreen/internal/ports"
	"github.com/moldock/vinascreen/pkg/log"
)

// Screener drives one batch run: discover ligands, invoke the tool per
// ligand, extract the best affinity, commit the row, log every transition.
// Execution is strictly sequential; each item is processed to completion
// before the next begins, and a failed item never aborts the batch.
type Screener struct {
	source  ports.LigandSource
	invoker ports.DockingInvoker
	sink    ports.ResultSink
	trans   ports.Transcript
	logger  log.Logger
	grid    domain.GridBox
}

// New wires a Screener from its collaborators. The grid box is immutable for
// the whole run and shared read-only by every invocation.
func New(source ports.LigandSource, invoker ports.DockingInvoker, sink ports.ResultSink, trans ports.Transcript, logger log.Logger, grid domain.GridBox) *Screener {
	return &Screener{
		source:  source,
		invoker: invoker,
		sink:    sink,
		trans:   trans,
		logger:  logger,
		grid:    grid,
	}
}

// Run processes every discovered ligand and returns the number of items
// processed. Per-item tool and parse failures are absorbed: they produce an
// "Error" or "N/A" row plus a log line, and the batch continues. Only setup
// failures (missing ligand directory) and sink write failures abort the run.
func (s *Screener) Run(ctx context.Context) (int, error) {
	if err := s.source.Open(ctx); err != nil {
		return 0, err
	}
	defer s.source.Close()

	count := 0
	for {
		item, err := s.source.Next(ctx)
		if err == ports.ErrNoMoreLigands {
			break
		}
		if err != nil {
			if ctx.Err() != nil {
				// Canceled between items (watch mode stop, operator signal):
				// everything committed so far stands.
				break
			}
			return count, err
		}

		if err := s.processItem(ctx, item); err != nil {
			if ctx.Err() != nil {
				// Canceled mid-item: the in-flight row is the only loss,
				// everything committed so far stands.
				break
			}
			return count, err
		}
		count++
	}

	s.logger.Info("processed ligands", log.Int("count", count))
	return count, nil
}

// processItem runs one work item through invoke → extract → commit. The
// returned error is fatal (sink or transcript write failure); per-item tool
// and parse failures are converted into rows instead.
func (s *Screener) processItem(ctx context.Context, item domain.WorkItem) error {
	s.logger.Info("processing ligand", log.String("ligand", item.Name))

	inv, err := s.invoker.Invoke(ctx, item, s.grid)
	if err != nil {
		return fmt.Errorf("invoke %s: %w", item.Name, err)
	}

	result := s.classify(item, inv)
	if err := s.record(item, inv, result); err != nil {
		return fmt.Errorf("transcript %s: %w", item.Name, err)
	}
	if err := s.sink.Commit(ctx, result.Row()); err != nil {
		return fmt.Errorf("commit %s: %w", item.Name, err)
	}
	if result.Outcome == domain.Scored {
		s.logger.Info("written to table",
			log.String("ligand", result.Ligand),
			log.Float64("affinity", result.Affinity))
	}
	return nil
}

// classify reduces a captured invocation to a tagged result, logging the
// outcome tier it lands in.
func (s *Screener) classify(item domain.WorkItem, inv ports.Invocation) domain.DockingResult {
	if inv.Failed {
		s.logger.Error("docking failed",
			log.String("ligand", item.Name),
			log.String("detail", inv.Detail))
		return domain.DockingResult{Ligand: item.Name, Outcome: domain.ToolFailed, Detail: inv.Detail}
	}

	score, ok := domain.ExtractBestAffinity(inv.Output)
	if !ok {
		s.logger.Error("could not extract best affinity", log.String("ligand", item.Name))
		return domain.DockingResult{Ligand: item.Name, Outcome: domain.Unparseable}
	}

	s.logger.Info("docking succeeded", log.String("ligand", item.Name))
	return domain.DockingResult{Ligand: item.Name, Outcome: domain.Scored, Affinity: score}
}

// record mirrors the raw tool output (or the failure detail, verbatim) to
// the transcript file.
func (s *Screener) record(item domain.WorkItem, inv ports.Invocation, result domain.DockingResult) error {
	if result.Outcome == domain.ToolFailed {
		return s.trans.RecordError(item.Name, result.Detail)
	}
	return s.trans.Record(item.Name, inv.Output)
}
