package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/karpix25/parser-mass/internal/domain"
)

// Orchestrator drives one full sync pass: refresh reference data, run the
// platform processors concurrently, persist the run summary and refresh the
// weekly views snapshot.
type Orchestrator struct {
	refs       ReferenceData
	processors []Processor
	runs       RunStore
	history    HistoryStore
	logger     *slog.Logger
}

func NewOrchestrator(
	refs ReferenceData,
	processors []Processor,
	runs RunStore,
	history HistoryStore,
	logger *slog.Logger,
) *Orchestrator {
	return &Orchestrator{
		refs:       refs,
		processors: processors,
		runs:       runs,
		history:    history,
		logger:     logger.With("component", "orchestrator"),
	}
}

// RunAll processes every platform. An optional target filter restricts the
// run to the named identifiers; each selected target keeps the fetch amount
// configured in the reference data.
func (o *Orchestrator) RunAll(ctx context.Context, targetFilter []string) (*domain.RunResult, error) {
	return o.run(ctx, o.processors, targetFilter)
}

// RunPlatform processes a single platform for the given targets.
func (o *Orchestrator) RunPlatform(ctx context.Context, platform string, targets []string) (*domain.RunResult, error) {
	for _, p := range o.processors {
		if p.Platform() == platform {
			return o.run(ctx, []Processor{p}, targets)
		}
	}
	return nil, fmt.Errorf("unknown platform %q", platform)
}

func (o *Orchestrator) run(ctx context.Context, processors []Processor, targetFilter []string) (*domain.RunResult, error) {
	started := time.Now().UTC()
	o.logger.Info("starting run",
		"platforms", len(processors),
		"target_filter", targetFilter,
	)

	o.refs.Preload(ctx, true)
	rules := o.refs.Tags(ctx, true)
	filter := FilterSet(targetFilter)

	type outcome struct {
		platform string
		result   *domain.PlatformResult
		err      error
	}
	outcomes := make([]outcome, len(processors))

	var wg sync.WaitGroup
	for i, p := range processors {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// A panicking processor is isolated as a whole-platform
			// failure so its siblings finish their pass.
			defer func() {
				if r := recover(); r != nil {
					outcomes[i] = outcome{platform: p.Platform(), err: fmt.Errorf("panic: %v", r)}
				}
			}()
			res, err := p.Process(ctx, filter, rules)
			outcomes[i] = outcome{platform: p.Platform(), result: res, err: err}
		}()
	}
	wg.Wait()

	run := &domain.RunResult{
		StartedAt:    started,
		TargetFilter: targetFilter,
		Failed:       make(map[string][]domain.Failure),
	}

	for _, out := range outcomes {
		if out.err != nil {
			o.logger.Error("platform failed", "platform", out.platform, "error", out.err)
			run.Errors++
			run.Failed[out.platform] = append(run.Failed[out.platform], domain.Failure{
				Reason: out.err.Error(),
			})
			continue
		}
		run.TotalAccounts += out.result.Targets
		run.NewVideos += out.result.NewVideos
		if len(out.result.Failures) > 0 {
			run.Errors += len(out.result.Failures)
			run.Failed[out.platform] = append(run.Failed[out.platform], out.result.Failures...)
		}
	}

	run.FinishedAt = time.Now().UTC()
	run.Status = domain.RunStatusSuccess
	if run.Errors > 0 {
		run.Status = domain.RunStatusPartial
	}

	if err := o.runs.Insert(ctx, run); err != nil {
		return run, fmt.Errorf("persist run summary: %w", err)
	}

	if err := o.history.UpdateViewsHistory(ctx); err != nil {
		o.logger.Error("views history update failed", "error", err)
	}

	o.logger.Info("run completed",
		"status", run.Status,
		"targets", run.TotalAccounts,
		"new_videos", run.NewVideos,
		"errors", run.Errors,
		"duration", run.FinishedAt.Sub(run.StartedAt),
	)
	return run, nil
}
