package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"

	"github.com/ivlev/motionkit/internal/config"
	"github.com/ivlev/motionkit/internal/director"
	"github.com/ivlev/motionkit/internal/effects"
	"github.com/ivlev/motionkit/internal/preset"
	"github.com/ivlev/motionkit/internal/renderer"
	"github.com/ivlev/motionkit/internal/source"
	"github.com/ivlev/motionkit/internal/system"
)

const ScenarioVersion = "1"

// Project resolves every queue of a config, hands the frames to a renderer
// and collects them into a scenario.
type Project struct {
	Config   *config.Config
	Library  *preset.Library
	Effect   effects.Effect
	Renderer renderer.Renderer
	Logger   hclog.Logger

	mu    sync.Mutex
	stats Stats
}

// Stats summarises the last run.
type Stats struct {
	Queues   int
	Skipped  int
	Elements int
	Elapsed  time.Duration
}

// NewProject wires a project. A nil effect uses the standard container, a
// nil renderer only collects the scenario.
func NewProject(cfg *config.Config, eff effects.Effect, r renderer.Renderer, logger hclog.Logger) *Project {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	lib := cfg.Library()
	if eff == nil {
		eff = effects.NewContainer(lib)
	}
	return &Project{
		Config:   cfg,
		Library:  lib,
		Effect:   eff,
		Renderer: r,
		Logger:   logger,
	}
}

// Workers is the configured parallelism, or the machine's core count.
func (p *Project) Workers() int {
	if p.Config.Workers > 0 {
		return p.Config.Workers
	}
	return system.WorkerCount()
}

// Run resolves all queues concurrently. Each queue gets its own director, so
// stateful curves never leak between queues. A queue whose elements do not
// match its children is logged and left empty.
func (p *Project) Run(ctx context.Context) (*director.Scenario, error) {
	start := time.Now()
	queues := p.Config.Queues

	p.Logger.Info("resolving project", "queues", len(queues), "workers", p.Workers())

	scenario := &director.Scenario{
		Version: ScenarioVersion,
		Queues:  make([]director.Queue, len(queues)),
	}
	if p.Config.BuildVersion != "" {
		scenario.Version = p.Config.BuildVersion
	}

	var stats Stats
	var statsMu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.Workers())

	for i, qc := range queues {
		i, qc := i, qc
		g.Go(func() error {
			q, skipped, err := p.runQueue(gctx, qc)
			if err != nil {
				return fmt.Errorf("queue %q: %w", qc.Name, err)
			}
			scenario.Queues[i] = q

			statsMu.Lock()
			stats.Queues++
			stats.Elements += len(q.Entries)
			if skipped {
				stats.Skipped++
			}
			statsMu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats.Elapsed = time.Since(start)
	p.mu.Lock()
	p.stats = stats
	p.mu.Unlock()

	p.Logger.Info("project resolved",
		"queues", stats.Queues, "skipped", stats.Skipped,
		"elements", stats.Elements, "elapsed", stats.Elapsed)
	return scenario, nil
}

func (p *Project) runQueue(ctx context.Context, qc config.QueueConfig) (director.Queue, bool, error) {
	opts := qc.Options()
	q := director.Queue{
		Name:    qc.Name,
		Curve:   string(opts.Curve),
		Entries: []director.Entry{},
	}

	src, err := qc.Source()
	if err != nil {
		return q, false, err
	}
	defer src.Close()

	logger := p.Logger.Named(qc.Name)
	d := director.NewDirector(p.Library, opts, logger)

	elements, err := d.Resolve(source.Names(src), qc.Elements)
	if errors.Is(err, director.ErrLengthMismatch) {
		return q, true, nil
	}
	if err != nil {
		return q, false, err
	}

	for _, el := range elements {
		if err := ctx.Err(); err != nil {
			return q, false, err
		}

		f := p.Effect.Frame(el, qc.InView(el.View))
		if p.Renderer != nil {
			if err := p.Renderer.Render(ctx, qc.Name, el.Index, f); err != nil {
				return q, false, err
			}
		}
		q.Entries = append(q.Entries, director.Entry{
			Index:      el.Index,
			Child:      el.Child,
			Delay:      f.Transition.Delay,
			Initial:    f.Initial,
			Active:     f.Active,
			Transition: f.Transition,
		})
		logger.Trace("element resolved", "index", el.Index, "child", el.Child, "phase", f.Phase, "delay", el.Delay)
	}
	return q, false, nil
}

// Stats returns the summary of the last successful Run.
func (p *Project) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stats
}

// Write runs the project and writes the scenario to path, or to a fresh
// timestamped file under output/ when path is empty.
func (p *Project) Write(ctx context.Context, path string) (string, error) {
	scenario, err := p.Run(ctx)
	if err != nil {
		return "", err
	}
	if path == "" {
		path = p.Config.Output
	}
	if path == "" {
		path = director.GenerateScenarioPath("output")
	}
	if err := director.WriteScenario(scenario, path); err != nil {
		return "", fmt.Errorf("failed to write scenario: %w", err)
	}
	p.Logger.Info("scenario written", "path", path)
	return path, nil
}
