package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/actiongraph/internal/builder"
	"github.com/vk/actiongraph/internal/config"
	"github.com/vk/actiongraph/internal/ctxlog"
	"github.com/vk/actiongraph/internal/render"
)

// Run answers the configured query, or every scenario in the graph files.
// A failing scenario does not stop the others; all failures are returned
// together.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	scenarios := a.queries()
	if len(scenarios) == 0 {
		a.logger.Warn("No query given and no scenarios found in the graph files, nothing to do.")
		return nil
	}

	var errs []error
	for _, s := range scenarios {
		if err := ctx.Err(); err != nil {
			return err
		}
		logger := a.logger.With("scenario", s.Name, "kind", s.Kind.String())
		sctx := ctxlog.WithLogger(ctx, logger)

		if err := a.runScenario(sctx, s); err != nil {
			logger.Error("Scenario failed.", "error", err)
			errs = append(errs, fmt.Errorf("%s %q: %w", s.Kind, s.Name, err))
			continue
		}
		logger.Debug("Scenario finished.")
	}

	a.logger.Debug("App.Run method finished.", "scenarios", len(scenarios), "failed", len(errs))
	if len(errs) > 0 {
		return fmt.Errorf("%d of %d scenarios failed: %w", len(errs), len(scenarios), errors.Join(errs...))
	}
	return nil
}

// queries returns the ad-hoc query from the config, or the declared scenarios.
func (a *App) queries() []*config.Scenario {
	switch {
	case len(a.cfg.Inputs) > 0 || (a.cfg.Target != "" && len(a.cfg.Known) == 0):
		return []*config.Scenario{{Kind: config.Simulate, Name: "cli", Target: a.cfg.Target, Inputs: a.cfg.Inputs}}
	case len(a.cfg.Known) > 0:
		return []*config.Scenario{{Kind: config.Solve, Name: "cli", Known: a.cfg.Known, Target: a.cfg.Target}}
	default:
		return a.model.Scenarios
	}
}

func (a *App) runScenario(ctx context.Context, s *config.Scenario) error {
	if a.cfg.Output == "text" {
		fmt.Fprintf(a.outW, "# %s %q\n", s.Kind, s.Name)
		defer fmt.Fprintln(a.outW)
	}

	switch s.Kind {
	case config.Solve:
		return a.solve(ctx, s)
	case config.Simulate:
		return a.simulate(ctx, s)
	default:
		return fmt.Errorf("unknown scenario kind %d", s.Kind)
	}
}

func (a *App) solve(ctx context.Context, s *config.Scenario) error {
	res := a.engine.Solve(ctx, s.Known)

	if s.Target == "" {
		if a.cfg.Output == "json" {
			return render.ClosureJSON(a.outW, res)
		}
		return render.ReachSummary(a.outW, a.engine.Graph().Snapshot(), res)
	}

	route, err := a.engine.Plan(ctx, s.Known, s.Target)
	if err != nil {
		return err
	}
	if a.cfg.Output == "json" {
		return render.RouteJSON(a.outW, route)
	}
	if err := render.ClosureTree(a.outW, a.engine.Graph().Snapshot(), res, s.Target); err != nil {
		return err
	}
	return render.Route(a.outW, route)
}

func (a *App) simulate(ctx context.Context, s *config.Scenario) error {
	logger := ctxlog.FromContext(ctx)

	inputs, err := builder.Inputs(ctx, a.model, a.converter, s.Inputs)
	if err != nil {
		return err
	}

	trace, simErr := a.engine.Simulate(ctx, inputs, s.Target)
	if trace != nil {
		write := render.Trace
		if a.cfg.Output == "json" {
			write = render.TraceJSON
		}
		if err := write(a.outW, trace); err != nil {
			return errors.Join(simErr, err)
		}
		if v, ok := trace.Value(); ok {
			logger.Info("Simulation result.", "target", s.Target, "value", a.converter.Format(v))
		}
	}
	return simErr
}
