package app

import (
	"context"
	"fmt"

	"spinekit/internal/ctxlog"
	"spinekit/internal/spine"
)

// Run executes the main application logic based on the provided configuration.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	model, err := spine.Build(ctx, a.model)
	if err != nil {
		return fmt.Errorf("building spine model: %w", err)
	}

	st := model.Structure()
	a.logger.Info("Spine model built.",
		"modules", len(model.Modules()),
		"nodes", len(st.Nodes()),
		"edges", len(st.Edges()),
		"cables", len(model.AllCables()),
		"rods", len(model.Rods()))
	for tag, n := range st.TagCounts() {
		a.logger.Debug("Member class synthesized.", "tag", tag, "count", n)
	}

	var mass float64
	for _, r := range model.Rods() {
		mass += r.Mass()
	}

	fmt.Fprintf(a.outW, "spine: %d modules, %d nodes, %d members, total rigid mass %.3f\n",
		len(model.Modules()), len(st.Nodes()), len(st.Edges()), mass)
	for _, key := range model.Keys() {
		group, err := model.Cables(key)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.outW, "  cable group %-12s %d cables\n", key, len(group))
	}

	if appConfig.Steps > 0 {
		a.logger.Info("Stepping model.", "steps", appConfig.Steps, "dt", appConfig.Delta)
		for i := 0; i < appConfig.Steps; i++ {
			if err := model.Step(appConfig.Delta); err != nil {
				return fmt.Errorf("step %d: %w", i, err)
			}
		}
		var peak float64
		for _, c := range model.AllCables() {
			if tension := c.Tension(); tension > peak {
				peak = tension
			}
		}
		fmt.Fprintf(a.outW, "stepped %d x %g, peak cable tension %.3f\n",
			appConfig.Steps, appConfig.Delta, peak)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
