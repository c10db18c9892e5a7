package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/notifstack/pkg/lockstate"
	"github.com/matzehuels/notifstack/pkg/pipeline"
	"github.com/matzehuels/notifstack/pkg/scenario"
)

// scenarioFlags override parts of a scenario file from the command line.
// Only flags the user actually set are applied.
type scenarioFlags struct {
	space       float64
	shelfSpace  float64
	shelfHeight float64
	state       string
	fraction    float64
	refresh     bool
}

func (f *scenarioFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.space, "space", 0, "override space_for_notifications (px)")
	cmd.Flags().Float64Var(&f.shelfSpace, "shelf-space", 0, "override space_for_shelf (px)")
	cmd.Flags().Float64Var(&f.shelfHeight, "shelf-height", 0, "override shelf_height (px)")
	cmd.Flags().StringVar(&f.state, "state", "", "override status bar state: shade, keyguard, shade_locked")
	cmd.Flags().Float64Var(&f.fraction, "fraction", 0, "override lock screen to shade fraction [0, 1]")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "recompute even if a cached result exists")
}

// apply returns sc with the changed flags applied. sc itself is not modified.
func (f *scenarioFlags) apply(cmd *cobra.Command, sc *scenario.Scenario) (*scenario.Scenario, error) {
	flags := cmd.Flags()
	out := *sc
	if flags.Changed("space") {
		out.Budget.Notifications = f.space
	}
	if flags.Changed("shelf-space") {
		out.Budget.Shelf = f.shelfSpace
	}
	if flags.Changed("shelf-height") {
		out.Budget.ShelfHeight = f.shelfHeight
	}
	if flags.Changed("state") {
		state, err := lockstate.ParseState(f.state)
		if err != nil {
			return nil, err
		}
		out.Lock.State = state
	}
	if flags.Changed("fraction") {
		out.Lock.FractionToShade = f.fraction
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}

// scenarioPath returns the file named on the command line, or the default.
func scenarioPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return defaultScenarioFile
}

// loadScenario reads the scenario named by args and applies flag overrides.
func loadScenario(cmd *cobra.Command, args []string, f *scenarioFlags) (*scenario.Scenario, error) {
	path := scenarioPath(args)
	sc, err := scenario.Load(path)
	if err != nil {
		return nil, err
	}
	if sc.Name == "" {
		sc.Name = path
	}
	return f.apply(cmd, sc)
}

// evaluate runs sc through a cached runner.
func (c *CLI) evaluate(ctx context.Context, sc *scenario.Scenario, refresh bool, formats []string) (*pipeline.Result, error) {
	runner, err := c.newRunner(nil)
	if err != nil {
		return nil, fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	return runner.Execute(ctx, sc, c.options(formats, refresh))
}
