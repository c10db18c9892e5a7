package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/notifstack/pkg/lockstate"
)

// lockscreenCommand creates the lockscreen command.
func (c *CLI) lockscreenCommand() *cobra.Command {
	var (
		state    string
		fraction float64
		quiet    bool
	)

	cmd := &cobra.Command{
		Use:   "lockscreen",
		Short: "Report whether a lock-state sample sizes rows for the lock screen",
		Long: `Report whether rows are measured at their minimal (lock screen) height.

That is the case only in the keyguard state with no transition to the shade
in progress (--fraction 0). Sticky rows keep their intrinsic height either way.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := lockstate.ParseState(state)
			if err != nil {
				return err
			}
			sig := lockstate.Signals{State: st, FractionToShade: fraction}
			if err := sig.Validate(); err != nil {
				return err
			}

			on := sig.OnLockscreen()
			if quiet {
				fmt.Println(on)
				return nil
			}
			printKeyValue("state", sig.State.String())
			printKeyValue("fraction", num(sig.FractionToShade))
			if on {
				printKeyValue("lock screen", StyleSuccess.Render("yes")+StyleDim.Render(" · rows use minimal height"))
			} else {
				printKeyValue("lock screen", "no"+StyleDim.Render(" · rows use intrinsic height"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&state, "state", lockstate.Keyguard.String(), "status bar state: shade, keyguard, shade_locked")
	cmd.Flags().Float64Var(&fraction, "fraction", 0, "lock screen to shade fraction [0, 1]")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only true or false")

	return cmd
}
