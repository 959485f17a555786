package palette

import (
	"fmt"

	"nathanbeddoewebdev/hue/internal/palette/services/session"

	"github.com/spf13/cobra"
)

// LockCommand returns the "palette lock" command.
func LockCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lock <position|id>",
		Short: "Toggle the lock on a color",
		Long: `Toggle whether a color is kept when the palette is regenerated.

Examples:
  hue palette lock 2         # lock (or unlock) the second color
  hue palette lock 6f1c...   # address a color by ID`,
		Args:         cobra.ExactArgs(1),
		RunE:         runLock,
		SilenceUsage: true,
	}
	return cmd
}

func runLock(cmd *cobra.Command, args []string) error {
	return withSession(func(s *session.Session) error {
		i, err := resolveColor(s.State().CurrentPalette, args[0])
		if err != nil {
			return err
		}
		id := s.State().CurrentPalette.Colors[i].ID
		c := s.ToggleLock(id).CurrentPalette.Colors[i]

		state := "unlocked"
		if c.Locked {
			state = "locked"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Color %d (%s) %s\n", i+1, c.Hex, state)
		return nil
	})
}
