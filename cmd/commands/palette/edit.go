package palette

import (
	"errors"
	"fmt"
	"os"

	"nathanbeddoewebdev/hue/internal/palette/services/session"
	"nathanbeddoewebdev/hue/internal/tui"
	"nathanbeddoewebdev/hue/internal/util"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// EditCommand returns the "palette edit" command.
func EditCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit [position|id] [hex]",
		Short: "Set the hex value of a color",
		Long: `Set the value of one color of the current palette.

The hex must be six hexadecimal digits or three-digit shorthand; the leading
'#' is optional. Without arguments in a terminal, an interactive form asks for
the color and value.

Examples:
  hue palette edit 1 '#ff8800'
  hue palette edit 3 0af
  hue palette edit           # interactive`,
		Args:         cobra.RangeArgs(0, 2),
		RunE:         runEdit,
		SilenceUsage: true,
	}
	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	return withSession(func(s *session.Session) error {
		current := s.State().CurrentPalette

		var id, hex string
		switch len(args) {
		case 2:
			i, err := resolveColor(current, args[0])
			if err != nil {
				return err
			}
			hex = util.NormalizeHex(args[1])
			if err := util.ValidateHex(hex); err != nil {
				return err
			}
			id = current.Colors[i].ID
		case 1:
			return fmt.Errorf("missing <hex> for color %q", args[0])
		default:
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return fmt.Errorf("edit requires <position|id> and <hex> when not running in a terminal")
			}
			edit, err := tui.EditColorForm(current)
			if err != nil {
				if errors.Is(err, tui.ErrAborted) {
					fmt.Fprintln(cmd.ErrOrStderr(), "Edit cancelled.")
					return nil
				}
				return err
			}
			id, hex = edit.ID, edit.Hex
		}

		updated := s.UpdateColor(id, hex).CurrentPalette
		fmt.Fprintf(cmd.OutOrStdout(), "Color %d set to %s\n", updated.IndexOf(id)+1, hex)
		return nil
	})
}
