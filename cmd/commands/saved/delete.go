package saved

import (
	"errors"
	"fmt"
	"os"

	"nathanbeddoewebdev/hue/internal/palette/services/session"
	"nathanbeddoewebdev/hue/internal/tui"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// DeleteCommand returns the "saved delete" command.
func DeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <number>",
		Short: "Delete a saved palette",
		Long: `Delete a saved palette. Later palettes move up by one.

In a terminal you are asked to confirm unless --yes is given.

Examples:
  hue saved delete 2
  hue saved delete 2 --yes`,
		Args:         cobra.ExactArgs(1),
		RunE:         runDelete,
		SilenceUsage: true,
	}
	cmd.Flags().BoolP("yes", "y", false, "Delete without asking for confirmation")
	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	yes, _ := cmd.Flags().GetBool("yes")

	return withSession(func(s *session.Session) error {
		saved := s.State().SavedPalettes
		i, err := parseIndex(args[0], saved)
		if err != nil {
			return err
		}

		if !yes && term.IsTerminal(int(os.Stdin.Fd())) {
			ok, err := tui.ConfirmDeleteForm(i, saved[i])
			if err != nil && !errors.Is(err, tui.ErrAborted) {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.ErrOrStderr(), "Delete cancelled.")
				return nil
			}
		}

		s.Delete(i)
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted palette %d\n", i+1)
		return nil
	})
}
