package saved

import (
	"fmt"

	"nathanbeddoewebdev/hue/internal/palette/services/session"

	"github.com/spf13/cobra"
)

// AddCommand returns the "saved add" command.
func AddCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "add",
		Short:        "Save a copy of the current palette",
		Args:         cobra.NoArgs,
		RunE:         runAdd,
		SilenceUsage: true,
	}
}

func runAdd(cmd *cobra.Command, args []string) error {
	return withSession(func(s *session.Session) error {
		state := s.Save()
		fmt.Fprintf(cmd.OutOrStdout(), "Saved as palette %d\n", len(state.SavedPalettes))
		return nil
	})
}
