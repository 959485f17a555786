package saved

import (
	"fmt"

	"nathanbeddoewebdev/hue/internal/palette/services/session"

	"github.com/spf13/cobra"
)

// LoadCommand returns the "saved load" command.
func LoadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "load <number>",
		Short: "Make a saved palette the current palette",
		Long: `Copy a saved palette, including its locks, into the current palette.
The saved copy is kept and later edits do not change it.`,
		Args:         cobra.ExactArgs(1),
		RunE:         runLoad,
		SilenceUsage: true,
	}
}

func runLoad(cmd *cobra.Command, args []string) error {
	return withSession(func(s *session.Session) error {
		i, err := parseIndex(args[0], s.State().SavedPalettes)
		if err != nil {
			return err
		}
		s.Load(i)
		fmt.Fprintf(cmd.OutOrStdout(), "Loaded palette %d\n", i+1)
		return nil
	})
}
