package palette

import (
	"nathanbeddoewebdev/hue/internal/palette/services/session"

	"github.com/spf13/cobra"
)

// ShowCommand returns the "palette show" command.
func ShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the current palette",
		Long: `Print the colors of the current palette with their position, hex value,
lock state and ID.

Examples:
  hue palette show
  hue palette show -o json`,
		Args:         cobra.NoArgs,
		RunE:         runShow,
		SilenceUsage: true,
	}
	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	return withSession(func(s *session.Session) error {
		return printPalette(cmd, s.State().CurrentPalette)
	})
}
