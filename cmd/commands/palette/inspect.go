package palette

import (
	"nathanbeddoewebdev/hue/internal/palette/services/session"

	"github.com/spf13/cobra"
)

// InspectCommand returns the "palette inspect" command.
func InspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show RGB, HSL and contrast details for each color",
		Long: `Print each color of the current palette in RGB and HSL, the text color
(black or white) that reads best on it, and the closest pair of colors by
CIEDE2000 distance.`,
		Args:         cobra.NoArgs,
		RunE:         runInspect,
		SilenceUsage: true,
	}
	return cmd
}

func runInspect(cmd *cobra.Command, args []string) error {
	return withSession(func(s *session.Session) error {
		printPaletteDetail(cmd, s.State().CurrentPalette)
		return nil
	})
}
