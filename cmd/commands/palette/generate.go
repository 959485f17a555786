package palette

import (
	"nathanbeddoewebdev/hue/internal/palette/services/session"

	"github.com/spf13/cobra"
)

// GenerateCommand returns the "palette generate" command.
func GenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Replace the current palette with new random colors",
		Long: `Replace every color of the current palette, locked or not, with a fresh
random color. Saved palettes are not affected.`,
		Args:         cobra.NoArgs,
		RunE:         runGenerate,
		SilenceUsage: true,
	}
	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")
	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	return withSession(func(s *session.Session) error {
		return printPalette(cmd, s.Generate().CurrentPalette)
	})
}

// RegenerateCommand returns the "palette regenerate" command.
func RegenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "regenerate",
		Short: "Re-roll every unlocked color",
		Long: `Replace each unlocked color of the current palette with a new random color.
Locked colors keep their value and ID.`,
		Args:         cobra.NoArgs,
		RunE:         runRegenerate,
		SilenceUsage: true,
	}
	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")
	return cmd
}

func runRegenerate(cmd *cobra.Command, args []string) error {
	return withSession(func(s *session.Session) error {
		return printPalette(cmd, s.Regenerate().CurrentPalette)
	})
}
