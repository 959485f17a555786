package palette

import (
	"fmt"
	"log/slog"
	"os"

	"nathanbeddoewebdev/hue/internal/config"
	"nathanbeddoewebdev/hue/internal/palette/services/session"
	"nathanbeddoewebdev/hue/internal/tui"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// UICommand returns the "palette ui" command.
func UICommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive palette editor",
		Long: `Open a full-screen editor for the current palette.

Keys:
  space        regenerate unlocked colors
  n            generate a new palette
  ←/→, 1-9     select a color
  l, enter     toggle lock
  e            edit the selected color
  s            save the palette
  c            copy CSS to the clipboard
  tab          switch to saved palettes (enter load, d delete)
  q            quit`,
		Args:         cobra.NoArgs,
		RunE:         runUI,
		SilenceUsage: true,
	}
	return cmd
}

func runUI(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("palette ui requires a terminal; use 'hue palette show' instead")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	return withSession(func(s *session.Session) error {
		return tui.RunPaletteApp(s, cfg.Backend(), slog.Default())
	})
}
