package palette

import (
	"fmt"
	"log/slog"
	"strconv"

	"nathanbeddoewebdev/hue/internal/palette/domain"
	"nathanbeddoewebdev/hue/internal/palette/services/session"

	"github.com/spf13/cobra"
)

// NewCommand returns the "palette" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Work with the current palette",
		Long: `Generate, re-roll, lock and edit the colors of the current palette.

Colors are addressed by their ID or by their 1-based position (as shown by
'hue palette show'). When a numeric argument is also the ID of a color, the
ID wins.`,
	}

	cmd.AddCommand(GenerateCommand())
	cmd.AddCommand(RegenerateCommand())
	cmd.AddCommand(LockCommand())
	cmd.AddCommand(EditCommand())
	cmd.AddCommand(ShowCommand())
	cmd.AddCommand(InspectCommand())
	cmd.AddCommand(UICommand())

	return cmd
}

// withSession runs fn against the default session using the process logger.
func withSession(fn func(s *session.Session) error) error {
	return session.WithDefault(slog.Default(), fn)
}

// resolveColor maps a color ID or a 1-based position to the color's index.
// An exact ID match wins over a position.
func resolveColor(p domain.Palette, ref string) (int, error) {
	if i := p.IndexOf(ref); i >= 0 {
		return i, nil
	}
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(p.Colors) {
			return -1, fmt.Errorf("position %d (palette has %d colors): %w", n, len(p.Colors), domain.ErrIndexOutOfRange)
		}
		return n - 1, nil
	}
	return -1, fmt.Errorf("%q: %w", ref, domain.ErrColorNotFound)
}
