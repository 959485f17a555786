package saved

import (
	"fmt"
	"log/slog"
	"strconv"

	"nathanbeddoewebdev/hue/internal/palette/domain"
	"nathanbeddoewebdev/hue/internal/palette/services/session"

	"github.com/spf13/cobra"
)

// NewCommand returns the "saved" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "saved",
		Short: "Manage saved palettes",
		Long: `Save the current palette for later, list saved palettes, load one back
as the current palette, or delete it.

Saved palettes are numbered from 1 in the order they were saved.`,
	}

	cmd.AddCommand(AddCommand())
	cmd.AddCommand(ListCommand())
	cmd.AddCommand(LoadCommand())
	cmd.AddCommand(DeleteCommand())

	return cmd
}

// withSession runs fn against the default session using the process logger.
func withSession(fn func(s *session.Session) error) error {
	return session.WithDefault(slog.Default(), fn)
}

// parseIndex converts a 1-based argument to a 0-based index into saved.
func parseIndex(arg string, saved []domain.Palette) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return -1, fmt.Errorf("invalid palette number %q: must be an integer", arg)
	}
	if n < 1 || n > len(saved) {
		return -1, fmt.Errorf("palette %d (%d saved): %w", n, len(saved), domain.ErrIndexOutOfRange)
	}
	return n - 1, nil
}
