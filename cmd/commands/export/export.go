package export

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"nathanbeddoewebdev/hue/internal/config"
	"nathanbeddoewebdev/hue/internal/palette/domain"
	paletteexport "nathanbeddoewebdev/hue/internal/palette/export"
	"nathanbeddoewebdev/hue/internal/palette/services/session"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// copyToClipboard is swapped out in tests.
var copyToClipboard = clipboard.WriteAll

// NewCommand returns the "export" command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the current palette",
		Long: "Render the current palette as JSON, CSS, Tailwind config or a PNG image.\n\n" +
			"Without --format the configured export-format is used (default json).\n" +
			"PNG output must go to a file.\n\n" +
			paletteexport.FormatsHelp() +
			"\nExamples:\n" +
			"  hue export --format css\n" +
			"  hue export --format tailwind --copy\n" +
			"  hue export --format png --output palette.png",
		Args:         cobra.NoArgs,
		RunE:         runExport,
		SilenceUsage: true,
	}

	cmd.Flags().StringP("format", "f", "", "Export format (overrides the configured default)")
	cmd.Flags().StringP("output", "o", "", "Write to this file instead of stdout")
	cmd.Flags().Bool("copy", false, "Also copy the output to the clipboard")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("format")
	outPath, _ := cmd.Flags().GetString("output")
	doCopy, _ := cmd.Flags().GetBool("copy")

	if !cmd.Flags().Changed("format") {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		name = cfg.Format()
	}

	format := paletteexport.Lookup(name)
	if format == nil {
		return fmt.Errorf("format %q (valid: %s): %w", name, strings.Join(paletteexport.Names(), ", "), domain.ErrUnknownFormat)
	}
	if format.Binary && doCopy {
		return fmt.Errorf("--copy is not supported for %s output", format.Name)
	}
	if format.Binary && outPath == "" && isTerminal(cmd) {
		return fmt.Errorf("refusing to write %s to a terminal; use --output <file>", format.Name)
	}

	return session.WithDefault(slog.Default(), func(s *session.Session) error {
		var buf bytes.Buffer
		if err := format.Write(&buf, s.State().CurrentPalette); err != nil {
			return err
		}

		if outPath != "" {
			if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outPath, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s to %s\n", format.Name, outPath)
		} else {
			out := cmd.OutOrStdout()
			out.Write(buf.Bytes())
			if !format.Binary {
				fmt.Fprintln(out)
			}
		}

		if doCopy {
			if err := copyToClipboard(buf.String()); err != nil {
				return fmt.Errorf("failed to copy to clipboard: %w", err)
			}
			fmt.Fprintln(cmd.ErrOrStderr(), "Copied to clipboard.")
		}
		return nil
	})
}

// isTerminal reports whether the command writes straight to a terminal.
func isTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
