package saved

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"nathanbeddoewebdev/hue/internal/palette/domain"
	"nathanbeddoewebdev/hue/internal/palette/services/session"

	"github.com/spf13/cobra"
)

// ListCommand returns the "saved list" command.
func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved palettes",
		Long: `List saved palettes with their number and colors.

Examples:
  hue saved list
  hue saved list -o json`,
		Args:         cobra.NoArgs,
		RunE:         runList,
		SilenceUsage: true,
	}
	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	if output != "table" && output != "json" && output != "" {
		return fmt.Errorf("unsupported output format %q (valid: table, json)", output)
	}

	return withSession(func(s *session.Session) error {
		saved := s.State().SavedPalettes
		if output == "json" {
			printSavedJSON(cmd, saved)
			return nil
		}
		if len(saved) == 0 {
			fmt.Fprintln(cmd.ErrOrStderr(), "No saved palettes.")
			return nil
		}
		printSavedTable(cmd, saved)
		return nil
	})
}

// printSavedJSON encodes saved palettes as indented JSON to stdout.
func printSavedJSON(cmd *cobra.Command, saved []domain.Palette) {
	if saved == nil {
		saved = []domain.Palette{}
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.Encode(saved)
}

// printSavedTable prints one row per saved palette.
func printSavedTable(cmd *cobra.Command, saved []domain.Palette) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)

	fmt.Fprintln(w, "#\tCOLORS\tHEX")
	fmt.Fprintln(w, "-\t------\t---")
	for i, p := range saved {
		fmt.Fprintf(w, "%d\t%d\t%s\n", i+1, len(p.Colors), strings.Join(p.Hexes(), " "))
	}

	w.Flush()
}
