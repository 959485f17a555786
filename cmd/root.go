package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	cfgcmd "nathanbeddoewebdev/hue/cmd/commands/config"
	"nathanbeddoewebdev/hue/cmd/commands/export"
	"nathanbeddoewebdev/hue/cmd/commands/palette"
	"nathanbeddoewebdev/hue/cmd/commands/saved"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "hue",
		Short: "Generate, lock, save and export color palettes",
		Long: `hue is a command-line color palette maker. It keeps a current palette of
five colors that you can re-roll, lock, edit, save for later, and export
as JSON, CSS, Tailwind or PNG. State is stored between runs.

Quick start:
  hue palette ui                   # Interactive editor
  hue palette regenerate           # Re-roll unlocked colors
  hue palette lock 2               # Keep color 2 on the next re-roll
  hue saved add                    # Save the current palette
  hue export --format css          # Print CSS custom properties`,
		SilenceUsage:      true,
		PersistentPreRunE: setupLogging,
	}

	cmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn, or error")

	cmd.AddCommand(cfgcmd.NewCommand())
	cmd.AddCommand(export.NewCommand())
	cmd.AddCommand(palette.NewCommand())
	cmd.AddCommand(saved.NewCommand())

	return cmd
}

// setupLogging installs the process-wide slog handler on stderr.
func setupLogging(cmd *cobra.Command, args []string) error {
	raw, _ := cmd.Flags().GetString("log-level")
	level, err := parseLevel(raw)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid --log-level %q (valid: debug, info, warn, error)", s)
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	var root = rootCmd()
	err := root.Execute()
	if err != nil {
		os.Exit(1)
	}
}
